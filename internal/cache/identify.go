package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// IdentifyCache remembers successful identifications keyed by the SHA-256
// of the image bytes, so re-submitting the same photo skips the remote
// call. Only validated results are cached; failures are never stored.
type IdentifyCache struct {
	lru *lru.Cache[string, types.PlantInfo]
}

// NewIdentifyCache creates a cache holding up to size results. size <= 0
// disables caching (all lookups miss).
func NewIdentifyCache(size int) (*IdentifyCache, error) {
	if size <= 0 {
		return &IdentifyCache{}, nil
	}
	c, err := lru.New[string, types.PlantInfo](size)
	if err != nil {
		return nil, err
	}
	return &IdentifyCache{lru: c}, nil
}

// Key returns the cache key for an image.
func Key(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}

func (c *IdentifyCache) Get(key string) (types.PlantInfo, bool) {
	if c == nil || c.lru == nil {
		return types.PlantInfo{}, false
	}
	return c.lru.Get(key)
}

func (c *IdentifyCache) Add(key string, info types.PlantInfo) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, info)
}
