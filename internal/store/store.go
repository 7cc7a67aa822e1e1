package store

import (
	"context"
	"errors"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Typed persistence failures. Callers branch on these with errors.Is and
// translate them to user-safe messages; the raw cause stays wrapped inside.
var (
	ErrUnavailable = errors.New("store: storage unavailable")
	ErrReadFailed  = errors.New("store: read failed")
	ErrWriteFailed = errors.New("store: write failed")
)

// Store is durable CRUD over saved plants, keyed by id. Records come back
// unordered; callers sort by DateAdded descending for the garden view.
//
// Put has upsert semantics: an id collision silently overwrites, acceptable
// because ids are creation-time-unique in this single-user scope. Delete of
// a missing id is not an error. No atomicity is guaranteed across calls.
type Store interface {
	Init(ctx context.Context) error
	ListAll(ctx context.Context) ([]types.SavedPlant, error)
	Put(ctx context.Context, plant types.SavedPlant) error
	Delete(ctx context.Context, id string) error
	Close() error
}
