package app

import (
	"context"
	"log"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/cache"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Identify clears the prior result, calls the gateway and stores the
// identified plant together with its source image. A call that resolves
// after a newer Identify has started is discarded (ErrSuperseded).
func (a *App) Identify(ctx context.Context, image []byte) (types.PlantInfo, error) {
	a.mu.Lock()
	a.identifySeq++
	seq := a.identifySeq
	a.identified = nil
	a.identifyImage = image
	a.identifyState = FlowState{Loading: true}
	a.mu.Unlock()

	key := cache.Key(image)
	if info, ok := a.idCache.Get(key); ok {
		log.Printf("identify: cache hit for image digest %s", key[:12])
		return a.applyIdentify(seq, info, nil)
	}

	info, err := a.gw.Identify(ctx, image)
	if err == nil {
		a.idCache.Add(key, info)
	}
	return a.applyIdentify(seq, info, err)
}

func (a *App) applyIdentify(seq uint64, info types.PlantInfo, err error) (types.PlantInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.identifySeq {
		log.Printf("identify: discarding superseded result (seq %d, current %d)", seq, a.identifySeq)
		return types.PlantInfo{}, ErrSuperseded
	}
	if err != nil {
		log.Printf("identify: %v", err)
		a.identifyState = FlowState{Err: MsgIdentifyFailed}
		return types.PlantInfo{}, err
	}
	a.identified = &info
	a.identifyState = FlowState{}
	return info, nil
}

// Identified returns the latest identification, or nil.
func (a *App) Identified() *types.PlantInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identified
}
