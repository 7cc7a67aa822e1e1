package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// SaveIdentified materializes the current identification as a SavedPlant
// and writes it through the store before touching the in-memory mirror.
// On store failure the mirror is untouched: memory never claims an item is
// saved unless storage confirmed it.
func (a *App) SaveIdentified(ctx context.Context) (types.SavedPlant, error) {
	a.mu.Lock()
	if a.identified == nil || len(a.identifyImage) == 0 {
		a.mu.Unlock()
		return types.SavedPlant{}, fmt.Errorf("%w: nothing identified to save", ErrValidation)
	}
	id, added := a.nextIDLocked()
	plant := types.SavedPlant{
		PlantInfo: *a.identified,
		ID:        id,
		ImageURL:  "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(a.identifyImage),
		DateAdded: added,
	}
	a.mu.Unlock()

	if err := a.store.Put(ctx, plant); err != nil {
		log.Printf("garden: save failed: %v", err)
		return types.SavedPlant{}, err
	}

	a.mu.Lock()
	a.garden = append([]types.SavedPlant{plant}, a.garden...)
	a.mu.Unlock()
	return plant, nil
}

// nextIDLocked assigns a save-time id from the millisecond clock, bumped
// when two saves land in the same millisecond. Caller holds a.mu.
func (a *App) nextIDLocked() (string, int64) {
	ms := a.now().UnixMilli()
	if ms <= a.lastID {
		ms = a.lastID + 1
	}
	a.lastID = ms
	return strconv.FormatInt(ms, 10), ms
}

// Remove deletes from the store first and evicts from the mirror only on
// confirmation.
func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, id); err != nil {
		log.Printf("garden: remove failed: %v", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, p := range a.garden {
		if p.ID == id {
			a.garden = append(a.garden[:i], a.garden[i+1:]...)
			break
		}
	}
	return nil
}

// Garden returns a copy of the saved plants, newest first.
func (a *App) Garden() []types.SavedPlant {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]types.SavedPlant(nil), a.garden...)
}

// IsSaved reports whether a plant with this exact (name, scientificName)
// pair is already in the garden. Exact match is the business rule; it
// governs whether the save affordance is offered, without a store read.
func (a *App) IsSaved(name, scientificName string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.garden {
		if p.Name == name && p.ScientificName == scientificName {
			return true
		}
	}
	return false
}

// FilterGarden returns saved plants whose common or scientific name
// contains query, case-insensitively. An empty query returns everything.
func (a *App) FilterGarden(query string) []types.SavedPlant {
	query = strings.ToLower(strings.TrimSpace(query))
	a.mu.Lock()
	defer a.mu.Unlock()
	if query == "" {
		return append([]types.SavedPlant(nil), a.garden...)
	}
	var out []types.SavedPlant
	for _, p := range a.garden {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ScientificName), query) {
			out = append(out, p)
		}
	}
	return out
}
