package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/app"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/llm"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/store"
)

func identifiedApp(t *testing.T, st store.Store, gw llm.Client) *app.App {
	t.Helper()
	a := app.New(gw, st, app.WithClock(fixedClock(1700000000000)))
	require.NoError(t, a.Init(context.Background()))
	_, err := a.Identify(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	return a
}

func TestSaveWritesThroughToStoreAndMirror(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	saved, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", saved.ID)
	assert.Equal(t, int64(1700000000000), saved.DateAdded)
	assert.Equal(t, monsteraInfo, saved.PlantInfo)
	assert.Contains(t, saved.ImageURL, "data:image/jpeg;base64,")

	assert.Equal(t, 1, st.len())
	garden := a.Garden()
	require.Len(t, garden, 1)
	assert.Equal(t, saved, garden[0])
}

func TestSaveFailureLeavesMirrorUntouched(t *testing.T) {
	st := newMemStore()
	st.putErr = store.ErrWriteFailed
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	_, err := a.SaveIdentified(context.Background())
	require.ErrorIs(t, err, store.ErrWriteFailed)
	assert.Empty(t, a.Garden(), "mirror must not claim an unconfirmed save")
	assert.False(t, a.IsSaved(monsteraInfo.Name, monsteraInfo.ScientificName))
}

func TestSaveWithoutIdentificationIsRejected(t *testing.T) {
	a := app.New(&llm.Fake{}, newMemStore())
	require.NoError(t, a.Init(context.Background()))
	_, err := a.SaveIdentified(context.Background())
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestSameMillisecondSavesGetDistinctIDs(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	first, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)
	second, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.DateAdded, first.DateAdded)

	// Mirror is newest first.
	garden := a.Garden()
	require.Len(t, garden, 2)
	assert.Equal(t, second.ID, garden[0].ID)
}

func TestDedupByNameAndScientificName(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	_, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)

	// A second identification with the identical pair reports already saved
	// without any further store access.
	st.listErr = errors.New("store must not be read for dedup")
	assert.True(t, a.IsSaved("Monstera", "Monstera deliciosa"))
	assert.False(t, a.IsSaved("Monstera", "Monstera adansonii"))
	assert.False(t, a.IsSaved("monstera", "Monstera deliciosa"), "match is exact, not fuzzy")
}

func TestRemoveDeletesStoreFirst(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	saved, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)

	require.NoError(t, a.Remove(context.Background(), saved.ID))
	assert.Zero(t, st.len())
	assert.Empty(t, a.Garden())

	// Idempotent at the app level too.
	require.NoError(t, a.Remove(context.Background(), saved.ID))
}

func TestRemoveFailureKeepsMirrorEntry(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)

	saved, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)

	st.delErr = store.ErrWriteFailed
	require.ErrorIs(t, a.Remove(context.Background(), saved.ID), store.ErrWriteFailed)
	require.Len(t, a.Garden(), 1, "eviction requires store confirmation")
}

func TestInitLoadsGardenNewestFirst(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)
	_, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)
	_, err = a.SaveIdentified(context.Background())
	require.NoError(t, err)

	// A fresh app over the same store sees the same garden, sorted.
	b := app.New(&llm.Fake{}, st)
	require.NoError(t, b.Init(context.Background()))
	garden := b.Garden()
	require.Len(t, garden, 2)
	assert.Greater(t, garden[0].DateAdded, garden[1].DateAdded)
}

func TestFilterGarden(t *testing.T) {
	st := newMemStore()
	gw := &llm.Fake{IdentifyResult: monsteraInfo}
	a := identifiedApp(t, st, gw)
	_, err := a.SaveIdentified(context.Background())
	require.NoError(t, err)

	assert.Len(t, a.FilterGarden("monst"), 1)
	assert.Len(t, a.FilterGarden("DELICIOSA"), 1)
	assert.Empty(t, a.FilterGarden("cactus"))
	assert.Len(t, a.FilterGarden(""), 1)
}
