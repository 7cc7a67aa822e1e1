package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/store"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "garden.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Init(context.Background()))
	return st
}

func samplePlant(id string, added int64) types.SavedPlant {
	return types.SavedPlant{
		PlantInfo: types.PlantInfo{
			Name:           "Monstera",
			ScientificName: "Monstera deliciosa",
			Description:    "Large split leaves.",
			Care: types.CareInstructions{
				Water:       "Weekly",
				Light:       "Bright indirect",
				Soil:        "Well-draining",
				Temperature: "18-27C",
			},
			FunFact: "Fruit tastes like pineapple.",
		},
		ID:        id,
		ImageURL:  "data:image/jpeg;base64,AAAA",
		DateAdded: added,
	}
}

func TestPutThenListRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	p := samplePlant("1700000000001", 1700000000001)
	require.NoError(t, st.Put(ctx, p))

	plants, err := st.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, p, plants[0])
}

func TestPutUpsertsOnSameID(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	p := samplePlant("42", 100)
	require.NoError(t, st.Put(ctx, p))
	p.Name = "Swiss Cheese Plant"
	p.DateAdded = 200
	require.NoError(t, st.Put(ctx, p))

	plants, err := st.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Swiss Cheese Plant", plants[0].Name)
	assert.Equal(t, int64(200), plants[0].DateAdded)
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	p := samplePlant("7", 7)
	require.NoError(t, st.Put(ctx, p))
	require.NoError(t, st.Delete(ctx, "7"))

	plants, err := st.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)

	// Deleting an id that never existed must not error.
	require.NoError(t, st.Delete(ctx, "7"))
	require.NoError(t, st.Delete(ctx, "does-not-exist"))
}

func TestInitIsIdempotentAndSurvivesReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "garden.db")
	ctx := context.Background()

	st, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Init(ctx))
	require.NoError(t, st.Init(ctx))
	require.NoError(t, st.Put(ctx, samplePlant("a", 1)))
	require.NoError(t, st.Close())

	st2, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer st2.Close()
	require.NoError(t, st2.Init(ctx))

	plants, err := st2.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "a", plants[0].ID)
}
