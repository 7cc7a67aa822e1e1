package app_test

import (
	"context"
	"sync"
	"time"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// memStore is an in-memory store with injectable failures, standing in for
// the SQLite store in orchestration tests.
type memStore struct {
	mu      sync.Mutex
	records map[string]types.SavedPlant

	initErr error
	listErr error
	putErr  error
	delErr  error
}

func newMemStore() *memStore {
	return &memStore{records: map[string]types.SavedPlant{}}
}

func (m *memStore) Init(ctx context.Context) error { return m.initErr }

func (m *memStore) ListAll(ctx context.Context) ([]types.SavedPlant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.SavedPlant, 0, len(m.records))
	for _, p := range m.records {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) Put(ctx context.Context, plant types.SavedPlant) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[plant.ID] = plant
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// fixedClock returns a clock that starts at base and never advances, which
// forces the same-millisecond id bump path.
func fixedClock(base int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(base) }
}

var monsteraInfo = types.PlantInfo{
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
}

var sickDiagnosis = types.DiagnosisResult{
	HealthStatus: types.StatusSick,
	Diagnosis:    "Powdery mildew",
	Symptoms:     []string{"white dust on leaves"},
	Treatment:    []string{"apply fungicide"},
	Prevention:   "improve airflow",
}
