package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/cache"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/chat"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/llm"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/store"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Fixed user-safe messages. Raw errors are logged, never shown.
const (
	MsgIdentifyFailed  = "Could not identify the plant. Please try a clearer image."
	MsgDiagnoseFailed  = "Could not diagnose the plant. Please try a clearer image."
	MsgChatUnavailable = "I'm having trouble connecting to my botanical database right now. Try again later."
	MsgInvalidZip      = "Please enter a valid 5-digit Zip Code (e.g. 94043)"
)

var (
	// ErrValidation rejects bad input before any remote call is made.
	ErrValidation = errors.New("app: validation error")
	// ErrSuperseded marks a result that resolved after a newer request for
	// the same flow had already started; its result was discarded.
	ErrSuperseded = errors.New("app: request superseded")
)

// FlowState is what the presentation layer reacts to for one flow.
type FlowState struct {
	Loading bool
	Err     string // user-safe message, empty when none
}

// App is the use-case coordinator: it sequences validation, gateway calls,
// state updates and persistence, and tracks per-flow loading/error state.
// Methods are safe for interleaved callers; per-flow generation counters
// implement last-request-wins for superseded calls.
type App struct {
	gw      llm.Client
	store   store.Store
	session *chat.Session
	idCache *cache.IdentifyCache
	now     func() time.Time

	mu     sync.Mutex
	lastID int64 // same-millisecond save guard

	identifySeq uint64
	diagnoseSeq uint64
	searchSeq   uint64

	identifyState FlowState
	diagnoseState FlowState
	searchState   FlowState
	chatState     FlowState
	zipError      string

	identified    *types.PlantInfo
	identifyImage []byte
	diagnosis     *types.DiagnosisResult
	products      *types.SearchResult

	garden []types.SavedPlant // mirror of the store, DateAdded descending
}

// Option tweaks App construction.
type Option func(*App)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIdentifyCache enables the image-digest result cache.
func WithIdentifyCache(c *cache.IdentifyCache) Option {
	return func(a *App) { a.idCache = c }
}

func New(gw llm.Client, st store.Store, opts ...Option) *App {
	a := &App{
		gw:      gw,
		store:   st,
		session: chat.NewSession(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the store and loads the garden mirror, newest first.
func (a *App) Init(ctx context.Context) error {
	if err := a.store.Init(ctx); err != nil {
		return fmt.Errorf("init garden store: %w", err)
	}
	plants, err := a.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load garden: %w", err)
	}
	sortGarden(plants)
	a.mu.Lock()
	a.garden = plants
	a.mu.Unlock()
	return nil
}

// Session exposes the chat history owner to the presentation layer.
func (a *App) Session() *chat.Session { return a.session }

// Snapshot is a consistent read of everything the presentation layer needs.
type Snapshot struct {
	Identify FlowState
	Diagnose FlowState
	Search   FlowState
	Chat     FlowState
	ZipError string

	Identified *types.PlantInfo
	Diagnosis  *types.DiagnosisResult
	Products   *types.SearchResult
}

// State returns the current per-flow state. Pointers reference immutable
// results; callers must treat them as read-only.
func (a *App) State() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Identify:   a.identifyState,
		Diagnose:   a.diagnoseState,
		Search:     a.searchState,
		Chat:       a.chatState,
		ZipError:   a.zipError,
		Identified: a.identified,
		Diagnosis:  a.diagnosis,
		Products:   a.products,
	}
}

func sortGarden(plants []types.SavedPlant) {
	sort.SliceStable(plants, func(i, j int) bool {
		return plants[i].DateAdded > plants[j].DateAdded
	})
}
