package llm

import (
	"context"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Fake is a deterministic gateway for offline tests. Each operation returns
// the configured value, or the configured error; calls are counted and chat
// histories recorded so tests can assert on replay order.
type Fake struct {
	IdentifyResult types.PlantInfo
	IdentifyErr    error
	DiagnoseResult types.DiagnosisResult
	DiagnoseErr    error
	SearchResult   types.SearchResult
	SearchErr      error
	ChatResult     TurnResult
	ChatErr        error

	IdentifyCalls int
	DiagnoseCalls int
	SearchCalls   int
	ChatCalls     int

	LastLocationHint string
	LastChatMessage  string
	LastChatHistory  []Turn
}

var _ Client = (*Fake)(nil)

func (f *Fake) Identify(ctx context.Context, image []byte) (types.PlantInfo, error) {
	f.IdentifyCalls++
	return f.IdentifyResult, f.IdentifyErr
}

func (f *Fake) Diagnose(ctx context.Context, image []byte, locationHint string) (types.DiagnosisResult, error) {
	f.DiagnoseCalls++
	f.LastLocationHint = locationHint
	return f.DiagnoseResult, f.DiagnoseErr
}

func (f *Fake) SearchProducts(ctx context.Context, diagnosisText string) (types.SearchResult, error) {
	f.SearchCalls++
	return f.SearchResult, f.SearchErr
}

func (f *Fake) ChatTurn(ctx context.Context, message string, history []Turn) (TurnResult, error) {
	f.ChatCalls++
	f.LastChatMessage = message
	f.LastChatHistory = append([]Turn(nil), history...)
	return f.ChatResult, f.ChatErr
}

func (f *Fake) Close() error { return nil }
