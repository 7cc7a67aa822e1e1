package llm

import (
	"context"
	"errors"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Typed operation failures. The gateway never retries on its own; callers
// decide whether to re-trigger, and raw causes stay wrapped for logging.
var (
	ErrIdentificationFailed = errors.New("llm: identification failed")
	ErrDiagnosisFailed      = errors.New("llm: diagnosis failed")
	ErrProductSearchFailed  = errors.New("llm: product search failed")
	ErrChatFailed           = errors.New("llm: chat failed")
)

// Turn is one prior conversation turn replayed to the model. The remote
// service is stateless between calls; conversational memory is whatever the
// caller sends here, oldest first.
type Turn struct {
	Role string
	Text string
}

// TurnResult is the model's reply to a chat turn plus any citations.
type TurnResult struct {
	Text            string
	GroundingChunks []types.GroundingChunk
}

// Client is the AI gateway: one method per remote operation. Identify and
// Diagnose are schema-constrained and fail on any contract violation;
// SearchProducts degrades to an empty product list instead of failing on
// malformed bodies; ChatTurn replays history on every call.
type Client interface {
	Identify(ctx context.Context, image []byte) (types.PlantInfo, error)
	Diagnose(ctx context.Context, image []byte, locationHint string) (types.DiagnosisResult, error)
	SearchProducts(ctx context.Context, diagnosisText string) (types.SearchResult, error)
	ChatTurn(ctx context.Context, message string, history []Turn) (TurnResult, error)
	Close() error
}
