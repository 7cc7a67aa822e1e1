package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	genai "google.golang.org/genai"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// DefaultModel matches the model the prompts were tuned against.
const DefaultModel = "gemini-2.5-flash"

var errEmptyResponse = errors.New("llm: empty response from model")

// Gemini is the gateway implementation over the official genai client.
// It is stateless between calls; chat memory is whatever history the caller
// replays into ChatTurn.
type Gemini struct {
	cli   *genai.Client
	model string
	rl    *rpsLimiter
}

var _ Client = (*Gemini)(nil)

// Options tunes the optional request throttle. Zero values disable it.
type Options struct {
	RPS   float64
	Burst int
}

func NewGemini(ctx context.Context, apiKey, model string, opts Options) (*Gemini, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Gemini{
		cli:   cli,
		model: model,
		rl:    newRPSLimiter(opts.RPS, opts.Burst),
	}, nil
}

func (g *Gemini) Close() error {
	g.rl.Stop()
	return nil
}

// Identify asks the model for a schema-constrained PlantInfo. A parse
// failure or schema violation is surfaced, never repaired: any image might
// yield a non-plant or ambiguous result and fabricating defaults would hide
// that from the user.
func (g *Gemini) Identify(ctx context.Context, image []byte) (types.PlantInfo, error) {
	raw, err := g.generateStructured(ctx, "identify", image, identifyPrompt, plantInfoSchema)
	if err != nil {
		return types.PlantInfo{}, fmt.Errorf("%w: %v", ErrIdentificationFailed, err)
	}
	var info types.PlantInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return types.PlantInfo{}, fmt.Errorf("%w: %v", ErrIdentificationFailed, err)
	}
	if info.Name == "" || info.ScientificName == "" {
		return types.PlantInfo{}, fmt.Errorf("%w: response missing required fields", ErrIdentificationFailed)
	}
	return info, nil
}

// Diagnose asks for a schema-constrained DiagnosisResult. locationHint, if
// non-empty, has already passed validation upstream and is only appended to
// the instruction text. A healthStatus outside the three-value enumeration
// is a contract violation and is not coerced.
func (g *Gemini) Diagnose(ctx context.Context, image []byte, locationHint string) (types.DiagnosisResult, error) {
	raw, err := g.generateStructured(ctx, "diagnose", image, diagnosePrompt(locationHint), diagnosisSchema)
	if err != nil {
		return types.DiagnosisResult{}, fmt.Errorf("%w: %v", ErrDiagnosisFailed, err)
	}
	var result types.DiagnosisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return types.DiagnosisResult{}, fmt.Errorf("%w: %v", ErrDiagnosisFailed, err)
	}
	if !result.HealthStatus.Valid() {
		return types.DiagnosisResult{}, fmt.Errorf("%w: invalid healthStatus %q", ErrDiagnosisFailed, result.HealthStatus)
	}
	return result, nil
}

// SearchProducts runs a search-grounded free-text request and extracts
// products best-effort. Malformed bodies never fail the call: the raw text
// and citations come back with an empty product list instead, because the
// surrounding diagnosis flow must not be blocked by a missing enrichment.
func (g *Gemini) SearchProducts(ctx context.Context, diagnosisText string) (types.SearchResult, error) {
	if err := g.rl.Acquire(ctx); err != nil {
		return types.SearchResult{}, fmt.Errorf("%w: %v", ErrProductSearchFailed, err)
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: productSearchPrompt(diagnosisText)}}}},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("%w: %v", ErrProductSearchFailed, err)
	}
	text := responseText(resp)
	result := ParseProducts(text)
	result.GroundingChunks = groundingChunks(resp)
	log.Printf("llm: product search returned %d products, %d sources", len(result.Products), len(result.GroundingChunks))
	return result, nil
}

// ChatTurn replays the prior history oldest-first and sends the new user
// message under the fixed botanist system instruction.
func (g *Gemini) ChatTurn(ctx context.Context, message string, history []Turn) (TurnResult, error) {
	if err := g.rl.Acquire(ctx); err != nil {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrChatFailed, err)
	}
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  types.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents,
		&genai.GenerateContentConfig{
			Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: chatSystemInstruction}}},
		},
	)
	if err != nil {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrChatFailed, err)
	}
	text := responseText(resp)
	if text == "" {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrChatFailed, errEmptyResponse)
	}
	return TurnResult{Text: text, GroundingChunks: groundingChunks(resp)}, nil
}

// generateStructured sends an inline JPEG plus instruction and requests
// strict JSON output against the given schema.
func (g *Gemini) generateStructured(ctx context.Context, op string, image []byte, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	if err := g.rl.Acquire(ctx); err != nil {
		return nil, err
	}
	log.Printf("llm: %s request (%d image bytes)", op, len(image))
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: image}},
			{Text: prompt},
		}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		return nil, err
	}
	text := responseText(resp)
	if text == "" {
		return nil, errEmptyResponse
	}
	return json.RawMessage(text), nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// groundingChunks maps the SDK grounding payload down to the minimal
// title/uri citation shape; everything else in it is ignored.
func groundingChunks(resp *genai.GenerateContentResponse) []types.GroundingChunk {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	raw := resp.Candidates[0].GroundingMetadata.GroundingChunks
	if len(raw) == 0 {
		return nil
	}
	chunks := make([]types.GroundingChunk, 0, len(raw))
	for _, c := range raw {
		if c == nil || c.Web == nil {
			continue
		}
		chunks = append(chunks, types.GroundingChunk{
			Web: &types.GroundingWeb{URI: c.Web.URI, Title: c.Web.Title},
		})
	}
	if len(chunks) == 0 {
		return nil
	}
	return chunks
}
