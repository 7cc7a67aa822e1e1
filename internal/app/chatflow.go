package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// SendMessage runs one chat turn. The user's message is committed to the
// history before the remote call (optimistic append, never retracted); the
// history replayed to the model is captured beforehand, so the in-flight
// message travels separately as the new turn. A failed turn appends the
// fixed apology as a model message instead of surfacing the raw error.
func (a *App) SendMessage(ctx context.Context, text string) (types.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ChatMessage{}, fmt.Errorf("%w: empty message", ErrValidation)
	}

	history := a.session.HistoryPayload()
	a.session.AppendUser(text)

	a.mu.Lock()
	a.chatState = FlowState{Loading: true}
	a.mu.Unlock()

	result, err := a.gw.ChatTurn(ctx, text, history)

	a.mu.Lock()
	a.chatState = FlowState{}
	a.mu.Unlock()

	if err != nil {
		log.Printf("chat: %v", err)
		return a.session.AppendModel(MsgChatUnavailable, nil), err
	}
	return a.session.AppendModel(result.Text, result.GroundingChunks), nil
}
