package chat

import (
	"sync"
	"time"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/llm"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Greeting opens every session so the first history payload matches what
// the user saw on screen.
const Greeting = "Hello! I am Greenthumb, your AI gardening assistant. Ask me anything about your plants!"

// Session owns the ordered, append-only conversation history for the
// lifetime of the process. It is not persisted across restarts; every chat
// call reconstructs the model's memory by replaying this history in full.
type Session struct {
	mu       sync.Mutex
	messages []types.ChatMessage
	now      func() time.Time
}

func NewSession() *Session {
	s := &Session{now: time.Now}
	s.messages = append(s.messages, types.ChatMessage{
		Role:      types.RoleModel,
		Text:      Greeting,
		Timestamp: s.now().UnixMilli(),
	})
	return s
}

// AppendUser records the user's message with the current timestamp. It is
// called before the remote turn is issued and the entry is never retracted,
// even if that turn fails.
func (s *Session) AppendUser(text string) types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := types.ChatMessage{
		Role:      types.RoleUser,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// AppendModel records a model reply, optionally with citations.
func (s *Session) AppendModel(text string, chunks []types.GroundingChunk) types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := types.ChatMessage{
		Role:            types.RoleModel,
		Text:            text,
		Timestamp:       s.now().UnixMilli(),
		GroundingChunks: chunks,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a copy of the history, oldest first.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ChatMessage(nil), s.messages...)
}

// HistoryPayload converts the history into the ordered role/text turns the
// gateway replays to the model. Order preservation is the critical
// invariant here; conversational context depends on it.
func (s *Session) HistoryPayload() []llm.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]llm.Turn, len(s.messages))
	for i, msg := range s.messages {
		turns[i] = llm.Turn{Role: msg.Role, Text: msg.Text}
	}
	return turns
}
