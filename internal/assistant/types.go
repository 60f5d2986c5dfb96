// Package assistant implements the station's retrieval-backed chat helper.
// Questions are answered by an LLM provider with relevant flows, content and
// campaigns pulled from the vector store as context.
package assistant

import (
	"time"

	"github.com/shayulman/radiodesk/internal/llm"
)

// Session groups a conversation's messages.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is one persisted conversation turn.
type ChatMessage struct {
	ID        string            `json:"id"`
	SessionID string            `json:"session_id"`
	Role      llm.Role          `json:"role"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Answer is the result of asking the assistant a question.
type Answer struct {
	SessionID string   `json:"session_id"`
	Content   string   `json:"content"`
	HTML      string   `json:"html,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}
