package llm

import "context"

// Provider is a chat-completion backend for the studio assistant. Two
// implementations exist: OpenAIProvider (hosted) and OllamaProvider (local).
type Provider interface {
	// Complete runs one completion and normalizes the backend's response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend, e.g. "openai" or "ollama".
	Name() string
}
