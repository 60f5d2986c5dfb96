package assistant

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shayulman/radiodesk/internal/llm"
	"github.com/shayulman/radiodesk/internal/vectordb"
)

const (
	retrievalLimit   = 5
	historyLimit     = 20
	maxContextTokens = 6000
)

const systemPrompt = `You are the studio assistant for an Israeli radio station.
You help producers find songs, understand broadcast flows and review campaigns.
Answer in the language the question was asked in; most users write Hebrew.
Ground your answers in the station records provided below. If the records do
not cover the question, say so instead of guessing.`

// Engine answers questions using retrieved station records and an LLM.
type Engine struct {
	store    *Store
	provider llm.Provider
	vectors  vectordb.VectorStore
	model    string
}

// NewEngine creates an assistant engine. provider may be rate limited by the
// caller; vectors may be nil, in which case answers are unretrieved.
func NewEngine(store *Store, provider llm.Provider, vectors vectordb.VectorStore, model string) *Engine {
	return &Engine{
		store:    store,
		provider: provider,
		vectors:  vectors,
		model:    model,
	}
}

// Store exposes the underlying session store.
func (e *Engine) Store() *Store {
	return e.store
}

// Ready reports whether an LLM provider is configured.
func (e *Engine) Ready() bool {
	return e.provider != nil
}

// Ask answers a question inside a session, creating the session when
// sessionID is empty. Both the question and the answer are persisted.
func (e *Engine) Ask(ctx context.Context, sessionID, userID, question string) (*Answer, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	if sessionID == "" {
		sess, err := e.store.CreateSession(ctx, userID)
		if err != nil {
			return nil, err
		}
		sessionID = sess.ID
	} else if _, err := e.store.GetSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	if err := e.store.AppendMessage(ctx, &ChatMessage{
		SessionID: sessionID,
		Role:      llm.RoleUser,
		Content:   question,
	}); err != nil {
		return nil, err
	}

	retrieved, sources := e.retrieve(ctx, question)

	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	if retrieved != "" {
		messages = append(messages, llm.Message{
			Role:    llm.RoleSystem,
			Content: "Station records relevant to this question:\n\n" + retrieved,
		})
	}
	messages = append(messages, e.history(ctx, sessionID)...)

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:    e.model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	if err := e.store.AppendMessage(ctx, &ChatMessage{
		SessionID: sessionID,
		Role:      llm.RoleAssistant,
		Content:   resp.Content,
		Metadata: map[string]string{
			"model":         resp.Model,
			"input_tokens":  strconv.Itoa(resp.InputTokens),
			"output_tokens": strconv.Itoa(resp.OutputTokens),
		},
	}); err != nil {
		return nil, err
	}

	html, err := RenderHTML(resp.Content)
	if err != nil {
		html = ""
	}

	return &Answer{
		SessionID: sessionID,
		Content:   resp.Content,
		HTML:      html,
		Sources:   sources,
	}, nil
}

// retrieve pulls relevant records from the vector store, capped by a rough
// token budget so long records cannot crowd out the conversation.
func (e *Engine) retrieve(ctx context.Context, question string) (string, []string) {
	if e.vectors == nil || e.vectors.Count() == 0 {
		return "", nil
	}

	results, err := e.vectors.Search(ctx, question, retrievalLimit, nil)
	if err != nil || len(results) == 0 {
		return "", nil
	}

	budget := maxContextTokens
	var kept []vectordb.SearchResult
	var sources []string
	for _, r := range results {
		cost := llm.EstimateTokens(r.Document.Content)
		if cost > budget {
			break
		}
		budget -= cost
		kept = append(kept, r)
		if title := r.Document.Metadata.Title; title != "" {
			sources = append(sources, title)
		}
	}
	if len(kept) == 0 {
		return "", nil
	}
	return vectordb.FormatResults(kept), sources
}

// history returns the session's recent turns as LLM messages, oldest first.
func (e *Engine) history(ctx context.Context, sessionID string) []llm.Message {
	msgs, err := e.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil
	}
	if len(msgs) > historyLimit {
		msgs = msgs[len(msgs)-historyLimit:]
	}
	result := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, llm.Message{Role: m.Role, Content: m.Content})
	}
	return result
}
