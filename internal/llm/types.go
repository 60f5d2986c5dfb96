package llm

// Role identifies who authored a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// defaultMaxTokens caps a reply when the request does not set a limit.
// Studio questions call for short answers.
const defaultMaxTokens = 1024

// Message is one turn of the conversation sent to a provider.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest describes one completion call. Model overrides the
// provider's configured model when set.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// CompletionResponse is the provider-normalized result of a completion.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
