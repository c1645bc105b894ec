package llm

import "context"

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive the model's raw text;
// extracting structured data from that text is the caller's concern.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the raw response text.
	// Multi-part responses are concatenated into a single string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the default model identifier this provider is
	// configured to use when a request does not name one.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// Model overrides the provider's configured default model for this
	// request. The generation pipeline selects models per difficulty tier,
	// so most requests set this.
	Model string

	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the only case in quizgen), this contains one user message.
	Messages []Message

	// JSONMode asks the provider for its native JSON output mode where one
	// exists. The response is still treated as raw text; models wrap JSON
	// in fences or commentary often enough that extraction happens
	// downstream regardless.
	JSONMode bool

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float32
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Text is the raw generated text, with multi-part responses joined.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
