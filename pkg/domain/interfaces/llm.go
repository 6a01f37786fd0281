package interfaces

import (
	"context"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
)

// Message is one turn handed to the language model. Role follows the
// chat-completion convention: system, user, assistant, tool.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall // assistant messages that requested tool calls
	ToolCallID string     // tool messages carrying a result
}

// ToolCall is a structured function invocation requested by the model
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// CompletionRequest is the shared shape of both model calls in a turn
type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
	Tools        []tool.Spec // empty on the narration pass
	Temperature  float32
}

// TextStream yields natural-language chunks as the upstream model produces
// them. Recv returns io.EOF when the stream is exhausted.
type TextStream interface {
	Recv() (string, error)
	Close() error
}

// Decision is the outcome of the tool-decision call: either a set of tool
// calls to dispatch, or a direct reply stream. Exactly one is set.
type Decision struct {
	ToolCalls []ToolCall
	Reply     TextStream
}

// LLMClient is the chat-completion capability the orchestrator depends on.
// Decide offers the tool schema and lets the model choose between answering
// and calling tools; Narrate streams a natural-language reply with no tools
// offered, which prevents tool-call recursion on the second pass.
type LLMClient interface {
	Decide(ctx context.Context, req *CompletionRequest) (*Decision, error)
	Narrate(ctx context.Context, req *CompletionRequest) (TextStream, error)
}
