// Package llm adapts the OpenAI chat-completion API to the two model calls
// of a conversation turn: the tool-decision call and the narration call.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/sashabaranov/go-openai"
)

const DefaultModel = openai.GPT4oMini

type Client struct {
	client *openai.Client
	model  string
}

var _ interfaces.LLMClient = &Client{}

type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("OpenAI API key is required")
	}

	c := &Client{
		client: openai.NewClient(apiKey),
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Decide runs the tool-decision call. The full tool schema is offered and
// the model chooses between requesting tool calls and answering directly.
// A direct answer is returned as a live stream so the no-tool path has the
// same latency profile as narration.
func (c *Client) Decide(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, c.buildRequest(req))
	if err != nil {
		return nil, classifyError(err)
	}

	acc := toolCallAccumulator{}
	toolMode := false
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = stream.Close()
			return nil, classifyError(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		delta := resp.Choices[0].Delta
		if len(delta.ToolCalls) > 0 {
			toolMode = true
			acc.add(delta.ToolCalls)
			continue
		}
		if delta.Content != "" && !toolMode {
			// Direct answer: hand the open stream to the caller with the
			// first chunk pending.
			return &interfaces.Decision{
				Reply: &textStream{stream: stream, pending: delta.Content},
			}, nil
		}
	}

	_ = stream.Close()
	if toolMode {
		return &interfaces.Decision{ToolCalls: acc.finalize()}, nil
	}
	return &interfaces.Decision{Reply: emptyStream{}}, nil
}

// Narrate runs the follow-up call that turns tool results into a natural
// reply. No tools are offered, which rules out tool-call recursion.
func (c *Client) Narrate(ctx context.Context, req *interfaces.CompletionRequest) (interfaces.TextStream, error) {
	r := c.buildRequest(req)
	r.Tools = nil

	stream, err := c.client.CreateChatCompletionStream(ctx, r)
	if err != nil {
		return nil, classifyError(err)
	}
	return &textStream{stream: stream}, nil
}

func (c *Client) buildRequest(req *interfaces.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, msg := range req.Messages {
		messages = append(messages, toOpenAIMessage(msg))
	}

	tools := make([]openai.Tool, 0, len(req.Tools))
	for _, spec := range req.Tools {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  toJSONSchema(spec),
			},
		})
	}

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Tools:       tools,
		Temperature: req.Temperature,
		Stream:      true,
	}
}

func toOpenAIMessage(msg interfaces.Message) openai.ChatCompletionMessage {
	out := openai.ChatCompletionMessage{
		Role:       msg.Role,
		Content:    msg.Content,
		ToolCallID: msg.ToolCallID,
	}
	for _, call := range msg.ToolCalls {
		args, err := json.Marshal(call.Arguments)
		if err != nil {
			args = []byte("{}")
		}
		out.ToolCalls = append(out.ToolCalls, openai.ToolCall{
			ID:   call.ID,
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      call.Name,
				Arguments: string(args),
			},
		})
	}
	return out
}

// toJSONSchema renders a tool spec as a JSON Schema object for the
// function-calling API.
func toJSONSchema(spec tool.Spec) map[string]any {
	properties := make(map[string]any, len(spec.Parameters))
	required := make([]string, 0, len(spec.Parameters))
	for name, param := range spec.Parameters {
		prop := map[string]any{
			"type":        string(param.Type),
			"description": param.Description,
		}
		if len(param.Enum) > 0 {
			prop["enum"] = param.Enum
		}
		properties[name] = prop
		if param.Required {
			required = append(required, name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// toolCallAccumulator reassembles streamed tool-call fragments. The API
// delivers each call's name and argument JSON in pieces keyed by index.
type toolCallAccumulator []pendingCall

type pendingCall struct {
	id   string
	name string
	args []byte
}

func (a *toolCallAccumulator) add(deltas []openai.ToolCall) {
	for _, d := range deltas {
		idx := 0
		if d.Index != nil {
			idx = *d.Index
		}
		for len(*a) <= idx {
			*a = append(*a, pendingCall{})
		}
		call := &(*a)[idx]
		if d.ID != "" {
			call.id = d.ID
		}
		call.name += d.Function.Name
		call.args = append(call.args, d.Function.Arguments...)
	}
}

func (a toolCallAccumulator) finalize() []interfaces.ToolCall {
	calls := make([]interfaces.ToolCall, 0, len(a))
	for _, p := range a {
		args := map[string]any{}
		if len(p.args) > 0 {
			// Malformed argument JSON is left empty; schema validation at
			// dispatch reports the missing fields.
			_ = json.Unmarshal(p.args, &args)
		}
		calls = append(calls, interfaces.ToolCall{
			ID:        p.id,
			Name:      p.name,
			Arguments: args,
		})
	}
	return calls
}

// classifyError maps provider failures onto the domain error taxonomy
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			return goerr.Wrap(model.ErrRateLimited, "OpenAI rate limit", goerr.V("status", apiErr.HTTPStatusCode))
		}
		return goerr.Wrap(model.ErrUpstream, "OpenAI API error",
			goerr.V("status", apiErr.HTTPStatusCode), goerr.V("message", apiErr.Message))
	}
	return goerr.Wrap(model.ErrUpstream, "OpenAI request failed", goerr.V("cause", err.Error()))
}
