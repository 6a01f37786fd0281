package llm

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/sashabaranov/go-openai"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("")
	gt.Error(t, err)

	client, err := New("sk-test", WithModel("gpt-4o"))
	gt.NoError(t, err)
	gt.Value(t, client.model).Equal("gpt-4o")
}

func TestToJSONSchema(t *testing.T) {
	spec := tool.Spec{
		Name: "sample",
		Parameters: map[string]*tool.Parameter{
			"title": {Type: tool.TypeString, Description: "the title", Required: true},
			"page":  {Type: tool.TypeString, Enum: []string{"home", "tijdlijn"}},
		},
	}

	schema := toJSONSchema(spec)
	gt.Value(t, schema["type"]).Equal("object")

	properties := schema["properties"].(map[string]any)
	title := properties["title"].(map[string]any)
	gt.Value(t, title["type"]).Equal("string")
	gt.Value(t, title["description"]).Equal("the title")

	page := properties["page"].(map[string]any)
	gt.Array(t, page["enum"].([]string)).Length(2)

	required := schema["required"].([]string)
	gt.Array(t, required).Length(1)
	gt.Value(t, required[0]).Equal("title")
}

func TestToJSONSchemaNoRequired(t *testing.T) {
	schema := toJSONSchema(tool.Spec{
		Name: "sample",
		Parameters: map[string]*tool.Parameter{
			"note": {Type: tool.TypeString},
		},
	})
	_, hasRequired := schema["required"]
	gt.Value(t, hasRequired).Equal(false)
}

func TestToolCallAccumulator(t *testing.T) {
	idx0, idx1 := 0, 1

	acc := toolCallAccumulator{}
	acc.add([]openai.ToolCall{
		{Index: &idx0, ID: "call_1", Function: openai.FunctionCall{Name: "navigate_to_page"}},
	})
	acc.add([]openai.ToolCall{
		{Index: &idx0, Function: openai.FunctionCall{Arguments: `{"page":`}},
		{Index: &idx1, ID: "call_2", Function: openai.FunctionCall{Name: "calculate_deadlines"}},
	})
	acc.add([]openai.ToolCall{
		{Index: &idx0, Function: openai.FunctionCall{Arguments: `"tijdlijn"}`}},
		{Index: &idx1, Function: openai.FunctionCall{Arguments: `{"dismissal_date":"2025-01-15"}`}},
	})

	calls := acc.finalize()
	gt.Array(t, calls).Length(2)

	gt.Value(t, calls[0].ID).Equal("call_1")
	gt.Value(t, calls[0].Name).Equal("navigate_to_page")
	gt.Value(t, calls[0].Arguments["page"]).Equal("tijdlijn")

	gt.Value(t, calls[1].Name).Equal("calculate_deadlines")
	gt.Value(t, calls[1].Arguments["dismissal_date"]).Equal("2025-01-15")
}

func TestToolCallAccumulatorMalformedArguments(t *testing.T) {
	idx0 := 0

	acc := toolCallAccumulator{}
	acc.add([]openai.ToolCall{
		{Index: &idx0, ID: "call_1", Function: openai.FunctionCall{Name: "navigate_to_page", Arguments: `{"page": tij`}},
	})

	calls := acc.finalize()
	gt.Array(t, calls).Length(1)
	gt.Value(t, len(calls[0].Arguments)).Equal(0)
}

func TestClassifyError(t *testing.T) {
	t.Run("429 maps to rate limited", func(t *testing.T) {
		err := classifyError(&openai.APIError{HTTPStatusCode: 429, Message: "slow down"})
		gt.Value(t, errors.Is(err, model.ErrRateLimited)).Equal(true)
	})

	t.Run("5xx maps to upstream", func(t *testing.T) {
		err := classifyError(&openai.APIError{HTTPStatusCode: 502, Message: "bad gateway"})
		gt.Value(t, errors.Is(err, model.ErrUpstream)).Equal(true)
		gt.Value(t, errors.Is(err, model.ErrRateLimited)).Equal(false)
	})

	t.Run("transport failure maps to upstream", func(t *testing.T) {
		err := classifyError(errors.New("connection refused"))
		gt.Value(t, errors.Is(err, model.ErrUpstream)).Equal(true)
	})
}
