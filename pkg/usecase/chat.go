package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool/core"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/logging"
)

//go:embed prompt/chat_system.md
var chatSystemPromptTmpl string

var chatSystemPrompt = template.Must(template.New("chat_system").Parse(chatSystemPromptTmpl))

const chatTemperature = 0.4

// StreamWriter receives the outgoing chunks of one conversation turn. The
// navigation chunk, when present, is always written before any progress or
// text chunk.
type StreamWriter interface {
	WriteNavigate(route string) error
	WriteProgress(message string) error
	WriteText(chunk string) error
}

// TurnInput is one user turn plus the caller-supplied history. UserID may be
// empty for guest conversations.
type TurnInput struct {
	Messages []model.ConversationMessage
	UserID   string
}

// TurnReport summarizes what a completed turn did, for the non-streamed
// voice transport and for logging.
type TurnReport struct {
	Text        string         `json:"text"`
	Navigate    string         `json:"navigate,omitempty"`
	Progress    []string       `json:"progress,omitempty"`
	ToolResults []*tool.Result `json:"toolResults,omitempty"`
}

// ChatUseCase orchestrates one conversation turn: an optional deterministic
// guard stage, the tool-decision model call, sequential tool dispatch, and
// the streamed narration call.
type ChatUseCase struct {
	repo              interfaces.Repository
	llm               interfaces.LLMClient
	guard             *CrisisGuard
	extraInstructions string
	now               func() time.Time
}

func NewChatUseCase(repo interfaces.Repository, llm interfaces.LLMClient, opts ...ChatOption) *ChatUseCase {
	uc := &ChatUseCase{
		repo:  repo,
		llm:   llm,
		guard: NewCrisisGuard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type ChatOption func(*ChatUseCase)

func WithGuard(guard *CrisisGuard) ChatOption {
	return func(uc *ChatUseCase) {
		uc.guard = guard
	}
}

func WithExtraInstructions(instructions string) ChatOption {
	return func(uc *ChatUseCase) {
		uc.extraInstructions = instructions
	}
}

func WithNow(now func() time.Time) ChatOption {
	return func(uc *ChatUseCase) {
		uc.now = now
	}
}

// Converse runs one turn and writes the outgoing stream to w. The turn is
// stateless: all continuity comes from input.Messages.
//
// When an error occurs after tools already executed, the returned report
// still lists their results; committed side effects are never rolled back.
func (uc *ChatUseCase) Converse(ctx context.Context, input *TurnInput, w StreamWriter) (*TurnReport, error) {
	if input == nil || len(input.Messages) == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "message history is empty")
	}
	last := input.Messages[len(input.Messages)-1]
	if last.Role != types.RoleUser || last.Content == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "last message must be a non-empty user message")
	}
	for _, msg := range input.Messages {
		if _, err := types.ParseRole(msg.Role.String()); err != nil {
			return nil, goerr.Wrap(ErrInvalidInput, "unknown message role", goerr.V("role", msg.Role))
		}
	}

	// Time-ordered turn ID for log correlation across the two model calls.
	turnID := uuid.Must(uuid.NewV7()).String()
	ctx = logging.With(ctx, logging.From(ctx).With("turn_id", turnID))

	report := &TurnReport{}

	if referral, hit := uc.guard.Check(last.Content); hit {
		logging.From(ctx).Info("crisis guard triggered, short-circuiting turn")
		if err := w.WriteText(referral); err != nil {
			return report, err
		}
		report.Text = referral
		return report, nil
	}

	systemPrompt, err := uc.buildSystemPrompt()
	if err != nil {
		return nil, err
	}

	registry := tool.NewRegistry(core.New(uc.repo, input.UserID, uc.now)...)
	history := toLLMMessages(input.Messages)

	decision, err := uc.llm.Decide(ctx, &interfaces.CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages:     history,
		Tools:        registry.Specs(),
		Temperature:  chatTemperature,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "tool-decision call failed")
	}

	if decision.Reply != nil {
		// No tools requested: relay the answer unmodified.
		if err := uc.relay(decision.Reply, w, report); err != nil {
			return report, err
		}
		return report, nil
	}

	// Progress updates posted by tools are buffered during dispatch so the
	// navigation chunk stays first on the wire.
	ctx = tool.WithUpdate(ctx, func(ctx context.Context, message string) {
		report.Progress = append(report.Progress, message)
	})

	// Dispatch sequentially in call order. Tool-level failures fold into
	// the follow-up prompt as textual results; they never fail the turn.
	results := make([]*tool.Result, 0, len(decision.ToolCalls))
	for _, call := range decision.ToolCalls {
		result, err := registry.Execute(ctx, call.Name, call.Arguments)
		if err != nil {
			logging.From(ctx).Warn("tool call failed",
				"tool", call.Name, "error", err.Error())
			result = foldToolError(call.Name, err)
		}
		results = append(results, result)
		if report.Navigate == "" && result.Navigate != "" {
			report.Navigate = result.Navigate
		}
	}
	report.ToolResults = results

	// The navigation chunk precedes all narration text so the client can
	// start navigating without parsing the reply.
	if report.Navigate != "" {
		if err := w.WriteNavigate(report.Navigate); err != nil {
			return report, err
		}
	}

	for _, message := range report.Progress {
		if err := w.WriteProgress(message); err != nil {
			return report, err
		}
	}

	reply, err := uc.llm.Narrate(ctx, &interfaces.CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages:     appendToolTurns(history, decision.ToolCalls, results),
		Temperature:  chatTemperature,
	})
	if err != nil {
		return report, goerr.Wrap(err, "narration call failed")
	}

	if err := uc.relay(reply, w, report); err != nil {
		return report, err
	}
	return report, nil
}

func (uc *ChatUseCase) relay(stream interfaces.TextStream, w StreamWriter, report *TurnReport) error {
	defer func() {
		if err := stream.Close(); err != nil {
			logging.Default().Warn("failed to close reply stream", "error", err.Error())
		}
	}()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "reply stream failed")
		}
		if err := w.WriteText(chunk); err != nil {
			return err
		}
		report.Text += chunk
	}
}

func (uc *ChatUseCase) buildSystemPrompt() (string, error) {
	var buf bytes.Buffer
	err := chatSystemPrompt.Execute(&buf, map[string]string{
		"CurrentDate":       model.FormatDate(uc.now().UTC()),
		"ExtraInstructions": uc.extraInstructions,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render system prompt")
	}
	return buf.String(), nil
}

func toLLMMessages(messages []model.ConversationMessage) []interfaces.Message {
	out := make([]interfaces.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, interfaces.Message{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}
	return out
}

// appendToolTurns extends the history with the model's tool-call message
// and one tool message per result, preserving call order.
func appendToolTurns(history []interfaces.Message, calls []interfaces.ToolCall, results []*tool.Result) []interfaces.Message {
	out := make([]interfaces.Message, 0, len(history)+1+len(results))
	out = append(out, history...)
	out = append(out, interfaces.Message{
		Role:      "assistant",
		ToolCalls: calls,
	})
	for i, result := range results {
		content, err := json.Marshal(result)
		if err != nil {
			content = []byte(`{"action":"error"}`)
		}
		callID := ""
		if i < len(calls) {
			callID = calls[i].ID
		}
		out = append(out, interfaces.Message{
			Role:       "tool",
			Content:    string(content),
			ToolCallID: callID,
		})
	}
	return out
}

// foldToolError turns a dispatch failure into a textual result for the
// follow-up prompt. The conversation continues; the narration explains.
func foldToolError(name string, err error) *tool.Result {
	switch {
	case errors.Is(err, tool.ErrUnknownTool):
		return &tool.Result{
			Action:  "unknown_tool",
			Message: "De gevraagde actie \"" + name + "\" bestaat niet.",
		}
	case errors.Is(err, tool.ErrInvalidArguments), errors.Is(err, model.ErrInvalidDate):
		return &tool.Result{
			Action:  "invalid_arguments",
			Message: "De actie \"" + name + "\" kreeg ongeldige gegevens en is niet uitgevoerd.",
		}
	default:
		return &tool.Result{
			Action:  "tool_failed",
			Message: "De actie \"" + name + "\" is mislukt.",
		}
	}
}
