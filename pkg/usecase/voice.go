package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
)

// spokenRuneBudget bounds the synthesized reply length. Long structured
// detail stays in the textual transcript but is not fully vocalized.
const spokenRuneBudget = 600

// transcriptionLanguage is the source language hint for Whisper
const transcriptionLanguage = "nl"

// VoiceUseCase frames the chat orchestrator for the voice transport:
// transcription in front, synthesis behind, and a non-streamed turn shape
// in between.
type VoiceUseCase struct {
	chat   *ChatUseCase
	speech interfaces.SpeechClient
}

func NewVoiceUseCase(chat *ChatUseCase, speech interfaces.SpeechClient) *VoiceUseCase {
	return &VoiceUseCase{
		chat:   chat,
		speech: speech,
	}
}

// Transcribe converts a recorded audio buffer into text
func (uc *VoiceUseCase) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", goerr.Wrap(ErrInvalidInput, "audio buffer is empty")
	}
	return uc.speech.Transcribe(ctx, audio, transcriptionLanguage)
}

// Chat runs one turn and collects the stream into a single JSON-shaped
// report. The voice client does not consume incremental chunks.
func (uc *VoiceUseCase) Chat(ctx context.Context, input *TurnInput) (*TurnReport, error) {
	var collector nullWriter
	report, err := uc.chat.Converse(ctx, input, &collector)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Speak synthesizes the spoken form of a reply, truncated to the spoken
// budget at a sentence boundary.
func (uc *VoiceUseCase) Speak(ctx context.Context, text string) (io.ReadCloser, error) {
	if text == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "text is empty")
	}
	return uc.speech.Synthesize(ctx, TruncateSpoken(text))
}

// nullWriter discards stream chunks; the voice turn reads the final report
// instead, including the collected progress messages.
type nullWriter struct{}

func (nullWriter) WriteNavigate(string) error { return nil }
func (nullWriter) WriteProgress(string) error { return nil }
func (nullWriter) WriteText(string) error     { return nil }

// TruncateSpoken caps text at the spoken budget, cutting at the last
// sentence end within the budget when one exists.
func TruncateSpoken(text string) string {
	runes := []rune(text)
	if len(runes) <= spokenRuneBudget {
		return text
	}

	truncated := runes[:spokenRuneBudget]
	if idx := lastSentenceEnd(truncated); idx > 0 {
		return strings.TrimSpace(string(truncated[:idx+1]))
	}
	return strings.TrimSpace(string(truncated))
}

func lastSentenceEnd(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}
