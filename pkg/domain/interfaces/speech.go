package interfaces

import (
	"context"
	"io"
)

// SpeechClient is the speech capability for the voice transport: recorded
// audio in, text out, and text in, synthesized audio out.
type SpeechClient interface {
	// Transcribe converts a recorded audio buffer into text. The language
	// hint is a BCP-47 primary subtag (e.g. "nl").
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)

	// Synthesize converts text into an audio stream. The caller owns the
	// returned reader and must close it.
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}
