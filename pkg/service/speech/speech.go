// Package speech adapts the OpenAI audio API to the voice transport:
// Whisper for transcription and the speech endpoint for synthesis.
package speech

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

var _ interfaces.SpeechClient = &Client{}

type Option func(*Client)

func WithVoice(voice string) Option {
	return func(c *Client) {
		c.voice = openai.SpeechVoice(voice)
	}
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("OpenAI API key is required")
	}

	c := &Client{
		client: openai.NewClient(apiKey),
		voice:  openai.VoiceNova,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Transcribe converts recorded audio into text via Whisper. The file name
// only carries the container format hint; the audio itself comes from the
// reader.
func (c *Client) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "voice.webm",
		Reader:   bytes.NewReader(audio),
		Language: language,
	})
	if err != nil {
		return "", classifyError(err)
	}
	return resp.Text, nil
}

// Synthesize converts text into an MP3 audio stream
func (c *Client) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: c.voice,
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return resp, nil
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			return goerr.Wrap(model.ErrRateLimited, "OpenAI rate limit", goerr.V("status", apiErr.HTTPStatusCode))
		}
		return goerr.Wrap(model.ErrUpstream, "OpenAI audio API error",
			goerr.V("status", apiErr.HTTPStatusCode), goerr.V("message", apiErr.Message))
	}
	return goerr.Wrap(model.ErrUpstream, "OpenAI audio request failed", goerr.V("cause", err.Error()))
}
