package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/service/llm"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/service/speech"
	"github.com/urfave/cli/v3"
)

// OpenAI holds CLI flags for the OpenAI-backed services: the chat model
// behind the orchestrator and the audio endpoints behind the voice
// transport. One key serves both.
type OpenAI struct {
	apiKey string
	model  string
	voice  string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("ONTSLAGWIJZER_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "Chat completion model",
			Value:       llm.DefaultModel,
			Sources:     cli.EnvVars("ONTSLAGWIJZER_OPENAI_MODEL"),
			Destination: &o.model,
		},
		&cli.StringFlag{
			Name:        "tts-voice",
			Usage:       "Voice for speech synthesis",
			Value:       "nova",
			Sources:     cli.EnvVars("ONTSLAGWIJZER_TTS_VOICE"),
			Destination: &o.voice,
		},
	}
}

// LogValue renders the configuration without exposing the key
func (o *OpenAI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", o.apiKey != ""),
		slog.String("model", o.model),
		slog.String("voice", o.voice),
	)
}

// Configure builds the LLM and speech clients
func (o *OpenAI) Configure() (*llm.Client, *speech.Client, error) {
	if o.apiKey == "" {
		return nil, nil, goerr.Wrap(ErrMissingAPIKey, "missing API key")
	}

	llmClient, err := llm.New(o.apiKey, llm.WithModel(o.model))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create LLM client")
	}

	speechClient, err := speech.New(o.apiKey, speech.WithVoice(o.voice))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create speech client")
	}

	return llmClient, speechClient, nil
}
