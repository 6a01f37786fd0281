package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig is the optional TOML application configuration: crisis guard
// tuning, extra prompt instructions and the transcript webhook. All
// sections are optional; an absent file means defaults everywhere.
type AppConfig struct {
	path string

	Guard      GuardConfig      `toml:"guard"`
	Prompt     PromptConfig     `toml:"prompt"`
	Transcript TranscriptConfig `toml:"transcript"`
}

// GuardConfig tunes the crisis pre-filter
type GuardConfig struct {
	Keywords []string `toml:"keywords"`
	Referral string   `toml:"referral"`
}

// PromptConfig appends deployment-specific instructions to the system
// prompt, e.g. organization contact details.
type PromptConfig struct {
	ExtraInstructions string `toml:"extra_instructions"`
}

// TranscriptConfig points transcript forwarding at a webhook
type TranscriptConfig struct {
	WebhookURL string `toml:"webhook_url"`
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the TOML application configuration file",
			Sources:     cli.EnvVars("ONTSLAGWIJZER_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Load reads and parses the configuration file when a path is set
func (a *AppConfig) Load() error {
	if a.path == "" {
		return nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goerr.Wrap(ErrConfigNotFound, "no such file", goerr.V("path", a.path))
		}
		return goerr.Wrap(err, "failed to read configuration file", goerr.V("path", a.path))
	}

	if err := toml.Unmarshal(data, a); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "failed to parse TOML", goerr.V("path", a.path), goerr.V("cause", err.Error()))
	}

	return nil
}

// Options translates the configuration into use case options
func (a *AppConfig) Options() []usecase.Option {
	var chatOpts []usecase.ChatOption

	if len(a.Guard.Keywords) > 0 || a.Guard.Referral != "" {
		guard := usecase.NewCrisisGuard()
		if len(a.Guard.Keywords) > 0 {
			guard = guard.WithKeywords(a.Guard.Keywords)
		}
		guard = guard.WithReferral(a.Guard.Referral)
		chatOpts = append(chatOpts, usecase.WithGuard(guard))
	}

	if a.Prompt.ExtraInstructions != "" {
		chatOpts = append(chatOpts, usecase.WithExtraInstructions(a.Prompt.ExtraInstructions))
	}

	var opts []usecase.Option
	if len(chatOpts) > 0 {
		opts = append(opts, usecase.WithChatOptions(chatOpts...))
	}
	if a.Transcript.WebhookURL != "" {
		opts = append(opts, usecase.WithTranscriptWebhook(a.Transcript.WebhookURL))
	}
	return opts
}
