package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid configuration installs a logger", func(t *testing.T) {
		var cfg config.Logger
		cfg.SetForTest("debug", "json", "stderr")

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("file output is created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		var cfg config.Logger
		cfg.SetForTest("info", "console", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()

		_, err = os.Stat(path)
		gt.NoError(t, err)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		var cfg config.Logger
		cfg.SetForTest("loud", "console", "stdout")

		_, err := cfg.Configure()
		gt.Value(t, errors.Is(err, config.ErrInvalidLogLevel)).Equal(true)
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		var cfg config.Logger
		cfg.SetForTest("info", "xml", "stdout")

		_, err := cfg.Configure()
		gt.Value(t, errors.Is(err, config.ErrInvalidLogFormat)).Equal(true)
	})
}

func TestAppConfigLoad(t *testing.T) {
	t.Run("full file parses into options", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[guard]
keywords = ["noodgeval"]
referral = "Bel direct 112."

[prompt]
extra_instructions = "Verwijs naar het Juridisch Loket in Utrecht."

[transcript]
webhook_url = "https://example.com/hook"
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()

		var cfg config.AppConfig
		cfg.SetPathForTest(path)
		gt.NoError(t, cfg.Load()).Required()

		gt.Array(t, cfg.Guard.Keywords).Length(1)
		gt.Value(t, cfg.Guard.Referral).Equal("Bel direct 112.")
		gt.Value(t, cfg.Transcript.WebhookURL).Equal("https://example.com/hook")
		gt.Array(t, cfg.Options()).Length(2)
	})

	t.Run("no path means defaults", func(t *testing.T) {
		var cfg config.AppConfig
		gt.NoError(t, cfg.Load())
		gt.Array(t, cfg.Options()).Length(0)
	})

	t.Run("missing file is reported", func(t *testing.T) {
		var cfg config.AppConfig
		cfg.SetPathForTest(filepath.Join(t.TempDir(), "nope.toml"))

		err := cfg.Load()
		gt.Value(t, errors.Is(err, config.ErrConfigNotFound)).Equal(true)
	})

	t.Run("malformed TOML is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		gt.NoError(t, os.WriteFile(path, []byte("[guard\nkeywords ="), 0o644)).Required()

		var cfg config.AppConfig
		cfg.SetPathForTest(path)

		err := cfg.Load()
		gt.Value(t, errors.Is(err, config.ErrInvalidConfig)).Equal(true)
	})
}

func TestRepositoryConfigure(t *testing.T) {
	t.Run("memory backend needs no project", func(t *testing.T) {
		var cfg config.Repository
		cfg.SetForTest("memory", "", "")

		repo, err := cfg.Configure(context.Background())
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires a project ID", func(t *testing.T) {
		var cfg config.Repository
		cfg.SetForTest("firestore", "", "")

		_, err := cfg.Configure(context.Background())
		gt.Value(t, errors.Is(err, config.ErrMissingProjectID)).Equal(true)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		var cfg config.Repository
		cfg.SetForTest("postgres", "", "")

		_, err := cfg.Configure(context.Background())
		gt.Value(t, errors.Is(err, config.ErrInvalidBackend)).Equal(true)
	})
}
