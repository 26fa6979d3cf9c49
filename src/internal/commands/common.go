package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/dispatch"
	"github.com/maksimkurb/keen-log/src/internal/sink"
	"github.com/maksimkurb/keen-log/src/keenlog"
)

// AppContext carries global flags and the streams commands write to.
type AppContext struct {
	ConfigPath string
	Verbose    bool

	Stdout io.Writer
	Stderr io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}
	return os.Stdout
}

func (ctx *AppContext) stderr() io.Writer {
	if ctx.Stderr != nil {
		return ctx.Stderr
	}
	return os.Stderr
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// An empty path yields an empty configuration, i.e. the built-in defaults.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// newLogger publishes cfg into a fresh store and returns a logger writing to
// the context's streams.
func newLogger(ctx *AppContext, cfg *config.Config) (*keenlog.Logger, error) {
	mode, err := cfg.GetColorMode()
	if err != nil {
		return nil, err
	}

	store := config.NewStore(nil)
	if err := cfg.Build(store); err != nil {
		return nil, fmt.Errorf("failed to apply configuration: %w", err)
	}

	return keenlog.NewLogger(store,
		dispatch.WithStdout(ctx.stdout()),
		dispatch.WithStderr(ctx.stderr()),
		dispatch.WithColorMode(mode),
		dispatch.WithSender(sink.NewHTTPSender(nil, cfg.GetWebhookTimeout())),
	), nil
}
