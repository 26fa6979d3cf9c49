package commands

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maksimkurb/keen-log/src/internal/color"
	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/severity"
	"github.com/maksimkurb/keen-log/src/internal/sink"
)

// DemoCommand emits one event per severity using a built-in preset. It
// ignores the configuration file.
type DemoCommand struct {
	ctx        *AppContext
	preset     string
	dir        string
	webhookURL string
}

func newDemoCommand(ctx *AppContext) *cobra.Command {
	c := &DemoCommand{ctx: ctx}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit one event per severity with a built-in preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run()
		},
	}

	cmd.Flags().StringVar(&c.preset, "preset", "default", "Preset: default (console colors), file (per-severity files plus all.txt) or web (JSON webhooks)")
	cmd.Flags().StringVar(&c.dir, "dir", ".", "Directory for the file preset")
	cmd.Flags().StringVar(&c.webhookURL, "webhook-url", "", "Endpoint for the web preset")

	return cmd
}

// Run publishes the preset and emits the four events.
func (c *DemoCommand) Run() error {
	logger, err := newLogger(c.ctx, &config.Config{})
	if err != nil {
		return err
	}

	b := logger.New().TimeZone(severity.Local)

	switch c.preset {
	case "default":
		b.Select(severity.Info).Color(color.Cyan).Console(severity.ConsoleStdout).Backtrace(severity.BacktraceNone).
			Select(severity.Warn).Color(color.PaleOrange).Console(severity.ConsoleStderr).Backtrace(severity.BacktraceNone).
			Select(severity.Error).Color(color.Orange).Console(severity.ConsoleStderr).Backtrace(severity.BacktraceSimple).
			Select(severity.Fatal).Color(color.Red).Console(severity.ConsoleStderr).Backtrace(severity.BacktraceComplex)
	case "file":
		all := filepath.Join(c.dir, "all.txt")
		for _, sev := range severity.All {
			b.Select(sev).File(filepath.Join(c.dir, sev.String()+".txt")).File(all)
		}
	case "web":
		if c.webhookURL == "" {
			return fmt.Errorf("--webhook-url is required for the web preset")
		}
		req := sink.RequestTemplate{
			Method: http.MethodPost,
			URL:    c.webhookURL,
			Header: http.Header{"Content-Type": {"application/json"}},
		}
		for _, sev := range severity.All {
			b.Select(sev).WebhookJSON(req, fmt.Sprintf(`{"Type":"%s","Body":"{{line}}"}`, title(sev.String())))
		}
	default:
		return fmt.Errorf("unknown preset %q (expected default, file or web)", c.preset)
	}

	if err := b.Publish(); err != nil {
		return err
	}

	logger.Infof("This is some info")
	logger.Warnf("This is a warning")
	logger.Errorf("This is an error")
	logger.Fatalf("This is something fatal")
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
