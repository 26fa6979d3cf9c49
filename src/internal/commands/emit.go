package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maksimkurb/keen-log/src/internal/severity"
)

// EmitCommand dispatches one event.
type EmitCommand struct {
	ctx      *AppContext
	severity string
	message  string
}

func newEmitCommand(ctx *AppContext) *cobra.Command {
	c := &EmitCommand{ctx: ctx}

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Dispatch one event through the configured sinks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.message == "" {
				c.message = strings.Join(args, " ")
			}
			return c.Run()
		},
	}

	cmd.Flags().StringVarP(&c.severity, "severity", "s", "info", "Severity: info, warn, error or fatal")
	cmd.Flags().StringVarP(&c.message, "message", "m", "", "Message text (defaults to the positional arguments)")

	return cmd
}

// Run dispatches the event.
func (c *EmitCommand) Run() error {
	sev, err := severity.Parse(c.severity)
	if err != nil {
		return err
	}
	if c.message == "" {
		return fmt.Errorf("message is required")
	}

	cfg, err := loadAndValidateConfigOrFail(c.ctx.ConfigPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(c.ctx, cfg)
	if err != nil {
		return err
	}

	logger.Emit(sev, c.message)
	return nil
}
