package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maksimkurb/keen-log/src/internal/config"
	"github.com/maksimkurb/keen-log/src/internal/log"
)

// CheckCommand validates the configuration file and prints the effective
// configuration as TOML.
type CheckCommand struct {
	ctx *AppContext
}

func newCheckCommand(ctx *AppContext) *cobra.Command {
	c := &CheckCommand{ctx: ctx}

	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run()
		},
	}
}

// Run performs the check.
func (c *CheckCommand) Run() error {
	cfg, err := loadAndValidateConfigOrFail(c.ctx.ConfigPath)
	if err != nil {
		return err
	}

	mode, err := cfg.GetColorMode()
	if err != nil {
		return err
	}

	store := config.NewStore(nil)
	if err := cfg.Build(store); err != nil {
		return fmt.Errorf("failed to apply configuration: %w", err)
	}
	effective, err := store.Read()
	if err != nil {
		return err
	}

	out := config.FromConfiguration(effective)
	out.ColorMode = mode.String()
	out.WebhookTimeoutSec = int(cfg.GetWebhookTimeout().Seconds())

	buf, err := out.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if c.ctx.ConfigPath != "" {
		log.Infof("Configuration %s is valid", c.ctx.ConfigPath)
	} else {
		log.Infof("No configuration file given, showing built-in defaults")
	}

	_, err = c.ctx.stdout().Write(buf.Bytes())
	return err
}
