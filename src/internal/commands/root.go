package commands

import (
	"github.com/spf13/cobra"

	"github.com/maksimkurb/keen-log/src/internal/log"
)

// NewRootCommand builds the keen-log command tree.
func NewRootCommand(ctx *AppContext, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "keen-log",
		Short:         "Severity-leveled log dispatcher",
		Long:          "keen-log dispatches log events to console, file and webhook sinks configured per severity.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbose(ctx.Verbose)
		},
	}

	root.PersistentFlags().StringVarP(&ctx.ConfigPath, "config", "c", "", "Path to TOML configuration file (built-in defaults when empty)")
	root.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newEmitCommand(ctx),
		newCheckCommand(ctx),
		newDemoCommand(ctx),
		newServeCommand(ctx),
	)

	return root
}
