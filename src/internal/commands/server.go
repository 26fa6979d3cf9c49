package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maksimkurb/keen-log/src/internal/log"
	"github.com/maksimkurb/keen-log/src/internal/relay"
)

// ServeCommand runs the HTTP relay.
type ServeCommand struct {
	ctx      *AppContext
	bindAddr string
}

func newServeCommand(ctx *AppContext) *cobra.Command {
	c := &ServeCommand{ctx: ctx}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP relay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run()
		},
	}

	cmd.Flags().StringVarP(&c.bindAddr, "bind", "b", "127.0.0.1:8080", "Address to bind the HTTP server")

	return cmd
}

// Run serves until SIGINT/SIGTERM or a listener error.
func (c *ServeCommand) Run() error {
	// stdout belongs to dispatched events
	log.SetForceStdErr(true)

	cfg, err := loadAndValidateConfigOrFail(c.ctx.ConfigPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(c.ctx, cfg)
	if err != nil {
		return err
	}

	if c.ctx.ConfigPath != "" {
		log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	}

	server := relay.NewServer(logger, c.bindAddr)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
