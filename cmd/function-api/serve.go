package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the standalone HTTP server",
		Long: `Serve runs the function behind a long-lived HTTP server with /healthz and
/readyz probes until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	p, err := platform.Bootstrap(ctx, configPath)
	if err != nil {
		return err
	}

	srv, err := NewServer(p)
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	return srv.Shutdown(p.Config.ShutdownTimeoutDuration())
}
