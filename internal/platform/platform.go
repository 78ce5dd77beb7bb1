// Package platform performs process initialization once at entry and returns
// the handle that every other component receives explicitly.
package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JaimeStill/function-api/internal/config"
	"github.com/JaimeStill/function-api/pkg/lifecycle"
	"github.com/JaimeStill/function-api/pkg/logging"
	"github.com/JaimeStill/function-api/pkg/telemetry"
)

// Platform holds the process-wide systems built during initialization.
type Platform struct {
	Config    *config.Config
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Telemetry *telemetry.Telemetry
}

// Option adjusts initialization.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput directs text and json log output to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// Initialize builds telemetry, logging, and lifecycle coordination from a
// finalized configuration. Call it exactly once at process entry.
func Initialize(ctx context.Context, cfg *config.Config, opts ...Option) (*Platform, error) {
	o := options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	tel, err := telemetry.New(ctx, &cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("telemetry init failed: %w", err)
	}

	logger := logging.New(&cfg.Logging, o.logOutput, tel.LoggerProvider).With(
		"version", cfg.Version,
	)

	return &Platform{
		Config:    cfg,
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Telemetry: tel,
	}, nil
}

// Bootstrap loads and finalizes configuration from path, then initializes the platform.
func Bootstrap(ctx context.Context, path string, opts ...Option) (*Platform, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config finalize failed: %w", err)
	}
	return Initialize(ctx, cfg, opts...)
}

// Shutdown flushes telemetry. It does not stop lifecycle hooks.
func (p *Platform) Shutdown(ctx context.Context) error {
	if err := p.Telemetry.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry shutdown failed: %w", err)
	}
	return nil
}
