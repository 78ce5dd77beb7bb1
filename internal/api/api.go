// Package api assembles the function's router: its middleware chain and routes.
package api

import (
	"fmt"

	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/pkg/middleware"
	"github.com/JaimeStill/function-api/pkg/router"
)

// New builds and seals the function router from the initialized platform.
func New(p *platform.Platform) (*router.Router, error) {
	logger := p.Logger.With("module", "api")
	r := router.New(logger)

	metrics, err := middleware.Metrics(p.Telemetry.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("metrics middleware: %w", err)
	}

	if err := r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Trace(p.Telemetry.TracerProvider),
		metrics,
		middleware.TrimSlash(),
		middleware.CORS(&p.Config.CORS, r.HasPath),
	); err != nil {
		return nil, err
	}

	if err := registerRoutes(r); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	r.Seal()
	return r, nil
}
