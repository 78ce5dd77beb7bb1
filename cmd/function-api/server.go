package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/internal/server"
	"github.com/JaimeStill/function-api/internal/shell"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	platform *platform.Platform
	http     server.System
}

// NewServer builds the function router and the HTTP server around it.
func NewServer(p *platform.Platform) (*Server, error) {
	r, err := api.New(p)
	if err != nil {
		return nil, fmt.Errorf("api init failed: %w", err)
	}

	handler := shell.NewHTTPHandler(r, shell.HTTPOptions{
		MaxBodyBytes:   p.Config.Request.MaxBodyBytes(),
		TracerProvider: p.Telemetry.TracerProvider,
		MeterProvider:  p.Telemetry.MeterProvider,
	}, p.Logger)

	p.Logger.Info(
		"server initialized",
		"addr", p.Config.Server.Addr(),
		"routes", len(r.Routes()),
	)

	return &Server{
		platform: p,
		http:     server.New(&p.Config.Server, handler, p.Lifecycle, p.Logger),
	}, nil
}

// Start begins all subsystems and returns when they are listening.
func (s *Server) Start() error {
	s.platform.Logger.Info("starting service")

	if err := s.http.Start(s.platform.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.platform.Lifecycle.WaitForStartup()
		s.platform.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout, then flushes telemetry.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.platform.Logger.Info("initiating shutdown")
	lcErr := s.platform.Lifecycle.Shutdown(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := errors.Join(lcErr, s.platform.Shutdown(ctx)); err != nil {
		return err
	}

	s.platform.Logger.Info("service stopped gracefully")
	return nil
}
