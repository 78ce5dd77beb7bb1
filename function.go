// Package function exposes the API as a Google Cloud Function named "api".
//
// Importing the package only registers the entry point. The platform and
// router are built once, on the first invocation, and every later
// invocation reuses them. If that build fails, each invocation answers 500.
package function

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/JaimeStill/function-api/internal/api"
	"github.com/JaimeStill/function-api/internal/config"
	"github.com/JaimeStill/function-api/internal/platform"
	"github.com/JaimeStill/function-api/internal/shell"
	"github.com/JaimeStill/function-api/pkg/handlers"
)

// EntryPoint is the function name registered with the functions framework.
const EntryPoint = "api"

var entry = &lazyHandler{build: bootstrap}

func init() {
	functions.HTTP(EntryPoint, entry.ServeHTTP)
}

// NewHandler builds the sealed function router behind the net/http shell.
func NewHandler(p *platform.Platform) (http.Handler, error) {
	r, err := api.New(p)
	if err != nil {
		return nil, err
	}

	return shell.NewHTTPHandler(r, shell.HTTPOptions{
		MaxBodyBytes:   p.Config.Request.MaxBodyBytes(),
		TracerProvider: p.Telemetry.TracerProvider,
		MeterProvider:  p.Telemetry.MeterProvider,
	}, p.Logger), nil
}

func bootstrap(ctx context.Context) (http.Handler, error) {
	p, err := platform.Bootstrap(ctx, config.BaseConfigFile)
	if err != nil {
		return nil, err
	}
	return NewHandler(p)
}

// lazyHandler runs build once, on first use.
type lazyHandler struct {
	once    sync.Once
	build   func(context.Context) (http.Handler, error)
	handler http.Handler
	err     error
}

func (l *lazyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l.once.Do(func() {
		l.handler, l.err = l.build(context.Background())
		if l.err != nil {
			slog.Error("function init failed", "error", l.err)
		}
	})

	if l.err != nil {
		handlers.Write(w, handlers.Error(http.StatusInternalServerError, handlers.MessageInternalError))
		return
	}
	l.handler.ServeHTTP(w, r)
}
