package shell

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/function-api/pkg/handlers"
	"github.com/JaimeStill/function-api/pkg/router"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// HTTPOptions configures the net/http shell.
type HTTPOptions struct {
	// MaxBodyBytes bounds the request body. Zero disables the limit.
	MaxBodyBytes int64

	// TracerProvider and MeterProvider enable otelhttp instrumentation when
	// TracerProvider is non-nil.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

type httpShell struct {
	router *router.Router
	opts   HTTPOptions
	logger *slog.Logger
}

// NewHTTPHandler returns an http.Handler that serves every request through r.
func NewHTTPHandler(r *router.Router, opts HTTPOptions, logger *slog.Logger) http.Handler {
	var h http.Handler = &httpShell{
		router: r,
		opts:   opts,
		logger: logger,
	}

	if opts.TracerProvider != nil {
		instrument := []otelhttp.Option{
			otelhttp.WithTracerProvider(opts.TracerProvider),
			otelhttp.WithPropagators(propagation.TraceContext{}),
		}
		if opts.MeterProvider != nil {
			instrument = append(instrument, otelhttp.WithMeterProvider(opts.MeterProvider))
		}
		h = otelhttp.NewHandler(h, "function-api", instrument...)
	}

	return h
}

func (s *httpShell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := s.read(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.Write(w, handlers.Error(http.StatusRequestEntityTooLarge, handlers.MessageEntityTooLarge))
			return
		}
		s.logger.ErrorContext(r.Context(), "read request body", "error", err)
		handlers.Write(w, handlers.Error(http.StatusInternalServerError, handlers.MessageInternalError))
		return
	}

	handlers.Write(w, Serve(r.Context(), s.router, req))
}

func (s *httpShell) read(w http.ResponseWriter, r *http.Request) (*router.Request, error) {
	body := r.Body
	if s.opts.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	return &router.Request{
		Method:     r.Method,
		Path:       r.URL.Path,
		Query:      r.URL.Query(),
		Header:     r.Header.Clone(),
		Body:       data,
		RemoteAddr: r.RemoteAddr,
	}, nil
}
