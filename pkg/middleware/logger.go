// Package middleware provides the ordered steps a router runs around every dispatch.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/function-api/pkg/router"
)

// Logger returns middleware that logs one record per dispatch after the
// handler completes. Unmatched requests log at INFO with status 404; handler
// failures log at ERROR with status 500 and the underlying cause. This is the
// only place a handler failure is logged.
func Logger(logger *slog.Logger) router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"method", req.Method,
				"path", req.Path,
				"status", statusOf(resp, err),
				"duration", time.Since(start),
			}
			if id := RequestIDFromContext(ctx); id != "" {
				attrs = append(attrs, "request_id", id)
			}

			switch {
			case err == nil, router.IsNotFound(err):
				logger.InfoContext(ctx, "request", attrs...)
			default:
				logger.ErrorContext(ctx, "request", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}

func statusOf(resp *router.Response, err error) int {
	switch {
	case err == nil && resp != nil:
		return resp.Status
	case router.IsNotFound(err):
		return 404
	default:
		return 500
	}
}
