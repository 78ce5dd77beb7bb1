package middleware

import (
	"context"

	"github.com/JaimeStill/function-api/pkg/router"
	"github.com/google/uuid"
)

// HeaderRequestID carries the per-invocation correlation id.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns middleware that assigns each invocation a correlation id.
// An incoming X-Request-ID header is reused; otherwise a random UUID is
// generated. The id is stored in the context for logs and spans. Only a
// caller-supplied id is echoed on the response, so identical requests
// produce identical responses.
func RequestID() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			incoming := req.Header.Get(HeaderRequestID)
			id := incoming
			if id == "" {
				id = uuid.NewString()
			}

			resp, err := next(context.WithValue(ctx, requestIDKey{}, id), req)
			if resp != nil && incoming != "" {
				resp.Header.Set(HeaderRequestID, incoming)
			}
			return resp, err
		}
	}
}

// RequestIDFromContext returns the correlation id assigned by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
