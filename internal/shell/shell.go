// Package shell adapts hosting platforms to the router. Each shell turns one
// platform invocation into a router.Request, dispatches it, and turns the
// result (or the dispatch error) back into exactly one platform response.
package shell

import (
	"context"

	"github.com/JaimeStill/function-api/pkg/handlers"
	"github.com/JaimeStill/function-api/pkg/middleware"
	"github.com/JaimeStill/function-api/pkg/router"
)

// Serve dispatches req and translates dispatch errors into opaque responses:
// NotFound becomes 404 and any other failure becomes 500. Error responses
// echo a caller-supplied X-Request-ID the same way successful ones do.
// Failures are logged by the router's Logger middleware, not here.
func Serve(ctx context.Context, r *router.Router, req *router.Request) *router.Response {
	resp, err := r.Dispatch(ctx, req)
	if err == nil {
		return resp
	}

	resp = handlers.ErrorResponse(err)
	if req != nil && req.Header != nil {
		if id := req.Header.Get(middleware.HeaderRequestID); id != "" {
			resp.Header.Set(middleware.HeaderRequestID, id)
		}
	}
	return resp
}
