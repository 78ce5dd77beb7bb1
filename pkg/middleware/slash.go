package middleware

import (
	"context"
	"strings"

	"github.com/JaimeStill/function-api/pkg/router"
)

// TrimSlash returns middleware that strips a trailing slash from the request
// path before matching, so /hello/ dispatches as /hello. The root path "/"
// is preserved.
func TrimSlash() router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			if len(req.Path) > 1 && strings.HasSuffix(req.Path, "/") {
				req.Path = strings.TrimRight(req.Path, "/")
				if req.Path == "" {
					req.Path = "/"
				}
			}
			return next(ctx, req)
		}
	}
}
