package middleware

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/JaimeStill/function-api/pkg/router"
)

// CORS returns middleware that sets Cross-Origin Resource Sharing headers for
// allowed origins. Preflight OPTIONS requests from an allowed origin for a
// path that hasPath accepts are answered directly; preflights for any other
// path fall through to the route table and end as not found.
func CORS(cfg *CORSConfig, hasPath func(path string) bool) router.Middleware {
	return func(next router.Handler) router.Handler {
		return func(ctx context.Context, req *router.Request) (*router.Response, error) {
			if !cfg.IsEnabled() || len(cfg.Origins) == 0 {
				return next(ctx, req)
			}

			origin := req.Header.Get("Origin")
			if origin == "" || !slices.Contains(cfg.Origins, origin) {
				return next(ctx, req)
			}

			if req.Method == http.MethodOptions && hasPath(req.Path) {
				resp := router.NewResponse(http.StatusOK, nil)
				applyCORS(resp.Header, cfg, origin)
				return resp, nil
			}

			resp, err := next(ctx, req)
			if err != nil {
				return resp, err
			}
			applyCORS(resp.Header, cfg, origin)
			return resp, nil
		}
	}
}

func applyCORS(h http.Header, cfg *CORSConfig, origin string) {
	h.Set("Access-Control-Allow-Origin", origin)
	h.Add("Vary", "Origin")

	if len(cfg.AllowedMethods) > 0 {
		h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
	}
	if len(cfg.AllowedHeaders) > 0 {
		h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
	}
	if cfg.AllowsCredentials() {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if cfg.MaxAge > 0 {
		h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
	}
}
