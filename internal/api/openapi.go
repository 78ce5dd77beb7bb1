package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/function-api/internal/config"
	"github.com/JaimeStill/function-api/pkg/openapi"
	"github.com/JaimeStill/function-api/pkg/router"
)

// Spec builds an OpenAPI document for routes. Undocumented routes receive a
// minimal operation, and preflight OPTIONS routes are omitted.
func Spec(cfg *config.Config, routes []router.Route) (*openapi.Spec, error) {
	spec := openapi.NewSpec(cfg.OpenAPI.Title, cfg.Version, cfg.OpenAPI.Description)
	spec.AddServer(cfg.OpenAPI.Server)

	for _, route := range routes {
		if route.Method == http.MethodOptions {
			continue
		}
		op := route.OpenAPI
		if op == nil {
			op = &openapi.Operation{
				Responses: map[int]*openapi.Response{
					200: {Description: "OK"},
				},
			}
		}
		if err := spec.AddOperation(route.Pattern, route.Method, op); err != nil {
			return nil, fmt.Errorf("route %s %s: %w", route.Method, route.Pattern, err)
		}
	}

	return spec, nil
}
