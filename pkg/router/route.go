package router

import (
	"strings"

	"github.com/JaimeStill/function-api/pkg/openapi"
)

// Route binds an HTTP method and exact path to a handler.
// OpenAPI optionally documents the route; it does not affect dispatch.
type Route struct {
	Method  string
	Pattern string
	Handler Handler
	OpenAPI *openapi.Operation
}

func (r Route) key() string {
	return r.Method + " " + r.Pattern
}

func (r Route) validate() error {
	if r.Method == "" || r.Handler == nil {
		return ErrInvalidRoute
	}
	if !strings.HasPrefix(r.Pattern, "/") {
		return ErrInvalidRoute
	}
	return nil
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups and are flattened at registration.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

func (g Group) flatten(parentPrefix string) []Route {
	prefix := parentPrefix + g.Prefix
	var routes []Route
	for _, route := range g.Routes {
		route.Pattern = prefix + route.Pattern
		routes = append(routes, route)
	}
	for _, child := range g.Children {
		routes = append(routes, child.flatten(prefix)...)
	}
	return routes
}
