// Package router dispatches platform-neutral requests to registered handlers.
//
// Routes and middleware are registered during startup. The first call to
// Dispatch (or an explicit Seal) freezes the route table, after which
// dispatch reads it without locking.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
)

// Router holds the route table and the ordered middleware chain.
type Router struct {
	mu         sync.Mutex
	sealed     atomic.Bool
	table      map[string]Route
	paths      map[string]int
	order      []string
	middleware []Middleware
	handler    Handler
	logger     *slog.Logger
}

// New creates an empty router. Duplicate registrations are logged to logger;
// a nil logger discards them.
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{
		table:  make(map[string]Route),
		paths:  make(map[string]int),
		logger: logger,
	}
}

// Register adds a route for method and pattern.
// A later registration for the same pair replaces the earlier one.
func (r *Router) Register(method, pattern string, handler Handler) error {
	return r.RegisterRoute(Route{Method: method, Pattern: pattern, Handler: handler})
}

// RegisterRoute adds a route to the table.
func (r *Router) RegisterRoute(route Route) error {
	if err := route.validate(); err != nil {
		return fmt.Errorf("%w: %q %q", err, route.Method, route.Pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}

	key := route.key()
	if _, exists := r.table[key]; exists {
		r.logger.Warn("route overwritten", "method", route.Method, "pattern", route.Pattern)
	} else {
		r.order = append(r.order, key)
		r.paths[route.Pattern]++
	}
	r.table[key] = route
	return nil
}

// RegisterGroup flattens group and registers each of its routes.
func (r *Router) RegisterGroup(group Group) error {
	for _, route := range group.flatten("") {
		if err := r.RegisterRoute(route); err != nil {
			return err
		}
	}
	return nil
}

// Use appends middleware to the chain. The first middleware added is the outermost.
func (r *Router) Use(mw ...Middleware) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}
	r.middleware = append(r.middleware, mw...)
	return nil
}

// Seal freezes the route table and builds the middleware chain.
func (r *Router) Seal() {
	if r.sealed.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return
	}

	h := r.match
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	r.handler = h
	r.sealed.Store(true)

	r.logger.Debug("router sealed", "routes", len(r.order), "middleware", len(r.middleware))
}

// Sealed reports whether the router has stopped accepting registrations.
func (r *Router) Sealed() bool {
	return r.sealed.Load()
}

// HasPath reports whether any route, of any method, is registered for path.
func (r *Router) HasPath(path string) bool {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return r.paths[path] > 0
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	routes := make([]Route, 0, len(r.order))
	for _, key := range r.order {
		routes = append(routes, r.table[key])
	}
	return routes
}

// Dispatch runs req through the middleware chain and the matching handler.
// Unmatched requests return an error wrapping ErrNotFound; handler failures
// return a *HandlerError.
func (r *Router) Dispatch(ctx context.Context, req *Request) (resp *Response, err error) {
	r.Seal()

	if req == nil {
		req = &Request{}
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = &HandlerError{
				Method:  req.Method,
				Pattern: req.Path,
				Err:     fmt.Errorf("%w: %v", ErrHandlerPanic, rec),
			}
		}
	}()

	return r.handler(ctx, req)
}

func (r *Router) match(ctx context.Context, req *Request) (*Response, error) {
	route, ok := r.table[req.Method+" "+req.Path]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, req.Method, req.Path)
	}
	return invoke(ctx, route, req)
}

func invoke(ctx context.Context, route Route, req *Request) (resp *Response, err error) {
	fail := func(cause error) (*Response, error) {
		return nil, &HandlerError{Method: route.Method, Pattern: route.Pattern, Err: cause}
	}

	defer func() {
		if rec := recover(); rec != nil {
			resp, err = fail(fmt.Errorf("%w: %v", ErrHandlerPanic, rec))
		}
	}()

	resp, err = route.Handler(ctx, req)
	if err != nil {
		return fail(err)
	}
	if resp == nil {
		return fail(ErrNilResponse)
	}
	if resp.Status < 100 || resp.Status > 599 {
		return fail(fmt.Errorf("%w: %d", ErrInvalidStatus, resp.Status))
	}
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	return resp, nil
}
