package router

import (
	"errors"
	"fmt"
)

// Dispatch and registration errors.
var (
	// ErrNotFound indicates no route matches the request method and path.
	ErrNotFound = errors.New("router: route not found")

	// ErrInvalidRoute indicates a route with an empty method, a pattern
	// without a leading slash, or a nil handler.
	ErrInvalidRoute = errors.New("router: invalid route")

	// ErrSealed indicates a registration attempt after the router began dispatching.
	ErrSealed = errors.New("router: registration after seal")

	// ErrHandlerPanic indicates a handler panicked during dispatch.
	ErrHandlerPanic = errors.New("router: handler panic")

	// ErrNilResponse indicates a handler returned neither a response nor an error.
	ErrNilResponse = errors.New("router: handler returned nil response")

	// ErrInvalidStatus indicates a handler returned a status outside 100-599.
	ErrInvalidStatus = errors.New("router: invalid response status")
)

// HandlerError wraps a failure raised by a route handler.
// The wrapped cause is for logs only and must not reach the response body.
type HandlerError struct {
	Method  string
	Pattern string
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("router: handler %s %s: %v", e.Method, e.Pattern, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err signals an unmatched request.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsHandlerFailure reports whether err originated in a route handler.
func IsHandlerFailure(err error) bool {
	var he *HandlerError
	return errors.As(err, &he)
}
