package router

import (
	"context"
	"net/http"
	"net/url"
)

// Request describes one inbound invocation independent of the hosting platform.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Header     http.Header
	Body       []byte
	RemoteAddr string
}

// Response describes the result of one invocation.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// NewResponse creates a response with an initialized header map.
func NewResponse(status int, body []byte) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
		Body:   body,
	}
}

// Handler produces a Response for a matched Request.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Middleware wraps a Handler with a step that runs before and after it.
type Middleware func(next Handler) Handler
