package middleware_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/JaimeStill/function-api/pkg/router"
)

func dispatch(t interface{ Fatalf(string, ...any) }, mw []router.Middleware, handler router.Handler, req *router.Request) (*router.Response, error) {
	r := router.New(nil)
	if err := r.Use(mw...); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if handler != nil {
		if err := r.Register(http.MethodGet, "/hello", handler); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}
	return r.Dispatch(context.Background(), req)
}

func okHandler(ctx context.Context, req *router.Request) (*router.Response, error) {
	return router.NewResponse(http.StatusOK, []byte("ok")), nil
}

func failHandler(ctx context.Context, req *router.Request) (*router.Response, error) {
	return nil, errors.New("boom")
}

func get(path string) *router.Request {
	return &router.Request{Method: http.MethodGet, Path: path, Header: make(http.Header)}
}
