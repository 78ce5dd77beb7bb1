package shell_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/function-api/pkg/handlers"
	"github.com/JaimeStill/function-api/pkg/router"
)

var discard = slog.New(slog.DiscardHandler)

type message struct {
	Message string `json:"message"`
}

func newRouter() *router.Router {
	r := router.New(discard)

	r.Register(http.MethodGet, "/hello", func(ctx context.Context, req *router.Request) (*router.Response, error) {
		return handlers.JSON(http.StatusOK, message{Message: "Hello from the API!"})
	})
	r.Register(http.MethodPost, "/echo", func(ctx context.Context, req *router.Request) (*router.Response, error) {
		resp := router.NewResponse(http.StatusOK, req.Body)
		resp.Header.Set("X-Query", req.Query.Get("q"))
		resp.Header.Set("X-Seen", req.Header.Get("X-Test"))
		resp.Header.Add("Set-Cookie", "a=1")
		resp.Header.Add("Set-Cookie", "b=2")
		return resp, nil
	})
	r.Register(http.MethodGet, "/fail", func(ctx context.Context, req *router.Request) (*router.Response, error) {
		return nil, errors.New("database password is hunter2")
	})
	r.Register(http.MethodGet, "/panic", func(ctx context.Context, req *router.Request) (*router.Response, error) {
		panic("boom")
	})

	r.Seal()
	return r
}
