package shell_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/function-api/internal/shell"
	"github.com/JaimeStill/function-api/pkg/middleware"
	"github.com/JaimeStill/function-api/pkg/router"
)

func TestServe(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"hello", http.MethodGet, "/hello", 200, `{"message":"Hello from the API!"}`},
		{"not found", http.MethodGet, "/nope", 404, `{"error":"not found"}`},
		{"failure", http.MethodGet, "/fail", 500, `{"error":"internal server error"}`},
		{"panic", http.MethodGet, "/panic", 500, `{"error":"internal server error"}`},
	}

	r := newRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := shell.Serve(context.Background(), r, &router.Request{Method: tt.method, Path: tt.path})

			if resp.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if string(resp.Body) != tt.wantBody {
				t.Errorf("body = %q, want %q", resp.Body, tt.wantBody)
			}
			if strings.Contains(string(resp.Body), "hunter2") {
				t.Error("handler error detail leaked into response")
			}
		})
	}
}

func TestServe_ErrorEchoesRequestID(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/nope", "/fail"} {
		t.Run(path, func(t *testing.T) {
			req := &router.Request{Method: http.MethodGet, Path: path, Header: make(http.Header)}
			req.Header.Set(middleware.HeaderRequestID, "trace-42")

			resp := shell.Serve(context.Background(), r, req)

			if got := resp.Header.Get(middleware.HeaderRequestID); got != "trace-42" {
				t.Errorf("X-Request-ID = %q, want trace-42", got)
			}
		})
	}

	resp := shell.Serve(context.Background(), r, &router.Request{Method: http.MethodGet, Path: "/nope"})
	if got := resp.Header.Get(middleware.HeaderRequestID); got != "" {
		t.Errorf("X-Request-ID = %q, want empty without caller id", got)
	}
}
