package shell_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/function-api/internal/shell"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestHTTPHandler(t *testing.T) {
	h := shell.NewHTTPHandler(newRouter(), shell.HTTPOptions{MaxBodyBytes: 16}, discard)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"hello", http.MethodGet, "/hello", "", 200, `{"message":"Hello from the API!"}`},
		{"wrong method", http.MethodPost, "/hello", "", 404, `{"error":"not found"}`},
		{"unknown", http.MethodGet, "/unknown", "", 404, `{"error":"not found"}`},
		{"failure", http.MethodGet, "/fail", "", 500, `{"error":"internal server error"}`},
		{"echo", http.MethodPost, "/echo?q=1", "payload", 200, "payload"},
		{"too large", http.MethodPost, "/echo", strings.Repeat("x", 17), 413, `{"error":"request entity too large"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHTTPHandler_Headers(t *testing.T) {
	h := shell.NewHTTPHandler(newRouter(), shell.HTTPOptions{}, discard)

	req := httptest.NewRequest(http.MethodPost, "/echo?q=search", strings.NewReader("x"))
	req.Header.Set("X-Test", "seen")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Query"); got != "search" {
		t.Errorf("X-Query = %q, want search", got)
	}
	if got := rec.Header().Get("X-Seen"); got != "seen" {
		t.Errorf("X-Seen = %q, want seen", got)
	}
	if got := rec.Header().Values("Set-Cookie"); len(got) != 2 {
		t.Errorf("Set-Cookie = %v, want 2 values", got)
	}
}

func TestHTTPHandler_Instrumented(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	h := shell.NewHTTPHandler(newRouter(), shell.HTTPOptions{TracerProvider: tp}, discard)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(recorder.Ended()) == 0 {
		t.Error("no span recorded by otelhttp")
	}
}
