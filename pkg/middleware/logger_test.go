package middleware_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/function-api/pkg/middleware"
	"github.com/JaimeStill/function-api/pkg/router"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		handler   router.Handler
		path      string
		wantLevel string
		wantAttrs []string
	}{
		{
			name:      "success",
			handler:   okHandler,
			path:      "/hello",
			wantLevel: "level=INFO",
			wantAttrs: []string{"method=GET", "path=/hello", "status=200", "request_id="},
		},
		{
			name:      "not found",
			handler:   okHandler,
			path:      "/missing",
			wantLevel: "level=INFO",
			wantAttrs: []string{"status=404"},
		},
		{
			name:      "failure",
			handler:   failHandler,
			path:      "/hello",
			wantLevel: "level=ERROR",
			wantAttrs: []string{"status=500", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			dispatch(t, []router.Middleware{middleware.RequestID(), middleware.Logger(logger)}, tt.handler, get(tt.path))

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log %q missing %q", out, tt.wantLevel)
			}
			for _, attr := range tt.wantAttrs {
				if !strings.Contains(out, attr) {
					t.Errorf("log %q missing %q", out, attr)
				}
			}
		})
	}
}
