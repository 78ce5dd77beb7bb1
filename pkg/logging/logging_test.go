package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/function-api/pkg/logging"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

func TestNew_Formats(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf, nil)
		logger.Info("hello", "key", "value")

		if !strings.Contains(buf.String(), "msg=hello key=value") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf, nil)
		logger.Info("hello", "key", "value")

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if record["msg"] != "hello" || record["key"] != "value" {
			t.Errorf("record = %v", record)
		}
	})

	t.Run("otel", func(t *testing.T) {
		var buf bytes.Buffer
		provider := sdklog.NewLoggerProvider()
		logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatOTel, Name: "test"}, &buf, provider)
		logger.Info("hello")

		if buf.Len() != 0 {
			t.Errorf("otel format wrote %q to writer", buf.String())
		}
	})
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf, nil)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn record missing")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &logging.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText || cfg.Name != "function-api" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_LOG_LEVEL", "debug")
		t.Setenv("TEST_LOG_FORMAT", "json")

		cfg := &logging.Config{}
		if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.Level != logging.LevelDebug {
			t.Errorf("Level = %q, want debug", cfg.Level)
		}
		if cfg.Format != logging.FormatJSON {
			t.Errorf("Format = %q, want json", cfg.Format)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []logging.Config{
			{Level: "verbose"},
			{Format: "xml"},
		}
		for _, cfg := range tests {
			if err := cfg.Finalize(nil); err == nil {
				t.Errorf("Finalize(%+v) error = nil, want invalid", cfg)
			}
		}
	})
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText, Name: "base"}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON})

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Name != "base" {
		t.Errorf("Name = %q, want base", cfg.Name)
	}
}
