// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/JaimeStill/function-api/pkg/logging"
	"github.com/JaimeStill/function-api/pkg/middleware"
	"github.com/JaimeStill/function-api/pkg/openapi"
	"github.com/JaimeStill/function-api/pkg/telemetry"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	// EnvServiceShutdownTimeout overrides the service shutdown timeout.
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"

	// EnvServiceVersion overrides the reported service version.
	EnvServiceVersion = "SERVICE_VERSION"
)

var loggingEnv = &logging.Env{
	Level:  "LOG_LEVEL",
	Format: "LOG_FORMAT",
	Name:   "LOG_NAME",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "OPENAPI_TITLE",
	Description: "OPENAPI_DESCRIPTION",
	Server:      "OPENAPI_SERVER",
}

var telemetryEnv = &telemetry.Env{
	Enabled:     "TELEMETRY_ENABLED",
	Endpoint:    "OTEL_EXPORTER_OTLP_ENDPOINT",
	Insecure:    "TELEMETRY_INSECURE",
	ServiceName: "OTEL_SERVICE_NAME",
}

// Config represents the root service configuration.
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Request         RequestConfig         `toml:"request"`
	Logging         logging.Config        `toml:"logging"`
	CORS            middleware.CORSConfig `toml:"cors"`
	OpenAPI         openapi.Config        `toml:"openapi"`
	Telemetry       telemetry.Config      `toml:"telemetry"`
	ShutdownTimeout string                `toml:"shutdown_timeout"`
	Version         string                `toml:"version"`
}

// Env returns the active overlay environment name.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads BaseConfigFile from the working directory and applies any overlay.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile reads the configuration at path and applies the overlay for
// SERVICE_ENV found beside it. A missing base file yields an empty
// configuration so deployments without one run on defaults and environment.
func LoadFile(path string) (*Config, error) {
	cfg, err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Request.Finalize(); err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Telemetry.Finalize(telemetryEnv); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Request.Merge(&overlay.Request)
	c.Logging.Merge(&overlay.Logging)
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Telemetry.Merge(&overlay.Telemetry)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
