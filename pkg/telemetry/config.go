package telemetry

import (
	"fmt"
	"os"
	"strconv"
)

// Env maps environment variable names for telemetry configuration.
type Env struct {
	Enabled     string
	Endpoint    string
	Insecure    string
	ServiceName string
}

// Config controls OpenTelemetry export. When disabled, every provider is a noop.
// Boolean settings are pointers so an overlay that omits them leaves the
// base value in place.
type Config struct {
	Enabled     *bool  `toml:"enabled"`
	Endpoint    string `toml:"endpoint"`
	Insecure    *bool  `toml:"insecure"`
	ServiceName string `toml:"service_name"`
}

// IsEnabled reports whether export is on. Unset means false.
func (c *Config) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// IsInsecure reports whether exporters skip TLS. Unset means false.
func (c *Config) IsInsecure() bool {
	return c.Insecure != nil && *c.Insecure
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values set in the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.Insecure != nil {
		c.Insecure = overlay.Insecure
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
}

func (c *Config) loadDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4317"
	}
	if c.ServiceName == "" {
		c.ServiceName = "function-api"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = &enabled
			}
		}
	}
	if env.Endpoint != "" {
		if v := os.Getenv(env.Endpoint); v != "" {
			c.Endpoint = v
		}
	}
	if env.Insecure != "" {
		if v := os.Getenv(env.Insecure); v != "" {
			if insecure, err := strconv.ParseBool(v); err == nil {
				c.Insecure = &insecure
			}
		}
	}
	if env.ServiceName != "" {
		if v := os.Getenv(env.ServiceName); v != "" {
			c.ServiceName = v
		}
	}
}

func (c *Config) validate() error {
	if c.IsEnabled() && c.Endpoint == "" {
		return fmt.Errorf("endpoint required when enabled")
	}
	return nil
}
