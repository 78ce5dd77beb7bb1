package openapi

import "os"

// Config holds document metadata.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Server      string `toml:"server"`
}

// ConfigEnv maps environment variable names for document metadata.
type ConfigEnv struct {
	Title       string
	Description string
	Server      string
}

// Finalize applies defaults and loads environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Server != "" {
		c.Server = overlay.Server
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Function API"
	}
	if c.Description == "" {
		c.Description = "HTTP API served as a single serverless function."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Server != "" {
		if v := os.Getenv(env.Server); v != "" {
			c.Server = v
		}
	}
}
