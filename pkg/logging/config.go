package logging

import "os"

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
	Name   string
}

// Config holds logging configuration settings.
// Name is the instrumentation scope used by the otel format.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Name   string `toml:"name"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Name == "" {
		c.Name = "function-api"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Level != "" {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
	}
	if env.Format != "" {
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}
	if env.Name != "" {
		if v := os.Getenv(env.Name); v != "" {
			c.Name = v
		}
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}
