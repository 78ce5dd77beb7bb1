package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvRequestMaxBodySize overrides the maximum accepted request body size.
const EnvRequestMaxBodySize = "REQUEST_MAX_BODY_SIZE"

// RequestConfig bounds inbound requests accepted by the hosting shells.
type RequestConfig struct {
	// MaxBodySize is a human-readable size such as "1MB".
	// Default: "1MB"
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

// MaxBodyBytes returns the parsed MaxBodySize. It is zero until Finalize succeeds.
func (c *RequestConfig) MaxBodyBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the request configuration.
func (c *RequestConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies the overlay size when it parses.
func (c *RequestConfig) Merge(overlay *RequestConfig) {
	if size, err := units.FromHumanSize(overlay.MaxBodySize); err == nil {
		c.MaxBodySize = overlay.MaxBodySize
		c.maxBodySizeVal = size
	}
}

func (c *RequestConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *RequestConfig) loadEnv() {
	if v := os.Getenv(EnvRequestMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *RequestConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size
	return nil
}
