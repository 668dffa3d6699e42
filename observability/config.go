package observability

import (
	"time"

	"github.com/kbukum/almanac/errors"
)

// Config controls OTLP export. Telemetry stays in-process (no-op providers)
// unless Enabled is set.
type Config struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate"`
	Interval       time.Duration `yaml:"interval" mapstructure:"interval"`
	ServiceName    string        `yaml:"service_name" mapstructure:"service_name"`
	ServiceVersion string        `yaml:"service_version" mapstructure:"service_version"`
	Environment    string        `yaml:"environment" mapstructure:"environment"`
}

// ApplyDefaults fills unset export settings with local collector defaults.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
	if c.ServiceName == "" {
		c.ServiceName = "almanac"
	}
}

// Validate checks ranges; an unset endpoint is only an error when enabled.
func (c *Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return errors.InvalidInput("observability.sample_rate", "must be between 0 and 1")
	}
	if c.Interval < 0 {
		return errors.InvalidInput("observability.interval", "must not be negative")
	}
	if c.Enabled && c.Endpoint == "" {
		return errors.MissingField("observability.endpoint")
	}
	return nil
}
