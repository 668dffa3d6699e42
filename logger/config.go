package logger

import (
	"io"
	"strings"

	"github.com/kbukum/almanac/util"
	"github.com/kbukum/almanac/validation"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"console", "pretty", "json"}
	validOutputs = []string{"stdout", "stderr"}
)

// Config contains logging configuration.
type Config struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// Writer overrides Output when set. Not loadable from config files.
	Writer io.Writer `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in unset fields. Logs go to stderr by default so that
// stdout carries only results.
func (c *Config) ApplyDefaults() {
	c.Level = strings.ToLower(util.Coalesce(c.Level, "info"))
	c.Format = strings.ToLower(util.Coalesce(c.Format, "console"))
	c.Output = strings.ToLower(util.Coalesce(c.Output, "stderr"))
}

// Validate validates logging configuration. All problems are reported
// together.
func (c *Config) Validate() error {
	v := validation.New().
		Required("logging.level", c.Level).
		OneOf("logging.level", c.Level, validLevels).
		Required("logging.format", c.Format).
		OneOf("logging.format", c.Format, validFormats)
	if c.Writer == nil {
		v.Required("logging.output", c.Output).
			OneOf("logging.output", c.Output, validOutputs)
	}
	return v.Err()
}
