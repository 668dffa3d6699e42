package main

import (
	"github.com/kbukum/almanac/config"
	"github.com/kbukum/almanac/observability"
	"github.com/kbukum/almanac/solver"
	"github.com/kbukum/almanac/validation"
	"github.com/kbukum/almanac/version"
)

const appName = "almanac"

// AppConfig is the full configuration of the almanac binary.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Input   string               `yaml:"input" mapstructure:"input" validate:"required"`
	Mode    solver.Mode          `yaml:"mode" mapstructure:"mode"`
	Workers int                  `yaml:"workers" mapstructure:"workers"`
	Strict  bool                 `yaml:"strict" mapstructure:"strict"`
	Verify  solver.VerifyOptions `yaml:"verify" mapstructure:"verify"`
	JSON    bool                 `yaml:"json" mapstructure:"json"`

	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills unset fields across all sections.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = appName
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	c.ServiceConfig.ApplyDefaults()

	opts := c.SolverOptions()
	opts.ApplyDefaults()
	c.Mode, c.Workers, c.Verify = opts.Mode, opts.Workers, opts.Verify

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = c.Version
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Observability.ApplyDefaults()
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.SolverOptions().Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}

// SolverOptions extracts the solver settings.
func (c *AppConfig) SolverOptions() solver.Options {
	return solver.Options{
		Mode:    c.Mode,
		Workers: c.Workers,
		Strict:  c.Strict,
		Verify:  c.Verify,
	}
}
