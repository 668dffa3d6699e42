package config

import (
	"fmt"

	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/logger"
	"github.com/kbukum/almanac/util"
)

var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig holds the fields every binary needs. Applications embed it:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Workers int `yaml:"workers" mapstructure:"workers"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig is promoted to embedding structs.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults fills in the environment and propagates the name into the
// logging tag. Debug in development only lowers an unset log level.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the base fields and the logging block.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return errors.MissingField("name")
	}
	if !util.Contains(validEnvironments, c.Environment) {
		return errors.InvalidInput("environment",
			fmt.Sprintf("must be one of %v (got: %s)", validEnvironments, c.Environment))
	}
	return c.Logging.Validate()
}
