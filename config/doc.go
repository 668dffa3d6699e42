// Package config loads application configuration with viper.
//
// Sources, lowest precedence first: a YAML file (explicit or found under
// ./cmd/<app>/config.yml, ./config/config.yml or ./config.yml), a .env file
// read by godotenv, the process environment, and explicit overrides such as
// command-line flags. Environment keys map to nested keys by splitting on
// underscores, e.g. ALMANAC_LOGGING_LEVEL sets logging.level when the loader
// runs WithEnvPrefix("ALMANAC").
package config
