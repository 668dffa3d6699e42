package config

// Config is implemented by any struct embedding ServiceConfig that also
// supplies its own defaults and validation.
type Config interface {
	GetServiceConfig() *ServiceConfig
	ApplyDefaults()
	Validate() error
}

// Load runs LoadConfig and then finalizes cfg: defaults first, validation
// second.
func Load(appName string, cfg Config, opts ...LoaderOption) error {
	if err := LoadConfig(appName, cfg, opts...); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}
