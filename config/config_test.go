package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/almanac/errors"
)

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Input         string     `mapstructure:"input"`
	Workers       int        `mapstructure:"workers"`
	Verify        verifyConf `mapstructure:"verify"`
}

type verifyConf struct {
	Enabled bool  `mapstructure:"enabled"`
	Limit   int64 `mapstructure:"limit"`
}

func (c *testConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Workers == 0 {
		c.Workers = 1
	}
}

func (c *testConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.InvalidInput("workers", "must be at least 1")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleYAML = `
name: almanac
environment: production
input: day5.txt
workers: 2
verify:
  enabled: true
  limit: 1000
logging:
  level: warn
  format: json
`

func TestLoadConfigWithYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", sampleYAML)

	var cfg testConfig
	if err := LoadConfig("almanac", &cfg, WithConfigFile(path), WithoutSearch()); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "almanac" || cfg.Environment != "production" {
		t.Errorf("unexpected service fields %+v", cfg.ServiceConfig)
	}
	if cfg.Input != "day5.txt" || cfg.Workers != 2 {
		t.Errorf("unexpected app fields input=%q workers=%d", cfg.Input, cfg.Workers)
	}
	if !cfg.Verify.Enabled || cfg.Verify.Limit != 1000 {
		t.Errorf("unexpected verify block %+v", cfg.Verify)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging block %+v", cfg.Logging)
	}
}

func TestLoadConfigEnvPrefixOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", sampleYAML)
	t.Setenv("ALMANAC_WORKERS", "8")
	t.Setenv("ALMANAC_LOGGING_LEVEL", `"debug"`)
	t.Setenv("ALMANAC_VERIFY_LIMIT", "50")
	t.Setenv("WORKERS", "99")

	var cfg testConfig
	err := LoadConfig("almanac", &cfg, WithConfigFile(path), WithoutSearch(), WithEnvPrefix("ALMANAC_"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected prefixed env to win, got workers=%d", cfg.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected quoted env value to be sanitized, got %q", cfg.Logging.Level)
	}
	if cfg.Verify.Limit != 50 {
		t.Errorf("expected verify.limit from env, got %d", cfg.Verify.Limit)
	}
}

func TestLoadConfigOverridesWin(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", sampleYAML)
	t.Setenv("ALMANAC_WORKERS", "8")

	var cfg testConfig
	err := LoadConfig("almanac", &cfg,
		WithConfigFile(path), WithoutSearch(), WithEnvPrefix("ALMANAC"),
		WithOverrides(map[string]any{"workers": 3, "logging.format": "console"}))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("expected override to win, got workers=%d", cfg.Workers)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected nested override, got %q", cfg.Logging.Format)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "ALMANAC_INPUT=from-dotenv.txt\n")
	t.Cleanup(func() { os.Unsetenv("ALMANAC_INPUT") })

	var cfg testConfig
	err := LoadConfig("almanac", &cfg, WithEnvFile(envPath), WithoutSearch(), WithEnvPrefix("ALMANAC"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Input != "from-dotenv.txt" {
		t.Errorf("expected input from .env, got %q", cfg.Input)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("almanac", &cfg, WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "workers: [1,\n")
	var cfg testConfig
	err := LoadConfig("almanac", &cfg, WithConfigFile(path))
	if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestLoadConfigDecodeError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "workers: many\n")
	var cfg testConfig
	err := LoadConfig("almanac", &cfg, WithConfigFile(path))
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLoadFinalizes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "name: almanac\n")
	var cfg testConfig
	if err := Load("almanac", &cfg, WithConfigFile(path), WithoutSearch()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 1 || cfg.Environment != "development" {
		t.Errorf("expected defaults applied, got workers=%d env=%q", cfg.Workers, cfg.Environment)
	}
	if cfg.Logging.ServiceName != "almanac" {
		t.Errorf("expected service name propagated to logging, got %q", cfg.Logging.ServiceName)
	}

	bad := writeFile(t, t.TempDir(), "config.yml", "name: almanac\nenvironment: moon\n")
	err := Load("almanac", &testConfig{}, WithConfigFile(bad), WithoutSearch())
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), "environment") {
		t.Errorf("expected environment validation error, got %v", err)
	}
}

func TestServiceConfigDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "almanac", Debug: true}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level from Debug flag, got %q", cfg.Logging.Level)
	}

	explicit := ServiceConfig{Name: "almanac", Debug: true}
	explicit.Logging.Level = "error"
	explicit.ApplyDefaults()
	if explicit.Logging.Level != "error" {
		t.Errorf("explicit level should win, got %q", explicit.Logging.Level)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServiceConfig
		code errors.ErrorCode
	}{
		{"valid", ServiceConfig{Name: "almanac"}, ""},
		{"missing name", ServiceConfig{}, errors.ErrCodeMissingField},
		{"bad environment", ServiceConfig{Name: "almanac", Environment: "moon"}, errors.ErrCodeInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			env := cfg.Environment
			cfg.ApplyDefaults()
			if env != "" {
				cfg.Environment = env
			}
			err := cfg.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

type mockFS struct {
	existing map[string]bool
}

func (m *mockFS) Exists(path string) bool { return m.existing[path] }
func (m *mockFS) LoadEnv(string) error    { return nil }
func (m *mockFS) Getwd() (string, error)  { return "/work", nil }

func TestResolverSearchOrder(t *testing.T) {
	fs := &mockFS{existing: map[string]bool{
		"./config.yml":               true,
		"../cmd/almanac/config.yml":  true,
		"./.env":                     true,
		"./cmd/almanac/.env.almanac": true,
	}}
	r := &Resolver{FileSystem: fs}
	got := r.ResolveFiles("almanac", LoaderConfig{})
	if got.ConfigFile != "../cmd/almanac/config.yml" {
		t.Errorf("unexpected config file %q", got.ConfigFile)
	}
	if got.EnvFile != "./cmd/almanac/.env.almanac" {
		t.Errorf("unexpected env file %q", got.EnvFile)
	}

	none := r.ResolveFiles("almanac", LoaderConfig{SkipSearch: true})
	if none.ConfigFile != "" || none.EnvFile != "" {
		t.Errorf("expected no files with search disabled, got %+v", none)
	}

	explicit := r.ResolveFiles("almanac", LoaderConfig{ConfigFile: "x.yml"})
	if explicit.ConfigFile != "x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("LOGGING_SERVICE_NAME")
	for _, want := range []string{"logging_service_name", "logging.service.name", "logging.service_name"} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", want, got)
		}
	}
	if v := envKeyVariants("INPUT"); len(v) != 1 || v[0] != "input" {
		t.Errorf("unexpected single-part variants %v", v)
	}
}
