// Package config provides centralized configuration management for avail.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	gfconfig "github.com/fulmenhq/gofulmen/config"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// AppName is used for the config directory, config file name and env prefix.
const AppName = "avail"

// EnvPrefix prefixes environment overrides, e.g. AVAIL_HTTP_TIMEOUT.
const EnvPrefix = "AVAIL"

const maxWorkers = 64

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workers", 1)

	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.user_agent", "")

	v.SetDefault("dns.server", "")
	v.SetDefault("dns.net", "udp")
	v.SetDefault("dns.timeout", "5s")

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.skip", []string{})

	v.SetDefault("output.format", "console")
	v.SetDefault("output.color", true)

	v.SetDefault("logging.level", "warn")
}

// ConfigureEnv makes v read AVAIL_* variables, mapping "." in keys to "_".
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SearchPaths returns the directories searched for config.yaml, most
// specific first.
func SearchPaths() []string {
	var paths []string
	if dir := gfconfig.GetAppConfigDir(AppName); dir != "" {
		paths = append(paths, dir)
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return append(paths, "./config")
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.DNS.Server = strings.TrimSpace(c.DNS.Server)
	c.DNS.Net = strings.ToLower(strings.TrimSpace(c.DNS.Net))
	c.Catalog.File = strings.TrimSpace(c.Catalog.File)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	skip := c.Catalog.Skip[:0]
	for _, item := range c.Catalog.Skip {
		if item = strings.TrimSpace(item); item != "" {
			skip = append(skip, item)
		}
	}
	c.Catalog.Skip = skip
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 || c.Workers > maxWorkers {
		errs = append(errs, fmt.Errorf("workers must be between 1 and %d, got %d", maxWorkers, c.Workers))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout))
	}
	if c.DNS.Timeout < 0 {
		errs = append(errs, fmt.Errorf("dns.timeout must not be negative, got %s", c.DNS.Timeout))
	}
	switch c.DNS.Net {
	case "", "udp", "tcp", "tcp-tls":
	default:
		errs = append(errs, fmt.Errorf("dns.net must be udp, tcp or tcp-tls, got %q", c.DNS.Net))
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not recognized", c.Logging.Level))
	}
	return errors.Join(errs...)
}

// ProbeTimeout is the per-probe budget: the longer of the HTTP and DNS
// timeouts plus a second of slack.
func (c *Config) ProbeTimeout() time.Duration {
	longest := c.HTTP.Timeout
	if c.DNS.Timeout > longest {
		longest = c.DNS.Timeout
	}
	if longest <= 0 {
		return 0
	}
	return longest + time.Second
}
