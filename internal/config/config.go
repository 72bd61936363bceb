package config

import "time"

// Config represents the complete application configuration. Values come from,
// in increasing precedence: built-in defaults, the config file, AVAIL_*
// environment variables, and command-line flags.
type Config struct {
	Workers int           `mapstructure:"workers"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	DNS     DNSConfig     `mapstructure:"dns"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// HTTPConfig configures the client shared by HTTP checkers.
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// DNSConfig configures name resolution for DNS and shorten checkers.
type DNSConfig struct {
	// Server is a nameserver address (host or host:port). Empty uses the
	// system resolver.
	Server  string        `mapstructure:"server"`
	Net     string        `mapstructure:"net"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CatalogConfig extends or narrows the built-in catalog.
type CatalogConfig struct {
	// File points at a YAML catalog whose entries are appended to the
	// built-in ones.
	File string `mapstructure:"file"`

	// Skip lists "category/name" entries to leave out.
	Skip []string `mapstructure:"skip"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}
