package config

import "time"

// ResolverConfig selects and tunes the SRV lookup transport.
type ResolverConfig struct {
	// Transport is "auto", "system" or "udp".
	Transport string `yaml:"transport" json:"transport"`
	// Server is the resolver used by the udp transport ("host" or "host:port").
	Server string `yaml:"server" json:"server"`
	// ResolvConf is the stub resolver configuration read by the system transport.
	ResolvConf string `yaml:"resolv_conf" json:"resolv_conf"`
	// Timeout bounds one lookup (e.g., "3s").
	Timeout string `yaml:"timeout" json:"timeout"`

	timeout time.Duration
}

// TimeoutDuration returns the parsed lookup timeout. Valid after Validate.
func (r ResolverConfig) TimeoutDuration() time.Duration {
	return r.timeout
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields" json:"extra_fields,omitempty"`
}

// APIConfig contains HTTP API settings.
//
// APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	APIKey  string `yaml:"api_key" json:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Resolver ResolverConfig `yaml:"resolver" json:"resolver"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	API      APIConfig      `yaml:"api" json:"api"`
}
