// Package config provides configuration loading and validation for hydrasrv.
//
// Configuration is read from a YAML file (see Load) and normalized by
// Validate. Command-line flags are applied on top by the binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "HYDRASRV_CONFIG"

// Defaults applied by Validate. Resolver defaults are the resolvers package's.
const (
	DefaultTransport  = resolvers.TransportAuto
	DefaultServer     = resolvers.DefaultUDPServer
	DefaultResolvConf = resolvers.DefaultResolvConf
	DefaultTimeout    = resolvers.DefaultTimeout
	DefaultAPIHost    = "127.0.0.1"
	DefaultAPIPort    = 8080
)

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{API: APIConfig{Enabled: true, Port: DefaultAPIPort}}
	if err := cfg.Validate(); err != nil {
		// Defaults are static; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Load reads the YAML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{API: APIConfig{Enabled: true, Port: DefaultAPIPort}}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath returns the flag value when set, else $HYDRASRV_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize resolver
	cfg.Resolver.Transport = strings.ToLower(strings.TrimSpace(cfg.Resolver.Transport))
	switch cfg.Resolver.Transport {
	case "":
		cfg.Resolver.Transport = DefaultTransport
	case resolvers.TransportAuto, resolvers.TransportSystem, resolvers.TransportUDP:
	default:
		return fmt.Errorf("resolver.transport must be auto, system or udp, got %q", cfg.Resolver.Transport)
	}
	if strings.TrimSpace(cfg.Resolver.Server) == "" {
		cfg.Resolver.Server = DefaultServer
	}
	if cfg.Resolver.ResolvConf == "" {
		cfg.Resolver.ResolvConf = DefaultResolvConf
	}
	if cfg.Resolver.Timeout == "" {
		cfg.Resolver.Timeout = DefaultTimeout.String()
	}
	d, err := time.ParseDuration(cfg.Resolver.Timeout)
	if err != nil {
		return fmt.Errorf("resolver.timeout: %w", err)
	}
	if d <= 0 {
		return errors.New("resolver.timeout must be positive")
	}
	cfg.Resolver.timeout = d

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize API
	if cfg.API.Host == "" {
		cfg.API.Host = DefaultAPIHost
	}
	if cfg.API.Enabled {
		if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
			return errors.New("api.port must be 1..65535")
		}
	}

	return nil
}
