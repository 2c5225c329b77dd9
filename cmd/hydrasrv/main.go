package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jroosing/hydrasrv/internal/config"
	"github.com/jroosing/hydrasrv/internal/logging"
	"github.com/jroosing/hydrasrv/internal/server"
)

func main() {
	var (
		configPath = flag.StringP("config", "c", "", "Path to YAML configuration file (or set HYDRASRV_CONFIG)")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		transport  = flag.String("transport", "", "Override resolver transport: auto, system or udp")
		upstream   = flag.String("server", "", "Override resolver used by the udp transport (host[:port])")
		timeout    = flag.String("timeout", "", "Override lookup timeout (e.g. 3s)")
		noAPI      = flag.Bool("no-api", false, "Disable the HTTP API")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *transport != "" {
		cfg.Resolver.Transport = *transport
	}
	if *upstream != "" {
		cfg.Resolver.Server = *upstream
	}
	if *timeout != "" {
		cfg.Resolver.Timeout = *timeout
	}
	if *noAPI {
		cfg.API.Enabled = false
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("hydrasrv starting",
		"transport", cfg.Resolver.Transport,
		"api", cfg.API.Enabled,
		"api_host", cfg.API.Host,
		"api_port", cfg.API.Port,
	)

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
