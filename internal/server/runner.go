// Package server wires configuration, the SRV engine and the HTTP API into a
// running process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jroosing/hydrasrv/internal/api"
	"github.com/jroosing/hydrasrv/internal/config"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// shutdownTimeout bounds draining in-flight API requests.
const shutdownTimeout = 5 * time.Second

// Runner orchestrates startup, serving and shutdown.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run starts the server with the given configuration.
//
// Server lifecycle:
//  1. Select the transport and build the SRV engine
//  2. Start the HTTP API (if enabled)
//  3. Wait for shutdown signal (SIGINT/SIGTERM)
//  4. Gracefully stop the API with timeout
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the server and blocks until ctx is canceled or the
// API fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	if !cfg.API.Enabled {
		if _, err := r.BuildEngine(cfg); err != nil {
			return err
		}
		r.logger.Info("api disabled; idling until shutdown")
		<-ctx.Done()
		return nil
	}

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return r.RunWithListener(ctx, cfg, l)
}

// RunWithListener serves the API on l until ctx is canceled. l is closed on
// return.
func (r *Runner) RunWithListener(ctx context.Context, cfg *config.Config, l net.Listener) error {
	engine, err := r.BuildEngine(cfg)
	if err != nil {
		_ = l.Close()
		return err
	}

	srv := api.New(cfg, r.logger, engine)
	r.logger.Info("api listening",
		"addr", l.Addr().String(),
		"auth", cfg.API.APIKey != "",
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	// Wait for shutdown or error
	select {
	case <-ctx.Done():
		// shutdown requested via signal
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	// Graceful shutdown
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(stopCtx); err != nil {
		r.logger.Warn("api shutdown", "error", err)
	}
	r.logger.Info("server stopped")
	return nil
}

// BuildEngine selects the configured transport and wraps it in an engine.
func (r *Runner) BuildEngine(cfg *config.Config) (*resolvers.Engine, error) {
	transport, err := resolvers.NewTransport(cfg.Resolver.Transport, cfg.Resolver.Server, cfg.Resolver.ResolvConf)
	if err != nil {
		return nil, err
	}
	if !transport.Available() {
		r.logger.Warn("srv transport unavailable on this host; lookups will return no records",
			"transport", transport.Name(),
		)
	}

	engine := resolvers.NewEngine(transport,
		resolvers.WithTimeout(cfg.Resolver.TimeoutDuration()),
		resolvers.WithLogger(r.logger),
	)
	r.logStartup(cfg, transport)
	return engine, nil
}

// logStartup logs the resolver configuration at startup.
func (r *Runner) logStartup(cfg *config.Config, t resolvers.Transport) {
	attrs := []any{
		"transport", t.Name(),
		"available", t.Available(),
		"timeout", cfg.Resolver.TimeoutDuration().String(),
	}
	switch tt := t.(type) {
	case *resolvers.UDPTransport:
		attrs = append(attrs, "server", tt.Server())
	case *resolvers.SystemTransport:
		attrs = append(attrs, "resolv_conf", tt.ConfPath())
	}
	r.logger.Info("srv resolver configured", attrs...)
}
