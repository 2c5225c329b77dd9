// Package api provides the REST API for hydrasrv.
// It exposes health, statistics, configuration and SRV resolution endpoints
// via a Gin-based HTTP server.
package api

//go:generate swag init -g handlers/base.go -o docs

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrasrv/internal/api/handlers"
	"github.com/jroosing/hydrasrv/internal/api/middleware"
	"github.com/jroosing/hydrasrv/internal/config"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// Server is the REST API server.
//
// Security note: do not expose the API to untrusted networks without an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the API on top of the SRV engine. engine may be nil, in which
// case only the system endpoints are functional.
func New(cfg *config.Config, logger *slog.Logger, engine *resolvers.Engine) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, logger, engine)
	RegisterRoutes(r, h, cfg)

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: r, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
