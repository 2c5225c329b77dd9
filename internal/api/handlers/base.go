// Package handlers implements the REST API endpoint handlers for hydrasrv.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime, lookup, host and process statistics
//   - GET /api/v1/config - Current configuration (api key redacted)
//
// Resolution:
//   - POST /api/v1/channel/:method - Method channel call (only resolveSrv)
//   - GET /api/v1/srv?name= - SRV lookup
//
// Authentication:
//
// When an API key is configured every endpoint except /health requires the
// X-API-Key header.
//
// @title hydrasrv API
// @version 1.0
// @description SRV record resolution over HTTP.
//
// @contact.name hydrasrv
// @contact.url https://github.com/jroosing/hydrasrv
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/hydrasrv/internal/channel"
	"github.com/jroosing/hydrasrv/internal/config"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	startTime time.Time

	engine  *resolvers.Engine
	channel *channel.Handler
}

// New creates a Handler. engine may be nil, in which case the resolution
// endpoints answer 503.
func New(cfg *config.Config, logger *slog.Logger, engine *resolvers.Engine) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		cfg:       cfg,
		logger:    logger,
		startTime: time.Now(),
		engine:    engine,
	}
	if engine != nil {
		h.channel = channel.NewHandler(engine, logger)
	}
	return h
}
