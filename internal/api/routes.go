package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/hydrasrv/internal/api/docs" // swagger docs
	"github.com/jroosing/hydrasrv/internal/api/handlers"
	"github.com/jroosing/hydrasrv/internal/api/middleware"
	"github.com/jroosing/hydrasrv/internal/config"
)

// APIPrefix is the path prefix of every API route.
const APIPrefix = "/api/v1"

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(APIPrefix)

	// Optional API key protection; health stays public for probes.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey, APIPrefix+"/health"))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)

	api.POST("/channel/:method", h.CallMethod)
	api.GET("/srv", h.ResolveSrv)
}
