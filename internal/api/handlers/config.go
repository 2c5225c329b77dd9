package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrasrv/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the current server configuration (api key redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.ConfigResponse{
		Resolver: h.cfg.Resolver,
		Logging:  h.cfg.Logging,
		API: models.APIConfigResponse{
			Enabled:     h.cfg.API.Enabled,
			Host:        h.cfg.API.Host,
			Port:        h.cfg.API.Port,
			AuthEnabled: h.cfg.API.APIKey != "",
		},
	})
}
