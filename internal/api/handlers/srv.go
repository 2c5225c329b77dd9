package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrasrv/internal/api/models"
	"github.com/jroosing/hydrasrv/internal/channel"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// CallMethod godoc
// @Summary Method channel call
// @Description Dispatches a method call to the resolver. Only resolveSrv is implemented.
// @Tags resolution
// @Accept json
// @Produce json
// @Param method path string true "Method name" example(resolveSrv)
// @Param body body models.MethodCallRequest false "Arguments"
// @Success 200 {array} models.SrvRecordResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 501 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /channel/{method} [post]
func (h *Handler) CallMethod(c *gin.Context) {
	if h.channel == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "resolver unavailable"})
		return
	}

	// Arguments are passed through untyped so the channel applies its own
	// rules to missing or non-string values.
	var args map[string]any
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	res, err := h.channel.Handle(c.Request.Context(), channel.MethodCall{
		Method: c.Param("method"),
		Args:   args,
	})
	if errors.Is(err, resolvers.ErrNotImplemented) {
		c.JSON(http.StatusNotImplemented, models.ErrorResponse{Error: "not implemented"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ResolveSrv godoc
// @Summary SRV lookup
// @Description Resolves SRV records for a service name. Failures yield an empty list.
// @Tags resolution
// @Produce json
// @Param name query string true "Service name" example(_sip._tcp.example.com)
// @Success 200 {object} models.SrvLookupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /srv [get]
func (h *Handler) ResolveSrv(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "resolver unavailable"})
		return
	}

	name, err := channel.ToASCII(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid name"})
		return
	}

	records := h.engine.Lookup(c.Request.Context(), name)
	resp := models.SrvLookupResponse{
		Name:      name,
		Transport: h.engine.TransportName(),
		Count:     len(records),
		Records:   make([]models.SrvRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, models.SrvRecordResponse{
			Host:     r.Host,
			Port:     int(r.Port),
			Priority: int(r.Priority),
			Weight:   int(r.Weight),
		})
	}
	c.JSON(http.StatusOK, resp)
}
