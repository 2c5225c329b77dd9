package handlers

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/jroosing/hydrasrv/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics, SRV lookup counters and host/process info
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
	}

	if h.engine != nil {
		s := h.engine.Stats().Snapshot()
		resp.Lookups = models.LookupStatsResponse{
			Transport:       h.engine.TransportName(),
			LookupsTotal:    s.LookupsTotal,
			Completed:       s.Completed,
			EmptyInput:      s.EmptyInput,
			Unsupported:     s.Unsupported,
			TransportErrors: s.TransportErrors,
			Timeouts:        s.Timeouts,
			Malformed:       s.Malformed,
			RecordsTotal:    s.RecordsTotal,
			AvgLatencyMs:    s.AvgLatencyMs,
		}
	}

	ctx := c.Request.Context()
	resp.Host = h.hostInfo(ctx)
	resp.Process = h.processInfo(ctx)

	c.JSON(http.StatusOK, resp)
}

// hostInfo returns nil when the platform does not expose host details.
func (h *Handler) hostInfo(ctx context.Context) *models.HostInfoResponse {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		h.logger.Debug("host info unavailable", "error", err)
		return nil
	}
	return &models.HostInfoResponse{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		UptimeSeconds:   info.Uptime,
	}
}

// processInfo returns nil when the process cannot be inspected.
func (h *Handler) processInfo(ctx context.Context) *models.ProcessInfoResponse {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		h.logger.Debug("process info unavailable", "error", err)
		return nil
	}
	resp := &models.ProcessInfoResponse{PID: p.Pid}
	if mem, err := p.MemoryInfoWithContext(ctx); err == nil {
		resp.RSSMB = float64(mem.RSS) / 1024 / 1024
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		resp.NumThreads = n
	}
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		resp.CPUPercent = pct
	}
	return resp
}
