package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string               `json:"uptime"`
	UptimeSeconds int64                `json:"uptime_seconds"`
	StartTime     time.Time            `json:"start_time"`
	GoRoutines    int                  `json:"goroutines"`
	MemoryAllocMB float64              `json:"memory_alloc_mb"`
	NumCPU        int                  `json:"num_cpu"`
	Lookups       LookupStatsResponse  `json:"lookups"`
	Host          *HostInfoResponse    `json:"host,omitempty"`
	Process       *ProcessInfoResponse `json:"process,omitempty"`
}

// LookupStatsResponse contains SRV lookup statistics.
type LookupStatsResponse struct {
	Transport       string  `json:"transport"`
	LookupsTotal    uint64  `json:"lookups_total"`
	Completed       uint64  `json:"completed"`
	EmptyInput      uint64  `json:"empty_input"`
	Unsupported     uint64  `json:"unsupported"`
	TransportErrors uint64  `json:"transport_errors"`
	Timeouts        uint64  `json:"timeouts"`
	Malformed       uint64  `json:"malformed"`
	RecordsTotal    uint64  `json:"records_total"`
	AvgLatencyMs    float64 `json:"avg_latency_ms"`
}

// HostInfoResponse describes the machine the server runs on.
type HostInfoResponse struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	UptimeSeconds   uint64 `json:"uptime_seconds"`
}

// ProcessInfoResponse describes the server process.
type ProcessInfoResponse struct {
	PID        int32   `json:"pid"`
	RSSMB      float64 `json:"rss_mb"`
	NumThreads int32   `json:"num_threads"`
	CPUPercent float64 `json:"cpu_percent"`
}
