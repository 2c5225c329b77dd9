package resolvers

import (
	"errors"
	"sync/atomic"
	"time"
)

// Lookup outcomes as reported in logs.
const (
	OutcomeCompleted   = "completed"
	OutcomeEmptyInput  = "empty_input"
	OutcomeUnsupported = "unsupported"
	OutcomeTransport   = "transport_error"
	OutcomeTimeout     = "timeout"
	OutcomeMalformed   = "malformed"
)

// outcomeOf maps a lookup error to its outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, ErrUnsupportedPlatform):
		return OutcomeUnsupported
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeMalformed
	default:
		return OutcomeTransport
	}
}

// LookupStats collects SRV lookup statistics.
// All methods are safe for concurrent use and on a nil receiver.
type LookupStats struct {
	lookupsTotal   atomic.Uint64
	completed      atomic.Uint64
	emptyInput     atomic.Uint64
	unsupported    atomic.Uint64
	transportErr   atomic.Uint64
	timeouts       atomic.Uint64
	malformed      atomic.Uint64
	recordsTotal   atomic.Uint64
	latencyTotalNs atomic.Uint64
}

// NewLookupStats creates a new lookup statistics collector.
func NewLookupStats() *LookupStats {
	return &LookupStats{}
}

// Record counts one finished lookup.
func (s *LookupStats) Record(err error, records int, latency time.Duration) {
	if s == nil {
		return
	}
	s.lookupsTotal.Add(1)
	switch outcomeOf(err) {
	case OutcomeCompleted:
		s.completed.Add(1)
	case OutcomeEmptyInput:
		s.emptyInput.Add(1)
	case OutcomeUnsupported:
		s.unsupported.Add(1)
	case OutcomeTimeout:
		s.timeouts.Add(1)
	case OutcomeMalformed:
		s.malformed.Add(1)
	default:
		s.transportErr.Add(1)
	}
	if records > 0 {
		s.recordsTotal.Add(uint64(records))
	}
	if latency > 0 {
		s.latencyTotalNs.Add(uint64(latency.Nanoseconds()))
	}
}

// LookupStatsSnapshot is a point-in-time copy of LookupStats.
type LookupStatsSnapshot struct {
	LookupsTotal    uint64
	Completed       uint64
	EmptyInput      uint64
	Unsupported     uint64
	TransportErrors uint64
	Timeouts        uint64
	Malformed       uint64
	RecordsTotal    uint64
	AvgLatencyMs    float64
}

// Snapshot returns the current statistics.
func (s *LookupStats) Snapshot() LookupStatsSnapshot {
	if s == nil {
		return LookupStatsSnapshot{}
	}
	total := s.lookupsTotal.Load()
	latencyNs := s.latencyTotalNs.Load()

	avgLatencyMs := 0.0
	if total > 0 {
		avgLatencyMs = float64(latencyNs) / float64(total) / 1e6
	}

	return LookupStatsSnapshot{
		LookupsTotal:    total,
		Completed:       s.completed.Load(),
		EmptyInput:      s.emptyInput.Load(),
		Unsupported:     s.unsupported.Load(),
		TransportErrors: s.transportErr.Load(),
		Timeouts:        s.timeouts.Load(),
		Malformed:       s.malformed.Load(),
		RecordsTotal:    s.recordsTotal.Load(),
		AvgLatencyMs:    avgLatencyMs,
	}
}
