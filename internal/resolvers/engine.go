package resolvers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jroosing/hydrasrv/internal/dns"
)

// DefaultTimeout bounds a single lookup from query submission to answer.
const DefaultTimeout = 3 * time.Second

// Poster runs fn on the execution context results must be delivered on.
type Poster func(fn func())

// Engine resolves SRV records through a Transport.
//
// Each lookup is an isolated transaction: its own transaction ID, its own
// transport call and its own worker goroutine. The engine holds no mutable
// state besides LookupStats, so concurrent lookups are independent.
type Engine struct {
	transport Transport
	timeout   time.Duration
	post      Poster
	logger    *slog.Logger
	stats     *LookupStats
	newID     func() uint16
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithPoster sets where results are delivered. By default the delivery
// callback runs on the goroutine that produced the result.
func WithPoster(p Poster) Option {
	return func(e *Engine) {
		if p != nil {
			e.post = p
		}
	}
}

// WithLogger sets the logger used for per-lookup debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStats sets the collector lookups are counted in.
func WithStats(s *LookupStats) Option {
	return func(e *Engine) {
		e.stats = s
	}
}

// withIDSource replaces the transaction ID generator (tests only).
func withIDSource(fn func() uint16) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine creates an Engine on top of t.
func NewEngine(t Transport, opts ...Option) *Engine {
	e := &Engine{
		transport: t,
		timeout:   DefaultTimeout,
		post:      func(fn func()) { fn() },
		logger:    slog.Default(),
		stats:     NewLookupStats(),
		newID:     dns.NewTransactionID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats returns the engine's lookup statistics collector.
func (e *Engine) Stats() *LookupStats {
	return e.stats
}

// Timeout returns the per-lookup timeout.
func (e *Engine) Timeout() time.Duration {
	return e.timeout
}

// TransportName returns the name of the transport in use.
func (e *Engine) TransportName() string {
	if e.transport == nil {
		return ""
	}
	return e.transport.Name()
}

// ResolveSrv starts an SRV lookup for name and returns immediately.
//
// deliver is invoked exactly once, through the engine's Poster, with the
// records found. Any failure (blank name, unavailable transport, transport
// error, timeout, malformed answer) delivers an empty list.
//
// Without WithPoster, deliver runs on the lookup's worker goroutine, or on the
// caller's when a guard rejects the lookup. Embedders that must receive
// results on their own loop pass WithPoster.
func (e *Engine) ResolveSrv(name string, deliver func([]dns.SrvRecord)) {
	e.start(context.Background(), name, deliver)
}

// ResolveSrvAsync is ResolveSrv with the result delivered on a channel.
// The channel is buffered and receives exactly one value.
func (e *Engine) ResolveSrvAsync(ctx context.Context, name string) <-chan []dns.SrvRecord {
	ch := make(chan []dns.SrvRecord, 1)
	e.start(ctx, name, func(records []dns.SrvRecord) { ch <- records })
	return ch
}

// Lookup resolves name and blocks until the records are delivered or ctx is
// done. Canceling ctx also aborts the in-flight query.
func (e *Engine) Lookup(ctx context.Context, name string) []dns.SrvRecord {
	select {
	case records := <-e.ResolveSrvAsync(ctx, name):
		return records
	case <-ctx.Done():
		return []dns.SrvRecord{}
	}
}

// start applies the guards and hands the lookup to a dedicated worker.
func (e *Engine) start(ctx context.Context, name string, deliver func([]dns.SrvRecord)) {
	if err := e.precheck(name); err != nil {
		e.finish(name, time.Now(), nil, err, deliver)
		return
	}
	go e.run(ctx, name, deliver)
}

func (e *Engine) precheck(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyInput
	}
	if e.transport == nil || !e.transport.Available() {
		return ErrUnsupportedPlatform
	}
	return nil
}

// run is the worker body: query, wait for one terminal signal, decode, deliver.
func (e *Engine) run(ctx context.Context, name string, deliver func([]dns.SrvRecord)) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	records, err := e.exchange(ctx, name)
	e.finish(name, started, records, err, deliver)
}

// exchange performs one query. The transport call is closed before returning,
// so the handle is released ahead of result delivery on every path.
func (e *Engine) exchange(ctx context.Context, name string) ([]dns.SrvRecord, error) {
	id := e.newID()
	query := dns.EncodeQuery(name, id)

	call := e.transport.Query(ctx, name, query)
	defer func() {
		if err := call.Close(); err != nil {
			e.logger.Debug("srv transport close failed", "name", name, "error", err)
		}
	}()

	select {
	case ans := <-call.Done():
		if errors.Is(ans.Err, os.ErrDeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: %w", ErrTimeout, e.transport.Name(), ans.Err)
		}
		if ans.Err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTransport, e.transport.Name(), ans.Err)
		}
		h, err := checkResponse(ans.Response, id)
		if err != nil {
			return nil, err
		}
		if h.RCode() != dns.RCodeNoError || h.Truncated() || !h.IsResponse() || h.Opcode() != 0 {
			// Answers are still decoded; this only explains an empty or short result.
			e.logger.Debug("srv answer flags",
				"name", name,
				"rcode", h.RCode().String(),
				"opcode", h.Opcode(),
				"qr", h.IsResponse(),
				"aa", h.Authoritative(),
				"tc", h.Truncated(),
				"rd", h.RecursionDesired(),
				"ra", h.RecursionAvailable(),
			)
		}
		return dns.DecodeResponse(ans.Response, id), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
		}
		return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}

// checkResponse classifies answers DecodeResponse would reject outright.
func checkResponse(resp []byte, id uint16) (dns.Header, error) {
	off := 0
	h, err := dns.ParseHeader(resp, &off)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if h.ID != id {
		return h, fmt.Errorf("%w: transaction id %#04x, want %#04x", ErrMalformedResponse, h.ID, id)
	}
	return h, nil
}

// finish records the outcome and delivers exactly one result.
func (e *Engine) finish(name string, started time.Time, records []dns.SrvRecord, err error, deliver func([]dns.SrvRecord)) {
	if records == nil {
		records = []dns.SrvRecord{}
	}
	elapsed := time.Since(started)
	e.stats.Record(err, len(records), elapsed)

	if err != nil {
		e.logger.Debug("srv lookup failed",
			"name", name,
			"transport", e.TransportName(),
			"outcome", outcomeOf(err),
			"latency_ms", elapsed.Milliseconds(),
			"error", err,
		)
	} else {
		e.logger.Debug("srv lookup completed",
			"name", name,
			"transport", e.TransportName(),
			"records", len(records),
			"latency_ms", elapsed.Milliseconds(),
		)
	}

	e.post(func() { deliver(records) })
}
