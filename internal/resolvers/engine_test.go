package resolvers

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mdns "github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/hydrasrv/internal/dns"
)

// fakeTransport answers queries through respond, or never when respond is nil.
type fakeTransport struct {
	available bool
	respond   func(query []byte) Answer

	queries atomic.Int32
	closes  atomic.Int32

	mu   sync.Mutex
	last []byte
}

func (f *fakeTransport) Name() string    { return "fake" }
func (f *fakeTransport) Available() bool { return f.available }

func (f *fakeTransport) Query(_ context.Context, _ string, query []byte) *Call {
	f.queries.Add(1)
	f.mu.Lock()
	f.last = append([]byte(nil), query...)
	f.mu.Unlock()

	call := NewCall(func() error {
		f.closes.Add(1)
		return nil
	})
	if f.respond != nil {
		ans := f.respond(query)
		go call.Deliver(ans)
	}
	return call
}

func (f *fakeTransport) lastQuery() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// srvReply builds a packed answer to query with one SRV record per target.
func srvReply(t *testing.T, query []byte, targets ...string) []byte {
	t.Helper()
	req := new(mdns.Msg)
	require.NoError(t, req.Unpack(query))

	resp := new(mdns.Msg)
	resp.SetReply(req)
	for i, target := range targets {
		resp.Answer = append(resp.Answer, &mdns.SRV{
			Hdr: mdns.RR_Header{
				Name:   req.Question[0].Name,
				Rrtype: mdns.TypeSRV,
				Class:  mdns.ClassINET,
				Ttl:    60,
			},
			Priority: uint16(10 + i),
			Weight:   uint16(5 * (i + 1)),
			Port:     uint16(5060 + i),
			Target:   mdns.Fqdn(target),
		})
	}
	raw, err := resp.Pack()
	require.NoError(t, err)
	return raw
}

func lookup(t *testing.T, e *Engine, name string) []dns.SrvRecord {
	t.Helper()
	select {
	case records := <-e.ResolveSrvAsync(context.Background(), name):
		return records
	case <-time.After(5 * time.Second):
		t.Fatal("lookup did not deliver")
		return nil
	}
}

func TestEngine_EmptyNameSkipsTransport(t *testing.T) {
	ft := &fakeTransport{available: true}
	e := NewEngine(ft)

	for _, name := range []string{"", "   "} {
		records := lookup(t, e, name)
		require.NotNil(t, records)
		assert.Empty(t, records)
	}

	assert.Equal(t, int32(0), ft.queries.Load())
	snap := e.Stats().Snapshot()
	assert.Equal(t, uint64(2), snap.EmptyInput)
	assert.Equal(t, uint64(2), snap.LookupsTotal)
}

func TestEngine_UnavailableTransport(t *testing.T) {
	ft := &fakeTransport{available: false}
	e := NewEngine(ft)

	records := lookup(t, e, "_sip._tcp.example.com")
	assert.Empty(t, records)
	assert.Equal(t, int32(0), ft.queries.Load())
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Unsupported)
}

func TestEngine_NilTransport(t *testing.T) {
	e := NewEngine(nil)
	assert.Empty(t, lookup(t, e, "_sip._tcp.example.com"))
	assert.Empty(t, e.TransportName())
}

func TestEngine_Success(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		return Answer{Response: srvReply(t, query, "sip1.example.com", "sip2.example.com")}
	}
	e := NewEngine(ft)

	records := lookup(t, e, "_sip._tcp.example.com")
	require.Len(t, records, 2)
	assert.Equal(t, dns.SrvRecord{Host: "sip1.example.com", Port: 5060, Priority: 10, Weight: 5}, records[0])
	assert.Equal(t, dns.SrvRecord{Host: "sip2.example.com", Port: 5061, Priority: 11, Weight: 10}, records[1])

	assert.Equal(t, int32(1), ft.queries.Load())
	assert.Equal(t, int32(1), ft.closes.Load())

	snap := e.Stats().Snapshot()
	assert.Equal(t, uint64(1), snap.Completed)
	assert.Equal(t, uint64(2), snap.RecordsTotal)
}

func TestEngine_QueryUsesGeneratedID(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		return Answer{Response: srvReply(t, query)}
	}
	e := NewEngine(ft, withIDSource(func() uint16 { return 0xBEEF }))

	assert.Empty(t, lookup(t, e, "_xmpp._tcp.example.org"))

	q := ft.lastQuery()
	require.GreaterOrEqual(t, len(q), 12)
	assert.Equal(t, uint16(0xBEEF), binary.BigEndian.Uint16(q[0:2]))
	assert.Equal(t, uint16(0x0100), binary.BigEndian.Uint16(q[2:4]))
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Completed)
}

func TestEngine_IDMismatchIsMalformed(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		resp := srvReply(t, query, "sip.example.com")
		binary.BigEndian.PutUint16(resp[0:2], binary.BigEndian.Uint16(query[0:2])+1)
		return Answer{Response: resp}
	}
	e := NewEngine(ft)

	assert.Empty(t, lookup(t, e, "_sip._tcp.example.com"))
	assert.Equal(t, int32(1), ft.closes.Load())
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Malformed)
}

func TestEngine_ShortResponseIsMalformed(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func([]byte) Answer {
		return Answer{Response: []byte{0x12, 0x34, 0x81}}
	}
	e := NewEngine(ft)

	assert.Empty(t, lookup(t, e, "_sip._tcp.example.com"))
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Malformed)
}

func TestEngine_TransportError(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func([]byte) Answer {
		return Answer{Err: errors.New("connection refused")}
	}
	e := NewEngine(ft)

	assert.Empty(t, lookup(t, e, "_sip._tcp.example.com"))
	assert.Equal(t, int32(1), ft.closes.Load())
	assert.Equal(t, uint64(1), e.Stats().Snapshot().TransportErrors)
}

func TestEngine_TimeoutReleasesHandle(t *testing.T) {
	ft := &fakeTransport{available: true}
	e := NewEngine(ft, WithTimeout(50*time.Millisecond))

	start := time.Now()
	records := lookup(t, e, "_sip._tcp.example.com")
	elapsed := time.Since(start)

	require.NotNil(t, records)
	assert.Empty(t, records)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, int32(1), ft.closes.Load())
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Timeouts)
}

func TestEngine_HandleClosedBeforeDelivery(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		return Answer{Response: srvReply(t, query, "sip.example.com")}
	}
	e := NewEngine(ft)

	closedAtDelivery := make(chan int32, 1)
	e.ResolveSrv("_sip._tcp.example.com", func([]dns.SrvRecord) {
		closedAtDelivery <- ft.closes.Load()
	})

	select {
	case n := <-closedAtDelivery:
		assert.Equal(t, int32(1), n)
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery")
	}
}

func TestEngine_PosterReceivesEveryDelivery(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		return Answer{Response: srvReply(t, query, "sip.example.com")}
	}

	// Single-goroutine executor standing in for an embedding event loop.
	tasks := make(chan func(), 8)
	var posted atomic.Int32
	e := NewEngine(ft, WithPoster(func(fn func()) {
		posted.Add(1)
		tasks <- fn
	}))

	results := make(chan []dns.SrvRecord, 2)
	e.ResolveSrv("", func(r []dns.SrvRecord) { results <- r })
	e.ResolveSrv("_sip._tcp.example.com", func(r []dns.SrvRecord) { results <- r })

	for range 2 {
		select {
		case fn := <-tasks:
			fn()
		case <-time.After(5 * time.Second):
			t.Fatal("nothing posted")
		}
	}

	got := [][]dns.SrvRecord{<-results, <-results}
	assert.Equal(t, int32(2), posted.Load())
	assert.ElementsMatch(t, []int{0, 1}, []int{len(got[0]), len(got[1])})
}

func TestEngine_ConcurrentLookupsAreIndependent(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		return Answer{Response: srvReply(t, query, "sip.example.com")}
	}
	e := NewEngine(ft)

	const n = 32
	var wg sync.WaitGroup
	var found atomic.Int32
	for range n {
		wg.Go(func() {
			if len(e.Lookup(context.Background(), "_sip._tcp.example.com")) == 1 {
				found.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(n), found.Load())
	assert.Equal(t, int32(n), ft.closes.Load())
}

func TestEngine_LookupHonoursContext(t *testing.T) {
	ft := &fakeTransport{available: true}
	e := NewEngine(ft, WithTimeout(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	records := e.Lookup(ctx, "_sip._tcp.example.com")
	require.NotNil(t, records)
	assert.Empty(t, records)

	assert.Eventually(t, func() bool { return ft.closes.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestEngine_Options(t *testing.T) {
	e := NewEngine(&fakeTransport{}, WithTimeout(-1), WithPoster(nil), WithLogger(nil))
	assert.Equal(t, DefaultTimeout, e.Timeout())
	assert.Equal(t, "fake", e.TransportName())

	e = NewEngine(&fakeTransport{}, WithTimeout(time.Second), WithStats(nil))
	assert.Equal(t, time.Second, e.Timeout())
	assert.Nil(t, e.Stats())
	// A nil collector still lets lookups finish.
	assert.Empty(t, lookup(t, e, ""))
}

func TestEngine_ErrorRCodeStillCompletes(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func(query []byte) Answer {
		req := new(mdns.Msg)
		require.NoError(t, req.Unpack(query))
		resp := new(mdns.Msg)
		resp.SetRcode(req, mdns.RcodeNameError)
		resp.Truncated = true
		raw, err := resp.Pack()
		require.NoError(t, err)
		return Answer{Response: raw}
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(ft, WithLogger(logger))

	assert.Empty(t, lookup(t, e, "_missing._tcp.example.com"))
	assert.Equal(t, uint64(1), e.Stats().Snapshot().Completed)

	out := logs.String()
	assert.Contains(t, out, `msg="srv answer flags"`)
	assert.Contains(t, out, "rcode=NXDOMAIN")
	assert.Contains(t, out, "qr=true")
	assert.Contains(t, out, "aa=false")
	assert.Contains(t, out, "tc=true")
	assert.Contains(t, out, "rd=true")
	assert.Contains(t, out, "ra=false")
}

func TestEngine_SocketDeadlineCountsAsTimeout(t *testing.T) {
	ft := &fakeTransport{available: true}
	ft.respond = func([]byte) Answer {
		return Answer{Err: fmt.Errorf("udp read: %w", os.ErrDeadlineExceeded)}
	}
	e := NewEngine(ft)

	assert.Empty(t, lookup(t, e, "_sip._tcp.example.com"))
	snap := e.Stats().Snapshot()
	assert.Equal(t, uint64(1), snap.Timeouts)
	assert.Zero(t, snap.TransportErrors)
}
