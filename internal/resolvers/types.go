// Package resolvers implements the SRV resolution engine and the transports it
// runs on.
//
// Architecture:
//
// The Engine owns the per-call state machine:
//
//	Idle -> Querying -> {Completed | TimedOut | Errored}
//
// Every terminal state yields a record list; failures yield an empty list and
// are only visible through logs and LookupStats.
//
// A Transport is the host capability the engine submits a raw query to. Two
// implementations exist and one is selected at startup (see NewTransport):
//
//   - UDPTransport: a raw UDP socket to a configured resolver
//   - SystemTransport: the resolver configured in resolv.conf, via miekg/dns
//
// Transports answer through a Call: a one-shot future carrying the raw
// response or an error, plus a Close method releasing the socket behind it.
package resolvers

import (
	"context"
	"sync"
)

// Answer is the terminal signal of a transport query: the raw response bytes
// or the error that prevented getting them.
type Answer struct {
	Response []byte
	Err      error
}

// Transport submits a raw DNS query for SRV records.
//
// Implementations must be safe for concurrent use. Query must not block on
// network I/O: it returns a Call whose Done channel later yields exactly one
// Answer. The caller closes the Call on every path.
type Transport interface {
	// Name identifies the transport in logs and stats ("udp", "system").
	Name() string

	// Available reports whether the host can serve queries through this transport.
	Available() bool

	// Query submits query, the encoded SRV question for name.
	Query(ctx context.Context, name string, query []byte) *Call
}

// Call is an in-flight transport query.
type Call struct {
	done chan Answer

	closeOnce sync.Once
	closeFn   func() error
	closeErr  error
}

// NewCall returns a Call that runs closeFn once when closed.
// closeFn may be nil when there is nothing to release.
func NewCall(closeFn func() error) *Call {
	return &Call{done: make(chan Answer, 1), closeFn: closeFn}
}

// FailedCall returns a Call that has already answered with err.
func FailedCall(err error) *Call {
	c := NewCall(nil)
	c.Deliver(Answer{Err: err})
	return c
}

// Done returns the channel receiving the single Answer.
func (c *Call) Done() <-chan Answer {
	return c.done
}

// Deliver publishes the answer. Only the first delivery is kept.
func (c *Call) Deliver(a Answer) {
	select {
	case c.done <- a:
	default:
	}
}

// Close releases the transport handle behind the call. It is safe to call
// more than once; the release itself runs exactly once.
func (c *Call) Close() error {
	c.closeOnce.Do(func() {
		if c.closeFn != nil {
			c.closeErr = c.closeFn()
		}
	})
	return c.closeErr
}
