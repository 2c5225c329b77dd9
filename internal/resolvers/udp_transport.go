package resolvers

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/jroosing/hydrasrv/internal/pool"
)

// UDP transport defaults.
const (
	DefaultUDPServer   = "8.8.8.8"
	DefaultUDPRecvSize = 4096
)

// UDPTransport sends the raw query over a fresh UDP socket to one resolver.
//
// Each Query dials its own socket, so concurrent lookups never share a
// connection or a transaction ID space. The socket is closed by Call.Close,
// which also unblocks a pending read.
type UDPTransport struct {
	server string
	bufs   *pool.Buffers
}

// NewUDPTransport creates a UDP transport for server, given as "host" or
// "host:port". Port 53 is used when none is given.
func NewUDPTransport(server string) *UDPTransport {
	return &UDPTransport{
		server: normalizeServer(server),
		bufs:   pool.NewBuffers(DefaultUDPRecvSize),
	}
}

// normalizeServer coerces a DNS port onto server when it has none.
func normalizeServer(server string) string {
	server = strings.TrimSpace(server)
	if server == "" {
		server = DefaultUDPServer
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(strings.Trim(server, "[]"), "53")
	}
	return server
}

// Name implements Transport.
func (u *UDPTransport) Name() string { return "udp" }

// Server returns the resolver address queries are sent to.
func (u *UDPTransport) Server() string { return u.server }

// Available implements Transport. Plain UDP sockets exist on every platform.
func (u *UDPTransport) Available() bool { return u.server != "" }

// Query implements Transport.
func (u *UDPTransport) Query(ctx context.Context, _ string, query []byte) *Call {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", u.server)
	if err != nil {
		return FailedCall(err)
	}
	call := NewCall(conn.Close)
	go exchangeDatagram(conn, u.bufs, query, call)
	return call
}

// exchangeDatagram writes the query and reads a single datagram back,
// delivering the bytes exactly as received.
//
// No read deadline is set: the engine owns the timeout and unblocks the read
// by closing the Call.
func exchangeDatagram(conn net.Conn, bufs *pool.Buffers, query []byte, call *Call) {
	server := conn.RemoteAddr().String()
	if _, err := conn.Write(query); err != nil {
		call.Deliver(Answer{Err: fmt.Errorf("udp write to %s: %w", server, err)})
		return
	}

	buf := bufs.Get()
	defer bufs.Put(buf)

	n, err := conn.Read(*buf)
	if err != nil {
		call.Deliver(Answer{Err: fmt.Errorf("udp read from %s: %w", server, err)})
		return
	}
	// Copy out of the pooled buffer before it is reused.
	resp := make([]byte, n)
	copy(resp, (*buf)[:n])
	call.Deliver(Answer{Response: resp})
}
