package resolvers

import (
	"context"
	"errors"
	"fmt"
	"net"

	mdns "github.com/miekg/dns"

	"github.com/jroosing/hydrasrv/internal/pool"
)

// DefaultResolvConf is where the host's stub resolver configuration lives.
const DefaultResolvConf = "/etc/resolv.conf"

// SystemTransport asks the first nameserver configured for the host.
//
// The resolver configuration is read on every query so edits to resolv.conf
// take effect without a restart. Only the first nameserver is tried and only
// over UDP: there is no failover between servers and no TCP retry. The answer
// is handed back byte for byte, so a partially valid response still reaches
// the decoder.
type SystemTransport struct {
	confPath string
	bufs     *pool.Buffers

	// port overrides the port from resolv.conf (tests).
	port string
}

// NewSystemTransport creates a transport reading confPath, or
// DefaultResolvConf when confPath is empty.
func NewSystemTransport(confPath string) *SystemTransport {
	if confPath == "" {
		confPath = DefaultResolvConf
	}
	return &SystemTransport{
		confPath: confPath,
		bufs:     pool.NewBuffers(DefaultUDPRecvSize),
	}
}

// Name implements Transport.
func (s *SystemTransport) Name() string { return "system" }

// ConfPath returns the resolver configuration file in use.
func (s *SystemTransport) ConfPath() string { return s.confPath }

// Available implements Transport. It reports whether the platform exposes a
// readable resolver configuration.
func (s *SystemTransport) Available() bool {
	return resolverConfigReadable(s.confPath)
}

// Query implements Transport.
func (s *SystemTransport) Query(ctx context.Context, name string, query []byte) *Call {
	server, err := s.nameserver()
	if err != nil {
		return FailedCall(err)
	}

	// Only well-formed queries go out; the answer itself is never parsed here.
	if err := new(mdns.Msg).Unpack(query); err != nil {
		return FailedCall(fmt.Errorf("unpack query for %s: %w", name, err))
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", server)
	if err != nil {
		return FailedCall(err)
	}
	call := NewCall(conn.Close)
	go exchangeDatagram(conn, s.bufs, query, call)
	return call
}

// nameserver returns "host:port" of the first configured nameserver.
func (s *SystemTransport) nameserver() (string, error) {
	cfg, err := mdns.ClientConfigFromFile(s.confPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.confPath, err)
	}
	if len(cfg.Servers) == 0 {
		return "", errors.New("no nameserver configured in " + s.confPath)
	}
	port := cfg.Port
	if s.port != "" {
		port = s.port
	}
	return net.JoinHostPort(cfg.Servers[0], port), nil
}
