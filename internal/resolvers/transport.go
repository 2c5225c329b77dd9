package resolvers

import (
	"fmt"
	"strings"
)

// Transport kinds accepted by NewTransport.
const (
	TransportAuto   = "auto"
	TransportSystem = "system"
	TransportUDP    = "udp"
)

// NewTransport selects the transport named by kind.
//
// "auto" picks the system resolver when the host exposes one and falls back
// to plain UDP towards server otherwise. An empty kind means "auto".
func NewTransport(kind, server, resolvConf string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", TransportAuto:
		sys := NewSystemTransport(resolvConf)
		if sys.Available() {
			return sys, nil
		}
		return NewUDPTransport(server), nil
	case TransportSystem:
		return NewSystemTransport(resolvConf), nil
	case TransportUDP:
		return NewUDPTransport(server), nil
	default:
		return nil, fmt.Errorf("unknown transport %q (want auto, system or udp)", kind)
	}
}
