// Package channel is the inbound method-call surface of the SRV resolver.
//
// An embedding layer (the HTTP API, a CLI, a host application bridge) sends a
// MethodCall naming the method and its arguments; Handle dispatches it to the
// engine and returns a plain list of maps so the result can be serialized by
// whatever codec the embedding layer uses.
package channel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/idna"

	"github.com/jroosing/hydrasrv/internal/dns"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// MethodResolveSrv is the only method the channel recognizes.
const MethodResolveSrv = "resolveSrv"

// ArgName is the argument carrying the service name of a resolveSrv call.
const ArgName = "name"

// MethodCall is a single inbound request.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// Lookuper resolves SRV records. *resolvers.Engine satisfies it.
type Lookuper interface {
	Lookup(ctx context.Context, name string) []dns.SrvRecord
}

// Handler dispatches method calls to a Lookuper.
type Handler struct {
	lookup Lookuper
	logger *slog.Logger
}

// NewHandler creates a Handler. A nil logger means slog.Default().
func NewHandler(l Lookuper, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{lookup: l, logger: logger}
}

// Handle runs call.
//
// For resolveSrv the result is a []map[string]any with keys host, port,
// priority and weight, in wire order. A missing or non-string name yields an
// empty list. Any other method returns resolvers.ErrNotImplemented.
func (h *Handler) Handle(ctx context.Context, call MethodCall) (any, error) {
	switch call.Method {
	case MethodResolveSrv:
		return h.resolveSrv(ctx, call.Args), nil
	default:
		h.logger.Debug("channel method not implemented", "method", call.Method)
		return nil, fmt.Errorf("%w: %q", resolvers.ErrNotImplemented, call.Method)
	}
}

func (h *Handler) resolveSrv(ctx context.Context, args map[string]any) []map[string]any {
	name, ok := args[ArgName].(string)
	if !ok {
		return []map[string]any{}
	}
	ascii, err := ToASCII(name)
	if err != nil {
		h.logger.Debug("srv name rejected", "name", name, "error", err)
		return []map[string]any{}
	}
	return Records(h.lookup.Lookup(ctx, ascii))
}

// ToASCII converts an internationalized service name to its A-label form.
//
// Punycode rules are used rather than the lookup profile: SRV owner names
// start with underscore labels such as "_sip", which STD3 rules reject.
func ToASCII(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	return idna.Punycode.ToASCII(name)
}

// Records converts SRV records to the channel's result shape.
func Records(records []dns.SrvRecord) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]any{
			"host":     r.Host,
			"port":     int(r.Port),
			"priority": int(r.Priority),
			"weight":   int(r.Weight),
		})
	}
	return out
}
