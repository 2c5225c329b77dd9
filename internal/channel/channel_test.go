package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/hydrasrv/internal/dns"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

type stubLookuper struct {
	names   []string
	records []dns.SrvRecord
}

func (s *stubLookuper) Lookup(_ context.Context, name string) []dns.SrvRecord {
	s.names = append(s.names, name)
	if name == "" {
		return []dns.SrvRecord{}
	}
	return s.records
}

func TestHandle_ResolveSrv(t *testing.T) {
	stub := &stubLookuper{records: []dns.SrvRecord{
		{Host: "sip.example.com", Port: 5060, Priority: 10, Weight: 20},
		{Host: "backup.example.com", Port: 5061, Priority: 20, Weight: 0},
	}}
	h := NewHandler(stub, nil)

	res, err := h.Handle(context.Background(), MethodCall{
		Method: MethodResolveSrv,
		Args:   map[string]any{"name": "_sip._tcp.example.com"},
	})
	require.NoError(t, err)

	list, ok := res.([]map[string]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, map[string]any{"host": "sip.example.com", "port": 5060, "priority": 10, "weight": 20}, list[0])
	assert.Equal(t, "backup.example.com", list[1]["host"])
	assert.Equal(t, []string{"_sip._tcp.example.com"}, stub.names)
}

func TestHandle_UnknownMethod(t *testing.T) {
	stub := &stubLookuper{}
	h := NewHandler(stub, nil)

	res, err := h.Handle(context.Background(), MethodCall{Method: "resolveA"})
	require.ErrorIs(t, err, resolvers.ErrNotImplemented)
	assert.Nil(t, res)
	assert.Empty(t, stub.names)
}

func TestHandle_BadNameArgument(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"nil args", nil},
		{"missing name", map[string]any{"service": "x"}},
		{"number", map[string]any{"name": 42}},
		{"nil name", map[string]any{"name": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLookuper{records: []dns.SrvRecord{{Host: "x", Port: 1}}}
			h := NewHandler(stub, nil)

			res, err := h.Handle(context.Background(), MethodCall{Method: MethodResolveSrv, Args: tt.args})
			require.NoError(t, err)
			list, ok := res.([]map[string]any)
			require.True(t, ok)
			assert.NotNil(t, list)
			assert.Empty(t, list)
			assert.Empty(t, stub.names)
		})
	}
}

func TestHandle_EmptyNameReachesEngine(t *testing.T) {
	stub := &stubLookuper{}
	h := NewHandler(stub, nil)

	res, err := h.Handle(context.Background(), MethodCall{
		Method: MethodResolveSrv,
		Args:   map[string]any{"name": ""},
	})
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, []string{""}, stub.names)
}

func TestHandle_InternationalName(t *testing.T) {
	stub := &stubLookuper{}
	h := NewHandler(stub, nil)

	_, err := h.Handle(context.Background(), MethodCall{
		Method: MethodResolveSrv,
		Args:   map[string]any{"name": "_sip._tcp.bücher.example"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"_sip._tcp.xn--bcher-kva.example"}, stub.names)
}

func TestToASCII(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  ", ""},
		{"_xmpp-server._tcp.example.org", "_xmpp-server._tcp.example.org"},
		{"_sip._udp.münchen.de", "_sip._udp.xn--mnchen-3ya.de"},
		{"example.com.", "example.com."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToASCII(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecords_EmptyIsNotNil(t *testing.T) {
	out := Records(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestEngineSatisfiesLookuper(t *testing.T) {
	var _ Lookuper = resolvers.NewEngine(nil)
}
