package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSrvRecordString(t *testing.T) {
	r := SrvRecord{Host: "xmpp.example.com", Port: 5222, Priority: 10, Weight: 20}
	assert.Equal(t, "10 20 5222 xmpp.example.com.", r.String())
}

func TestSortSrv(t *testing.T) {
	in := []SrvRecord{
		{Host: "c.example", Port: 1, Priority: 20, Weight: 0},
		{Host: "b.example", Port: 1, Priority: 10, Weight: 5},
		{Host: "a.example", Port: 1, Priority: 10, Weight: 50},
		{Host: "a.example", Port: 0, Priority: 10, Weight: 5},
	}

	got := SortSrv(in)

	assert.Equal(t, []SrvRecord{
		{Host: "a.example", Port: 1, Priority: 10, Weight: 50},
		{Host: "a.example", Port: 0, Priority: 10, Weight: 5},
		{Host: "b.example", Port: 1, Priority: 10, Weight: 5},
		{Host: "c.example", Port: 1, Priority: 20, Weight: 0},
	}, got)
	assert.Equal(t, "c.example", in[0].Host, "input is not modified")
}
