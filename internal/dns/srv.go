package dns

import (
	"cmp"
	"fmt"
	"slices"
)

// SrvRecord is one decoded SRV answer.
//
// Host is the target with its trailing dot removed and is never empty.
// Values are created by DecodeResponse and compared by field equality.
type SrvRecord struct {
	Host     string `json:"host"`
	Port     uint16 `json:"port"`
	Priority uint16 `json:"priority"`
	Weight   uint16 `json:"weight"`
}

// String formats the record in zone-file RDATA order: priority weight port target.
func (r SrvRecord) String() string {
	return fmt.Sprintf("%d %d %d %s.", r.Priority, r.Weight, r.Port, r.Host)
}

// SortSrv returns a copy of records ordered by ascending priority, then
// descending weight, then host and port for a stable presentation.
// It does not implement the RFC 2782 weighted random selection.
func SortSrv(records []SrvRecord) []SrvRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b SrvRecord) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Host, b.Host); c != 0 {
			return c
		}
		return cmp.Compare(a.Port, b.Port)
	})
	return out
}
