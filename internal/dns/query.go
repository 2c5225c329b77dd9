package dns

import (
	"crypto/rand"
	"encoding/binary"
)

// EncodeQuery builds a complete DNS query message asking for the SRV records
// of name.
//
// Layout:
//
//	header   id, flags 0x0100 (standard query, RD), QDCOUNT=1, AN/NS/AR=0
//	question QNAME, QTYPE=33 (SRV), QCLASS=1 (IN)
//
// EncodeQuery never fails; see EncodeName for how name is split into labels.
func EncodeQuery(name string, id uint16) []byte {
	h := Header{ID: id, Flags: RDFlag, QDCount: 1}
	q := Question{Name: name, Type: uint16(TypeSRV), Class: uint16(ClassIN)}

	out := make([]byte, 0, HeaderSize+len(name)+6)
	out = append(out, h.Marshal()...)
	out = append(out, q.Marshal()...)
	return out
}

// NewTransactionID returns a random 16-bit transaction ID.
func NewTransactionID() uint16 {
	var b [2]byte
	_, _ = rand.Read(b[:]) // never fails since Go 1.24
	return binary.BigEndian.Uint16(b[:])
}
