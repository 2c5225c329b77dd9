package dns

import "encoding/binary"

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
//
// Each question specifies what the client is asking for:
//   - Name: The domain name being queried
//   - Type: The record type requested (SRV for this package)
//   - Class: Usually ClassIN (Internet)
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// Marshal serializes the question to DNS wire format.
func (q Question) Marshal() []byte {
	name := EncodeName(q.Name)
	b := make([]byte, len(name)+4)
	copy(b, name)
	binary.BigEndian.PutUint16(b[len(name):], q.Type)
	binary.BigEndian.PutUint16(b[len(name)+2:], q.Class)
	return b
}
