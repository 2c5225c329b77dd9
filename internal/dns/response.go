package dns

import "strings"

// Fixed sizes of the wire structures walked by DecodeResponse.
const (
	questionTrailerSize = 4  // QTYPE + QCLASS
	rrFixedSize         = 10 // TYPE + CLASS + TTL + RDLENGTH
	srvMinRDataSize     = 7  // PRIORITY + WEIGHT + PORT + at least one name byte
)

// DecodeResponse extracts the SRV answers from a raw DNS response.
//
// The buffer is parsed in place. Parsing rules:
//   - fewer than HeaderSize bytes, or an ID different from expectedID, yields nil
//   - QDCOUNT questions are skipped; running past the buffer yields nil
//   - ANCOUNT answers are walked in order; a record whose fixed header or RDATA
//     does not fit ends the walk and the records decoded so far are returned
//   - TYPE=SRV records with RDLENGTH >= 7 are decoded, their target read with
//     compression pointers followed and a single trailing dot removed; an empty
//     target is dropped
//   - every other record is skipped by its RDLENGTH
//
// Authority and additional sections are ignored. Response flags and RCODE are
// not inspected: a response without SRV answers decodes to an empty list.
func DecodeResponse(data []byte, expectedID uint16) []SrvRecord {
	if len(data) < HeaderSize {
		return nil
	}
	if readUint16(data, 0) != expectedID {
		return nil
	}
	qdCount := int(readUint16(data, 4))
	anCount := int(readUint16(data, 6))

	off := HeaderSize
	for range qdCount {
		off = skipName(data, off) + questionTrailerSize
		if off > len(data) {
			return nil
		}
	}

	var records []SrvRecord
	for range anCount {
		off = skipName(data, off)
		if off+rrFixedSize > len(data) {
			return records
		}
		rrType := RecordType(readUint16(data, off))
		rdLength := int(readUint16(data, off+8))
		off += rrFixedSize
		if off+rdLength > len(data) {
			return records
		}

		if rrType == TypeSRV && rdLength >= srvMinRDataSize {
			if rec, ok := decodeSRV(data, off); ok {
				records = append(records, rec)
			}
		}
		off += rdLength
	}
	return records
}

// decodeSRV decodes the SRV RDATA starting at off (RFC 2782):
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|                   PRIORITY                    |
//	|                    WEIGHT                     |
//	|                     PORT                      |
//	/                    TARGET                     /
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
func decodeSRV(data []byte, off int) (SrvRecord, bool) {
	target, _ := readName(data, off+6)
	host := strings.TrimSuffix(target, ".")
	if host == "" {
		return SrvRecord{}, false
	}
	return SrvRecord{
		Host:     host,
		Port:     readUint16(data, off+4),
		Priority: readUint16(data, off),
		Weight:   readUint16(data, off+2),
	}, true
}
