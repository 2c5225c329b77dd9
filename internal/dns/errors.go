// Package dns implements the DNS wire format needed to resolve SRV records.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (message layout,
//     label encoding, name compression)
//   - RFC 2782: A DNS RR for specifying the location of services (DNS SRV)
//
// The codec is deliberately small. EncodeQuery builds a single-question query
// for QTYPE=SRV, QCLASS=IN. DecodeResponse walks a raw response in place using
// offset cursors and extracts the SRV answers.
//
// Error Handling:
//
// Decoding never fails. Every read is bounds-checked against the buffer and an
// out-of-range read stops parsing, returning whatever was decoded so far.
// Header parsing, used by tools that want the raw counts, wraps ErrDNSError.
package dns

import "errors"

var (
	// ErrDNSError is a sentinel error type for DNS protocol violations.
	// Wrap this with fmt.Errorf("context: %w", ErrDNSError) to add context.
	ErrDNSError = errors.New("dns wire error")
)
