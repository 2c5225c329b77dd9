package resolvers

import "errors"

// Failure classes of an SRV lookup.
//
// Only ErrNotImplemented is ever returned to callers of the method channel.
// The engine records the others in logs and LookupStats and answers with an
// empty record list.
var (
	// ErrNotImplemented means the requested operation is unknown.
	ErrNotImplemented = errors.New("not implemented")

	// ErrEmptyInput means the service name was blank.
	ErrEmptyInput = errors.New("empty service name")

	// ErrUnsupportedPlatform means the selected transport is unavailable on this host.
	ErrUnsupportedPlatform = errors.New("resolver unavailable on this platform")

	// ErrTransport wraps socket and resolver failures.
	ErrTransport = errors.New("transport error")

	// ErrTimeout means no answer arrived within the lookup timeout.
	ErrTimeout = errors.New("lookup timed out")

	// ErrMalformedResponse means the answer was too short or carried another transaction ID.
	ErrMalformedResponse = errors.New("malformed response")
)
