// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"errors"
	"fmt"
)

// TransportError reports a failed network exchange: connection errors,
// timeouts, and non-success HTTP statuses. Transient; callers may retry
// after a backoff. An HTTP 429 also lands here, with Status preserved
// should an explicit rate-limit error ever be split out.
type TransportError struct {
	// Op names the E-utilities call, e.g. "esearch".
	Op string

	// Status is the HTTP status code, 0 when the request never
	// completed.
	Status int

	// Err is the underlying error, nil for bare status failures.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StructuralError reports a response that could not be parsed into the
// minimum required shape. Not retried: the same payload would fail again.
type StructuralError struct {
	// Op names the E-utilities call whose response was malformed.
	Op string

	// Err is the underlying parse error.
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsStructural reports whether err is (or wraps) a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
