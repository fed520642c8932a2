// Package errors provides the failure type returned for every transport or
// service level problem. The raw response detail (status, headers, body) rides
// on the error value itself so callers never need a separate accessor to
// inspect what went wrong.
package errors

import (
	"fmt"
	"net/http"
)

// APIError describes a failed exchange with the service. For HTTP-level
// failures StatusCode, Header and Body carry the raw response; for
// network-level failures StatusCode is zero and Underlying holds the
// transport error.
type APIError struct {
	Op         string      // logical operation, e.g. "lookup postcode"
	StatusCode int         // HTTP status code, 0 for network errors
	Message    string      // service-supplied error message, if any
	Body       string      // raw response body for debugging
	Header     http.Header // response headers, nil for network errors
	Underlying error       // sentinel or transport error, may be nil
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("postcodesio: %s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("postcodesio: %s: HTTP %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("postcodesio: %s: %v", e.Op, e.Underlying)
	}
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *APIError) Unwrap() error { return e.Underlying }
