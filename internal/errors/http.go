package errors

import (
	"net/http"

	"github.com/postcodesio/postcodesio-go/internal/types"
)

// NewHTTPError builds an APIError from a non-200 service response. A 404 (or
// a 200 whose result was null, which callers map through NewNotFound) wraps
// types.ErrNotFound so errors.Is(err, ErrNotFound) holds.
func NewHTTPError(op string, statusCode int, message, body string, header http.Header) *APIError {
	e := &APIError{
		Op:         op,
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
		Header:     header,
	}
	if statusCode == http.StatusNotFound {
		e.Underlying = types.ErrNotFound
	}
	return e
}

// NewNotFound marks a successful exchange whose result was null as not found.
func NewNotFound(op string) *APIError {
	return &APIError{Op: op, StatusCode: http.StatusOK, Message: "null result", Underlying: types.ErrNotFound}
}

// NewNetworkError wraps a transport-level failure (DNS, connect, timeout).
func NewNetworkError(op string, err error) *APIError {
	return &APIError{Op: op, Underlying: err}
}
