package postcodesio

import (
	"errors"

	"github.com/postcodesio/postcodesio-go/internal/api"
	apierrs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// ErrNotFound is wrapped by every error that means "the service has no record
// for this code": a 404, or a 200 whose result was null on a single lookup.
var ErrNotFound = types.ErrNotFound

// ErrWideSearchUnsupported is returned when ReverseGeocodeOutcodes is asked
// for a wide search; the service only offers the mode for postcodes.
var ErrWideSearchUnsupported = api.ErrWideSearchUnsupported

// IsNotFound reports whether err means the looked-up record does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// AsAPIError extracts the transport/service failure detail from err, if any.
// The returned value carries the raw status code, headers and body of the
// failed exchange, so callers needing more than the not-found signal can
// inspect exactly what the service answered.
func AsAPIError(err error) (*APIError, bool) {
	var ae *apierrs.APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// AsRangeError extracts the parameter-bound violation from err, if any.
// Range errors are produced locally, before any network call.
func AsRangeError(err error) (*RangeError, bool) {
	var re *types.RangeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
