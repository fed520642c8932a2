package api

import (
	"context"
	"net/url"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// TerminatedPostcode retrieves termination metadata for a retired postcode.
// Codes that are still active, or were never assigned, yield ErrNotFound.
func TerminatedPostcode(ctx context.Context, hc HTTPClient, baseURL, code string) (*types.TerminatedPostcode, error) {
	const op = "lookup terminated postcode"
	res, err := get[*types.TerminatedPostcode](ctx, hc, baseURL, "/terminated_postcodes/"+url.PathEscape(code), nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}
