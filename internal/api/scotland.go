package api

import (
	"context"
	"net/url"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// ScottishPostcode retrieves Scottish Postcode Directory attributes for a
// code. Postcodes outside Scotland yield ErrNotFound.
func ScottishPostcode(ctx context.Context, hc HTTPClient, baseURL, code string) (*types.ScottishPostcode, error) {
	const op = "lookup scottish postcode"
	res, err := get[*types.ScottishPostcode](ctx, hc, baseURL, "/scotland/postcodes/"+url.PathEscape(code), nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}
