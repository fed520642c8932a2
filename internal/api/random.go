package api

import (
	"context"
	"net/url"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// RandomPostcode samples one random postcode. A non-empty outcode narrows the
// sample to that outward code; when the filter matches nothing the service
// answers 200 with a null result, which is returned as (nil, nil) — success
// with no applicable record, distinct from failure.
func RandomPostcode(ctx context.Context, hc HTTPClient, baseURL, outcode string) (*types.Postcode, error) {
	const op = "random postcode"
	q := url.Values{}
	if outcode != "" {
		q.Set("outcode", outcode)
	}
	res, err := get[*types.Postcode](ctx, hc, baseURL, "/random/postcodes", q, op)
	if err != nil {
		return nil, err
	}
	if res == nil && outcode == "" {
		// Unfiltered sampling never legitimately comes back empty.
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}

// RandomPlace samples one random place record.
func RandomPlace(ctx context.Context, hc HTTPClient, baseURL string) (*types.Place, error) {
	const op = "random place"
	res, err := get[*types.Place](ctx, hc, baseURL, "/random/places", nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}
