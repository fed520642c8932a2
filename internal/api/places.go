package api

import (
	"context"
	"net/url"
	"strconv"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// LookupPlace retrieves one OS Open Names place record by its code.
func LookupPlace(ctx context.Context, hc HTTPClient, baseURL, code string) (*types.Place, error) {
	const op = "lookup place"
	res, err := get[*types.Place](ctx, hc, baseURL, "/places/"+url.PathEscape(code), nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}

// QueryPlaces runs a free-text place-name search.
func QueryPlaces(ctx context.Context, hc HTTPClient, baseURL, query string, limit int) ([]types.Place, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("query", query)
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return get[[]types.Place](ctx, hc, baseURL, "/places", q, "query places")
}
