package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// ErrWideSearchUnsupported is returned when a wide search is requested for
// outcodes; the service only offers the mode for postcode reverse geocoding.
var ErrWideSearchUnsupported = errors.New("postcodesio: wide search is not supported for outcodes")

// LookupOutcode retrieves the aggregated record for one outward code.
func LookupOutcode(ctx context.Context, hc HTTPClient, baseURL, code string) (*types.Outcode, error) {
	const op = "lookup outcode"
	res, err := get[*types.Outcode](ctx, hc, baseURL, "/outcodes/"+url.PathEscape(code), nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}

// ReverseGeocodeOutcodes finds outcodes around a point, nearest first. The
// outcode radius range is wider than the postcode one (up to 25km) and there
// is no wide-search mode.
func ReverseGeocodeOutcodes(ctx context.Context, hc HTTPClient, baseURL string, req types.ReverseGeocodeRequest) ([]types.Outcode, error) {
	if req.WideSearch {
		return nil, ErrWideSearchUnsupported
	}
	if err := types.ValidateLatitude(req.Latitude); err != nil {
		return nil, err
	}
	if err := types.ValidateLongitude(req.Longitude); err != nil {
		return nil, err
	}
	if err := types.ValidateLimit(req.Limit); err != nil {
		return nil, err
	}
	if err := types.ValidateOutcodeRadius(req.Radius); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("lat", formatCoord(req.Latitude))
	q.Set("lon", formatCoord(req.Longitude))
	if req.Limit != 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Radius != 0 {
		q.Set("radius", strconv.Itoa(req.Radius))
	}
	return get[[]types.Outcode](ctx, hc, baseURL, "/outcodes", q, "reverse geocode outcodes")
}

// NearestOutcodes lists outcodes near the given one, nearest first.
func NearestOutcodes(ctx context.Context, hc HTTPClient, baseURL, code string, limit, radius int) ([]types.Outcode, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if err := types.ValidateOutcodeRadius(radius); err != nil {
		return nil, err
	}
	q := url.Values{}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if radius != 0 {
		q.Set("radius", strconv.Itoa(radius))
	}
	path := "/outcodes/" + url.PathEscape(code) + "/nearest"
	return get[[]types.Outcode](ctx, hc, baseURL, path, q, "nearest outcodes")
}
