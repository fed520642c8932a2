package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	errs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// LookupPostcode retrieves the full record for one postcode.
func LookupPostcode(ctx context.Context, hc HTTPClient, baseURL, code string) (*types.Postcode, error) {
	const op = "lookup postcode"
	res, err := get[*types.Postcode](ctx, hc, baseURL, "/postcodes/"+url.PathEscape(code), nil, op)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errs.NewNotFound(op)
	}
	return res, nil
}

// BulkLookupPostcodes resolves up to 100 postcodes in one request. The
// response preserves input order; unknown codes come back with a nil Result.
// Filter attributes, when given, are sent as one comma-separated query value.
func BulkLookupPostcodes(ctx context.Context, hc HTTPClient, baseURL string, codes, filter []string) ([]types.BulkLookupResult, error) {
	if err := types.ValidateBatchSize("postcodes", len(codes)); err != nil {
		return nil, err
	}
	q := url.Values{}
	if len(filter) > 0 {
		q.Set("filter", strings.Join(filter, ","))
	}
	body := types.BulkLookupRequest{Postcodes: codes}
	return post[[]types.BulkLookupResult](ctx, hc, baseURL, "/postcodes", q, body, "bulk lookup postcodes")
}

// ReverseGeocodePostcodes finds postcodes around a point, nearest first. The
// service expects the abbreviated `lat`/`lon` query keys. In wide-search mode
// the radius is not sent (the service widens it to 20km itself) and the
// effective limit is forced into [1, 10].
func ReverseGeocodePostcodes(ctx context.Context, hc HTTPClient, baseURL string, req types.ReverseGeocodeRequest) ([]types.Postcode, error) {
	if err := types.ValidateLatitude(req.Latitude); err != nil {
		return nil, err
	}
	if err := types.ValidateLongitude(req.Longitude); err != nil {
		return nil, err
	}
	if err := types.ValidateLimit(req.Limit); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("lat", formatCoord(req.Latitude))
	q.Set("lon", formatCoord(req.Longitude))
	if req.WideSearch {
		q.Set("wideSearch", "true")
		q.Set("limit", strconv.Itoa(types.ClampWideSearchLimit(req.Limit)))
	} else {
		if err := types.ValidatePostcodeRadius(req.Radius); err != nil {
			return nil, err
		}
		if req.Limit != 0 {
			q.Set("limit", strconv.Itoa(req.Limit))
		}
		if req.Radius != 0 {
			q.Set("radius", strconv.Itoa(req.Radius))
		}
	}
	return get[[]types.Postcode](ctx, hc, baseURL, "/postcodes", q, "reverse geocode postcodes")
}

// BulkReverseGeocode resolves up to 100 points in one request. Call-level
// limit/radius/widesearch/filter travel on the query string while the points
// travel in the JSON body; the service does not merge the two. Note the
// lowercase `widesearch` key: the bulk endpoint spells it differently from
// the single-point `wideSearch`.
func BulkReverseGeocode(ctx context.Context, hc HTTPClient, baseURL string, geolocations []types.Geolocation, opts types.BulkReverseGeocodeOptions) ([]types.BulkReverseGeocodeResult, error) {
	if err := types.ValidateBatchSize("geolocations", len(geolocations)); err != nil {
		return nil, err
	}
	for _, g := range geolocations {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}
	if err := types.ValidateLimit(opts.Limit); err != nil {
		return nil, err
	}
	if err := types.ValidatePostcodeRadius(opts.Radius); err != nil {
		return nil, err
	}

	q := url.Values{}
	if opts.Limit != 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Radius != 0 {
		q.Set("radius", strconv.Itoa(opts.Radius))
	}
	if opts.WideSearch {
		q.Set("widesearch", "true")
	}
	if len(opts.Filter) > 0 {
		q.Set("filter", strings.Join(opts.Filter, ","))
	}
	body := types.BulkReverseGeocodeRequest{Geolocations: geolocations}
	return post[[]types.BulkReverseGeocodeResult](ctx, hc, baseURL, "/postcodes", q, body, "bulk reverse geocode")
}

// QueryPostcodes runs a free-text postcode search. An empty result is not an
// error; it decodes to an empty slice.
func QueryPostcodes(ctx context.Context, hc HTTPClient, baseURL, query string, limit int) ([]types.Postcode, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("query", query)
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return get[[]types.Postcode](ctx, hc, baseURL, "/postcodes", q, "query postcodes")
}

// ValidatePostcode reports whether the code is a valid, currently-assigned
// postcode.
func ValidatePostcode(ctx context.Context, hc HTTPClient, baseURL, code string) (bool, error) {
	path := "/postcodes/" + url.PathEscape(code) + "/validate"
	return get[bool](ctx, hc, baseURL, path, nil, "validate postcode")
}

// AutocompletePostcode lists full postcodes sharing the given prefix.
func AutocompletePostcode(ctx context.Context, hc HTTPClient, baseURL, prefix string, limit int) ([]string, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}
	q := url.Values{}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/postcodes/" + url.PathEscape(prefix) + "/autocomplete"
	return get[[]string](ctx, hc, baseURL, path, q, "autocomplete postcode")
}

// NearestPostcodes lists postcodes near the given one, nearest first. Whether
// the input code itself appears is up to the service.
func NearestPostcodes(ctx context.Context, hc HTTPClient, baseURL, code string, limit, radius int) ([]types.Postcode, error) {
	if err := types.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if err := types.ValidatePostcodeRadius(radius); err != nil {
		return nil, err
	}
	q := url.Values{}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if radius != 0 {
		q.Set("radius", strconv.Itoa(radius))
	}
	path := "/postcodes/" + url.PathEscape(code) + "/nearest"
	return get[[]types.Postcode](ctx, hc, baseURL, path, q, "nearest postcodes")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
