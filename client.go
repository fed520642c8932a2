// Package postcodesio is a Go client for the postcodes.io UK postcode and
// geolocation API. All methods are context-first, issue exactly one HTTP
// round trip, and validate range-bounded parameters locally before any
// network call. The Client holds no mutable state and is safe for concurrent
// use.
package postcodesio

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/postcodesio/postcodesio-go/internal/api"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// DefaultBaseURL is the public endpoint of the service.
const DefaultBaseURL = "https://api.postcodes.io"

const libraryVersion = "0.1.0"

const defaultUserAgent = "postcodesio-go/" + libraryVersion

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// envOverrides are read once at construction. Functional options take
// precedence over the environment.
type envOverrides struct {
	BaseURL string        `envconfig:"BASE_URL"`
	Timeout time.Duration `envconfig:"TIMEOUT"`
	Debug   bool          `envconfig:"DEBUG"`
}

// New constructs a Client for the public service. The base URL, HTTP timeout
// and debug logging can be overridden via POSTCODESIO_BASE_URL,
// POSTCODESIO_TIMEOUT and POSTCODESIO_DEBUG, or via functional options.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: defaultUserAgent,
	}

	var env envOverrides
	if err := envconfig.Process("postcodesio", &env); err != nil {
		return nil, fmt.Errorf("postcodesio: read environment: %w", err)
	}
	if env.BaseURL != "" {
		c.baseURL = env.BaseURL
	}
	if env.Timeout > 0 {
		c.http.Timeout = env.Timeout
	}
	// Auto-enable debug via env variable without changing code. Appended last
	// so it wraps whatever transport the caller's options install.
	if env.Debug || debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")

	c.wrapTransportWithUserAgent()
	return c, nil
}

// wrapTransportWithUserAgent wraps the HTTP client's transport so every
// outgoing request carries the library's User-Agent header.
func (c *Client) wrapTransportWithUserAgent() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &userAgentTransport{base: base, userAgent: c.userAgent}
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Postcodes
// --------------------------------------------------------------------

// LookupPostcode retrieves the full record for one postcode. Unknown codes
// yield an error satisfying IsNotFound.
func (c *Client) LookupPostcode(ctx context.Context, code string) (*Postcode, error) {
	return api.LookupPostcode(ctx, c.http, c.baseURL, code)
}

// BulkLookupPostcodes resolves 1–100 postcodes in one request. Results come
// back in input order with a nil Result for unrecognised codes. Optional
// filter attributes restrict the fields of each returned record.
func (c *Client) BulkLookupPostcodes(ctx context.Context, codes []string, filter ...string) ([]BulkLookupResult, error) {
	return api.BulkLookupPostcodes(ctx, c.http, c.baseURL, codes, filter)
}

// ReverseGeocodePostcodes finds postcodes around a point, ordered nearest
// first by the service.
func (c *Client) ReverseGeocodePostcodes(ctx context.Context, req ReverseGeocodeRequest) ([]Postcode, error) {
	return api.ReverseGeocodePostcodes(ctx, c.http, c.baseURL, req)
}

// BulkReverseGeocode resolves 1–100 points in one request; each point may
// override the call-level limit/radius within the global bounds.
func (c *Client) BulkReverseGeocode(ctx context.Context, geolocations []Geolocation, opts BulkReverseGeocodeOptions) ([]BulkReverseGeocodeResult, error) {
	return api.BulkReverseGeocode(ctx, c.http, c.baseURL, geolocations, opts)
}

// QueryPostcodes runs a free-text search; a query that matches nothing
// returns an empty slice, not an error.
func (c *Client) QueryPostcodes(ctx context.Context, query string, limit int) ([]Postcode, error) {
	return api.QueryPostcodes(ctx, c.http, c.baseURL, query, limit)
}

// ValidatePostcode reports whether code is a valid, currently-assigned
// postcode.
func (c *Client) ValidatePostcode(ctx context.Context, code string) (bool, error) {
	return api.ValidatePostcode(ctx, c.http, c.baseURL, code)
}

// AutocompletePostcode lists full postcodes extending the given prefix.
func (c *Client) AutocompletePostcode(ctx context.Context, prefix string, limit int) ([]string, error) {
	return api.AutocompletePostcode(ctx, c.http, c.baseURL, prefix, limit)
}

// NearestPostcodes lists postcodes near the given one, nearest first.
func (c *Client) NearestPostcodes(ctx context.Context, code string, limit, radius int) ([]Postcode, error) {
	return api.NearestPostcodes(ctx, c.http, c.baseURL, code, limit, radius)
}

// RandomPostcode samples one random postcode.
func (c *Client) RandomPostcode(ctx context.Context) (*Postcode, error) {
	return api.RandomPostcode(ctx, c.http, c.baseURL, "")
}

// RandomPostcodeInOutcode samples one random postcode within an outcode.
// An outcode absent from the dataset returns (nil, nil): the request
// succeeded but no candidate exists.
func (c *Client) RandomPostcodeInOutcode(ctx context.Context, outcode string) (*Postcode, error) {
	return api.RandomPostcode(ctx, c.http, c.baseURL, outcode)
}

// ScottishPostcode retrieves Scottish Postcode Directory attributes for a
// code; non-Scottish codes yield an error satisfying IsNotFound.
func (c *Client) ScottishPostcode(ctx context.Context, code string) (*ScottishPostcode, error) {
	return api.ScottishPostcode(ctx, c.http, c.baseURL, code)
}

// TerminatedPostcode retrieves termination metadata for a retired postcode.
// Codes that are still active yield an error satisfying IsNotFound.
func (c *Client) TerminatedPostcode(ctx context.Context, code string) (*TerminatedPostcode, error) {
	return api.TerminatedPostcode(ctx, c.http, c.baseURL, code)
}

// --------------------------------------------------------------------
// Outcodes
// --------------------------------------------------------------------

// LookupOutcode retrieves the aggregated record for one outward code.
func (c *Client) LookupOutcode(ctx context.Context, code string) (*Outcode, error) {
	return api.LookupOutcode(ctx, c.http, c.baseURL, code)
}

// ReverseGeocodeOutcodes finds outcodes around a point. The radius may reach
// 25km; wide search is not available for outcodes.
func (c *Client) ReverseGeocodeOutcodes(ctx context.Context, req ReverseGeocodeRequest) ([]Outcode, error) {
	return api.ReverseGeocodeOutcodes(ctx, c.http, c.baseURL, req)
}

// NearestOutcodes lists outcodes near the given one, nearest first.
func (c *Client) NearestOutcodes(ctx context.Context, code string, limit, radius int) ([]Outcode, error) {
	return api.NearestOutcodes(ctx, c.http, c.baseURL, code, limit, radius)
}

// --------------------------------------------------------------------
// Places
// --------------------------------------------------------------------

// LookupPlace retrieves one place record by its OS Open Names code.
func (c *Client) LookupPlace(ctx context.Context, code string) (*Place, error) {
	return api.LookupPlace(ctx, c.http, c.baseURL, code)
}

// QueryPlaces runs a free-text place-name search.
func (c *Client) QueryPlaces(ctx context.Context, query string, limit int) ([]Place, error) {
	return api.QueryPlaces(ctx, c.http, c.baseURL, query, limit)
}

// RandomPlace samples one random place record.
func (c *Client) RandomPlace(ctx context.Context) (*Place, error) {
	return api.RandomPlace(ctx, c.http, c.baseURL)
}

// NewGeolocation builds a bulk reverse-geocoding item from plain coordinates.
func NewGeolocation(latitude, longitude float64) Geolocation {
	return types.NewGeolocation(latitude, longitude)
}
