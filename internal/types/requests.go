package types

// ------------------------------
// Request Types
// ------------------------------

// Geolocation is one point in a bulk reverse geocoding request. Latitude and
// Longitude are pointers so a missing coordinate can be told apart from zero;
// use NewGeolocation for the common case. Limit and Radius override the
// call-level values for this point only and are still bounded by the global
// ranges.
type Geolocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Limit     int      `json:"limit,omitempty"`
	Radius    int      `json:"radius,omitempty"`
}

// NewGeolocation builds a Geolocation from plain coordinates.
func NewGeolocation(latitude, longitude float64) Geolocation {
	return Geolocation{Latitude: &latitude, Longitude: &longitude}
}

// ReverseGeocodeRequest holds parameters for a single-point reverse geocode.
// Zero Limit/Radius mean "use the service defaults". WideSearch trades the
// radius for a widened 20km search with the limit clamped to at most 10; it
// applies to postcode searches only.
type ReverseGeocodeRequest struct {
	Latitude   float64
	Longitude  float64
	Limit      int
	Radius     int
	WideSearch bool
}

// BulkLookupRequest is the POST body for a bulk postcode lookup.
type BulkLookupRequest struct {
	Postcodes []string `json:"postcodes"`
}

// BulkReverseGeocodeRequest is the POST body for bulk reverse geocoding.
type BulkReverseGeocodeRequest struct {
	Geolocations []Geolocation `json:"geolocations"`
}

// BulkReverseGeocodeOptions carries the query-string parameters of a bulk
// reverse geocode. Filter attributes are joined into one comma-separated
// `filter` value on the wire.
type BulkReverseGeocodeOptions struct {
	Limit      int
	Radius     int
	WideSearch bool
	Filter     []string
}
