package types

import "errors"

// ------------------------------
// Response Types
// ------------------------------

// BulkLookupResult pairs one queried postcode with its record. Result is nil
// when the service did not recognise the code; order matches the request.
type BulkLookupResult struct {
	Query  string    `json:"query"`
	Result *Postcode `json:"result"`
}

// BulkReverseGeocodeResult pairs one queried point with the postcodes found
// around it, ordered by increasing distance by the service.
type BulkReverseGeocodeResult struct {
	Query  Geolocation `json:"query"`
	Result []Postcode  `json:"result"`
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the service reports no record for a code.
// Defined here so both the API layer and the public package share one symbol.
var ErrNotFound = errors.New("postcodesio: not found")
