package postcodesio

import (
	apierrs "github.com/postcodesio/postcodesio-go/internal/errors"
	"github.com/postcodesio/postcodesio-go/internal/types"
)

// Type aliases re-export the wire/domain types so callers only ever import
// this package.
type (
	Postcode           = types.Postcode
	Codes              = types.Codes
	Outcode            = types.Outcode
	Place              = types.Place
	TerminatedPostcode = types.TerminatedPostcode
	ScottishPostcode   = types.ScottishPostcode
	ScottishCodes      = types.ScottishCodes

	Geolocation               = types.Geolocation
	ReverseGeocodeRequest     = types.ReverseGeocodeRequest
	BulkReverseGeocodeOptions = types.BulkReverseGeocodeOptions

	BulkLookupResult         = types.BulkLookupResult
	BulkReverseGeocodeResult = types.BulkReverseGeocodeResult

	APIError          = apierrs.APIError
	RangeError        = types.RangeError
	MissingFieldError = types.MissingFieldError
)

// Service-imposed parameter bounds, re-exported for callers that clamp or
// validate inputs themselves.
const (
	LimitMin           = types.LimitMin
	LimitMax           = types.LimitMax
	WideSearchLimitMax = types.WideSearchLimitMax
	PostcodeRadiusMin  = types.PostcodeRadiusMin
	PostcodeRadiusMax  = types.PostcodeRadiusMax
	OutcodeRadiusMin   = types.OutcodeRadiusMin
	OutcodeRadiusMax   = types.OutcodeRadiusMax
	BatchSizeMin       = types.BatchSizeMin
	BatchSizeMax       = types.BatchSizeMax
	LatitudeMin        = types.LatitudeMin
	LatitudeMax        = types.LatitudeMax
	LongitudeMin       = types.LongitudeMin
	LongitudeMax       = types.LongitudeMax
)
