package types

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Service-imposed parameter bounds, inclusive on both ends. These are business
// rules of the remote API, not transport limits, and are checked locally
// before any request is sent.
const (
	LimitMin = 1
	LimitMax = 100

	WideSearchLimitMax = 10

	PostcodeRadiusMin = 1
	PostcodeRadiusMax = 2000

	OutcodeRadiusMin = 1
	OutcodeRadiusMax = 25000

	BatchSizeMin = 1
	BatchSizeMax = 100

	LatitudeMin = 49.85
	LatitudeMax = 60.85

	LongitudeMin = -8.638
	LongitudeMax = 52.483333
)

// RangeError reports a caller-supplied value outside a service-imposed bound.
// It is returned before any network call is made.
type RangeError struct {
	Param string
	Min   float64
	Max   float64
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("postcodesio: %s %v out of range [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// MissingFieldError reports a conditionally-required field that was not set.
type MissingFieldError struct {
	Param string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("postcodesio: %s is required", e.Param)
}

// checkInt is only ever called with a non-zero value; ozzo threshold rules
// treat zero as "empty" and would skip it.
func checkInt(param string, value, min, max int) error {
	if err := validation.Validate(value, validation.Min(min), validation.Max(max)); err != nil {
		return &RangeError{Param: param, Min: float64(min), Max: float64(max), Value: float64(value)}
	}
	return nil
}

// checkFloat compares directly: zero is a legitimate coordinate value (the
// Greenwich meridian sits inside the service's longitude range), so the
// empty-value skipping of ozzo's threshold rules cannot be used here.
func checkFloat(param string, value, min, max float64) error {
	if value < min || value > max {
		return &RangeError{Param: param, Min: min, Max: max, Value: value}
	}
	return nil
}

// ValidateLimit checks a result-count limit. Zero means "not set" and is
// accepted; the service default applies.
func ValidateLimit(limit int) error {
	if limit == 0 {
		return nil
	}
	return checkInt("limit", limit, LimitMin, LimitMax)
}

// ValidatePostcodeRadius checks a postcode search radius in metres.
func ValidatePostcodeRadius(radius int) error {
	if radius == 0 {
		return nil
	}
	return checkInt("radius", radius, PostcodeRadiusMin, PostcodeRadiusMax)
}

// ValidateOutcodeRadius checks an outcode search radius in metres.
func ValidateOutcodeRadius(radius int) error {
	if radius == 0 {
		return nil
	}
	return checkInt("radius", radius, OutcodeRadiusMin, OutcodeRadiusMax)
}

// ValidateBatchSize checks the number of items in a bulk request. Unlike the
// scalar parameters there is no "not set": an empty batch is rejected.
func ValidateBatchSize(param string, size int) error {
	if err := validation.Validate(size, validation.Required, validation.Min(BatchSizeMin), validation.Max(BatchSizeMax)); err != nil {
		return &RangeError{Param: param, Min: BatchSizeMin, Max: BatchSizeMax, Value: float64(size)}
	}
	return nil
}

// ValidateLatitude checks a latitude against the service's UK bounding box.
func ValidateLatitude(lat float64) error {
	return checkFloat("latitude", lat, LatitudeMin, LatitudeMax)
}

// ValidateLongitude checks a longitude against the service's UK bounding box.
func ValidateLongitude(lon float64) error {
	return checkFloat("longitude", lon, LongitudeMin, LongitudeMax)
}

// Validate checks one bulk geolocation item: coordinates are mandatory, the
// optional per-item overrides follow the global postcode ranges.
func (g Geolocation) Validate() error {
	if g.Latitude == nil {
		return &MissingFieldError{Param: "latitude"}
	}
	if g.Longitude == nil {
		return &MissingFieldError{Param: "longitude"}
	}
	if err := ValidateLatitude(*g.Latitude); err != nil {
		return err
	}
	if err := ValidateLongitude(*g.Longitude); err != nil {
		return err
	}
	if err := ValidateLimit(g.Limit); err != nil {
		return err
	}
	return ValidatePostcodeRadius(g.Radius)
}

// ClampWideSearchLimit applies the wide-search limit rule: the effective
// limit is forced into [1, 10] regardless of what the caller asked for.
func ClampWideSearchLimit(limit int) int {
	if limit < LimitMin || limit > WideSearchLimitMax {
		return WideSearchLimitMax
	}
	return limit
}
