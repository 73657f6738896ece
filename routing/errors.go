// SPDX-License-Identifier: MIT

package routing

import "errors"

// Sentinel errors for routing requests.
var (
	// ErrInvalidRequest indicates a request that is missing an end point or
	// carries out-of-range coordinates.
	ErrInvalidRequest = errors.New("routing: invalid request")

	// ErrGeocodeFailure indicates an address could not be turned into coordinates.
	ErrGeocodeFailure = errors.New("routing: geocoding failed")

	// ErrTripTooLong indicates the end points are farther apart than the
	// configured walking limit.
	ErrTripTooLong = errors.New("routing: trip too long")

	// ErrMapDataUnavailable indicates the street network could not be fetched.
	ErrMapDataUnavailable = errors.New("routing: map data unavailable")

	// ErrElevationUnavailable indicates elevation lookup failed. Plan never
	// returns it; routing continues with the slope penalty inert.
	ErrElevationUnavailable = errors.New("routing: elevation unavailable")
)

// ErrInvalidConfig indicates a Service configuration value outside its domain.
var ErrInvalidConfig = errors.New("routing: invalid configuration")
