// SPDX-License-Identifier: MIT

package httpapi

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/serenipy/dijkstra"
	"github.com/katalvlaran/serenipy/routing"
)

// statusOf maps a Plan error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return http.StatusUnprocessableEntity
	case errors.Is(err, routing.ErrGeocodeFailure):
		return http.StatusNotFound
	case errors.Is(err, routing.ErrTripTooLong), errors.Is(err, routing.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, routing.ErrMapDataUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
