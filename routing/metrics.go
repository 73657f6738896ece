// SPDX-License-Identifier: MIT

package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of serenipy_plan_requests_total.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeGeocode     = "geocode_failure"
	outcomeTooLong     = "too_long"
	outcomeMapData     = "map_data_unavailable"
	outcomeNoPath      = "no_path"
	outcomeOtherFailed = "error"
)

// Process-wide metrics, registered once on the default registry.
var (
	planRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serenipy_plan_requests_total",
			Help: "Route planning requests by outcome",
		},
		[]string{"outcome"},
	)

	planDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "serenipy_plan_duration_seconds",
			Help: "Wall time of a route planning request",
			// Cache hits answer in milliseconds; cold areas wait on Overpass.
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	areaCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serenipy_area_cache_total",
			Help: "Area graph cache lookups by result",
		},
		[]string{"result"},
	)

	elevationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "serenipy_elevation_failures_total",
			Help: "Elevation enrichments abandoned after a provider error",
		},
	)
)
