// SPDX-License-Identifier: MIT

package httpapi

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/routing"
)

// Geometry formats accepted in RouteRequest.Format.
const (
	FormatCoordinates = "coordinates"
	FormatPolyline    = "polyline"
	FormatGeoJSON     = "geojson"
)

// LatLon is a WGS84 position.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteRequest is the body of POST /api/v1/routes. Each end is given as
// coordinates or as an address.
type RouteRequest struct {
	Start        *LatLon `json:"start,omitempty"`
	End          *LatLon `json:"end,omitempty"`
	StartAddress string  `json:"start_address,omitempty"`
	EndAddress   string  `json:"end_address,omitempty"`
	NightMode    bool    `json:"night_mode"`
	AvoidHills   bool    `json:"avoid_hills"`
	Format       string  `json:"format,omitempty"` // default coordinates
}

// RouteBody describes one route. Exactly one of Coordinates and Polyline is
// set, depending on the requested format.
type RouteBody struct {
	LengthMeters float64       `json:"length_m"`
	Cost         float64       `json:"cost"`
	Nodes        []core.NodeID `json:"nodes"`
	Coordinates  [][2]float64  `json:"coordinates,omitempty"` // [lat, lon]
	Polyline     string        `json:"polyline,omitempty"`
}

// RouteResponse is the JSON answer for the coordinates and polyline formats.
type RouteResponse struct {
	RequestID   string           `json:"request_id"`
	Fast        RouteBody        `json:"fast"`
	Optimized   RouteBody        `json:"optimized"`
	Start       LatLon           `json:"start"`
	End         LatLon           `json:"end"`
	Preferences cost.Preferences `json:"preferences"`
	Area        string           `json:"area,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ParseFormat validates a geometry format; empty means FormatCoordinates.
func ParseFormat(f string) (string, error) {
	switch f {
	case "", FormatCoordinates:
		return FormatCoordinates, nil
	case FormatPolyline, FormatGeoJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

func (r RouteRequest) toRequest() routing.Request {
	req := routing.Request{
		StartAddress: r.StartAddress,
		EndAddress:   r.EndAddress,
		Preferences:  cost.Preferences{NightMode: r.NightMode, AvoidHills: r.AvoidHills},
	}
	if r.Start != nil {
		req.Start = &orb.Point{r.Start.Lon, r.Start.Lat}
	}
	if r.End != nil {
		req.End = &orb.Point{r.End.Lon, r.End.Lat}
	}

	return req
}

// NewRouteResponse renders res in the coordinates or polyline format.
func NewRouteResponse(requestID string, res *routing.Result, format string) RouteResponse {
	var area string
	if res.Footprint.RadiusMeters > 0 {
		area = res.Footprint.String()
	}

	return RouteResponse{
		RequestID:   requestID,
		Fast:        newRouteBody(res.Fast, format),
		Optimized:   newRouteBody(res.Optimized, format),
		Start:       LatLon{Lat: res.Start.Lat(), Lon: res.Start.Lon()},
		End:         LatLon{Lat: res.End.Lat(), Lon: res.End.Lon()},
		Preferences: res.Preferences,
		Area:        area,
		Warnings:    res.Warnings,
	}
}

func newRouteBody(r routing.Route, format string) RouteBody {
	body := RouteBody{
		LengthMeters: r.LengthMeters,
		Cost:         r.Cost,
		Nodes:        r.Path.Nodes,
	}
	coords := make([][2]float64, len(r.Coordinates))
	for i, p := range r.Coordinates {
		coords[i] = [2]float64{p.Lat(), p.Lon()}
	}
	if format == FormatPolyline {
		body.Polyline = encodePolyline(coords)
	} else {
		body.Coordinates = coords
	}

	return body
}

// encodePolyline renders [lat, lon] pairs in Google's encoded polyline format.
func encodePolyline(coords [][2]float64) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c[0], c[1]}
	}

	return string(polyline.EncodeCoords(flat))
}

// GeoJSON renders both routes as LineStrings plus the two end points.
func GeoJSON(res *routing.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range []struct {
		name  string
		route routing.Route
	}{
		{"fast", res.Fast},
		{"optimized", res.Optimized},
	} {
		f := geojson.NewFeature(orb.LineString(r.route.Coordinates))
		f.Properties["route"] = r.name
		f.Properties["length_m"] = r.route.LengthMeters
		f.Properties["cost"] = r.route.Cost
		fc.Append(f)
	}
	start := geojson.NewFeature(res.Start)
	start.Properties["role"] = "start"
	fc.Append(start)
	end := geojson.NewFeature(res.End)
	end.Properties["role"] = "end"
	fc.Append(end)

	return fc
}
