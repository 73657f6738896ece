// SPDX-License-Identifier: MIT

package elevation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/serenipy/elevation"
)

type loc struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// echoServer answers with elevation = latitude*10 for every location.
func echoServer(t *testing.T, drop int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Locations []loc `json:"locations"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		type result struct {
			loc
			Elevation float64 `json:"elevation"`
		}
		var res struct {
			Results []result `json:"results"`
		}
		for _, l := range req.Locations[:len(req.Locations)-drop] {
			res.Results = append(res.Results, result{loc: l, Elevation: l.Latitude * 10})
		}
		_ = json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestElevations(t *testing.T) {
	srv := echoServer(t, 0)
	c := elevation.New(elevation.WithURL(srv.URL))

	got, err := c.Elevations(context.Background(), []orb.Point{{11.5, 48.1}, {11.6, 47.0}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{481, 470}, got, 1e-9)
}

func TestElevations_Empty(t *testing.T) {
	c := elevation.New(elevation.WithURL("http://127.0.0.1:0"))
	got, err := c.Elevations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestElevations_CountMismatch(t *testing.T) {
	srv := echoServer(t, 1)
	c := elevation.New(elevation.WithURL(srv.URL))

	_, err := c.Elevations(context.Background(), []orb.Point{{11.5, 48.1}, {11.6, 47.0}})
	require.ErrorIs(t, err, elevation.ErrLookup)
}

func TestElevations_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	_, err := elevation.New(elevation.WithURL(srv.URL)).Elevations(context.Background(), []orb.Point{{0, 0}})
	require.ErrorIs(t, err, elevation.ErrLookup)
	assert.Contains(t, err.Error(), "504")
}

func TestElevations_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := elevation.New(elevation.WithURL(srv.URL), elevation.WithTimeout(50*time.Millisecond))
	_, err := c.Elevations(context.Background(), []orb.Point{{0, 0}})
	require.ErrorIs(t, err, elevation.ErrLookup)
}

func TestWithTimeout_Panics(t *testing.T) {
	assert.Panics(t, func() { elevation.WithTimeout(0) })
}
