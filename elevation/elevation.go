// SPDX-License-Identifier: MIT

// Package elevation resolves ground elevation through an Open-Elevation
// compatible lookup API. Client implements routing.ElevationProvider.
package elevation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Defaults for the public Open-Elevation service.
const (
	DefaultURL     = "https://api.open-elevation.com/api/v1/lookup"
	DefaultTimeout = 5 * time.Second
)

// ErrLookup indicates a failed or inconsistent lookup.
var ErrLookup = errors.New("elevation: lookup failed")

type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lookupRequest struct {
	Locations []location `json:"locations"`
}

type lookupResponse struct {
	Results []struct {
		location
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// Client posts batches of points to the lookup endpoint.
type Client struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the lookup endpoint.
func WithURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.url = u
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// Panics if d ≤ 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("elevation: WithTimeout(%v) must be > 0", d))
	}

	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the HTTP client, which then owns timeouts; nil is
// ignored.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.client = h
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a Client for DefaultURL with DefaultTimeout.
func New(opts ...Option) *Client {
	c := &Client{
		url:     DefaultURL,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

// Elevations returns one value in metres per point, in order, using a single
// HTTP call. Callers batch; the client does not split.
//
// Errors:
//   - ErrLookup: transport failure, non-200 status, undecodable body or a
//     result count different from len(points).
func (c *Client) Elevations(ctx context.Context, points []orb.Point) ([]float64, error) {
	if len(points) == 0 {
		return []float64{}, nil
	}

	body := lookupRequest{Locations: make([]location, len(points))}
	for i, p := range points {
		body.Locations[i] = location{Latitude: p.Lat(), Longitude: p.Lon()}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrLookup, resp.Status)
	}

	var out lookupResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLookup, err)
	}
	if len(out.Results) != len(points) {
		return nil, fmt.Errorf("%w: asked for %d points, got %d", ErrLookup, len(points), len(out.Results))
	}

	meters := make([]float64, len(out.Results))
	for i, r := range out.Results {
		meters[i] = r.Elevation
	}
	c.logger.Debug("elevation batch resolved",
		zap.Int("points", len(points)),
		zap.Duration("took", time.Since(started)),
	)

	return meters, nil
}
