// SPDX-License-Identifier: MIT
//
// File: overpass.go
// Role: routing.MapProvider backed by an Overpass API endpoint.

package osmnet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/core"
	"github.com/katalvlaran/serenipy/routing"
)

// DefaultOverpassURL is the public Overpass interpreter.
const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// Overpass server-side query timeout and matching client timeout.
const (
	defaultQueryTimeout = 25 * time.Second
	clientTimeoutSlack  = 5 * time.Second
)

// ErrOverpass indicates a non-200 answer from the Overpass endpoint.
var ErrOverpass = errors.New("osmnet: overpass request failed")

// Overpass fetches street networks around a footprint.
type Overpass struct {
	endpoint     string
	client       *http.Client
	queryTimeout time.Duration
	logger       *zap.Logger
}

// OverpassOption configures an Overpass client.
type OverpassOption func(*Overpass)

// WithEndpoint overrides the interpreter URL.
func WithEndpoint(u string) OverpassOption {
	return func(o *Overpass) {
		if u != "" {
			o.endpoint = u
		}
	}
}

// WithHTTPClient sets the HTTP client; nil is ignored.
func WithHTTPClient(c *http.Client) OverpassOption {
	return func(o *Overpass) {
		if c != nil {
			o.client = c
		}
	}
}

// WithQueryTimeout sets the server-side [timeout:] of generated queries.
// Panics unless d is at least one second.
func WithQueryTimeout(d time.Duration) OverpassOption {
	if d < time.Second {
		panic(fmt.Sprintf("osmnet: WithQueryTimeout(%v) must be ≥ 1s", d))
	}

	return func(o *Overpass) { o.queryTimeout = d }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) OverpassOption {
	return func(o *Overpass) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOverpass builds a client for DefaultOverpassURL unless overridden.
func NewOverpass(opts ...OverpassOption) *Overpass {
	o := &Overpass{
		endpoint:     DefaultOverpassURL,
		queryTimeout: defaultQueryTimeout,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.queryTimeout + clientTimeoutSlack}
	}

	return o
}

// Query renders the Overpass QL for fp: every highway way within the
// footprint radius plus the nodes it references.
func (o *Overpass) Query(fp routing.Footprint) string {
	return fmt.Sprintf(`[out:xml][timeout:%d];way["highway"](around:%.0f,%.6f,%.6f);(._;>;);out body;`,
		int(o.queryTimeout/time.Second), fp.RadiusMeters, fp.Center.Lat(), fp.Center.Lon())
}

// FetchNetwork implements routing.MapProvider.
//
// Errors:
//   - ErrOverpass: transport failure or non-200 status.
//   - ErrDecode: the response body is not OSM XML.
func (o *Overpass) FetchNetwork(ctx context.Context, fp routing.Footprint) (*core.Graph, error) {
	started := time.Now()
	form := url.Values{"data": {o.Query(fp)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverpass, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverpass, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s", ErrOverpass, resp.Status)
	}

	g, stats, err := Decode(ctx, resp.Body)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("overpass network fetched",
		zap.Stringer("area", fp),
		zap.Int("ways", stats.Ways),
		zap.Int("skipped_ways", stats.Skipped),
		zap.Int("components", stats.Components),
		zap.Int("nodes", stats.Nodes),
		zap.Int("edges", stats.Edges),
		zap.Duration("took", time.Since(started)),
	)

	return g, nil
}
