// SPDX-License-Identifier: MIT

// Package geocode resolves free-form addresses through a Nominatim search
// endpoint. Client implements routing.Geocoder.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Defaults for the public Nominatim service. Its usage policy requires an
// identifying User-Agent.
const (
	DefaultURL       = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "serenipy/1.0"
	DefaultTimeout   = 10 * time.Second
)

var (
	// ErrNotFound indicates the address matched nothing.
	ErrNotFound = errors.New("geocode: address not found")

	// ErrLookup indicates a transport failure or an unusable answer.
	ErrLookup = errors.New("geocode: lookup failed")
)

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Client queries Nominatim with format=jsonv2&limit=1.
type Client struct {
	endpoint  string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
	cache     *lru.Cache[string, orb.Point]
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the search endpoint.
func WithURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.endpoint = u
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the HTTP client; nil is ignored.
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

// WithCache remembers up to size resolved addresses. Panics if size < 1.
func WithCache(size int) Option {
	cache, err := lru.New[string, orb.Point](size)
	if err != nil {
		panic(fmt.Sprintf("geocode: WithCache(%d): %v", size, err))
	}

	return func(c *Client) { c.cache = cache }
}

// New builds a Client for DefaultURL.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:  DefaultURL,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Geocode returns the (lon, lat) of the best match for address.
//
// Errors:
//   - ErrNotFound: blank address or no match.
//   - ErrLookup: transport failure, non-200 status or malformed answer.
func (c *Client) Geocode(ctx context.Context, address string) (orb.Point, error) {
	key := strings.TrimSpace(address)
	if key == "" {
		return orb.Point{}, fmt.Errorf("%w: blank address", ErrNotFound)
	}
	if c.cache != nil {
		if p, ok := c.cache.Get(key); ok {
			return p, nil
		}
	}

	q := url.Values{"q": {key}, "format": {"jsonv2"}, "limit": {"1"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, fmt.Errorf("%w: status %s", ErrLookup, resp.Status)
	}

	var places []place
	if err = json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return orb.Point{}, fmt.Errorf("%w: decode: %w", ErrLookup, err)
	}
	if len(places) == 0 {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	p, err := places[0].point()
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %q: %w", ErrLookup, key, err)
	}
	if c.cache != nil {
		c.cache.Add(key, p)
	}
	c.logger.Debug("address geocoded",
		zap.String("address", key),
		zap.String("match", places[0].DisplayName),
	)

	return p, nil
}

func (p place) point() (orb.Point, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("lat: %w", err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("lon: %w", err)
	}

	return orb.Point{lon, lat}, nil
}
