// SPDX-License-Identifier: MIT

// Package config loads the serenipy server configuration from one YAML file.
//
// Every section has working defaults; a file only needs the keys it
// changes. ${VAR} references are expanded from the environment before
// decoding, and unknown keys are rejected.
//
//	app_env: production
//	server:
//	  addr: ":8080"
//	  cors_origins: ["https://maps.example.org"]
//	providers:
//	  osm_file: /data/munich.osm
//	  nominatim_user_agent: "serenipy (ops@example.org)"
//	routing:
//	  max_trip_meters: 5000
//	cost:
//	  night_penalty: 5
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/elevation"
	"github.com/katalvlaran/serenipy/geocode"
	"github.com/katalvlaran/serenipy/osmnet"
	"github.com/katalvlaran/serenipy/routing"
)

// Environments accepted in app_env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ErrInvalidConfig indicates a value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete server configuration.
type Config struct {
	AppEnv    string          `yaml:"app_env"`
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Routing   routing.Config  `yaml:"routing"`
	Cost      cost.Config     `yaml:"cost"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// CORSOrigins lists allowed browser origins; empty allows all.
	CORSOrigins []string `yaml:"cors_origins"`
}

// ProvidersConfig selects and configures the external collaborators.
type ProvidersConfig struct {
	// OSMFile, when set, serves every area from this local .osm extract
	// instead of querying Overpass.
	OSMFile     string `yaml:"osm_file"`
	OverpassURL string `yaml:"overpass_url"`

	// ElevationURL empty disables elevation; avoid_hills then degrades.
	ElevationURL     string        `yaml:"elevation_url"`
	ElevationTimeout time.Duration `yaml:"elevation_timeout"`

	// NominatimURL empty disables address lookup.
	NominatimURL       string `yaml:"nominatim_url"`
	NominatimUserAgent string `yaml:"nominatim_user_agent"`
	GeocodeCacheSize   int    `yaml:"geocode_cache_size"`
}

// Default returns the stock configuration: development mode on :8080 using
// the public Overpass, Open-Elevation and Nominatim services.
func Default() Config {
	return Config{
		AppEnv: EnvDevelopment,
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Providers: ProvidersConfig{
			OverpassURL:        osmnet.DefaultOverpassURL,
			ElevationURL:       elevation.DefaultURL,
			ElevationTimeout:   elevation.DefaultTimeout,
			NominatimURL:       geocode.DefaultURL,
			NominatimUserAgent: geocode.DefaultUserAgent,
			GeocodeCacheSize:   256,
		},
		Routing: routing.DefaultConfig(),
		Cost:    cost.DefaultConfig(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		return fmt.Errorf("%w: app_env=%q must be %q or %q", ErrInvalidConfig, c.AppEnv, EnvDevelopment, EnvProduction)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":         c.Server.ReadTimeout,
		"server.write_timeout":        c.Server.WriteTimeout,
		"server.idle_timeout":         c.Server.IdleTimeout,
		"server.shutdown_timeout":     c.Server.ShutdownTimeout,
		"providers.elevation_timeout": c.Providers.ElevationTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s=%v must be > 0", ErrInvalidConfig, name, d)
		}
	}
	if c.Providers.OSMFile == "" && c.Providers.OverpassURL == "" {
		return fmt.Errorf("%w: providers need osm_file or overpass_url", ErrInvalidConfig)
	}
	if c.Providers.GeocodeCacheSize < 0 {
		return fmt.Errorf("%w: providers.geocode_cache_size=%d must be ≥ 0", ErrInvalidConfig, c.Providers.GeocodeCacheSize)
	}
	if err := c.Routing.Validate(); err != nil {
		return fmt.Errorf("%w: routing: %w", ErrInvalidConfig, err)
	}
	if err := c.Cost.Validate(); err != nil {
		return fmt.Errorf("%w: cost: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Parse expands environment references in r and decodes it over Default.
// Unknown keys are rejected. An empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load reads the YAML file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
