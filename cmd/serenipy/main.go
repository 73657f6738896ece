// SPDX-License-Identifier: MIT

// Command serenipy plans quiet, safe and flat walking routes.
//
// Usage:
//
//	serenipy serve [-config serenipy.yaml] [-grid N]
//	serenipy route [-config serenipy.yaml] [-grid N] -from LAT,LON -to LAT,LON
//	               [-night] [-hills] [-format coordinates|polyline|geojson]
//
// -grid N replaces the map provider with a synthetic N×N street grid around
// -grid-origin, for demos without network access.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/config"
	"github.com/katalvlaran/serenipy/cost"
	"github.com/katalvlaran/serenipy/httpapi"
	"github.com/katalvlaran/serenipy/routing"
)

var errUsage = errors.New("usage: serenipy serve|route [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "serenipy: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "serve":
		return serve(args[1:])
	case "route":
		return route(args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// common holds the flags shared by every subcommand.
type common struct {
	configPath string
	grid       int
	gridOrigin string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&c.grid, "grid", 0, "serve a synthetic N×N street grid instead of real map data")
	fs.StringVar(&c.gridOrigin, "grid-origin", "48.1374,11.5755", "LAT,LON of the synthetic grid's south-west corner")
}

func (c *common) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}

func serve(args []string) error {
	var c common
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, log, err := c.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := buildService(ctx, cfg, log, c.grid, c.gridOrigin)
	if err != nil {
		return err
	}

	api := httpapi.NewServer(svc,
		httpapi.WithLogger(log),
		httpapi.WithCORSOrigins(cfg.Server.CORSOrigins...),
	)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Server.Addr), zap.String("app_env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	if err = awaitServer(ctx, serveErr, log); err != nil {
		return err
	}

	log.Info("shutting down serenipy...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}
	log.Info("serenipy stopped")

	return nil
}

// awaitServer blocks until ctx is done or the server goroutine reports.
// Only a non-nil error from serveErr is fatal; a closed channel means the
// server stopped on its own.
func awaitServer(ctx context.Context, serveErr <-chan error, log *zap.Logger) error {
	select {
	case err, ok := <-serveErr:
		if ok && err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		log.Warn("HTTP server stopped without error")
	case <-ctx.Done():
	}

	return nil
}

func route(args []string, stdout io.Writer) error {
	var (
		c         common
		from, to  string
		prefs     cost.Preferences
		rawFormat string
	)
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	c.register(fs)
	fs.StringVar(&from, "from", "", "start as LAT,LON")
	fs.StringVar(&to, "to", "", "end as LAT,LON")
	fs.BoolVar(&prefs.NightMode, "night", false, "avoid unlit streets")
	fs.BoolVar(&prefs.AvoidHills, "hills", false, "avoid steep streets")
	fs.StringVar(&rawFormat, "format", httpapi.FormatCoordinates, "coordinates, polyline or geojson")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := httpapi.ParseFormat(rawFormat)
	if err != nil {
		return err
	}
	start, err := parseLatLon(from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	end, err := parseLatLon(to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	cfg, log, err := c.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	svc, err := buildService(ctx, cfg, log, c.grid, c.gridOrigin)
	if err != nil {
		return err
	}
	res, err := svc.Plan(ctx, routing.Request{Start: &start, End: &end, Preferences: prefs})
	if err != nil {
		return err
	}

	if format == httpapi.FormatGeoJSON {
		data, err := httpapi.GeoJSON(res).MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(httpapi.NewRouteResponse("", res, format))
}

// parseLatLon reads "LAT,LON" into a (lon, lat) point.
func parseLatLon(s string) (orb.Point, error) {
	latRaw, lonRaw, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, fmt.Errorf("%q is not LAT,LON", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("latitude %q: %w", latRaw, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("longitude %q: %w", lonRaw, err)
	}

	return orb.Point{lon, lat}, nil
}
