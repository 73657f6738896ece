// SPDX-License-Identifier: MIT

// Package httpapi exposes routing.Service over HTTP with gin.
//
// Endpoints:
//
//	POST /api/v1/routes  plan a fast and an optimized walking route
//	GET  /healthz        liveness
//	GET  /metrics        Prometheus exposition
//
// Route geometry is returned as [lat, lon] arrays, as an encoded polyline or
// as a GeoJSON FeatureCollection, selected by the request's "format" field.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/serenipy/routing"
)

// Server wires a routing.Service into a gin engine.
type Server struct {
	svc     *routing.Service
	logger  *zap.Logger
	origins []string
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCORSOrigins restricts browser origins; none allows every origin.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = append([]string(nil), origins...) }
}

// NewServer builds the engine and registers every route.
func NewServer(svc *routing.Service, opts ...Option) *Server {
	s := &Server{svc: svc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	corsCfg := cors.DefaultConfig()
	if len(s.origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.origins
	}
	corsCfg.AddAllowHeaders(headerRequestID)
	corsCfg.AddExposeHeaders(headerRequestID)

	r := gin.New()
	r.Use(recovery(s.logger))
	r.Use(requestID())
	r.Use(accessLog(s.logger))
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api := r.Group("/api/v1")
	{
		api.POST("/routes", s.planRoutes)
	}
	s.engine = r

	return s
}

// Handler returns the http.Handler to mount in an http.Server.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// planRoutes handles POST /api/v1/routes.
func (s *Server) planRoutes(c *gin.Context) {
	var body RouteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	format, err := ParseFormat(body.Format)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	res, err := s.svc.Plan(c.Request.Context(), body.toRequest())
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}

	if format == FormatGeoJSON {
		data, err := GeoJSON(res).MarshalJSON()
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, "application/geo+json", data)
		return
	}
	c.JSON(http.StatusOK, NewRouteResponse(c.GetString(ctxRequestID), res, format))
}

// fail writes an error body and logs server-side failures.
func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", c.GetString(ctxRequestID)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), RequestID: c.GetString(ctxRequestID)})
}
