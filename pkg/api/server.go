// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes the launchpad over HTTP.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luxfi/launchpad/pkg/events"
	"github.com/luxfi/launchpad/pkg/launchpad"
	"github.com/luxfi/launchpad/pkg/log"
	"github.com/luxfi/launchpad/pkg/metric"
)

// Server wires the engine into a gin router.
type Server struct {
	engine  *launchpad.Engine
	hub     *events.Hub
	metrics *metric.Metrics
	log     log.Logger
	router  *gin.Engine
}

// NewServer creates the HTTP surface. hub and metrics are optional.
func NewServer(engine *launchpad.Engine, hub *events.Hub, metrics *metric.Metrics, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NoOp()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:  engine,
		hub:     hub,
		metrics: metrics,
		log:     logger,
		router:  gin.New(),
	}
	s.routes()
	return s
}

// Router returns the underlying handler for serving or tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(gin.Recovery(), s.requestID(), s.observe())

	v1 := s.router.Group("/v1")
	{
		v1.POST("/projects", s.createProject)
		v1.GET("/projects", s.activeProjects)
		v1.GET("/projects/:id", s.getProject)
		v1.POST("/projects/:id/activate", s.activateProject)
		v1.POST("/projects/:id/cancel", s.cancelProject)
		v1.POST("/projects/:id/whitelist", s.addParticipants)
		v1.GET("/projects/:id/whitelist/:user", s.isWhitelisted)
		v1.POST("/projects/:id/contributions", s.contribute)
		v1.POST("/projects/:id/finalize", s.finalize)
		v1.POST("/projects/:id/claims", s.claim)
		v1.POST("/projects/:id/refunds", s.refund)
		v1.GET("/projects/:id/price", s.currentPrice)
		v1.GET("/projects/:id/allocations/:user", s.allocation)
	}

	if s.hub != nil {
		s.router.GET("/v1/events", gin.WrapH(s.hub))
	}
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		s.metrics.ObserveRequest(route, status, time.Since(start).Seconds())
		s.log.Debug("request",
			"route", route, "status", status,
			"duration", time.Since(start).String(),
			"request_id", c.GetString("request_id"))
	}
}
