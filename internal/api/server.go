// Package api exposes the analysis engines over HTTP: JSON in, JSON envelope
// out, with report rendering as the one non-JSON surface.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stratcore/internal"
	"stratcore/internal/config"
)

// Server is the public analysis API server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *internal.Logger
}

// NewServer builds the router and wires every endpoint
func NewServer(cfg config.ServerConfig, handlers *Handlers, log *internal.Logger) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(corsMiddleware())
	router.Use(recoveryMiddleware(log.With("api").Error))

	// Engine endpoints are POST-only; anything else on a known route is a
	// 405, not a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/ev/rank", handlers.RankEV)
		v1.POST("/sensitivity/run", handlers.RunSensitivity)
		v1.POST("/symmetry/discover", handlers.DiscoverSymmetries)
		v1.POST("/transfer/adapt", handlers.AdaptStrategy)
		v1.POST("/recalibrate", handlers.Recalibrate)
		v1.GET("/knowledge/domains", handlers.ListDomains)
		v1.GET("/report/:runId", handlers.GetReport)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		log: log.With("api"),
	}
}

// Router exposes the underlying router, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it fails or is shut down
func (s *Server) Start() error {
	s.log.Info("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
