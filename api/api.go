package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"communityforge/api/handler"
	"communityforge/config"
	"communityforge/database"
)

// Server is the HTTP front of CommunityForge.
type Server struct {
	cfg        *config.Config
	ginEngine  *gin.Engine
	httpServer *http.Server
}

// New creates the API server. The store and notifier are injected so tests
// can run against an in-memory store and a fake webhook sink.
func New(cfg *config.Config, store database.Store, notifier handler.Notifier, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}

	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(),
		gzip.Gzip(gzip.DefaultCompression),
	)

	s := &Server{
		cfg:       cfg,
		ginEngine: engine,
	}
	s.setupRoutes(store, notifier)

	return s, nil
}

func (s *Server) setupRoutes(store database.Store, notifier handler.Notifier) {
	h := handler.New(s.cfg, store, notifier)

	s.ginEngine.GET("/health", h.Health)

	api := s.ginEngine.Group("/api")
	api.POST("/communities", h.CreateCommunity)
	api.GET("/communities", h.ListCommunities)
	api.GET("/communities/:id", h.GetCommunity)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
}

// Run starts the HTTP server and blocks until it is shut down.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
