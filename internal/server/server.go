// Package server exposes the organizer as an upload, edit and download HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock-organizer/internal/config"
	"stock-organizer/internal/logger"
	"stock-organizer/internal/openapi"
	"stock-organizer/internal/organizer"
	"stock-organizer/internal/session"
)

const shutdownTimeout = 5 * time.Second

// Server wires the HTTP routes to the organizer and the session store
type Server struct {
	cfg     *config.Config
	org     *organizer.Organizer
	store   *session.Store
	engine  *gin.Engine
	spec    *openapi.OpenAPI
	version string
	now     func() time.Time
}

// New builds the gin engine with CORS, rate limiting and request logging
func New(cfg *config.Config, org *organizer.Organizer, version string) *Server {
	s := &Server{
		cfg:     cfg,
		org:     org,
		store:   session.NewStore(cfg.Server.SessionTTL),
		version: version,
		now:     time.Now,
	}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.Writer(logger.LevelDebug)))
	r.Use(gin.RecoveryWithWriter(logger.Writer(logger.LevelError)))
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	if cfg.Server.RatePerMinute > 0 {
		r.Use(NewRateLimiter(cfg.Server.RatePerMinute).Middleware())
	}

	routes := s.routes()
	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.handler)
	}

	docs := make([]openapi.Route, 0, len(routes))
	for _, rt := range routes {
		docs = append(docs, rt.Route)
	}
	s.spec = openapi.Build("Stock Organizer API", version, docs)

	s.engine = r
	return s
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Store returns the session store
func (s *Server) Store() *session.Store {
	return s.store
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🌐 Listening on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
