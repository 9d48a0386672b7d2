package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"crypto-advisor/internal/analysis"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/store"
)

// Server exposes the analysis service over HTTP.
type Server struct {
	cfg     *store.Config
	service *analysis.Service
	engine  *gin.Engine
}

func New(cfg *store.Config, service *analysis.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	engine.Use(cors.New(corsCfg))

	s := &Server{cfg: cfg, service: service, engine: engine}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/trend", s.handleTrend)
	s.engine.GET("/btc", s.handleBTC)
	s.engine.GET("/investment", s.handleInvestment)
	s.engine.GET("/arbitrage", s.handleArbitrage)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.engine,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info(shutdownCtx, "HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
