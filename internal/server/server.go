// Package server exposes résumé extraction and analysis over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/document"
)

const (
	DefaultPort     = 5000
	shutdownTimeout = 10 * time.Second
	// multipartOverhead leaves room for form fields and boundaries around the file.
	multipartOverhead = 1 << 20
)

// Config holds the HTTP server settings.
type Config struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	MaxUploadBytes int64    `mapstructure:"max-upload-bytes"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

// Server serves the REST API.
type Server struct {
	cfg    Config
	runner *analysis.Runner
	loader *document.Loader
	logger *zap.Logger
	engine *gin.Engine
}

// New builds the HTTP server and its routes. Zero config values fall back to defaults.
func New(cfg Config, runner *analysis.Runner, loader *document.Loader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = loader.MaxBytes()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = document.DefaultMaxBytes
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		loader: loader,
		logger: logger,
	}
	s.engine = s.routes()

	return s
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.MaxMultipartMemory = s.cfg.MaxUploadBytes + multipartOverhead

	engine.Use(gin.Recovery(), requestID(), s.accessLog(), cors.New(corsConfig(s.cfg.AllowedOrigins)))

	engine.GET("/", s.health)

	api := engine.Group("/api")
	{
		api.POST("/extract", s.extract)
		api.POST("/analyze", s.analyze)
	}

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestIDHeader}
	cfg.ExposeHeaders = []string{requestIDHeader}

	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 || (len(allowed) == 1 && allowed[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
	}

	return cfg
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
