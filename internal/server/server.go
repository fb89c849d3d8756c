// Package server exposes the quiz generator over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mcqgen/internal/quizgen"
)

// Options configures the HTTP server.
type Options struct {
	Addr    string
	GinMode string

	// AllowedOrigins restricts CORS. Empty allows all origins.
	AllowedOrigins []string

	// ShutdownTimeout bounds graceful shutdown. Default: 5s.
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end of a quizgen.Generator.
type Server struct {
	opts   Options
	engine *gin.Engine
	log    zerolog.Logger
}

// New builds the router. Nothing listens until Run is called.
func New(opts Options, gen quizgen.Generator, log zerolog.Logger) *Server {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	setupValidator()

	s := &Server{opts: opts, log: log}
	s.engine = s.routes(gen)
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(gen quizgen.Generator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(s.opts.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.opts.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", headerRequestID}
	corsConfig.ExposeHeaders = []string{headerRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(requestID())
	r.Use(accessLog(s.log))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MCQ Generator API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &generateHandler{gen: gen, log: s.log}
	api := r.Group("/api")
	{
		api.POST("/generate", h.Generate)
	}

	return r
}

// Run listens on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Generation can take as long as the provider timeout.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.log.Info().Msg("shutdown complete")
	return err
}
