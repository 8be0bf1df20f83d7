package ui

import (
	"context"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"launchdash/internal"
	"launchdash/internal/api"
	"launchdash/internal/dataset"
	"launchdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// DefaultTitle heads the dashboard when no title is configured.
const DefaultTitle = "SpaceX Launch Records Dashboard"

// Options tunes the dashboard page.
type Options struct {
	Title       string
	PayloadStep float64
	NotesFile   string
}

// Server represents the web server for the launch dashboard
type Server struct {
	router    *gin.Engine
	templates *template.Template
	files     fs.FS
	logger    *internal.Logger

	result *dataset.Result
	opts   Options
	notes  template.HTML
}

// NewServer creates a new web server instance. files must hold ui/templates and ui/static.
func NewServer(files fs.FS, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))
	return &Server{
		router: router,
		files:  files,
		logger: logger,
	}
}

// Initialize sets up the server over a loaded dataset. It must run before Start.
func (s *Server) Initialize(result *dataset.Result, opts Options) error {
	if result == nil || result.Dataset == nil {
		return fmt.Errorf("dashboard requires a loaded dataset")
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.PayloadStep <= 0 {
		opts.PayloadStep = 1000
	}
	s.result = result
	s.opts = opts

	if err := s.parseTemplates(); err != nil {
		return err
	}
	notes, err := s.loadNotes()
	if err != nil {
		return err
	}
	s.notes = notes

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	// Chart API lives in its own chi router.
	chartAPI := api.NewHandler(s.result, api.Options{PayloadStep: s.opts.PayloadStep}, s.logger).Router()
	s.router.Any("/api/*path", gin.WrapH(http.StripPrefix("/api", chartAPI)))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled, then shuts down within shutdownTimeout.
func (s *Server) Start(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[Server] Starting launch dashboard on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("[Server] Shutting down (timeout %s)", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	}
}
