// Package server exposes editor sessions over HTTP. Every mutation goes
// through an editor.Session, so the HTTP surface offers exactly the drops
// the layout policy allows.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithLogger routes request and drop logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPalette sets the palette served by /palette and used by new sessions.
func WithPalette(reg *palette.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.palette = reg
		}
	}
}

// WithRenderers sets the renderers available to /sessions/{id}/render.
func WithRenderers(reg *render.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.renderers = reg
		}
	}
}

// WithDefaultRenderer names the renderer used when the request does not
// pick one.
func WithDefaultRenderer(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.defaultRenderer = name
		}
	}
}

// WithRenderOptions sets the presentation options passed to renderers.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Server) {
		s.renderOptions = opts
	}
}

// WithSeed sets the definition new sessions start from when the request
// carries none.
func WithSeed(def formdef.Definition) Option {
	return func(s *Server) {
		s.seed = def
	}
}

// WithSessionOptions are applied to every session the server creates.
func WithSessionOptions(opts ...editor.Option) Option {
	return func(s *Server) {
		s.sessionOptions = append(s.sessionOptions, opts...)
	}
}

// Server is the HTTP editor API.
type Server struct {
	router          chi.Router
	store           *editor.Store
	palette         *palette.Registry
	renderers       *render.Registry
	defaultRenderer string
	renderOptions   render.RenderOptions
	seed            formdef.Definition
	sessionOptions  []editor.Option
	titles          sync.Map
	validate        *validator.Validate
	metrics         *metrics
	logger          *log.Logger
}

// New builds a server and its routes. Renderers must be supplied with
// WithRenderers for the render endpoint to serve anything.
func New(opts ...Option) *Server {
	s := &Server{
		palette:         palette.NewRegistry(),
		renderers:       render.NewRegistry(),
		defaultRenderer: "html",
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		metrics:         newMetrics(),
		logger:          log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	sessionOpts := append([]editor.Option{
		editor.WithPalette(s.palette),
		editor.WithLogger(s.logger),
	}, s.sessionOptions...)
	s.store = editor.NewStore(sessionOpts...)
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store exposes the live sessions.
func (s *Server) Store() *editor.Store {
	return s.store
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	r.Get("/palette", s.handlePalette)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(html.AssetsFS())))

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.handleListSessions)
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/drag", s.handleDragStart)
			r.Delete("/drag", s.handleDragEnd)
			r.Post("/drop", s.handleDrop)
			r.Post("/undo", s.handleUndo)
			r.Post("/redo", s.handleRedo)
			r.Post("/active", s.handleActive)
			r.Get("/render", s.handleRender)
		})
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}
