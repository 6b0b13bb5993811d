package render

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vizlite-org/vizlite/chart"
)

// ============================================================================
// PREVIEW SERVER — Serves a rendered chart over HTTP
// ============================================================================
// Routes:
//   /           the chart as an interactive HTML page
//   /spec.json  the raw spec
//   /metrics    render counters
//
// The chart comes from a provider callback so watch mode can rebuild it when
// the underlying data file changes; renders are cached until invalidated.
// ============================================================================

// ChartProvider builds the chart to serve. Called lazily on first request
// and again after every watch invalidation.
type ChartProvider func() (*chart.Chart, error)

// Server serves a chart for browser preview.
type Server struct {
	addr      string
	provider  ChartProvider
	renderer  Renderer
	log       *slog.Logger
	watchPath string

	mu     sync.Mutex
	cached []byte

	registry     *prometheus.Registry
	renders      prometheus.Counter
	renderErrors prometheus.Counter
}

// ServerOption configures a Server via functional options.
type ServerOption func(*Server)

// WithAddr sets the listen address (default "localhost:8000").
func WithAddr(addr string) ServerOption {
	return func(s *Server) { s.addr = addr }
}

// WithRenderer sets the renderer for the root route (default "html").
func WithRenderer(r Renderer) ServerOption {
	return func(s *Server) { s.renderer = r }
}

// WithLogger sets the structured logger (default slog.Default).
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// WithWatch re-renders whenever the given file changes.
func WithWatch(path string) ServerOption {
	return func(s *Server) { s.watchPath = path }
}

// NewServer creates a preview server for the provider's chart.
func NewServer(provider ChartProvider, opts ...ServerOption) *Server {
	s := &Server{
		addr:     "localhost:8000",
		provider: provider,
		renderer: NewHTMLRenderer(),
		log:      slog.Default(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.renders = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vizlite_renders_total",
		Help: "Chart renders served.",
	})
	s.renderErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vizlite_render_errors_total",
		Help: "Chart renders that failed validation or serialization.",
	})
	s.registry.MustRegister(s.renders, s.renderErrors)
	return s
}

// ListenAndServe serves until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleChart)
	mux.HandleFunc("/spec.json", s.handleSpec)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	if s.watchPath != "" {
		stop, err := s.startWatcher()
		if err != nil {
			return err
		}
		defer stop()
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("preview server listening", "addr", s.addr, "watch", s.watchPath != "")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	body, err := s.rendered()
	if err != nil {
		s.renderErrors.Inc()
		s.log.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.renders.Inc()
	w.Header().Set("Content-Type", s.renderer.ContentType())
	_, _ = w.Write(body)
}

func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	c, err := s.provider()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body, err := (&JSONRenderer{Indent: true}).Render(c)
	if err != nil {
		s.renderErrors.Inc()
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// rendered returns the cached artifact, rendering on a cold cache.
func (s *Server) rendered() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	c, err := s.provider()
	if err != nil {
		return nil, err
	}
	body, err := s.renderer.Render(c)
	if err != nil {
		return nil, err
	}
	s.cached = body
	return body, nil
}

func (s *Server) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Server) startWatcher() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.watchPath); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					s.log.Info("data changed, re-rendering", "file", ev.Name)
					s.invalidate()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watch error", "error", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
