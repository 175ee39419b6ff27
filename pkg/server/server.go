package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/domify-dev/domify/internal/dev"
	"github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/hyperscript"
	"github.com/domify-dev/domify/pkg/vdom"
)

// Config configures the conversion service.
type Config struct {
	// Host is the host to bind to (default: "localhost").
	Host string

	// Port is the port to listen on (default: 3000).
	Port int

	// Registry maps lowercase tags to component identifiers.
	Registry hyperscript.Registry

	// Mapper is the props mapping strategy. Nil uses the converter's
	// default shallow merge.
	Mapper hyperscript.PropsMapper

	// MaxDepth bounds conversion recursion. Zero applies the converter
	// default; a negative value disables the guard.
	MaxDepth int

	// WatchPath enables the live preview: the file is re-converted and
	// pushed to connected preview clients on every change.
	WatchPath string

	// WatchInterval is the preview polling interval.
	// Default: dev.DefaultInterval.
	WatchInterval time.Duration

	// Metrics is the Prometheus registerer for the service instruments.
	// Default: prometheus.DefaultRegisterer.
	Metrics prometheus.Registerer

	// TracerName names the tracer for request spans (default: "domify").
	TracerName string
}

// Server is the conversion service.
type Server struct {
	config     Config
	metrics    *metrics
	preview    *PreviewHub
	httpServer *http.Server
}

// New creates a conversion service from config.
func New(config Config) *Server {
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 3000
	}

	s := &Server{
		config:  config,
		metrics: newMetrics(config.Metrics),
		preview: NewPreviewHub(),
	}
	s.preview.onCount = func(n int) {
		s.metrics.previewClients.Set(float64(n))
	}
	return s
}

// Handler builds the service router. Exposed separately from Start so the
// service can be mounted into a larger router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(tracing(s.config.TracerName))

	r.Post("/v1/convert", s.handleConvert)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metricsHandler())

	if s.config.WatchPath != "" {
		r.Get("/", s.handlePreviewPage)
		r.Get("/ws", s.preview.HandleWebSocket)
	}

	return r
}

// Start runs the service until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.config.WatchPath != "" {
		watcher := dev.NewWatcher(s.config.WatchPath, s.config.WatchInterval, func(string) {
			s.refreshPreview()
		})
		go watcher.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New("S001").WithDetailf("listening on %s", s.httpServer.Addr).Wrap(err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.preview.Close()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Preview returns the live preview hub.
func (s *Server) Preview() *PreviewHub {
	return s.preview
}

func (s *Server) metricsHandler() http.Handler {
	if gatherer, ok := s.config.Metrics.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// convert runs a parsed tree through the converter with the configured
// registry, mapper, and depth bound.
func (s *Server) convert(node dom.Node) (*vdom.VNode, error) {
	opts := make([]hyperscript.Option, 0, 2)
	switch {
	case s.config.MaxDepth > 0:
		opts = append(opts, hyperscript.WithMaxDepth(s.config.MaxDepth))
	case s.config.MaxDepth < 0:
		opts = append(opts, hyperscript.WithMaxDepth(0))
	}
	if s.config.Mapper != nil {
		opts = append(opts, hyperscript.WithPropsMapper(s.config.Mapper))
	}

	result, err := hyperscript.Convert(node, vdom.H, vdom.Fragment, s.config.Registry, opts...)
	if err != nil {
		return nil, err
	}
	vn, _ := result.(*vdom.VNode)
	return vn, nil
}
