// Package preview serves the latest composed configuration over HTTP while
// the watch command is running.
package preview

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogbuilder/internal/compose"
	"git.home.luguber.info/inful/blogbuilder/internal/head"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// Server holds the most recent composition. Update and the handlers may run
// concurrently.
type Server struct {
	mu      sync.RWMutex
	current *compose.Resolved
	lastErr error
	router  chi.Router
}

// NewServer builds the router. reg backs /metrics; nil serves the default registry.
func NewServer(reg *prom.Registry) *Server {
	s := &Server{}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Get("/config.json", s.config(compose.FormatJSON, "application/json"))
	r.Get("/config.yaml", s.config(compose.FormatYAML, "application/yaml"))
	r.Get("/head.html", s.headHTML)
	r.Method(http.MethodGet, "/metrics", metrics.HTTPHandler(reg))

	s.router = r
	return s
}

// Update publishes res, clearing any previous failure.
func (s *Server) Update(res *compose.Resolved) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = res
	s.lastErr = nil
}

// Fail records a failed rebuild. The last good composition stays served.
func (s *Server) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", logfields.Addr(addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) snapshot() (*compose.Resolved, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.lastErr
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	res, lastErr := s.snapshot()
	switch {
	case res == nil:
		http.Error(w, "no configuration composed yet", http.StatusServiceUnavailable)
	case lastErr != nil:
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("degraded: " + lastErr.Error() + "\n"))
	default:
		_, _ = w.Write([]byte("ok\n"))
	}
}

func (s *Server) config(format compose.Format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		res, _ := s.snapshot()
		if res == nil {
			http.Error(w, "no configuration composed yet", http.StatusServiceUnavailable)
			return
		}
		var buf bytes.Buffer
		if err := res.Encode(&buf, format); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Build-Id", res.BuildID())
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) headHTML(w http.ResponseWriter, _ *http.Request) {
	res, _ := s.snapshot()
	if res == nil {
		http.Error(w, "no configuration composed yet", http.StatusServiceUnavailable)
		return
	}
	var buf bytes.Buffer
	if err := head.Render(&buf, res.Head()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
