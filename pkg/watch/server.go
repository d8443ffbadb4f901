package watch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/netip"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/metrics"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/types"
)

// Snapshotter exposes the current catalog entries.
// *ingest.MemoryCatalog satisfies it.
type Snapshotter interface {
	Snapshot() map[names.Fqdn][]netip.Addr
}

// HistoryLister reads recent publish records. *history.Store satisfies it.
type HistoryLister interface {
	List(networkID types.NetworkID, limit int) ([]types.PublishRecord, error)
}

// Server exposes the daemon's observation surface over HTTP: metrics,
// health, and optional views of the catalog and publish history.
type Server struct {
	addr    string
	router  chi.Router
	httpSrv *http.Server
	logger  zerolog.Logger
}

// NewServer creates the daemon's HTTP listener with the standard
// routes mounted.
func NewServer(addr string, logger zerolog.Logger) *Server {
	s := &Server{
		addr:   addr,
		router: chi.NewRouter(),
		logger: log.Component(logger, "http"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(instrument)
	s.router.Use(middleware.Recoverer)

	s.router.Handle("/metrics", metrics.Handler())
	s.router.Get("/healthz", metrics.HealthHandler())
	s.router.Get("/ready", metrics.ReadyHandler())
	s.router.Get("/live", metrics.LivenessHandler())

	return s
}

// WithCatalogView serves the current catalog at GET /entries.
func (s *Server) WithCatalogView(catalog Snapshotter) *Server {
	s.router.Get("/entries", func(w http.ResponseWriter, _ *http.Request) {
		snapshot := catalog.Snapshot()

		entries := make(map[string][]string, len(snapshot))
		for fqdn, addrs := range snapshot {
			list := make([]string, 0, len(addrs))
			for _, addr := range addrs {
				list = append(list, addr.String())
			}
			entries[string(fqdn)] = list
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	})
	return s
}

// WithHistory serves recent publish records at GET /history.
func (s *Server) WithHistory(store HistoryLister, networkID types.NetworkID) *Server {
	s.router.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		records, err := store.List(networkID, limit)
		if err != nil {
			s.logger.Error().Err(err).Msg("History read failed")
			http.Error(w, "history unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})
	return s
}

// instrument counts requests and observes their duration, labeled by
// the matched route pattern. It sits outside Recoverer so a recovered
// panic is still recorded as a 500.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.NewTimer()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
		timer.ObserveDurationVec(metrics.HTTPRequestDuration, route)
	})
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving in the background.
func (s *Server) Start() {
	s.httpSrv = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()
	s.logger.Info().Str("addr", s.addr).Msg("HTTP listener started")
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
