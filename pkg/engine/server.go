// Package engine hosts the endpoint-serving pipeline and the HTTP server
// around it.
package engine

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mocklet/mocklet/pkg/admin"
	"github.com/mocklet/mocklet/pkg/admission"
	"github.com/mocklet/mocklet/pkg/chaos"
	"github.com/mocklet/mocklet/pkg/config"
	"github.com/mocklet/mocklet/pkg/credential"
	"github.com/mocklet/mocklet/pkg/httputil"
	"github.com/mocklet/mocklet/pkg/requestlog"
	"github.com/mocklet/mocklet/pkg/store"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and the pipeline's long-lived pieces:
// the endpoint store, the admission counter store, and the request-log
// dispatcher.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	endpoints  store.EndpointStore
	httpServer *http.Server

	dispatcher     *requestlog.Dispatcher
	memAdmission   *admission.MemoryStore
	admissionStore admission.Store

	closeOnce sync.Once
}

// ServerOption customizes server construction.
type ServerOption func(*Server)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// WithEndpointStore replaces the default in-memory endpoint store.
func WithEndpointStore(es store.EndpointStore) ServerOption {
	return func(s *Server) { s.endpoints = es }
}

// WithAdmissionStore replaces the admission counter store chosen from
// configuration.
func WithAdmissionStore(as admission.Store) ServerOption {
	return func(s *Server) { s.admissionStore = as }
}

// NewServer assembles the full service from configuration.
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = slog.Default()
	}
	if s.endpoints == nil {
		s.endpoints = store.NewMemoryStore()
	}
	if s.admissionStore == nil {
		if cfg.RedisAddr != "" {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
			})
			s.admissionStore = admission.NewRedisStore(client)
			s.log.Info("admission counters in redis", "addr", cfg.RedisAddr)
		} else {
			mem := admission.NewMemoryStore()
			s.memAdmission = mem
			s.admissionStore = mem
		}
	}

	ctrl := admission.NewControllerWithLimits(
		s.admissionStore,
		cfg.AdmissionLimit,
		time.Duration(cfg.AdmissionWindowSeconds)*time.Second,
	)

	hitStore := requestlog.NewMemoryStore(0)
	s.dispatcher = requestlog.NewDispatcher(hitStore, cfg.LogQueueSize, s.log)

	handler := NewHandler(
		s.endpoints,
		ctrl,
		s.dispatcher,
		chaos.New(),
		credential.NewMinter([]byte(cfg.SigningKey)),
		s.log,
	)

	mux := http.NewServeMux()
	mux.Handle("/m/{id}", handler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteOK(w, map[string]string{"status": "ok"})
	})
	admin.New(s.endpoints, hitStore, s.log).Register(mux)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Endpoints exposes the endpoint store, mainly for seeding in tests and
// CLI tooling.
func (s *Server) Endpoints() store.EndpointStore { return s.endpoints }

// Handler exposes the assembled route table without a listener.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.log.Info("server starting", "addr", s.cfg.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the listener, drains in-flight requests, and tears down
// the pipeline's background workers. Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.closeOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		err = s.httpServer.Shutdown(shutdownCtx)

		s.dispatcher.Close()
		if s.memAdmission != nil {
			s.memAdmission.Stop()
		}
		s.log.Info("server stopped")
	})
	return err
}
