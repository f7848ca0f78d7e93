package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const defaultCheckTimeout = 2 * time.Second

// Checker reports whether a dependency is ready to serve traffic.
type Checker func(ctx context.Context) error

type Options struct {
	addr         string
	gatherer     prometheus.Gatherer
	logger       *zap.Logger
	checks       map[string]Checker
	checkTimeout time.Duration
}

type Option func(*Options)

func WithAddr(addr string) Option {
	return func(o *Options) { o.addr = addr }
}

func WithGatherer(g prometheus.Gatherer) Option {
	return func(o *Options) { o.gatherer = g }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithReadinessCheck adds a named check to /readyz.
func WithReadinessCheck(name string, check Checker) Option {
	return func(o *Options) { o.checks[name] = check }
}

func WithCheckTimeout(d time.Duration) Option {
	return func(o *Options) { o.checkTimeout = d }
}

// Server serves /metrics, /healthz and /readyz.
type Server struct {
	httpServer *http.Server
	lis        net.Listener
	logger     *zap.Logger
}

func New(opts ...Option) *Server {
	options := &Options{
		addr:         ":9090",
		gatherer:     prometheus.DefaultGatherer,
		logger:       zap.NewNop(),
		checks:       map[string]Checker{},
		checkTimeout: defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger.Named("admin-server")

	return &Server{
		httpServer: &http.Server{
			Addr:              options.addr,
			Handler:           handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(NewRouter(options)),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter builds the admin routes.
func NewRouter(options *Options) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.HandlerFor(options.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", readyHandler(options.checks, options.checkTimeout)).Methods(http.MethodGet)

	return r
}

func readyHandler(checks map[string]Checker, timeout time.Duration) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		results := make(map[string]string, len(names))
		code := http.StatusOK
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				results[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		status := "ok"
		if code != http.StatusOK {
			status = "unavailable"
		}
		writeJSON(w, code, map[string]any{"status": status, "checks": results})
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// Start listens immediately and serves in the background.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.lis = lis
	s.logger.Info("admin server started", zap.String("addr", lis.Addr().String()))

	go func() {
		if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("admin server failed", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the listening address once Start has succeeded.
func (s *Server) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("admin server shutting down")
	return s.httpServer.Shutdown(ctx)
}
