// Package server is the HTTP transport of floodmst. It serves the node set,
// runs the clustering pipeline on request and keeps the latest result in a
// pipeline.Store.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/metrics"
	"github.com/katalvlaran/floodmst/pipeline"
)

// Options configures a Server.
type Options struct {
	Nodes            []core.Node
	Grid             pipeline.GridSize
	Defaults         pipeline.Params
	RequireConnected bool
	// CrossCheck, when set, is the prim_kruskal method used to verify each MST.
	CrossCheck     string
	MaxBodyBytes   int64
	AllowedOrigins []string
	// MetricsPath mounts the Prometheus handler when Metrics is set.
	MetricsPath string
	Metrics     *metrics.Registry
	Logger      *zap.Logger
}

// Server handles the floodmst HTTP API.
type Server struct {
	nodes            []core.Node
	grid             pipeline.GridSize
	defaults         pipeline.Params
	requireConnected bool
	crossCheck       string
	maxBodyBytes     int64
	allowedOrigins   []string
	metricsPath      string

	store   *pipeline.Store
	metrics *metrics.Registry
	logger  *zap.Logger
}

// New returns a Server over opts.Nodes. The node slice is shared, not copied;
// callers must not modify it afterwards.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	if opts.Metrics != nil {
		opts.Metrics.Nodes.Set(float64(len(opts.Nodes)))
	}

	return &Server{
		nodes:            opts.Nodes,
		grid:             opts.Grid,
		defaults:         opts.Defaults,
		requireConnected: opts.RequireConnected,
		crossCheck:       opts.CrossCheck,
		maxBodyBytes:     maxBody,
		allowedOrigins:   opts.AllowedOrigins,
		metricsPath:      opts.MetricsPath,
		store:            &pipeline.Store{},
		metrics:          opts.Metrics,
		logger:           logger,
	}
}

// Routes builds the router with all middleware and endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.recoverer)
	r.Use(s.requestLogger)
	if s.metrics != nil {
		r.Use(s.instrument)
	}
	if len(s.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/nodes", s.handleNodes)
		r.Post("/compute", s.handleCompute)
		r.Get("/last_result", s.handleLastResult)
	})
	if s.metrics != nil && s.metricsPath != "" {
		r.Method(http.MethodGet, s.metricsPath, s.metrics.Handler())
	}

	return r
}

// requestLogger logs one line per request with zap.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
		)
	})
}

// recoverer turns handler panics into 500 responses and logs them.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic in handler",
					zap.Any("panic", rec),
					zap.String("request_id", chimiddleware.GetReqID(r.Context())),
					zap.Stack("stack"),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
