package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/floodmst/clustering"
	"github.com/katalvlaran/floodmst/metrics"
	"github.com/katalvlaran/floodmst/pipeline"
	"github.com/katalvlaran/floodmst/prim_kruskal"
)

const indexHTML = `<h1>floodmst</h1>
<p>The backend is running.</p>
<ul>
  <li><a href="/api/health">/api/health</a></li>
  <li><a href="/api/nodes">/api/nodes</a></li>
  <li><a href="/api/last_result">/api/last_result</a></li>
</ul>
<p>POST /api/compute with a JSON body to compute clusters.</p>
`

// computeRequest mirrors pipeline.Params with every field optional.
type computeRequest struct {
	K               *int     `json:"k"`
	ElevationWeight *float64 `json:"elevation_weight"`
	RiskWeight      *float64 `json:"risk_weight"`
	DistanceWeight  *float64 `json:"distance_weight"`
	UseDiagonals    *bool    `json:"use_diagonals"`
}

// params overlays the request on defaults.
func (req computeRequest) params(defaults pipeline.Params) pipeline.Params {
	p := defaults
	if req.K != nil {
		p.K = *req.K
	}
	if req.ElevationWeight != nil {
		p.ElevationWeight = *req.ElevationWeight
	}
	if req.RiskWeight != nil {
		p.RiskWeight = *req.RiskWeight
	}
	if req.DistanceWeight != nil {
		p.DistanceWeight = *req.DistanceWeight
	}
	if req.UseDiagonals != nil {
		p.UseDiagonals = *req.UseDiagonals
	}

	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "nodes": len(s.nodes)})
}

func (s *Server) handleNodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"nodes": s.nodes})
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req *computeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(w, http.StatusBadRequest, "Invalid parameter types")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid or missing JSON body")
		return
	}
	// A literal null or anything after the object is not a request body.
	if req == nil || !errors.Is(dec.Decode(&struct{}{}), io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid or missing JSON body")
		return
	}
	params := req.params(s.defaults)

	start := time.Now()
	runOpts := []pipeline.Option{pipeline.WithRequireConnected(s.requireConnected)}
	if s.crossCheck != "" {
		runOpts = append(runOpts, pipeline.WithCrossCheck(prim_kruskal.WithMethod(s.crossCheck)))
	}
	res, err := pipeline.Run(s.nodes, s.grid, params, runOpts...)
	elapsed := time.Since(start)
	log := s.logger.With(
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.Int("k", params.K),
		zap.Bool("use_diagonals", params.UseDiagonals),
	)
	if err != nil {
		status, code := classify(err)
		s.observe(code, elapsed, nil)
		if status >= http.StatusInternalServerError {
			log.Error("compute failed", zap.Error(err))
			writeError(w, status, "internal server error")
			return
		}
		log.Info("compute rejected", zap.Error(err))
		writeError(w, status, err.Error())
		return
	}

	s.store.Swap(res)
	s.observe(metrics.StatusOK, elapsed, res)
	log.Info("compute finished",
		zap.String("result_id", res.ID),
		zap.Int("clusters", res.NumClusters),
		zap.Int("components", res.Components),
		zap.Float64("mst_weight", res.TotalWeight),
		zap.Duration("elapsed", elapsed),
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLastResult(w http.ResponseWriter, _ *http.Request) {
	res, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusNotFound, "No computation has been performed yet.")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// observe forwards a compute outcome to the metrics registry, if any.
func (s *Server) observe(status string, elapsed time.Duration, res *pipeline.Result) {
	if s.metrics == nil {
		return
	}
	var cr metrics.ComputeResult
	if res != nil {
		cr = metrics.ComputeResult{
			Edges:       res.NumEdges,
			TotalWeight: res.TotalWeight,
			Clusters:    res.NumClusters,
			Components:  res.Components,
		}
	}
	s.metrics.ObserveCompute(status, elapsed, cr)
}

// classify maps pipeline errors to an HTTP status and a metrics outcome.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, clustering.ErrInvalidClusterCount),
		errors.Is(err, pipeline.ErrInvalidParams):
		return http.StatusBadRequest, metrics.StatusInvalid
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return http.StatusUnprocessableEntity, metrics.StatusDisconnected
	default:
		return http.StatusInternalServerError, metrics.StatusError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
