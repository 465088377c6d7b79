// Package pipeline runs the full flood clustering computation
// (graph → MST → clusters → stats) and holds computed results as immutable
// snapshots.
//
// Run is a pure function of its inputs and safe to call concurrently. Store
// is the caller-owned replacement for a process-wide "last result": a single
// atomically swapped pointer, no locks.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/floodmst/clustering"
	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/gridgraph"
	"github.com/katalvlaran/floodmst/prim_kruskal"
)

// GridSize gives the dimensions of the implicit grid the nodes live on.
type GridSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is one completed computation. It is never modified after Run
// returns it; readers must treat every slice as read-only.
type Result struct {
	ID           string              `json:"id"`
	Params       Params              `json:"params"`
	Clusters     core.Labels         `json:"clusters"`
	ClusterStats []core.ClusterStats `json:"cluster_stats"`
	MSTEdges     []core.CutEdge      `json:"mst_edges"`
	NumClusters  int                 `json:"num_clusters"`
	Components   int                 `json:"components"`
	TotalWeight  float64             `json:"total_weight"`
	NumEdges     int                 `json:"num_edges"`
	ComputedAt   time.Time           `json:"computed_at"`
}

// ErrCrossCheck indicates that a second MST engine found a different total
// weight than Kruskal.
var ErrCrossCheck = errors.New("pipeline: mst cross-check mismatch")

type options struct {
	requireConnected bool
	crossCheck       *prim_kruskal.MSTOptions
	now              func() time.Time
	newID            func() string
}

// Option configures Run.
type Option func(*options)

// WithRequireConnected makes Run fail with prim_kruskal.ErrDisconnected when
// the grid graph is not connected and more than one cluster is requested.
// Without it a disconnected graph yields more than K clusters (see
// clustering.ClusterFromMST) and Result.NumClusters reports the real count.
func WithRequireConnected(require bool) Option {
	return func(o *options) { o.requireConnected = require }
}

// WithCrossCheck recomputes the MST with the engine selected by opts
// (prim_kruskal.WithMethod, prim_kruskal.WithRoot) and fails with
// ErrCrossCheck when its total weight differs from Kruskal's. The check is
// skipped on disconnected graphs, which Prim cannot span.
func WithCrossCheck(opts ...prim_kruskal.Option) Option {
	mo := prim_kruskal.NewOptions(opts...)
	return func(o *options) { o.crossCheck = &mo }
}

// WithClock overrides the time source for Result.ComputedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDFunc overrides the Result.ID generator.
func WithIDFunc(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// Run validates params and computes the clustering of nodes.
//
// Errors:
//   - clustering.ErrInvalidClusterCount: K < 1 or K > len(nodes).
//   - gridgraph.ErrEmptyGrid, gridgraph.ErrNodeID: bad grid or node ids.
//   - prim_kruskal.ErrDisconnected: under WithRequireConnected(true) only.
func Run(nodes []core.Node, grid GridSize, params Params, opts ...Option) (*Result, error) {
	o := options{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, fn := range opts {
		fn(&o)
	}

	n := len(nodes)
	if err := params.Validate(n); err != nil {
		return nil, err
	}

	edges, err := gridgraph.BuildGraph(nodes, gridgraph.GridOptions{
		Width:   grid.Width,
		Height:  grid.Height,
		Weights: params.Weights(),
		Conn:    gridgraph.ConnFromDiagonals(params.UseDiagonals),
	})
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	mst, total, err := prim_kruskal.Kruskal(n, edges)
	if err != nil {
		return nil, fmt.Errorf("compute mst: %w", err)
	}
	if o.crossCheck != nil && prim_kruskal.Spans(n, mst) {
		if err := crossCheck(n, edges, total, *o.crossCheck); err != nil {
			return nil, err
		}
	}
	components := n - len(mst)
	if o.requireConnected && params.K > 1 && !prim_kruskal.Spans(n, mst) {
		return nil, fmt.Errorf("%d components for k=%d: %w", components, params.K, prim_kruskal.ErrDisconnected)
	}

	labels, annotated, err := clustering.ClusterFromMST(n, mst, params.K)
	if err != nil {
		return nil, err
	}
	stats, err := clustering.ComputeClusterStats(nodes, labels)
	if err != nil {
		return nil, fmt.Errorf("cluster stats: %w", err)
	}

	return &Result{
		ID:           o.newID(),
		Params:       params,
		Clusters:     labels,
		ClusterStats: stats,
		MSTEdges:     annotated,
		NumClusters:  len(stats),
		Components:   components,
		TotalWeight:  total,
		NumEdges:     len(edges),
		ComputedAt:   o.now().UTC(),
	}, nil
}

// crossCheck compares want against the total weight found by mo's engine.
func crossCheck(numNodes int, edges []core.Edge, want float64, mo prim_kruskal.MSTOptions) error {
	_, got, err := prim_kruskal.Compute(numNodes, edges, mo)
	if err != nil {
		return fmt.Errorf("cross-check %s: %w", mo.Method, err)
	}
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		return fmt.Errorf("%s total %g, kruskal total %g: %w", mo.Method, got, want, ErrCrossCheck)
	}

	return nil
}
