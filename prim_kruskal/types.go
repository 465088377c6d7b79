// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/floodmst/core"
)

// ErrNodeCount indicates a negative node count.
var ErrNodeCount = errors.New("prim_kruskal: node count must be non-negative")

// ErrEdgeEndpoint indicates an edge endpoint outside 0..numNodes-1.
var ErrEdgeEndpoint = errors.New("prim_kruskal: edge endpoint out of range")

// ErrRoot indicates that Prim's start vertex lies outside 0..numNodes-1.
var ErrRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Kruskal never returns it; it
// yields a spanning forest instead. Prim and callers enforcing a spanning tree do.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with Root = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(numNodes, edges).
//	– MethodPrim:    Prim(numNodes, edges, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(numNodes int, edges []core.Edge, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(numNodes, edges)
	case MethodPrim:
		return Prim(numNodes, edges, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// Spans reports whether an MST over numNodes vertices is a single tree,
// i.e. holds numNodes-1 edges. Empty and single-vertex graphs span trivially.
func Spans(numNodes int, mst []core.Edge) bool {
	if numNodes <= 1 {
		return true
	}

	return len(mst) == numNodes-1
}

// validateEdges checks numNodes and every endpoint.
func validateEdges(numNodes int, edges []core.Edge) error {
	if numNodes < 0 {
		return ErrNodeCount
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= numNodes || e.V < 0 || e.V >= numNodes {
			return fmt.Errorf("edge #%d %s with %d nodes: %w", i, e, numNodes, ErrEdgeEndpoint)
		}
	}

	return nil
}
