package core

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Node is a single grid cell produced by a node source.
//
// IDs are dense and 0-based; a node's X and Y are its column and row in the
// implicit Width×Height grid. Nodes are read-only for every pipeline stage.
type Node struct {
	ID        int     `json:"id"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Elevation float64 `json:"elevation"`
	RiskScore float64 `json:"risk_score"`
}

// Edge is an undirected weighted connection between two node ids.
// Builders keep U < V so each unordered pair has exactly one representation.
type Edge struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.U, e.V, e.Weight)
}

// CutEdge is an MST edge annotated with whether clustering removed it.
type CutEdge struct {
	Edge
	Cut bool `json:"cut"`
}

// ClusterStats summarizes the members of one cluster.
type ClusterStats struct {
	ClusterID    int     `json:"cluster_id"`
	NumNodes     int     `json:"num_nodes"`
	AvgElevation float64 `json:"avg_elevation"`
	AvgRiskScore float64 `json:"avg_risk_score"`
}

// Labels maps node id (the slice index) to cluster id.
type Labels []int

// MarshalJSON encodes labels as an object keyed by node id, e.g. {"0":0,"1":0}.
func (l Labels) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(l))
	for id, c := range l {
		m[strconv.Itoa(id)] = c
	}

	return json.Marshal(m)
}

// UnmarshalJSON decodes the object form written by MarshalJSON.
// Keys must cover 0..len-1 exactly.
func (l *Labels) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Labels, len(m))
	seen := make([]bool, len(m))
	for k, c := range m {
		id, err := strconv.Atoi(k)
		if err != nil || id < 0 || id >= len(m) || seen[id] {
			return fmt.Errorf("core: invalid label key %q", k)
		}
		seen[id] = true
		out[id] = c
	}
	*l = out

	return nil
}
