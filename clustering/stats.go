package clustering

import (
	"fmt"

	"github.com/katalvlaran/floodmst/core"
)

// ComputeClusterStats reduces node attributes per cluster into member count
// and average elevation / risk score, ordered by ascending cluster id.
//
// Every node id must have a label in 0..len(nodes)-1 (ErrLabelMismatch
// otherwise). Cluster ids are expected to be 0-based and contiguous; an id
// with no members reports zero averages.
//
// Complexity: O(N + K).
func ComputeClusterStats(nodes []core.Node, labels core.Labels) ([]core.ClusterStats, error) {
	type acc struct {
		count     int
		elevation float64
		risk      float64
	}
	var sums []acc
	for _, n := range nodes {
		if n.ID < 0 || n.ID >= len(labels) || labels[n.ID] < 0 {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrLabelMismatch)
		}
		c := labels[n.ID]
		if c >= len(nodes) {
			return nil, fmt.Errorf("node %d: cluster %d exceeds %d nodes: %w", n.ID, c, len(nodes), ErrLabelMismatch)
		}
		for len(sums) <= c {
			sums = append(sums, acc{})
		}
		sums[c].count++
		sums[c].elevation += n.Elevation
		sums[c].risk += n.RiskScore
	}

	stats := make([]core.ClusterStats, len(sums))
	for c, s := range sums {
		stats[c] = core.ClusterStats{ClusterID: c, NumNodes: s.count}
		if s.count > 0 {
			stats[c].AvgElevation = s.elevation / float64(s.count)
			stats[c].AvgRiskScore = s.risk / float64(s.count)
		}
	}

	return stats, nil
}
