package clustering

import "errors"

var (
	// ErrInvalidClusterCount indicates k < 1 or k > number of nodes.
	// Hosts should surface it as a client error; no partial result is produced.
	ErrInvalidClusterCount = errors.New("clustering: invalid cluster count")
	// ErrLabelMismatch indicates a node id with no entry in the label map.
	ErrLabelMismatch = errors.New("clustering: node has no cluster label")
)
