package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid width or height below one.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNodeID indicates a node id outside the dense range 0..len(nodes)-1, or a repeated id.
	ErrNodeID = errors.New("gridgraph: node ids must be dense and unique")
)
