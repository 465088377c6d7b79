// Package gridgraph turns a set of grid nodes into the weighted edge list
// consumed by the MST engine.
//
// What:
//
//   - BuildGraph scans nodes by ascending id and emits one edge per adjacent
//     pair (U < V), with 4- or 8-connectivity.
//   - EdgeWeight combines elevation difference, risk difference and Euclidean
//     grid distance with caller-supplied coefficients.
//
// Determinism:
//
//   - Output order is generation order: node id ascending, then neighbor
//     offsets in the fixed order up, left, right, down, and (Conn8 only)
//     up-left, up-right, down-left, down-right. Stable sorts downstream use
//     this order to break weight ties.
//
// Complexity:
//
//   - BuildGraph: O(W×H + N×d) time and memory (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrNodeID: node ids are not exactly 0..N-1.
package gridgraph
