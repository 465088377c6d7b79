package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, left, right, down.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals after the orthogonal offsets.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// ConnFromDiagonals maps a use-diagonals flag to a Connectivity.
func ConnFromDiagonals(useDiagonals bool) Connectivity {
	if useDiagonals {
		return Conn8
	}

	return Conn4
}

// Weights are the coefficients of the composite edge weight.
// They are accepted as given; zero or negative values are not rejected.
type Weights struct {
	Elevation float64 `json:"elevation_weight" yaml:"elevation_weight"`
	Risk      float64 `json:"risk_weight" yaml:"risk_weight"`
	Distance  float64 `json:"distance_weight" yaml:"distance_weight"`
}

// DefaultWeights returns Elevation=1, Risk=1, Distance=0.5.
func DefaultWeights() Weights {
	return Weights{Elevation: 1.0, Risk: 1.0, Distance: 0.5}
}

// GridOptions configures BuildGraph.
type GridOptions struct {
	// Width and Height bound valid coordinates to [0,Width)×[0,Height).
	Width, Height int
	// Weights are the composite weight coefficients.
	Weights Weights
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns options for a width×height grid with
// DefaultWeights and Conn8.
func DefaultGridOptions(width, height int) GridOptions {
	return GridOptions{
		Width:   width,
		Height:  height,
		Weights: DefaultWeights(),
		Conn:    Conn8,
	}
}

// orthogonal and diagonal hold neighbor offsets in priority order.
// The order is the tie-break for equal-weight edges downstream; do not reorder.
var (
	orthogonal = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	diagonal   = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// Offsets returns a fresh copy of the neighbor offsets for conn, orthogonal
// first and then diagonals. Each offset's opposite is also present, so every
// adjacent pair is visited from both ends.
func Offsets(conn Connectivity) [][2]int {
	out := make([][2]int, 0, len(orthogonal)+len(diagonal))
	out = append(out, orthogonal...)
	if conn == Conn8 {
		out = append(out, diagonal...)
	}

	return out
}
