package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/floodmst/clustering"
	"github.com/katalvlaran/floodmst/gridgraph"
)

// validate is a singleton validator instance.
var validate = validator.New()

// ErrInvalidParams indicates a Params field failed validation.
var ErrInvalidParams = errors.New("pipeline: invalid parameters")

// Params are the per-request clustering parameters.
// Weight coefficients are accepted as given, including zero or negative values.
type Params struct {
	K               int     `json:"k" yaml:"k" validate:"min=1"`
	ElevationWeight float64 `json:"elevation_weight" yaml:"elevation_weight"`
	RiskWeight      float64 `json:"risk_weight" yaml:"risk_weight"`
	DistanceWeight  float64 `json:"distance_weight" yaml:"distance_weight"`
	UseDiagonals    bool    `json:"use_diagonals" yaml:"use_diagonals"`
}

// DefaultParams returns k=5, weights 1/1/0.5 and diagonal neighbors.
func DefaultParams() Params {
	w := gridgraph.DefaultWeights()
	return Params{
		K:               5,
		ElevationWeight: w.Elevation,
		RiskWeight:      w.Risk,
		DistanceWeight:  w.Distance,
		UseDiagonals:    true,
	}
}

// Weights returns the edge weight coefficients.
func (p Params) Weights() gridgraph.Weights {
	return gridgraph.Weights{
		Elevation: p.ElevationWeight,
		Risk:      p.RiskWeight,
		Distance:  p.DistanceWeight,
	}
}

// Validate checks struct constraints and that K does not exceed numNodes.
// An out-of-range K reports clustering.ErrInvalidClusterCount, the same
// error ClusterFromMST raises.
func (p Params) Validate(numNodes int) error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "K" {
					return fmt.Errorf("k=%d: %w", p.K, clustering.ErrInvalidClusterCount)
				}
			}
		}
		return formatValidationError(err)
	}
	if p.K > numNodes {
		return fmt.Errorf("k=%d exceeds %d nodes: %w", p.K, numNodes, clustering.ErrInvalidClusterCount)
	}

	return nil
}

// formatValidationError converts validator errors to a readable, wrapped form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, ErrInvalidParams)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), ErrInvalidParams)
}
