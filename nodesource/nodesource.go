// Package nodesource generates the synthetic flood-risk grid the service
// clusters. It is a data source outside the algorithmic core: the core only
// needs nodes with dense ids aligned to the grid, and tests supply fixed
// fixtures instead.
package nodesource

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/floodmst/core"
)

// ErrInvalidGrid indicates unusable generator settings.
var ErrInvalidGrid = errors.New("nodesource: invalid grid configuration")

// noiseAmplitude bounds the uniform noise added to the base risk.
const noiseAmplitude = 0.1

// Config describes the synthetic grid.
type Config struct {
	Width        int     `yaml:"width" validate:"min=1"`
	Height       int     `yaml:"height" validate:"min=1"`
	ElevationMin float64 `yaml:"elevation_min"`
	ElevationMax float64 `yaml:"elevation_max" validate:"gtfield=ElevationMin"`
	RiskMin      float64 `yaml:"risk_min"`
	RiskMax      float64 `yaml:"risk_max" validate:"gtefield=RiskMin"`
	Seed         int64   `yaml:"seed"`
}

// DefaultConfig returns a 20×20 grid, elevation 0..100, risk 0..1, seed 42.
func DefaultConfig() Config {
	return Config{
		Width:        20,
		Height:       20,
		ElevationMin: 0,
		ElevationMax: 100,
		RiskMin:      0,
		RiskMax:      1,
		Seed:         42,
	}
}

// Generate returns Width×Height nodes in row-major order (id = y·Width + x).
//
// Elevation falls linearly from ElevationMax at (0,0) to half of it at the
// opposite corner. Risk is the complement of normalized elevation plus
// uniform noise in [-0.1, 0.1), clamped to [RiskMin, RiskMax]. The same
// Config always yields the same nodes.
func Generate(cfg Config) ([]core.Node, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%dx%d grid: %w", cfg.Width, cfg.Height, ErrInvalidGrid)
	}
	if cfg.ElevationMax <= cfg.ElevationMin {
		return nil, fmt.Errorf("elevation range [%g,%g]: %w", cfg.ElevationMin, cfg.ElevationMax, ErrInvalidGrid)
	}
	if cfg.RiskMax < cfg.RiskMin {
		return nil, fmt.Errorf("risk range [%g,%g]: %w", cfg.RiskMin, cfg.RiskMax, ErrInvalidGrid)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	span := cfg.ElevationMax - cfg.ElevationMin
	nodes := make([]core.Node, 0, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			dx := fraction(x, cfg.Width)
			dy := fraction(y, cfg.Height)
			elevation := cfg.ElevationMax * (1.0 - 0.5*dx - 0.5*dy)

			base := 1.0 - (elevation-cfg.ElevationMin)/span
			noise := -noiseAmplitude + 2*noiseAmplitude*rng.Float64()
			risk := clamp(base+noise, cfg.RiskMin, cfg.RiskMax)

			nodes = append(nodes, core.Node{
				ID:        len(nodes),
				X:         x,
				Y:         y,
				Elevation: elevation,
				RiskScore: risk,
			})
		}
	}

	return nodes, nil
}

// fraction maps i in 0..n-1 to [0,1]; a single-cell axis maps to 0.
func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}

	return float64(i) / float64(n-1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
