package nodesource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodmst/nodesource"
)

// TestGenerate_Layout checks ids, coordinates and ranges on the default grid.
func TestGenerate_Layout(t *testing.T) {
	cfg := nodesource.DefaultConfig()
	nodes, err := nodesource.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, nodes, cfg.Width*cfg.Height)

	for i, n := range nodes {
		assert.Equal(t, i, n.ID)
		assert.Equal(t, i%cfg.Width, n.X)
		assert.Equal(t, i/cfg.Width, n.Y)
		assert.GreaterOrEqual(t, n.RiskScore, cfg.RiskMin)
		assert.LessOrEqual(t, n.RiskScore, cfg.RiskMax)
	}
	assert.InDelta(t, 100.0, nodes[0].Elevation, 1e-9)
	assert.InDelta(t, 0.0, nodes[len(nodes)-1].Elevation, 1e-9)
}

// TestGenerate_Deterministic yields identical nodes for the same seed, different for another.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := nodesource.DefaultConfig()
	a, err := nodesource.Generate(cfg)
	require.NoError(t, err)
	b, err := nodesource.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 7
	c, err := nodesource.Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestGenerate_SingleAxis avoids division by zero on 1-wide grids.
func TestGenerate_SingleAxis(t *testing.T) {
	cfg := nodesource.DefaultConfig()
	cfg.Width, cfg.Height = 1, 3
	nodes, err := nodesource.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.InDelta(t, 100.0, nodes[0].Elevation, 1e-9)
	assert.InDelta(t, 50.0, nodes[2].Elevation, 1e-9)
}

// TestGenerate_Invalid rejects bad dimensions and ranges.
func TestGenerate_Invalid(t *testing.T) {
	mutate := []func(*nodesource.Config){
		func(c *nodesource.Config) { c.Width = 0 },
		func(c *nodesource.Config) { c.Height = -2 },
		func(c *nodesource.Config) { c.ElevationMax = c.ElevationMin },
		func(c *nodesource.Config) { c.RiskMin, c.RiskMax = 1, 0 },
	}
	for i, fn := range mutate {
		cfg := nodesource.DefaultConfig()
		fn(&cfg)
		_, err := nodesource.Generate(cfg)
		assert.ErrorIs(t, err, nodesource.ErrInvalidGrid, "case %d", i)
	}
}
