package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/floodmst/core"
	"github.com/katalvlaran/floodmst/prim_kruskal"
)

func TestCrossCheck_Mismatch(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1, Weight: 2}, {U: 1, V: 2, Weight: 3}}
	mo := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim))

	assert.NoError(t, crossCheck(3, edges, 5, mo))
	assert.NoError(t, crossCheck(3, edges, 5+1e-12, mo))
	assert.ErrorIs(t, crossCheck(3, edges, 4, mo), ErrCrossCheck)
}
