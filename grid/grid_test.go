package grid

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCoarseExample(t *testing.T) {
	assert.Equal(t, []float64{-2, 0, 2}, MakeCoarse(9, 1, 2))
}

func TestMakeCoarseAntisymmetry(t *testing.T) {
	table := []struct {
		steps      int
		stepSize   float64
		coarseness int
	}{
		{9, 1, 2},
		{45, 0.5, 3},
		{101, 0.01, 1},
		{181, 0.02, 2},
		{181, 0.02, 5},
	}

	for i, test := range table {
		g := MakeCoarse(test.steps, test.stepSize, test.coarseness)
		assertAntisymmetric(t, i, g)
		assert.True(t, sort.Float64sAreSorted(g), "%d) grid not ascending", i)

		zeros := 0
		for _, x := range g {
			if x == 0 {
				zeros++
			}
		}
		assert.Equal(t, 1, zeros, "%d) want exactly one zero", i)
	}
}

func TestMakeFineOdd(t *testing.T) {
	// A particle on the centre axis, none on the cell edges.
	g := MakeFine(8, 1, 3)

	assert.Len(t, g, 23)
	assert.Equal(t, 0.0, g[11])
	assertAntisymmetric(t, 0, g)
	assert.True(t, sort.Float64sAreSorted(g))
	for _, x := range g[12:] {
		// Positions are integer multiples of the fine step 1/3.
		assert.InDelta(t, math.Round(x*3), x*3, 1e-12)
	}
}

func TestMakeFineEven(t *testing.T) {
	// No particle on the centre axis or on any cell edge.
	g := MakeFine(8, 1, 2)

	assert.Len(t, g, 16)
	assert.Equal(t, 0.25, g[8])
	assertAntisymmetric(t, 0, g)
	assert.True(t, sort.Float64sAreSorted(g))
	for _, x := range g {
		assert.NotEqual(t, 0.0, x)
		_, frac := math.Modf(x)
		assert.NotEqual(t, 0.0, frac, "particle on a cell edge at %g", x)
	}
}

func TestMakeFineAntisymmetry(t *testing.T) {
	table := []struct {
		steps    int
		stepSize float64
		fineness int
	}{
		{9, 1, 1},
		{9, 1, 2},
		{13, 0.25, 3},
		{161, 0.02, 2},
		{161, 0.02, 4},
	}

	for i, test := range table {
		g := MakeFine(test.steps, test.stepSize, test.fineness)
		assertAntisymmetric(t, i, g)
		assert.True(t, sort.Float64sAreSorted(g), "%d) grid not ascending", i)
	}
}

func assertAntisymmetric(t *testing.T, i int, g []float64) {
	t.Helper()
	n := len(g)
	for k := 0; k < n; k++ {
		assert.InDelta(t, -g[n-1-k], g[k], 1e-12,
			"%d) grid[%d] = %g, grid[%d] = %g", i, k, g[k], n-1-k, g[n-1-k])
	}
}
