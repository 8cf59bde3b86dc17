package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/wakepic/wakepic/grid"
)

func TestNewTableNeighbours(t *testing.T) {
	coarse := []float64{-2, -1, 0, 1, 2}
	fine := []float64{-2.4, -1.8, -1.2, -0.6, 0, 0.6, 1.2, 1.8, 2.4}

	tbl := NewTable(coarse, fine, 1)

	assert.Equal(t, []int{0, 0, 0, 1, 1, 2, 3, 3, 4}, tbl.IndexPrev)
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3, 4, 4, 4}, tbl.IndexNext)

	// Interior point: fine -1.8 sits between coarse -2 and -1.
	assert.InDelta(t, 0.8, tbl.WeightPrev[1], 1e-12)
	assert.InDelta(t, 0.2, tbl.WeightNext[1], 1e-12)
}

func TestNewTableBoundaryClamp(t *testing.T) {
	coarse := []float64{-2, -1, 0, 1, 2}
	fine := []float64{-2.4, -1.8, -1.2, -0.6, 0, 0.6, 1.2, 1.8, 2.4}

	tbl := NewTable(coarse, fine, 1)

	last := tbl.Len() - 1
	assert.Equal(t, 0.0, tbl.WeightPrev[0])
	assert.Equal(t, 1.0, tbl.WeightNext[0])
	assert.Equal(t, 1.0, tbl.WeightPrev[last])
	assert.Equal(t, 0.0, tbl.WeightNext[last])
}

func TestNewTableInvariants(t *testing.T) {
	table := []struct {
		steps                int
		stepSize             float64
		coarseness, fineness int
	}{
		{9, 1, 2, 2},
		{21, 0.5, 2, 3},
		{45, 0.1, 3, 2},
		{101, 0.02, 2, 4},
	}

	for i, test := range table {
		coarse := grid.MakeCoarse(test.steps, test.stepSize, test.coarseness)
		fine := grid.MakeFine(test.steps, test.stepSize, test.fineness)
		coarseStep := test.stepSize * float64(test.coarseness)

		tbl := NewTable(coarse, fine, coarseStep)
		nc := len(coarse)

		for k := 0; k < tbl.Len(); k++ {
			prev, next := tbl.IndexPrev[k], tbl.IndexNext[k]
			assert.True(t, 0 <= prev && prev <= next && next <= nc-1,
				"%d) bad neighbour indices %d, %d at fine point %d", i, prev, next, k)
			assert.InDelta(t, 1, tbl.WeightPrev[k]+tbl.WeightNext[k], 1e-12,
				"%d) weights at fine point %d don't sum to one", i, k)
		}
	}
}

func TestMixUniform(t *testing.T) {
	coarse := grid.MakeCoarse(21, 0.5, 2)
	fine := grid.MakeFine(21, 0.5, 2)
	tbl := NewTable(coarse, fine, 1)

	nc := len(coarse)
	vals := mat.NewDense(nc, nc, nil)
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			vals.Set(i, j, 3.5)
		}
	}

	// A uniform coarse quantity virtualizes to the same uniform value.
	for i := 0; i < tbl.Len(); i++ {
		for j := 0; j < tbl.Len(); j++ {
			assert.InDelta(t, 3.5, tbl.Mix(vals, i, j), 1e-12)
		}
	}
}

func TestMixLinear(t *testing.T) {
	coarse := []float64{-2, -1, 0, 1, 2}
	fine := []float64{-0.6, 0, 0.6}
	tbl := NewTable(coarse, fine, 1)

	// vals[i][j] = x_i: interior interpolation reproduces a linear field.
	vals := mat.NewDense(5, 5, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			vals.Set(i, j, coarse[i])
		}
	}

	for i, x := range fine {
		for j := range fine {
			assert.InDelta(t, x, tbl.Mix(vals, i, j), 1e-12, "at %d,%d", i, j)
		}
	}
}
