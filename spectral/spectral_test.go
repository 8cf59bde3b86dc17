package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lamRef(k, gridSteps int, h float64) float64 {
	s := math.Sin(float64(k) * math.Pi / (2 * float64(gridSteps-1)))
	return 4 / (h * h) * s * s
}

func TestDirichlet(t *testing.T) {
	table := []struct {
		gridSteps int
		h         float64
	}{
		{5, 1}, {9, 0.5}, {21, 0.02},
	}

	for _, test := range table {
		n := test.gridSteps
		m := Dirichlet(n, test.h)

		rows, cols := m.Dims()
		assert.Equal(t, n-2, rows)
		assert.Equal(t, n-2, cols)

		scale := 1 / (2 * float64(n-1) * 2 * float64(n-1))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want := scale / (lamRef(i+1, n, test.h) + lamRef(j+1, n, test.h))
				assert.InDelta(t, want, m.At(i, j), 1e-15)
				assert.Equal(t, m.At(j, i), m.At(i, j), "not symmetric at %d,%d", i, j)
				assert.False(t, math.IsInf(m.At(i, j), 0))
			}
		}
	}
}

func TestNeumann(t *testing.T) {
	for _, n := range []int{3, 5, 9, 21} {
		m := Neumann(n, 0.3)

		rows, cols := m.Dims()
		assert.Equal(t, n, rows)
		assert.Equal(t, n, cols)

		// The singular zero-mode pair is pinned, not infinite.
		assert.Equal(t, 0.0, m.At(0, 0))

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				assert.Equal(t, m.At(j, i), m.At(i, j), "not symmetric at %d,%d", i, j)
				assert.False(t, math.IsInf(m.At(i, j), 0), "infinite entry at %d,%d", i, j)
				assert.False(t, math.IsNaN(m.At(i, j)), "NaN entry at %d,%d", i, j)
			}
		}
	}
}

func TestMixedShape(t *testing.T) {
	m := Mixed(9, 1, false)
	rows, cols := m.Dims()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 9, cols)
}

func TestMixedSubtractionTrick(t *testing.T) {
	n, h := 9, 0.5
	plain := Mixed(n, h, false)
	trick := Mixed(n, h, true)

	// The trick adds exactly one to every eigenvalue-sum denominator.
	scale := 1 / (2 * float64(n-1) * 2 * float64(n-1))
	rows, cols := plain.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, 1, scale/trick.At(i, j)-scale/plain.At(i, j), 1e-9,
				"at %d,%d", i, j)
		}
	}
}
