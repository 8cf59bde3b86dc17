/*
package interp builds the table that interpolates coarse macro-particle
quantities onto the fine virtual grid.

The table is computed once from the two initial 1D grids and never
changes afterwards. Along one axis every fine point gets the indices of
its nearest coarse neighbours and their linear weights; the 2D
virtualization is the tensor product of the same table applied along x
and y, mixing up to four coarse neighbours per virtual particle.
*/
package interp

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Table holds, per fine-grid point, the coarse neighbour indices and
// their influence weights. Same-index weights sum to one; at the grid
// ends, where a neighbour is missing, the surviving one takes the full
// weight.
type Table struct {
	FineGrid               []float64
	IndexPrev, IndexNext   []int
	WeightPrev, WeightNext []float64
}

// NewTable builds the interpolation table for an ascending coarse grid
// with spacing coarseStep and an ascending fine grid. Both grids must
// be antisymmetric about zero, the way the grid package makes them.
func NewTable(coarseGrid, fineGrid []float64, coarseStep float64) *Table {
	nc := len(coarseGrid)
	if nc == 0 {
		panic("coarse grid is empty.")
	} else if coarseStep <= 0 {
		panic("coarse step must be positive.")
	}

	t := &Table{
		FineGrid:   fineGrid,
		IndexPrev:  make([]int, len(fineGrid)),
		IndexNext:  make([]int, len(fineGrid)),
		WeightPrev: make([]float64, len(fineGrid)),
		WeightNext: make([]float64, len(fineGrid)),
	}

	for k, x := range fineGrid {
		ins := sort.SearchFloat64s(coarseGrid, x)
		next := clamp(ins, 0, nc-1)
		prev := clamp(ins-1, 0, nc-1)

		// The further the fine point is from its right neighbour, the
		// more influence the left one has.
		wPrev := (coarseGrid[next] - x) / coarseStep
		wNext := (x - coarseGrid[prev]) / coarseStep
		if next == 0 { // nothing on the left, use right
			wPrev, wNext = 0, 1
		}
		if prev == nc-1 { // nothing on the right, use left
			wPrev, wNext = 1, 0
		}

		t.IndexPrev[k], t.IndexNext[k] = prev, next
		t.WeightPrev[k], t.WeightNext[k] = wPrev, wNext
	}

	return t
}

// Len returns the number of fine-grid points the table covers.
func (t *Table) Len() int { return len(t.FineGrid) }

// Mix reconstructs the fine-grid value at fine indices (i, j) from the
// up-to-four nearest coarse particles of vals:
//
//	wPrev[i]*wPrev[j] * <bottom-left>  + wPrev[i]*wNext[j] * <top-left> +
//	wNext[i]*wPrev[j] * <bottom-right> + wNext[i]*wNext[j] * <top-right>
func (t *Table) Mix(vals *mat.Dense, i, j int) float64 {
	pi, ni := t.IndexPrev[i], t.IndexNext[i]
	pj, nj := t.IndexPrev[j], t.IndexNext[j]
	return t.WeightPrev[i]*(t.WeightPrev[j]*vals.At(pi, pj)+t.WeightNext[j]*vals.At(pi, nj)) +
		t.WeightNext[i]*(t.WeightPrev[j]*vals.At(ni, pj)+t.WeightNext[j]*vals.At(ni, nj))
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	} else if i > hi {
		return hi
	}
	return i
}
