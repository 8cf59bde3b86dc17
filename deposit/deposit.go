/*
package deposit computes the initial charge density of the unperturbed
dual-resolution plasma.

Coarse macro-particle quantities are first virtualized onto the fine
grid with the precomputed bilinear table, then every virtual particle is
spread over its four nearest grid nodes with cloud-in-cell weights. The
returned array is the negated electron density: the immobile ion
background that exactly neutralizes the plasma at rest.
*/
package deposit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wakepic/wakepic/interp"
	"github.com/wakepic/wakepic/plasma"
)

// CloudInCell implements plasma.Depositor with first-order (2x2)
// cloud-in-cell weights.
type CloudInCell struct{}

func (CloudInCell) InitialDensity(
	gridSteps int, gridStepSize float64,
	coarseness, fineness int,
	p *plasma.Particles, tbl *interp.Table,
) (*mat.Dense, error) {
	ro := mat.NewDense(gridSteps, gridSteps, nil)
	nf := tbl.Len()

	// Virtual-particle charge relative to the coarse macro-particle.
	scale := 1 / float64(coarseness*fineness) / float64(coarseness*fineness)
	// Grid node (N-1)/2 sits at the window centre, x = y = 0.
	center := float64(gridSteps-1) / 2

	for i := 0; i < nf; i++ {
		for j := 0; j < nf; j++ {
			x := tbl.FineGrid[i] + tbl.Mix(p.XOfft, i, j)
			y := tbl.FineGrid[j] + tbl.Mix(p.YOfft, i, j)
			q := tbl.Mix(p.Q, i, j) * scale

			fx := x/gridStepSize + center
			fy := y/gridStepSize + center
			ix, iy := int(math.Floor(fx)), int(math.Floor(fy))
			if ix < 0 || iy < 0 || ix+1 >= gridSteps || iy+1 >= gridSteps {
				return nil, fmt.Errorf(
					"deposit: virtual particle at (%g, %g) is outside the window",
					x, y,
				)
			}

			dx, dy := fx-float64(ix), fy-float64(iy)
			ro.Set(ix, iy, ro.At(ix, iy)+q*(1-dx)*(1-dy))
			ro.Set(ix+1, iy, ro.At(ix+1, iy)+q*dx*(1-dy))
			ro.Set(ix, iy+1, ro.At(ix, iy+1)+q*(1-dx)*dy)
			ro.Set(ix+1, iy+1, ro.At(ix+1, iy+1)+q*dx*dy)
		}
	}

	// Flip the sign: the ions neutralize the electrons at rest.
	ro.Scale(-1, ro)
	return ro, nil
}
