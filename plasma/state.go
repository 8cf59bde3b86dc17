/*
package plasma assembles the initial state of the dual-resolution
plasma: the coarse macro-particles that evolve, the field and current
arrays on the full window, and the run-constant arrays every later step
depends on.
*/
package plasma

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wakepic/wakepic/checkpoint"
	"github.com/wakepic/wakepic/interp"
)

// Plasma-electron constants in plasma units. Macro-particle values are
// these, scaled by the coarsening factor squared so the physical
// density is preserved.
const (
	ElectronMass   = 1
	ElectronCharge = -1
)

// Fields holds the electromagnetic field arrays on the full window,
// WidthSteps x WidthSteps each. They start at zero and are mutated by
// the field solver every step.
type Fields struct {
	Ex, Ey, Ez *mat.Dense
	Bx, By, Bz *mat.Dense
	Phi        *mat.Dense
}

// Particles holds the coarse macro-particle arrays, one Nc x Nc entry
// per particle. XInit, YInit, M and Q depend only on configuration;
// the offsets and momenta evolve under the pusher.
type Particles struct {
	XInit, YInit *mat.Dense
	XOfft, YOfft *mat.Dense
	Px, Py, Pz   *mat.Dense
	M, Q         *mat.Dense
}

// Currents holds the charge density and current arrays on the full
// window, zeroed at creation and mutated by deposition.
type Currents struct {
	Ro, Jx, Jy, Jz *mat.Dense
}

// ConstArrays bundles the arrays that stay fixed for the whole run:
// the three spectral operators, the coarse-to-fine interpolation table
// and the immobile ion background density. It is never persisted;
// reloading a checkpoint rebuilds it from configuration so it always
// matches the current parameters.
type ConstArrays struct {
	RoInitial       *mat.Dense
	DirichletMatrix *mat.Dense
	MixedMatrix     *mat.Dense
	NeumannMatrix   *mat.Dense
	Weights         *interp.Table
}

func newFields(n int) *Fields {
	return &Fields{
		Ex: mat.NewDense(n, n, nil), Ey: mat.NewDense(n, n, nil),
		Ez: mat.NewDense(n, n, nil), Bx: mat.NewDense(n, n, nil),
		By: mat.NewDense(n, n, nil), Bz: mat.NewDense(n, n, nil),
		Phi: mat.NewDense(n, n, nil),
	}
}

func newCurrents(n int) *Currents {
	return &Currents{
		Ro: mat.NewDense(n, n, nil), Jx: mat.NewDense(n, n, nil),
		Jy: mat.NewDense(n, n, nil), Jz: mat.NewDense(n, n, nil),
	}
}

func newParticles(coarseGrid []float64, coarseness int) *Particles {
	nc := len(coarseGrid)
	p := &Particles{
		XInit: mat.NewDense(nc, nc, nil), YInit: mat.NewDense(nc, nc, nil),
		XOfft: mat.NewDense(nc, nc, nil), YOfft: mat.NewDense(nc, nc, nil),
		Px: mat.NewDense(nc, nc, nil), Py: mat.NewDense(nc, nc, nil),
		Pz: mat.NewDense(nc, nc, nil),
		M:  mat.NewDense(nc, nc, nil), Q: mat.NewDense(nc, nc, nil),
	}

	scale := float64(coarseness * coarseness)
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			p.XInit.Set(i, j, coarseGrid[i])
			p.YInit.Set(i, j, coarseGrid[j])
			p.M.Set(i, j, ElectronMass*scale)
			p.Q.Set(i, j, ElectronCharge*scale)
		}
	}
	return p
}

// Snapshot collects the mutable arrays under their canonical checkpoint
// names. Initial positions, mass and charge are left out on purpose:
// they depend only on configuration and are re-derived on reload.
func Snapshot(f *Fields, p *Particles, c *Currents) checkpoint.State {
	return checkpoint.State{
		"x_offt": p.XOfft, "y_offt": p.YOfft,
		"px": p.Px, "py": p.Py, "pz": p.Pz,
		"Ex": f.Ex, "Ey": f.Ey, "Ez": f.Ez,
		"Bx": f.Bx, "By": f.By, "Bz": f.Bz, "Phi": f.Phi,
		"ro": c.Ro, "jx": c.Jx, "jy": c.Jy, "jz": c.Jz,
	}
}
