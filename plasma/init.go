package plasma

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wakepic/wakepic/config"
	"github.com/wakepic/wakepic/grid"
	"github.com/wakepic/wakepic/interp"
	"github.com/wakepic/wakepic/spectral"
)

// Depositor computes the charge density of the unperturbed plasma on
// the full window. It is the one external collaborator of the
// initializer; any error it returns propagates unchanged.
type Depositor interface {
	InitialDensity(
		gridSteps int, gridStepSize float64,
		coarseness, fineness int,
		p *Particles, tbl *interp.Table,
	) (*mat.Dense, error)
}

// Init builds the complete initial plasma state from a validated
// configuration. Either the full bundle is returned or none of it.
//
// Particle and interpolation structures live on the padded working
// window (WidthSteps - 2*PlasmaPaddingSteps), keeping the plasma away
// from the reflecting boundary; the spectral operators and the field
// and current arrays always span the full WidthSteps. That asymmetry
// is a fixed contract with the stepping driver.
func Init(cfg *config.Config, dep Depositor) (
	*Fields, *Particles, *Currents, *ConstArrays, error,
) {
	if err := cfg.CheckInit(); err != nil {
		return nil, nil, nil, nil, err
	}
	win, pl := &cfg.Window, &cfg.Plasma

	windowSteps := win.WidthSteps - 2*win.PlasmaPaddingSteps
	coarseGrid := grid.MakeCoarse(windowSteps, win.WidthStepSize, pl.Coarseness)
	fineGrid := grid.MakeFine(windowSteps, win.WidthStepSize, pl.Fineness)

	particles := newParticles(coarseGrid, pl.Coarseness)

	coarseStep := win.WidthStepSize * float64(pl.Coarseness)
	table := interp.NewTable(coarseGrid, fineGrid, coarseStep)

	roInitial, err := dep.InitialDensity(
		win.WidthSteps, win.WidthStepSize,
		pl.Coarseness, pl.Fineness,
		particles, table,
	)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	consts := &ConstArrays{
		RoInitial:       roInitial,
		DirichletMatrix: spectral.Dirichlet(win.WidthSteps, win.WidthStepSize),
		MixedMatrix: spectral.Mixed(
			win.WidthSteps, win.WidthStepSize, cfg.Solver.SubtractionTrick),
		NeumannMatrix: spectral.Neumann(win.WidthSteps, win.WidthStepSize),
		Weights:       table,
	}

	fields := newFields(win.WidthSteps)
	currents := newCurrents(win.WidthSteps)

	return fields, particles, currents, consts, nil
}
