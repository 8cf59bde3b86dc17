package plasma

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wakepic/wakepic/checkpoint"
	"github.com/wakepic/wakepic/config"
)

// Load rebuilds the plasma state from a saved checkpoint. The constant
// arrays and the configuration-derived particle arrays are recomputed
// by Init; only the mutable arrays are taken from the file. A missing
// or shape-mismatched array aborts the reload with a
// *checkpoint.CorruptStateError and nothing is returned.
func Load(cfg *config.Config, dep Depositor, path string) (
	*Fields, *Particles, *Currents, *ConstArrays, error,
) {
	fields, particles, currents, consts, err := Init(cfg, dep)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	state, err := checkpoint.Load(path)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	nc, _ := particles.XOfft.Dims()
	n := cfg.Window.WidthSteps

	arrays := []struct {
		name string
		dst  **mat.Dense
		size int
	}{
		{"x_offt", &particles.XOfft, nc}, {"y_offt", &particles.YOfft, nc},
		{"px", &particles.Px, nc}, {"py", &particles.Py, nc},
		{"pz", &particles.Pz, nc},
		{"Ex", &fields.Ex, n}, {"Ey", &fields.Ey, n}, {"Ez", &fields.Ez, n},
		{"Bx", &fields.Bx, n}, {"By", &fields.By, n}, {"Bz", &fields.Bz, n},
		{"Phi", &fields.Phi, n},
		{"ro", &currents.Ro, n}, {"jx", &currents.Jx, n},
		{"jy", &currents.Jy, n}, {"jz", &currents.Jz, n},
	}
	for _, a := range arrays {
		m, err := state.Get(a.name, a.size, a.size)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		*a.dst = m
	}

	return fields, particles, currents, consts, nil
}
