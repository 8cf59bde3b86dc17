/*
package grid builds the 1D plasma particle coordinate grids.

Two grids share one window geometry: a coarse grid of macro-particles
that the pusher evolves, and a denser fine grid of virtual particles
reconstructed from the coarse one by bilinear interpolation. Both are
ascending and antisymmetric about the window centre.
*/
package grid

// MakeCoarse creates the initial coarse macro-particle coordinates, a
// single 1D grid used for both the x and y directions. One coarse
// particle covers coarseness grid cells per axis.
func MakeCoarse(steps int, stepSize float64, coarseness int) []float64 {
	if coarseness < 1 {
		panic("coarseness must be a positive integer.")
	}
	n := steps / (2 * coarseness)
	if n < 1 {
		panic("window too narrow for even a single coarse particle.")
	}

	plasmaStep := stepSize * float64(coarseness)
	out := make([]float64, 2*n-1)
	for i := 0; i < n; i++ {
		x := float64(i) * plasmaStep
		out[n-1+i] = x
		out[n-1-i] = -x
	}
	return out
}

// MakeFine creates the initial fine virtual-particle coordinates, a
// single 1D grid for both x and y, with fineness^2 virtual particles
// per grid cell. Positions avoid the cell edges; the parity of fineness
// decides whether a particle sits exactly on the centre axis:
//
//	fineness=3 (odd): a particle on the centre axis, none on cell edges
//	fineness=2 (even): every particle offset by half a fine step
func MakeFine(steps int, stepSize float64, fineness int) []float64 {
	if fineness < 1 {
		panic("fineness must be a positive integer.")
	}
	m := (steps / 2) * fineness
	if m < 1 {
		panic("window too narrow for even a single fine particle.")
	}

	plasmaStep := stepSize / float64(fineness)
	if fineness%2 == 1 {
		out := make([]float64, 2*m-1)
		for i := 0; i < m; i++ {
			x := float64(i) * plasmaStep
			out[m-1+i] = x
			out[m-1-i] = -x
		}
		return out
	}

	out := make([]float64, 2*m)
	for i := 0; i < m; i++ {
		x := (0.5 + float64(i)) * plasmaStep
		out[m+i] = x
		out[m-1-i] = -x
	}
	return out
}
