/*
package spectral builds the closed-form operators that solve the
discrete Laplace (or Helmholtz) equation on the full simulation window
by elementwise multiplication in sine/cosine transform space.

Each operator entry [i, j] is 1/(lam[i] + lam[j]), where

	lam(k) = 4/h^2 * sin(k*pi / (2*(N-1)))^2

is the standard discrete second-derivative eigenvalue under the
transform, scaled by the 1/(2*(N-1))^2 transform normalization. Which k
values participate depends on the boundary conditions: Dirichlet drops
both boundary modes, Neumann keeps both zero modes, and the mixed
operator is one of each. See Samarskiy & Nikolaev, p. 187 and around.

All builders are pure functions of their arguments and panic only on
programmer errors; user input is validated by the config layer before
any of them runs.
*/
package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dirichlet builds the operator solving the Laplace equation with
// homogeneous Dirichlet boundaries on all four window edges. The two
// boundary modes carry the constraint and are excluded, so the operator
// is (N-2) x (N-2).
func Dirichlet(gridSteps int, h float64) *mat.Dense {
	checkArgs(gridSteps, h)
	lam := eigenvalues(1, gridSteps-1, gridSteps, h)
	return invEigenvalueSums(lam, lam, 0, norm(gridSteps))
}

// Mixed builds the operator for one Dirichlet and one Neumann boundary
// pair: rows span the Dirichlet modes 1..N-2 and columns the Neumann
// modes 0..N-1, an (N-2) x N operator. With subtractionTrick a unit
// shift is added to every denominator, turning the Laplace solve into a
// better-conditioned Helmholtz one.
func Mixed(gridSteps int, h float64, subtractionTrick bool) *mat.Dense {
	checkArgs(gridSteps, h)
	li := eigenvalues(1, gridSteps-1, gridSteps, h)
	lj := eigenvalues(0, gridSteps, gridSteps, h)

	shift := 0.0
	if subtractionTrick {
		shift = 1
	}
	return invEigenvalueSums(li, lj, shift, norm(gridSteps))
}

// Neumann builds the N x N operator for pure Neumann boundaries. The
// [0, 0] mode pair is singular; its entry is set to zero, which pins
// the arbitrary additive constant of the solution and touches no
// physically meaningful mode.
func Neumann(gridSteps int, h float64) *mat.Dense {
	checkArgs(gridSteps, h)
	lam := eigenvalues(0, gridSteps, gridSteps, h)
	m := invEigenvalueSums(lam, lam, 0, norm(gridSteps))
	m.Set(0, 0, 0)
	return m
}

// eigenvalues returns lam(k) for k in [lo, hi).
func eigenvalues(lo, hi, gridSteps int, h float64) []float64 {
	lam := make([]float64, hi-lo)
	for i := range lam {
		s := math.Sin(float64(lo+i) * math.Pi / (2 * float64(gridSteps-1)))
		lam[i] = 4 / (h * h) * s * s
	}
	return lam
}

func invEigenvalueSums(li, lj []float64, shift, scale float64) *mat.Dense {
	m := mat.NewDense(len(li), len(lj), nil)
	for i, a := range li {
		for j, b := range lj {
			m.Set(i, j, scale/(a+b+shift))
		}
	}
	return m
}

// norm is the normalization of the forward+inverse transform pair.
func norm(gridSteps int) float64 {
	n := 2 * float64(gridSteps-1)
	return 1 / (n * n)
}

func checkArgs(gridSteps int, h float64) {
	if gridSteps < 3 {
		panic("gridSteps must be at least 3.")
	} else if h <= 0 {
		panic("grid step size must be positive.")
	}
}
