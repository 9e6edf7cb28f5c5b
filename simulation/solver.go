package simulation

import "math"

const (
	solverTolerance = 1e-9
	maxIterations   = 100

	// Lower edge of the bisection bracket. Strictly positive so the
	// trivial root z=0 stays outside the bracket.
	bracketFloor = 1e-9
)

// finalSize solves the final-size equation z = 1 - exp(-r0s*z) for the
// largest non-negative root in [0,1], where r0s = R0 * s is the basic
// reproduction number scaled by the susceptible fraction.
//
// The fixed-point map has derivative r0s at z=0, so when r0s <= 1 the
// trivial root is the only stable one and iteration away from it would
// stall; that regime is detected up front instead of iterated.
func finalSize(r0s float64) (float64, error) {
	if r0s <= 1 {
		return 0, nil
	}

	f := func(z float64) float64 {
		return z - 1 + math.Exp(-r0s*z)
	}

	// f is negative just above the trivial root and positive at z=1
	// (f(1) = exp(-r0s) > 0), so the outbreak root is bracketed.
	lo, hi := bracketFloor, 1.0
	if f(lo) >= 0 {
		// Root sits below the bracket floor, indistinguishable
		// from zero at solver tolerance.
		return 0, nil
	}

	for i := 0; i < maxIterations; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < solverTolerance {
			return 0.5 * (lo + hi), nil
		}
	}

	return 0, ErrNonConvergence
}
