/*
Copyright © 2026 the ETsolve authors.
This file is part of ETsolve.

ETsolve is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ETsolve is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ETsolve.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package lambertw evaluates the principal real branch W₀ of the Lambert W
// function, the inverse of f(w) = w·exp(w). W₀ is single-valued and real
// for arguments z ≥ −1/e.
package lambertw

import (
	"errors"
	"math"
)

// ErrDomain indicates an argument below −1/e, where no real solution
// exists on the principal branch.
var ErrDomain = errors.New("lambertw: argument below -1/e is outside the domain of the principal branch")

// eInv is −1 times the branch point of the principal branch, exp(−1).
const eInv = 0.36787944117144233

const (
	maxIter = 50
	tol     = 1.e-15
)

// W0 evaluates the principal branch of the Lambert W function at z,
// returning the unique real w satisfying w·exp(w) = z. It returns
// ErrDomain when z < −1/e. The result is accurate to machine precision:
// an initial estimate (a series expansion about the branch point for z
// near −1/e, a rational fit for moderate z, and the asymptote
// log(z) − log(log(z)) for large z) is polished with Halley's iteration
// until the update falls below floating-point resolution.
func W0(z float64) (float64, error) {
	switch {
	case math.IsNaN(z):
		return math.NaN(), nil
	case z < -eInv:
		return 0, ErrDomain
	case z == 0:
		return 0, nil
	case math.IsInf(z, 1):
		return math.Inf(1), nil
	}

	var w float64
	switch {
	case z < -0.25:
		// Series about the branch point (Corless et al. 1996, eq. 4.22).
		p := math.Sqrt(2 * (math.E*z + 1))
		w = -1 + p*(1+p*(-1./3.+p*11./72.))
	case z < 3:
		w = z * (1 + 1.5*z) / (1 + z*(2.5+0.875*z))
	default:
		lz := math.Log(z)
		w = lz - math.Log(lz)
	}

	for i := 0; i < maxIter; i++ {
		ew := math.Exp(w)
		f := w*ew - z
		if f == 0 {
			return w, nil
		}
		w1 := w + 1
		wNext := w - f/(ew*w1-(w+2)*f/(2*w1))
		if math.Abs(wNext-w) <= tol*(math.Abs(wNext)+math.SmallestNonzeroFloat64) {
			return wNext, nil
		}
		w = wNext
	}
	return w, nil
}
