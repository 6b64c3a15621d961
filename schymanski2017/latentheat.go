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

// Package schymanski2017 calculates latent heat flux (evapotranspiration)
// from near-surface meteorological and conductance variables using the
// exact analytical solution of the Penman–Monteith combination equation
// derived by Schymanski and Or (2017), "Leaf-scale experiments reveal an
// important omission in the Penman–Monteith equation", Hydrol. Earth
// Syst. Sci. 21. The solution replaces the linearized
// saturation-vapor-pressure slope of Penman–Monteith with an implicit
// solve via the principal branch of the Lambert W function.
package schymanski2017

import (
	"errors"
	"fmt"
	"math"
)

// WFunc evaluates the principal real branch of the Lambert W function,
// returning the unique real w satisfying w·exp(w) = z, or an error when
// z < −1/e. It is injected into LatentHeatFlux so the numerical routine
// can be swapped without touching the flux equation.
type WFunc func(z float64) (float64, error)

// ErrConductance indicates degenerate conductance inputs that would
// cause division by zero: gs+ga = 0 or ga+gg+gr = 0.
var ErrConductance = errors.New("schymanski2017: degenerate conductances")

// LatentHeatFlux calculates latent heat flux [W/m2] where Ta is air
// temperature [K], qa is specific humidity [kg/kg], gs is surface
// conductance [m/s], ga is aerodynamic conductance [m/s], Rn is net
// radiation [W/m2], G is ground heat flux [W/m2], P is air pressure
// [Pa], gg is storage conductance [m/s], gr is radiative conductance
// [m/s], and w evaluates the principal branch of the Lambert W function.
// Based on Schymanski and Or (2017) equation B15.
//
// Setting gg = gr = 0 gives the radiatively uncoupled formulation, with
// Rn and G taken at face value. Positive gg and gr give the radiatively
// coupled formulation, in which case Rn and G must already have been
// transformed by the caller into their coupled-equivalent forms Rn* and
// G*; no such transformation happens here.
func LatentHeatFlux(Ta, qa, gs, ga, Rn, G, P, gg, gr float64, w WFunc) (float64, error) {
	if gs+ga == 0 {
		return 0, fmt.Errorf("%w: gs+ga = 0", ErrConductance)
	}
	gt := ga + gg + gr // total non-surface conductance [m/s]
	if gt == 0 {
		return 0, fmt.Errorf("%w: ga+gg+gr = 0", ErrConductance)
	}
	qSat := SatSpecHumidity(Ta, P)
	gc := gs * ga / (gs + ga) // coupled surface-aerodynamic pathway conductance [m/s]

	// Schymanski and Or (2017) eq. B15. The recurring group
	// cp·rv·Ta²·gt is factored out of both the W argument and the
	// final flux.
	a := Cp * Rv * Ta * Ta * gt
	z := gc * Lambda * Lambda * qSat / a *
		math.Exp(Lambda/(a*RhoAir)*((Rn-G)+gc*Lambda*RhoAir*qa))
	wz, err := w(z)
	if err != nil {
		return 0, fmt.Errorf("schymanski2017: latent heat flux at W argument %g: %w", z, err)
	}
	return a*RhoAir/Lambda*wz - gc*RhoAir*Lambda*qa, nil
}
