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

package schymanski2017

import "math"

// SatSpecHumidity estimates the saturation specific humidity [kg/kg]
// of air where T is temperature [K] and P is pressure [Pa], using the
// August–Roche–Magnus form of the Clausius–Clapeyron relation. The
// approximation is calibrated for temperatures between −30 and +35 °C;
// outside that range the result degrades in accuracy but is still
// returned. Temperatures below 50 K return zero rather than the
// formula's output; the guard exists to swallow uninitialized inputs.
// A pressure of zero or below produces a non-finite result, which is
// propagated rather than trapped.
func SatSpecHumidity(T, P float64) float64 {
	if T < 50 {
		return 0
	}
	Tc := T - 273.15
	eSat := 611.2 * math.Exp(17.67*Tc/(Tc+243.5)) // [Pa]
	return 0.62198 / P * eSat
}
