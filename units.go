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

package etsolve

import (
	"fmt"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/etsolve/schymanski2017"
)

// Units
var (
	kelvins         = unit.Dimensions{unit.TemperatureDim: 1}
	dimensionless   = unit.Dimensions{}
	metersPerSecond = unit.Dimensions{
		unit.LengthDim: 1,
		unit.TimeDim:   -1}
	pascals = unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -1,
		unit.TimeDim:   -2}
	wattsPerMeter2 = unit.Dimensions{
		unit.MassDim: 1,
		unit.TimeDim: -3}
)

// LatentHeatFluxUnits calculates latent heat flux [W/m2] for a single
// dimensioned sample, checking the dimensions of every input before
// evaluating: Ta [K], qa [-], gs, ga, gg, gr [m/s], Rn, G [W/m2] and
// P [Pa]. The caller obligations of schymanski2017.LatentHeatFlux apply.
func (e *Estimator) LatentHeatFluxUnits(Ta, qa, gs, ga, Rn, G, P, gg, gr *unit.Unit) (*unit.Unit, error) {
	checks := []struct {
		name string
		u    *unit.Unit
		d    unit.Dimensions
	}{
		{"Ta", Ta, kelvins},
		{"qa", qa, dimensionless},
		{"gs", gs, metersPerSecond},
		{"ga", ga, metersPerSecond},
		{"Rn", Rn, wattsPerMeter2},
		{"G", G, wattsPerMeter2},
		{"P", P, pascals},
		{"gg", gg, metersPerSecond},
		{"gr", gr, metersPerSecond},
	}
	for _, c := range checks {
		if err := c.u.Check(c.d); err != nil {
			return nil, fmt.Errorf("etsolve: %s: %w", c.name, err)
		}
	}
	le, err := schymanski2017.LatentHeatFlux(Ta.Value(), qa.Value(),
		gs.Value(), ga.Value(), Rn.Value(), G.Value(), P.Value(),
		gg.Value(), gr.Value(), e.W)
	if err != nil {
		return nil, err
	}
	return unit.New(le, wattsPerMeter2), nil
}

// SatSpecHumidityUnits calculates saturation specific humidity [-] from
// dimensioned temperature [K] and pressure [Pa].
func SatSpecHumidityUnits(T, P *unit.Unit) (*unit.Unit, error) {
	if err := T.Check(kelvins); err != nil {
		return nil, fmt.Errorf("etsolve: T: %w", err)
	}
	if err := P.Check(pascals); err != nil {
		return nil, fmt.Errorf("etsolve: P: %w", err)
	}
	return unit.New(schymanski2017.SatSpecHumidity(T.Value(), P.Value()),
		dimensionless), nil
}
