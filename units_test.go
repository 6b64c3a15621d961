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
	"testing"

	"github.com/ctessum/unit"
	"github.com/gonum/floats"
)

func TestLatentHeatFluxUnits(t *testing.T) {
	const tolerance = 1.e-9
	e := NewEstimator()
	le, err := e.LatentHeatFluxUnits(
		unit.New(293.15, kelvins),
		unit.New(0.008, dimensionless),
		unit.New(0.005, metersPerSecond),
		unit.New(0.02, metersPerSecond),
		unit.New(200, wattsPerMeter2),
		unit.New(20, wattsPerMeter2),
		unit.New(101325, pascals),
		unit.New(0, metersPerSecond),
		unit.New(0, metersPerSecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := le.Check(wattsPerMeter2); err != nil {
		t.Error(err)
	}
	if want := 108.50500986235684; !floats.EqualWithinAbsOrRel(le.Value(), want, tolerance, tolerance) {
		t.Errorf("got %.17g; want %.17g", le.Value(), want)
	}

	// Temperature given in the wrong dimensions must be rejected.
	_, err = e.LatentHeatFluxUnits(
		unit.New(293.15, pascals),
		unit.New(0.008, dimensionless),
		unit.New(0.005, metersPerSecond),
		unit.New(0.02, metersPerSecond),
		unit.New(200, wattsPerMeter2),
		unit.New(20, wattsPerMeter2),
		unit.New(101325, pascals),
		unit.New(0, metersPerSecond),
		unit.New(0, metersPerSecond),
	)
	if err == nil {
		t.Error("expected dimension check error for Ta")
	}
}

func TestSatSpecHumidityUnits(t *testing.T) {
	const tolerance = 1.e-9
	q, err := SatSpecHumidityUnits(unit.New(293.15, kelvins), unit.New(101325, pascals))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Check(dimensionless); err != nil {
		t.Error(err)
	}
	if want := 0.014345268905169893; !floats.EqualWithinAbsOrRel(q.Value(), want, tolerance, tolerance) {
		t.Errorf("got %.17g; want %.17g", q.Value(), want)
	}

	if _, err := SatSpecHumidityUnits(unit.New(293.15, kelvins), unit.New(1, dimensionless)); err == nil {
		t.Error("expected dimension check error for P")
	}
}
