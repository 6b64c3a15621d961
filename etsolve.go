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

// Package etsolve estimates latent heat flux (evapotranspiration) from
// gridded or time-series micrometeorological fields using the analytical
// solution of the Penman–Monteith combination equation from Schymanski
// and Or (2017). The scalar physics lives in package schymanski2017;
// this package applies it elementwise over fields of matching shape.
package etsolve

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/sparse"

	"github.com/spatialmodel/etsolve/lambertw"
	"github.com/spatialmodel/etsolve/schymanski2017"
)

// Sample holds one batch of meteorological and conductance fields. Each
// field may be a time series (1-d) or a grid of any rank, but all nine
// must share the same shape. Use Constant to broadcast a scalar to the
// shape of the other fields.
type Sample struct {
	Ta *sparse.DenseArray // air temperature [K]
	Qa *sparse.DenseArray // specific humidity [kg/kg]
	Gs *sparse.DenseArray // surface conductance [m/s]
	Ga *sparse.DenseArray // aerodynamic conductance [m/s]
	Rn *sparse.DenseArray // net radiation [W/m2]
	G  *sparse.DenseArray // ground heat flux [W/m2]
	P  *sparse.DenseArray // air pressure [Pa]
	Gg *sparse.DenseArray // storage conductance [m/s]
	Gr *sparse.DenseArray // radiative conductance [m/s]
}

// ShapeError reports a batch field whose shape does not match the
// shape of the temperature field.
type ShapeError struct {
	Field       string
	Shape, Want []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("etsolve: field %s has shape %v; want %v",
		e.Field, e.Shape, e.Want)
}

// checkShapes returns a ShapeError for the first field whose shape
// differs from Ta's, before any computation begins.
func (s *Sample) checkShapes() error {
	fields := []struct {
		name string
		data *sparse.DenseArray
	}{
		{"Qa", s.Qa}, {"Gs", s.Gs}, {"Ga", s.Ga}, {"Rn", s.Rn},
		{"G", s.G}, {"P", s.P}, {"Gg", s.Gg}, {"Gr", s.Gr},
	}
	for _, f := range fields {
		if !shapesMatch(s.Ta.Shape, f.data.Shape) {
			return &ShapeError{Field: f.name, Shape: f.data.Shape, Want: s.Ta.Shape}
		}
	}
	return nil
}

func shapesMatch(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, n := range a {
		if b[i] != n {
			return false
		}
	}
	return true
}

// Constant returns an array of the given shape with every element set
// to v, for broadcasting scalar-valued inputs across a batch.
func Constant(v float64, shape ...int) *sparse.DenseArray {
	out := sparse.ZerosDense(shape...)
	for i := range out.Elements {
		out.Elements[i] = v
	}
	return out
}

// An Estimator calculates latent heat flux over batches of samples.
// The zero value is not usable; create one with NewEstimator.
type Estimator struct {
	// W evaluates the principal branch of the Lambert W function.
	// Replace it to swap in a differently tuned numerical routine.
	W schymanski2017.WFunc
}

// NewEstimator returns an Estimator using the lambertw package as its
// Lambert W evaluator.
func NewEstimator() *Estimator {
	return &Estimator{W: lambertw.W0}
}

// LatentHeatFlux calculates latent heat flux [W/m2] for every element
// of the sample, returning an array of the same shape as the inputs.
// Elements are independent, so the work is spread across processors;
// output order matches input order regardless. The first element error
// (in input order) is returned with its element index. The caller
// obligations and operating modes of schymanski2017.LatentHeatFlux
// apply elementwise, including the transformation of Rn and G into Rn*
// and G* before radiatively coupled (gg, gr > 0) calls.
func (e *Estimator) LatentHeatFlux(s *Sample) (*sparse.DenseArray, error) {
	if err := s.checkShapes(); err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(s.Ta.Shape...)
	n := len(s.Ta.Elements)

	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	errIndex := make([]int, nprocs)
	errs := make([]error, nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < n; ii += nprocs {
				le, err := schymanski2017.LatentHeatFlux(
					s.Ta.Elements[ii], s.Qa.Elements[ii],
					s.Gs.Elements[ii], s.Ga.Elements[ii],
					s.Rn.Elements[ii], s.G.Elements[ii],
					s.P.Elements[ii], s.Gg.Elements[ii],
					s.Gr.Elements[ii], e.W)
				if err != nil {
					errIndex[pp], errs[pp] = ii, err
					return
				}
				out.Elements[ii] = le
			}
		}(pp)
	}
	wg.Wait()
	if err := firstError(errIndex, errs); err != nil {
		return nil, err
	}
	return out, nil
}

// SatSpecHumidity calculates saturation specific humidity [kg/kg]
// elementwise, where T is temperature [K] and P is pressure [Pa]; T and
// P must share the same shape.
func SatSpecHumidity(T, P *sparse.DenseArray) (*sparse.DenseArray, error) {
	if !shapesMatch(T.Shape, P.Shape) {
		return nil, &ShapeError{Field: "P", Shape: P.Shape, Want: T.Shape}
	}
	out := sparse.ZerosDense(T.Shape...)
	for i, t := range T.Elements {
		out.Elements[i] = schymanski2017.SatSpecHumidity(t, P.Elements[i])
	}
	return out, nil
}

// firstError returns the per-worker error with the lowest element
// index, wrapped with that index.
func firstError(indices []int, errs []error) error {
	first := -1
	for pp, err := range errs {
		if err == nil {
			continue
		}
		if first < 0 || indices[pp] < indices[first] {
			first = pp
		}
	}
	if first < 0 {
		return nil
	}
	return fmt.Errorf("etsolve: element %d: %w", indices[first], errs[first])
}
