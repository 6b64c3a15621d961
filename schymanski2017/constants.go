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

// Fundamental constants.
const (
	kB     = 1.380649e-23   // Boltzmann constant [J/K]
	nA     = 6.02214076e23  // Avogadro constant [1/mol]
	mAir   = 0.02897        // molar mass of dry air [kg/mol]
	mWater = 0.018          // molar mass of water vapor [kg/mol]

	// Lambda is the latent heat of vaporization of water [J/kg].
	Lambda = 2.45e6

	// RhoAir is the density of air [kg/m3].
	RhoAir = 1.2
)

// Constants derived once from the fundamental set above, so that the
// gas constants and heat capacity used throughout the package cannot
// drift between call sites.
const (
	// Rv is the specific gas constant of water vapor [J kg-1 K-1].
	Rv = nA * kB / mWater

	// Rd is the specific gas constant of dry air [J kg-1 K-1].
	Rd = nA * kB / mAir

	// Cp is the specific heat of air at constant pressure
	// [J kg-1 K-1], using the diatomic-gas approximation (7/2)·Rd.
	Cp = 3.5 * Rd
)
