/*
Copyright © 2026 the tkrisk authors.
This file is part of tkrisk.

tkrisk is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

tkrisk is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with tkrisk.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tk holds toxicokinetic models relating the concentration of a
// contaminant in water to its concentration in organism tissue.
package tk

import "math"

// SteadyState implements the one-compartment bioaccumulation model at
// steady state, where uptake from water (and, through F, from diet) balances
// elimination and growth dilution:
//
//	Css = Ku / ((Ke + G) × (1 − F)) × Cw
//
// Tissue concentration is therefore linear in water concentration, and
// the whole model collapses to the single factor returned by Factor.
type SteadyState struct {
	// Ku is the uptake rate constant [L/kg/d].
	Ku float64

	// Ke is the elimination rate constant [1/d].
	Ke float64

	// G is the growth dilution rate [1/d].
	G float64

	// F is the fraction of total uptake contributed by diet. It must be
	// less than 1.
	F float64
}

// Factor returns the bioaccumulation factor b = Css / Cw.
func (s SteadyState) Factor() float64 {
	return s.Ku / ((s.Ke + s.G) * (1 - s.F))
}

// Valid reports whether s gives a finite, non-negative factor.
func (s SteadyState) Valid() bool {
	b := s.Factor()
	return !math.IsNaN(b) && !math.IsInf(b, 0) && b >= 0
}

// Css calculates the steady-state tissue concentration caused by water
// concentration cw.
func (s SteadyState) Css(cw float64) float64 {
	return s.Factor() * cw
}

// Cw calculates the water concentration that results in steady-state tissue
// concentration css.
func (s SteadyState) Cw(css float64) float64 {
	return css / s.Factor()
}
