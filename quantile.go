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

package tkrisk

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// QuantileProbs are the cumulative probabilities of the summary quantiles.
var QuantileProbs = [5]float64{0.025, 0.25, 0.5, 0.75, 0.975}

// QuantileSet holds one value for each of QuantileProbs.
type QuantileSet [5]float64

// Quantiles returns the empirical quantiles of b at QuantileProbs. b is
// not modified. All values are NaN if b is empty.
//
// The quantiles use the inverse of the empirical distribution function
// (gonum stat.Empirical): each is an element of b, with no interpolation
// between neighbouring values, so they can differ from interpolated
// percentiles such as numpy's default.
func Quantiles(b []float64) QuantileSet {
	var q QuantileSet
	if len(b) == 0 {
		for i := range q {
			q[i] = math.NaN()
		}
		return q
	}
	s := make([]float64, len(b))
	copy(s, b)
	sort.Float64s(s)
	for i, p := range QuantileProbs {
		q[i] = stat.Quantile(p, stat.Empirical, s, nil)
	}
	return q
}

// Band holds the steady-state tissue concentration quantiles at one water
// concentration.
type Band struct {
	Cw  float64
	Css QuantileSet
}

// Bands scales the quantiles of the bioaccumulation factor by each grid
// value. Tissue concentration is linear in water concentration, so these
// are the quantiles of tissue concentration at each grid point.
func Bands(q QuantileSet, grid []float64) []Band {
	o := make([]Band, len(grid))
	for i, cw := range grid {
		o[i].Cw = cw
		for j, v := range q {
			o[i].Css[j] = v * cw
		}
	}
	return o
}
