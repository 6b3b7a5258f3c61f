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

import "sort"

// Point is one point on an exceedance curve: the probability P that
// tissue concentration exceeds the threshold at water concentration Cw.
type Point struct {
	Cw, P float64
}

// Curve is an exceedance curve ordered by water concentration.
type Curve []Point

// Probabilities returns the exceedance probabilities in c.
func (c Curve) Probabilities() []float64 {
	o := make([]float64, len(c))
	for i, p := range c {
		o[i] = p.P
	}
	return o
}

// Exceedance calculates, for each water concentration cw in grid, the
// fraction of bioaccumulation factors in b for which the tissue
// concentration b×cw exceeds threshold. This is evaluated as the fraction
// of b greater than threshold/cw, so grid values must be > 0. The result
// is non-decreasing in cw. If b is empty all probabilities are zero.
func Exceedance(b, grid []float64, threshold float64) Curve {
	s := make([]float64, len(b))
	copy(s, b)
	sort.Float64s(s)

	o := make(Curve, len(grid))
	for i, cw := range grid {
		o[i].Cw = cw
		if len(s) == 0 {
			continue
		}
		x := threshold / cw
		// Index of the first factor strictly greater than x.
		j := sort.Search(len(s), func(k int) bool { return s[k] > x })
		o[i].P = float64(len(s)-j) / float64(len(s))
	}
	return o
}
