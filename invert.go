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
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Crossing is the water concentration at which an exceedance curve
// reaches a target probability. If the target is outside the range of the
// curve, Defined is false and Cw is meaningless.
type Crossing struct {
	Cw      float64
	Defined bool
}

func (c Crossing) String() string {
	if !c.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(c.Cw, 'g', -1, 64)
}

// Invert finds the water concentration at which curve c reaches
// exceedance probability target, interpolating linearly between grid
// points with probability as the independent variable.
//
// The crossing is undefined if c is empty or target is outside
// [min(P), max(P)]; the caller should widen the grid and try again.
// A target equal to min(P) gives the first grid value and one equal to
// max(P) gives the last. Elsewhere the first crossing of the running
// maximum of P is used, so probabilities that dip because of sampling
// noise do not create spurious crossings. If the curve is flat at exactly
// the target over several grid points, the first of them is returned.
func Invert(c Curve, target float64) Crossing {
	if len(c) == 0 || math.IsNaN(target) {
		return Crossing{}
	}
	p := c.Probabilities()
	lo, hi := floats.Min(p), floats.Max(p)
	switch {
	case target < lo || target > hi:
		return Crossing{}
	case target == lo:
		return Crossing{Cw: c[0].Cw, Defined: true}
	case target == hi:
		return Crossing{Cw: c[len(c)-1].Cw, Defined: true}
	}

	for i := 1; i < len(p); i++ {
		p[i] = math.Max(p[i], p[i-1])
	}
	// lo < target < hi, so i < len(p).
	i := sort.SearchFloat64s(p, target)
	if i == 0 {
		// The curve starts above target and only dips below it later.
		return Crossing{Cw: c[0].Cw, Defined: true}
	}
	p0, p1 := p[i-1], p[i]
	x0, x1 := c[i-1].Cw, c[i].Cw
	return Crossing{
		Cw:      x0 + (target-p0)/(p1-p0)*(x1-x0),
		Defined: true,
	}
}
