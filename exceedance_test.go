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
	"math/rand"
	"reflect"
	"testing"
)

func TestGridPoints(t *testing.T) {
	var tests = []struct {
		g    Grid
		want []float64
	}{
		{g: Grid{Min: 1, Max: 4, Step: 1}, want: []float64{1, 2, 3, 4}},
		{g: Grid{Min: 1, Max: 4.5, Step: 1}, want: []float64{1, 2, 3, 4}},
		{g: Grid{Min: 0.5, Max: 0.6, Step: 1}, want: []float64{0.5}},
	}
	for _, test := range tests {
		if have := test.g.Points(); !reflect.DeepEqual(have, test.want) {
			t.Errorf("%+v: %v != %v", test.g, have, test.want)
		}
	}

	pts := Grid{Min: 0.01, Max: 10, Step: 0.01}.Points()
	if len(pts) != 1000 {
		t.Errorf("have %d points, want 1000", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] <= pts[i-1] {
			t.Fatalf("points not strictly increasing at %d: %g, %g", i, pts[i-1], pts[i])
		}
	}
}

func TestExceedanceSingleFactor(t *testing.T) {
	c := Exceedance([]float64{10}, []float64{1, 2, 5, 10}, 10)
	want := Curve{{Cw: 1, P: 0}, {Cw: 2, P: 1}, {Cw: 5, P: 1}, {Cw: 10, P: 1}}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("%v != %v", c, want)
	}
}

func TestExceedanceMatchesDirect(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	b := make([]float64, 300)
	for i := range b {
		b[i] = r.ExpFloat64() * 5
	}
	b[7] = 4 // ties with threshold/cw at cw=2.5
	b[8] = 4
	grid := Grid{Min: 0.5, Max: 20, Step: 0.5}.Points()
	const thr = 10.0
	c := Exceedance(b, grid, thr)
	for i, cw := range grid {
		var n int
		for _, v := range b {
			if v > thr/cw {
				n++
			}
		}
		want := float64(n) / float64(len(b))
		if c[i].Cw != cw || c[i].P != want {
			t.Errorf("cw=%g: have %+v, want P=%g", cw, c[i], want)
		}
	}
}

func TestExceedanceMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	b := make([]float64, 1000)
	for i := range b {
		b[i] = r.ExpFloat64()
	}
	c := Exceedance(b, Grid{Min: 0.01, Max: 50, Step: 0.01}.Points(), 3)
	for i, p := range c {
		if p.P < 0 || p.P > 1 {
			t.Errorf("P[%d] = %g", i, p.P)
		}
		if i > 0 && p.P < c[i-1].P {
			t.Errorf("P decreases at cw=%g: %g < %g", p.Cw, p.P, c[i-1].P)
		}
	}
}

func TestExceedanceEmpty(t *testing.T) {
	c := Exceedance(nil, []float64{1, 2}, 1)
	if len(c) != 2 || c[0].P != 0 || c[1].P != 0 {
		t.Errorf("have %v", c)
	}
}
