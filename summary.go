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
	"github.com/GaryBoone/GoStats/stats"
)

// Stats holds descriptive statistics for a sample.
type Stats struct {
	N                  int
	Mean, SD, Min, Max float64
}

func describe(x []float64) Stats {
	s := Stats{N: len(x)}
	if s.N == 0 {
		return s
	}
	s.Mean = stats.StatsMean(x)
	s.Min = stats.StatsMin(x)
	s.Max = stats.StatsMax(x)
	if s.N > 1 {
		s.SD = stats.StatsSampleStandardDeviation(x)
	}
	return s
}

// Summary describes the parameter draws and the pooled bioaccumulation
// factors used in a run.
type Summary struct {
	Ku, Ke, B Stats
}

// Summarize calculates descriptive statistics for draws and pooled
// factors b.
func Summarize(draws []Draw, b []float64) Summary {
	ku := make([]float64, len(draws))
	ke := make([]float64, len(draws))
	for i, d := range draws {
		ku[i] = d.Ku
		ke[i] = d.Ke
	}
	return Summary{
		Ku: describe(ku),
		Ke: describe(ke),
		B:  describe(b),
	}
}
