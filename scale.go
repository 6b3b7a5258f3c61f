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
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/tkrisk/tk"
)

// ScaleFactors calculates the bioaccumulation factor b = Css / Cw for
// every combination of draw and dietary fraction in c. The results for
// each fraction are concatenated, in the order of c.DietaryFractions, so
// each fraction contributes the same number of values to the pooled
// sample. Non-finite and negative factors are dropped. An
// *InsufficientDataError is returned if fewer than MinSamples factors
// remain.
func ScaleFactors(c *Config, draws []Draw) ([]float64, error) {
	b := make([]float64, 0, len(draws)*len(c.DietaryFractions))
	var dropped int
	for _, f := range c.DietaryFractions {
		for _, d := range draws {
			m := tk.SteadyState{Ku: d.Ku, Ke: d.Ke, G: c.GrowthDilution, F: f}
			if !m.Valid() {
				dropped++
				continue
			}
			b = append(b, m.Factor())
		}
	}
	if len(b) < MinSamples {
		return nil, &InsufficientDataError{Stage: "scale factors", Have: len(b), Need: MinSamples}
	}
	c.logger().WithFields(logrus.Fields{
		"fractions": len(c.DietaryFractions),
		"factors":   len(b),
		"dropped":   dropped,
	}).Debug("tkrisk: calculated scale factors")
	return b, nil
}
