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
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxGridPoints limits the size of the concentration grid.
const maxGridPoints = 10000000

// Grid specifies a grid of water concentrations from Min to Max at
// intervals of Step.
type Grid struct {
	Min, Max, Step float64
}

// Points returns the grid values: Min, Min+Step, Min+2×Step, ... up to
// and including Max, allowing for floating point error in the number of
// steps.
func (g Grid) Points() []float64 {
	n := int(math.Floor((g.Max-g.Min)/g.Step + 1e-6))
	o := make([]float64, n+1)
	for i := range o {
		o[i] = g.Min + float64(i)*g.Step
	}
	return o
}

// Config holds the settings for one run. The zero value is not valid;
// Validate reports the first problem found.
type Config struct {
	// GrowthDilution is the growth dilution rate g [1/d]; it adds to
	// the elimination rate.
	GrowthDilution float64

	// DietaryFractions holds one or more fractions of total uptake
	// contributed by diet. Every draw is evaluated at every fraction
	// and the results are pooled.
	DietaryFractions []float64

	// Grid is the water concentration grid. Grid.Min must be > 0.
	Grid Grid

	// Threshold is the tissue concentration that should not be exceeded.
	Threshold float64

	// TargetExceedance is the exceedance probability to solve for.
	TargetExceedance float64

	// Columns optionally maps the canonical input column names ("ku" and
	// "ke") to the column names used in the input data.
	Columns map[string]string

	// Log receives progress and warning messages. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks that c can be used for a run, returning a *ConfigError
// if it cannot.
func (c *Config) Validate() error {
	vars := []float64{c.GrowthDilution, c.Grid.Min, c.Grid.Max, c.Grid.Step, c.Threshold, c.TargetExceedance}
	varNames := []string{"GrowthDilution", "Grid.Min", "Grid.Max", "Grid.Step", "Threshold", "TargetExceedance"}
	for i, v := range vars {
		if !finite(v) {
			return &ConfigError{Field: varNames[i], Msg: fmt.Sprintf("%g is not a finite number", v)}
		}
	}
	if c.GrowthDilution < 0 {
		return &ConfigError{Field: "GrowthDilution", Msg: fmt.Sprintf("%g but should be >= 0", c.GrowthDilution)}
	}
	if !(c.Grid.Min > 0) {
		return &ConfigError{Field: "Grid.Min", Msg: fmt.Sprintf("%g but should be > 0", c.Grid.Min)}
	}
	if !(c.Grid.Max > c.Grid.Min) {
		return &ConfigError{Field: "Grid.Max", Msg: fmt.Sprintf("%g but should be > Grid.Min (%g)", c.Grid.Max, c.Grid.Min)}
	}
	if !(c.Grid.Step > 0) {
		return &ConfigError{Field: "Grid.Step", Msg: fmt.Sprintf("%g but should be > 0", c.Grid.Step)}
	}
	if n := (c.Grid.Max - c.Grid.Min) / c.Grid.Step; n >= maxGridPoints {
		return &ConfigError{Field: "Grid.Step", Msg: fmt.Sprintf("grid would have %.0f points; the limit is %d", n, maxGridPoints)}
	}
	if len(c.DietaryFractions) == 0 {
		return &ConfigError{Field: "DietaryFractions", Msg: "at least one value is required"}
	}
	for _, f := range c.DietaryFractions {
		if !(f >= 0 && f < 1) {
			return &ConfigError{Field: "DietaryFractions", Msg: fmt.Sprintf("%g but values should be in [0, 1)", f)}
		}
	}
	if !(c.Threshold > 0) {
		return &ConfigError{Field: "Threshold", Msg: fmt.Sprintf("%g but should be > 0", c.Threshold)}
	}
	if !(c.TargetExceedance > 0 && c.TargetExceedance < 1) {
		return &ConfigError{Field: "TargetExceedance", Msg: fmt.Sprintf("%g but should be in (0, 1)", c.TargetExceedance)}
	}
	seen := make(map[string]string, len(c.Columns))
	for k := range c.Columns {
		lk := strings.ToLower(strings.TrimSpace(k))
		if lk != KuColumn && lk != KeColumn {
			return &ConfigError{Field: "Columns", Msg: fmt.Sprintf("unknown canonical column %q; only %q and %q can be renamed", k, KuColumn, KeColumn)}
		}
		if prev, ok := seen[lk]; ok {
			return &ConfigError{Field: "Columns", Msg: fmt.Sprintf("%q and %q both rename column %q", prev, k, lk)}
		}
		seen[lk] = k
	}
	return nil
}
