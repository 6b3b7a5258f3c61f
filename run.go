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
	"github.com/spatialmodel/tkrisk/internal/hash"
)

// Result holds the outputs of a run.
type Result struct {
	// Key identifies the run inputs: runs with the same configuration
	// and draws have the same key.
	Key string

	// Draws are the valid parameter draws.
	Draws []Draw

	// ScaleFactors is the pooled bioaccumulation factor sample.
	ScaleFactors []float64

	// Quantiles of ScaleFactors at QuantileProbs.
	Quantiles QuantileSet

	// Bands holds the tissue concentration quantiles at each grid point.
	Bands []Band

	// Curve is the exceedance curve.
	Curve Curve

	// Crossing is the water concentration at which Curve reaches
	// the target exceedance probability.
	Crossing Crossing

	Summary Summary
}

// runKey holds the inputs that determine a result.
type runKey struct {
	GrowthDilution   float64
	DietaryFractions []float64
	Grid             Grid
	Threshold        float64
	TargetExceedance float64
	Draws            []Draw
}

// Run loads the parameter draws in t and calculates the quantile bands,
// the exceedance curve and the threshold crossing for configuration c.
// Configuration and input column problems return a *ConfigError, and too
// few valid values return an *InsufficientDataError. An undefined
// crossing is not an error.
func Run(c *Config, t Table) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := c.logger()
	log.WithFields(logrus.Fields{
		"growthDilution":   c.GrowthDilution,
		"dietaryFractions": c.DietaryFractions,
		"gridMin":          c.Grid.Min,
		"gridMax":          c.Grid.Max,
		"gridStep":         c.Grid.Step,
		"threshold":        c.Threshold,
		"targetExceedance": c.TargetExceedance,
	}).Info("tkrisk: starting run")

	draws, err := LoadDraws(c, t)
	if err != nil {
		return nil, err
	}
	b, err := ScaleFactors(c, draws)
	if err != nil {
		return nil, err
	}

	grid := c.Grid.Points()
	r := &Result{
		Key: hash.Key(runKey{
			GrowthDilution:   c.GrowthDilution,
			DietaryFractions: c.DietaryFractions,
			Grid:             c.Grid,
			Threshold:        c.Threshold,
			TargetExceedance: c.TargetExceedance,
			Draws:            draws,
		}),
		Draws:        draws,
		ScaleFactors: b,
		Quantiles:    Quantiles(b),
		Curve:        Exceedance(b, grid, c.Threshold),
		Summary:      Summarize(draws, b),
	}
	r.Bands = Bands(r.Quantiles, grid)
	r.Crossing = Invert(r.Curve, c.TargetExceedance)

	fields := logrus.Fields{
		"key":      r.Key,
		"draws":    len(draws),
		"rows":     len(t.Rows),
		"meanKu":   r.Summary.Ku.Mean,
		"sdKu":     r.Summary.Ku.SD,
		"meanKe":   r.Summary.Ke.Mean,
		"sdKe":     r.Summary.Ke.SD,
		"factors":  r.Summary.B.N,
		"meanB":    r.Summary.B.Mean,
		"sdB":      r.Summary.B.SD,
		"minB":     r.Summary.B.Min,
		"maxB":     r.Summary.B.Max,
		"medianB":  r.Quantiles[2],
		"crossing": r.Crossing.String(),
	}
	if r.Crossing.Defined {
		log.WithFields(fields).Info("tkrisk: found threshold crossing")
	} else {
		p := r.Curve.Probabilities()
		fields["minP"] = p[0]
		fields["maxP"] = p[len(p)-1]
		log.WithFields(fields).Warn("tkrisk: target exceedance is outside the range of the curve; widen the grid")
	}
	return r, nil
}
