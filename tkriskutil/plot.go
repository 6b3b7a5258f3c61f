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

package tkriskutil

import (
	"fmt"
	"image/color"

	"github.com/spatialmodel/tkrisk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var dashed = []vg.Length{vg.Points(4), vg.Points(3)}

// horizontal returns a dashed line at y spanning x0 to x1.
func horizontal(y, x0, x1 float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = color.Gray{Y: 100}
	l.LineStyle.Dashes = dashed
	return l, nil
}

// Plot creates plots of the tissue concentration quantile bands and of the
// exceedance curve for result r, saving them as prefix_bands.png and
// prefix_exceedance.png. It returns the names of the files created.
func Plot(prefix string, cfg *tkrisk.Config, r *tkrisk.Result) ([]string, error) {
	if len(r.Bands) == 0 || len(r.Curve) == 0 {
		return nil, fmt.Errorf("tkriskutil: plotting: no results")
	}
	x0, x1 := r.Bands[0].Cw, r.Bands[len(r.Bands)-1].Cw

	bp := plot.New()
	bp.Title.Text = "Steady-state tissue concentration"
	bp.X.Label.Text = "Water concentration"
	bp.Y.Label.Text = "Tissue concentration"
	bp.Legend.Top = true
	bp.Legend.Left = true
	for j, p := range tkrisk.QuantileProbs {
		xys := make(plotter.XYs, len(r.Bands))
		for i, b := range r.Bands {
			xys[i].X = b.Cw
			xys[i].Y = b.Css[j]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("tkriskutil: plotting bands: %v", err)
		}
		l.LineStyle.Color = plotutil.Color(j)
		l.LineStyle.Width = vg.Points(1.5)
		bp.Add(l)
		bp.Legend.Add(quantileLabel(p), l)
	}
	thr, err := horizontal(cfg.Threshold, x0, x1)
	if err != nil {
		return nil, fmt.Errorf("tkriskutil: plotting bands: %v", err)
	}
	bp.Add(thr)
	bp.Legend.Add("threshold", thr)

	ep := plot.New()
	ep.Title.Text = "Probability of exceeding the tissue threshold"
	ep.X.Label.Text = "Water concentration"
	ep.Y.Label.Text = "Exceedance probability"
	ep.Y.Min, ep.Y.Max = 0, 1
	ep.Legend.Top = true
	ep.Legend.Left = true
	xys := make(plotter.XYs, len(r.Curve))
	for i, p := range r.Curve {
		xys[i].X = p.Cw
		xys[i].Y = p.P
	}
	curve, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("tkriskutil: plotting exceedance: %v", err)
	}
	curve.LineStyle.Width = vg.Points(1.5)
	curve.LineStyle.Color = plotutil.Color(0)
	ep.Add(curve)
	ep.Legend.Add("exceedance", curve)
	target, err := horizontal(cfg.TargetExceedance, x0, x1)
	if err != nil {
		return nil, fmt.Errorf("tkriskutil: plotting exceedance: %v", err)
	}
	ep.Add(target)
	ep.Legend.Add("target", target)
	if r.Crossing.Defined {
		s, err := plotter.NewScatter(plotter.XYs{{X: r.Crossing.Cw, Y: cfg.TargetExceedance}})
		if err != nil {
			return nil, fmt.Errorf("tkriskutil: plotting exceedance: %v", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = plotutil.Color(1)
		ep.Add(s)
		ep.Legend.Add(fmt.Sprintf("Cw* = %.4g", r.Crossing.Cw), s)
	}

	files := []string{prefix + "_bands.png", prefix + "_exceedance.png"}
	for i, p := range []*plot.Plot{bp, ep} {
		if err := p.Save(7*vg.Inch, 5*vg.Inch, files[i]); err != nil {
			return nil, fmt.Errorf("tkriskutil: saving plot: %v", err)
		}
	}
	return files, nil
}
