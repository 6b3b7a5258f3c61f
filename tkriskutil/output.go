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
	"strings"

	"github.com/spatialmodel/tkrisk"
	"github.com/tealeg/xlsx"
)

// quantileLabel returns the column label for cumulative probability p,
// for example "q2.5" for 0.025.
func quantileLabel(p float64) string {
	return fmt.Sprintf("q%g", p*100)
}

func addRow(s *xlsx.Sheet, label string, values ...float64) {
	row := s.AddRow()
	row.AddCell().SetString(label)
	for _, v := range values {
		row.AddCell().SetFloat(v)
	}
}

// WriteResult writes the results of a run with configuration cfg to the
// Microsoft Excel file fileName, with sheets "Quantiles" (tissue
// concentration quantiles at each water concentration), "Exceedance"
// (the exceedance curve) and "Summary" (the run settings, the input
// statistics and the threshold crossing).
func WriteResult(fileName string, cfg *tkrisk.Config, r *tkrisk.Result) error {
	f := xlsx.NewFile()

	q, err := f.AddSheet("Quantiles")
	if err != nil {
		return fmt.Errorf("tkriskutil: writing results: %v", err)
	}
	header := q.AddRow()
	header.AddCell().SetString("Cw")
	for _, p := range tkrisk.QuantileProbs {
		header.AddCell().SetString(quantileLabel(p))
	}
	for _, b := range r.Bands {
		row := q.AddRow()
		row.AddCell().SetFloat(b.Cw)
		for _, v := range b.Css {
			row.AddCell().SetFloat(v)
		}
	}

	e, err := f.AddSheet("Exceedance")
	if err != nil {
		return fmt.Errorf("tkriskutil: writing results: %v", err)
	}
	header = e.AddRow()
	header.AddCell().SetString("Cw")
	header.AddCell().SetString("P")
	for _, p := range r.Curve {
		row := e.AddRow()
		row.AddCell().SetFloat(p.Cw)
		row.AddCell().SetFloat(p.P)
	}

	s, err := f.AddSheet("Summary")
	if err != nil {
		return fmt.Errorf("tkriskutil: writing results: %v", err)
	}
	row := s.AddRow()
	row.AddCell().SetString("Key")
	row.AddCell().SetString(r.Key)
	row = s.AddRow()
	row.AddCell().SetString("Version")
	row.AddCell().SetString(tkrisk.Version)
	addRow(s, "GrowthDilution", cfg.GrowthDilution)
	addRow(s, "DietaryFractions", cfg.DietaryFractions...)
	addRow(s, "Grid", cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Step)
	addRow(s, "Threshold", cfg.Threshold)
	addRow(s, "TargetExceedance", cfg.TargetExceedance)

	row = s.AddRow()
	for _, h := range []string{"", "N", "Mean", "SD", "Min", "Max"} {
		row.AddCell().SetString(h)
	}
	for _, st := range []struct {
		name string
		s    tkrisk.Stats
	}{{"ku", r.Summary.Ku}, {"ke", r.Summary.Ke}, {"b", r.Summary.B}} {
		addRow(s, st.name, float64(st.s.N), st.s.Mean, st.s.SD, st.s.Min, st.s.Max)
	}

	labels := make([]string, len(tkrisk.QuantileProbs))
	for i, p := range tkrisk.QuantileProbs {
		labels[i] = quantileLabel(p)
	}
	row = s.AddRow()
	row.AddCell().SetString("b quantiles (" + strings.Join(labels, ", ") + ")")
	for _, v := range r.Quantiles {
		row.AddCell().SetFloat(v)
	}

	row = s.AddRow()
	row.AddCell().SetString("Cw*")
	if r.Crossing.Defined {
		row.AddCell().SetFloat(r.Crossing.Cw)
	} else {
		row.AddCell().SetString(r.Crossing.String())
	}

	if err := f.Save(fileName); err != nil {
		return fmt.Errorf("tkriskutil: saving %s: %v", fileName, err)
	}
	return nil
}
