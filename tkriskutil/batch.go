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
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/tkrisk"
	"github.com/spf13/cast"
)

// Scenario holds the settings for one run in a batch. Unset (nil or empty)
// fields are taken from the base configuration.
type Scenario struct {
	Name string

	InputFile, InputSheet string
	Columns               map[string]string

	GrowthDilution   *float64
	DietaryFractions []float64
	Grid             struct {
		Min, Max, Step *float64
	}
	Threshold        *float64
	TargetExceedance *float64

	// OutputFile and PlotFile are only written if they are set
	// for the scenario.
	OutputFile, PlotFile string
}

// scenarioTable is a [[Scenario]] table as decoded from TOML. Numbers are
// kept as decoded so that integer and float literals are both accepted.
type scenarioTable struct {
	Name                  string
	InputFile, InputSheet string
	Columns               map[string]string

	GrowthDilution   interface{}
	DietaryFractions interface{}
	Grid             struct {
		Min, Max, Step interface{}
	}
	Threshold        interface{}
	TargetExceedance interface{}

	OutputFile, PlotFile string
}

// optFloat converts an optional TOML number to a *float64, which is nil
// if v was not set.
func optFloat(name string, v interface{}) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return &f, nil
}

func (t *scenarioTable) scenario() (Scenario, error) {
	s := Scenario{
		Name:       t.Name,
		InputFile:  t.InputFile,
		InputSheet: t.InputSheet,
		Columns:    t.Columns,
		OutputFile: t.OutputFile,
		PlotFile:   t.PlotFile,
	}
	if t.DietaryFractions != nil {
		fractions, err := toFloat64SliceE(t.DietaryFractions)
		if err != nil {
			return s, fmt.Errorf("DietaryFractions: %v", err)
		}
		s.DietaryFractions = fractions
	}
	for _, v := range []struct {
		name string
		in   interface{}
		out  **float64
	}{
		{"GrowthDilution", t.GrowthDilution, &s.GrowthDilution},
		{"Grid.Min", t.Grid.Min, &s.Grid.Min},
		{"Grid.Max", t.Grid.Max, &s.Grid.Max},
		{"Grid.Step", t.Grid.Step, &s.Grid.Step},
		{"Threshold", t.Threshold, &s.Threshold},
		{"TargetExceedance", t.TargetExceedance, &s.TargetExceedance},
	} {
		f, err := optFloat(v.name, v.in)
		if err != nil {
			return s, err
		}
		*v.out = f
	}
	return s, nil
}

// ReadScenarios reads the [[Scenario]] tables in the TOML file fileName.
// Numeric values may be written as integers or floats.
func ReadScenarios(fileName string) ([]Scenario, error) {
	if fileName == "" {
		return nil, fmt.Errorf("tkriskutil: you need to specify a scenario file (the ScenarioFile configuration variable)")
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("tkriskutil: opening scenario file: %v", err)
	}
	defer f.Close()
	var tables struct {
		Scenario []scenarioTable
	}
	if _, err := toml.DecodeReader(f, &tables); err != nil {
		return nil, fmt.Errorf("tkriskutil: reading scenario file %s: %v", fileName, err)
	}
	if len(tables.Scenario) == 0 {
		return nil, fmt.Errorf("tkriskutil: scenario file %s has no [[Scenario]] tables", fileName)
	}
	scenarios := make([]Scenario, len(tables.Scenario))
	for i := range tables.Scenario {
		s, err := tables.Scenario[i].scenario()
		if err != nil {
			return nil, fmt.Errorf("tkriskutil: reading scenario %d in %s: %v", i+1, fileName, err)
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		scenarios[i] = s
	}
	return scenarios, nil
}

// apply returns a copy of base with the fields set in s replaced.
func (s *Scenario) apply(base *tkrisk.Config) *tkrisk.Config {
	c := *base
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.GrowthDilution, s.GrowthDilution)
	set(&c.Grid.Min, s.Grid.Min)
	set(&c.Grid.Max, s.Grid.Max)
	set(&c.Grid.Step, s.Grid.Step)
	set(&c.Threshold, s.Threshold)
	set(&c.TargetExceedance, s.TargetExceedance)
	if len(s.DietaryFractions) > 0 {
		c.DietaryFractions = append([]float64(nil), s.DietaryFractions...)
	}
	if len(s.Columns) > 0 {
		c.Columns = s.Columns
	}
	log := base.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	c.Log = log.WithField("scenario", s.Name)
	return &c
}

// Batch runs each of scenarios, starting from configuration base and
// reading parameter draws from inputFile and sheet unless a scenario
// specifies its own. The threshold crossing for each scenario is written
// to w. A scenario that fails is logged and skipped; its result is nil and
// an error naming all failed scenarios is returned after the others have run.
func Batch(w io.Writer, base *tkrisk.Config, inputFile, sheet string, scenarios []Scenario) ([]*tkrisk.Result, error) {
	results := make([]*tkrisk.Result, len(scenarios))
	var failed []string
	for i := range scenarios {
		s := &scenarios[i]
		cfg := s.apply(base)
		in, sh := inputFile, sheet
		if s.InputFile != "" {
			in = os.ExpandEnv(s.InputFile)
			sh = s.InputSheet
		} else if s.InputSheet != "" {
			sh = s.InputSheet
		}
		outputFile, err := checkOutputFile(s.OutputFile)
		if err == nil {
			var plotFile string
			if plotFile, err = checkOutputFile(s.PlotFile); err == nil {
				results[i], err = Run(cfg, in, sh, outputFile, plotFile)
			}
		}
		if err != nil {
			cfg.Log.WithError(err).Error("scenario failed")
			failed = append(failed, s.Name)
			fmt.Fprintf(w, "%s: error: %v\n", s.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s: Cw* = %v\n", s.Name, results[i].Crossing)
	}
	if len(failed) > 0 {
		return results, fmt.Errorf("tkriskutil: %d of %d scenarios failed: %s",
			len(failed), len(scenarios), strings.Join(failed, ", "))
	}
	return results, nil
}
