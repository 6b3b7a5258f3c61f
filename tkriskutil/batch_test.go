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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScenarios(t *testing.T, dir, contents string) string {
	t.Helper()
	fileName := filepath.Join(dir, "scenarios.toml")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(contents), 0644))
	return fileName
}

func TestReadScenarios(t *testing.T) {
	fileName := writeScenarios(t, t.TempDir(), `
[[Scenario]]
Name = "trout"
Threshold = 20.0
DietaryFractions = [0.0, 0.5]

[Scenario.Grid]
Max = 5.0

[[Scenario]]
InputFile = "other.csv"

[Scenario.Columns]
ku = "k_up"
`)
	s, err := ReadScenarios(fileName)
	require.NoError(t, err)
	require.Len(t, s, 2)

	require.Equal(t, "trout", s[0].Name)
	require.NotNil(t, s[0].Threshold)
	require.Equal(t, 20.0, *s[0].Threshold)
	require.Nil(t, s[0].TargetExceedance)
	require.Equal(t, []float64{0, 0.5}, s[0].DietaryFractions)
	require.NotNil(t, s[0].Grid.Max)
	require.Equal(t, 5.0, *s[0].Grid.Max)
	require.Nil(t, s[0].Grid.Min)

	require.Equal(t, "scenario 2", s[1].Name)
	require.Equal(t, "other.csv", s[1].InputFile)
	require.Equal(t, map[string]string{"ku": "k_up"}, s[1].Columns)

	_, err = ReadScenarios(writeScenarios(t, t.TempDir(), "Threshold = 1.0\n"))
	require.Error(t, err)
	_, err = ReadScenarios(writeScenarios(t, t.TempDir(), "[[Scenario]\n"))
	require.Error(t, err)
	_, err = ReadScenarios("")
	require.Error(t, err)
}

func TestReadScenariosIntegers(t *testing.T) {
	fileName := writeScenarios(t, t.TempDir(), `
[[Scenario]]
Name = "trout"
Threshold = 20
GrowthDilution = 0
DietaryFractions = [0, 0]

[Scenario.Grid]
Min = 1
Max = 5
Step = 1
`)
	s, err := ReadScenarios(fileName)
	require.NoError(t, err)
	require.Len(t, s, 1)
	require.Equal(t, 20.0, *s[0].Threshold)
	require.Equal(t, 0.0, *s[0].GrowthDilution)
	require.Equal(t, []float64{0, 0}, s[0].DietaryFractions)
	require.Equal(t, 1.0, *s[0].Grid.Min)
	require.Equal(t, 5.0, *s[0].Grid.Max)
	require.Equal(t, 1.0, *s[0].Grid.Step)
	require.Nil(t, s[0].TargetExceedance)

	_, err = ReadScenarios(writeScenarios(t, t.TempDir(), "[[Scenario]]\nThreshold = \"high\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Threshold")
}

func TestScenarioApply(t *testing.T) {
	base := testConfig()
	thr := 20.0
	gridMax := 5.0
	s := Scenario{Name: "trout", Threshold: &thr, DietaryFractions: []float64{0.5}}
	s.Grid.Max = &gridMax
	c := s.apply(base)
	require.Equal(t, 20.0, c.Threshold)
	require.Equal(t, 5.0, c.Grid.Max)
	require.Equal(t, base.Grid.Min, c.Grid.Min)
	require.Equal(t, base.TargetExceedance, c.TargetExceedance)
	require.Equal(t, []float64{0.5}, c.DietaryFractions)

	// The base configuration is unchanged.
	require.Equal(t, 10.0, base.Threshold)
	require.Equal(t, 2.0, base.Grid.Max)
	require.Equal(t, []float64{0}, base.DietaryFractions)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawsCSV(t, dir)
	out := filepath.Join(dir, "trout.xlsx")
	scenarios := []Scenario{
		{Name: "base"},
		{Name: "trout", OutputFile: out},
		{Name: "broken", InputFile: filepath.Join(dir, "missing.csv")},
		{Name: "narrow"},
	}
	gridMax := 0.5
	scenarios[3].Grid.Max = &gridMax
	w := new(bytes.Buffer)
	results, err := Batch(w, testConfig(), input, "", scenarios)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 4 scenarios failed: broken")
	require.Len(t, results, 4)

	require.InDelta(t, 0.52, results[0].Crossing.Cw, 1e-9)
	require.Equal(t, results[0].Key, results[1].Key)
	require.Nil(t, results[2])
	require.False(t, results[3].Crossing.Defined)

	_, err = os.Stat(out)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(w.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	require.Equal(t, fmt.Sprintf("base: Cw* = %v", results[0].Crossing), string(lines[0]))
	require.Contains(t, string(lines[2]), "broken: error:")
	require.Equal(t, "narrow: Cw* = undefined", string(lines[3]))
}

func TestBatchAllSucceed(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawsCSV(t, dir)
	thr := 5.0
	results, err := Batch(ioutil.Discard, testConfig(), input, "",
		[]Scenario{{Name: "a"}, {Name: "b", Threshold: &thr}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// The crossings fall on grid points, so halving the threshold
	// halves the crossing.
	require.InDelta(t, results[0].Crossing.Cw/2, results[1].Crossing.Cw, 1e-9)
	require.NotEqual(t, results[0].Key, results[1].Key)
}
