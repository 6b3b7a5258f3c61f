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
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// testConfig returns a valid configuration that logs to hook.
func testConfig() (*Config, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.Level = logrus.DebugLevel
	return &Config{
		GrowthDilution:   0,
		DietaryFractions: []float64{0},
		Grid:             Grid{Min: 0.1, Max: 10, Step: 0.1},
		Threshold:        10,
		TargetExceedance: 0.05,
		Log:              log,
	}, hook
}

// testTable returns a table of n random draws.
func testTable(n int, seed int64) Table {
	r := rand.New(rand.NewSource(seed))
	t := Table{Columns: []string{"iteration", "Ku", "KE"}}
	for i := 0; i < n; i++ {
		ku := math.Exp(r.NormFloat64()*0.3 + math.Log(2))
		ke := math.Exp(r.NormFloat64()*0.2 + math.Log(0.2))
		t.Rows = append(t.Rows, []interface{}{float64(i), ku, ke})
	}
	return t
}

func TestLoadDraws(t *testing.T) {
	c, hook := testConfig()
	c.GrowthDilution = 0.05
	tbl := Table{
		Columns: []string{" KU ", "other", "Ke"},
		Rows: [][]interface{}{
			{1.0, "x", 0.1},
			{"2.5", nil, " 0.2 "},
			{3, nil, int64(1)},
			{-1.0, nil, 0.1},         // negative uptake
			{1.0, nil, -0.05},        // ke + g == 0
			{1.0, nil, -0.01},        // ke + g > 0
			{"abc", nil, 0.1},        // not a number
			{1.0, nil, nil},          // missing
			{1.0, nil, ""},           // blank
			{true, nil, 0.1},         // boolean
			{"NaN", nil, 0.1},        // not finite
			{math.Inf(1), nil, 0.1},  // not finite
			{1.0},                    // short row
			{0.0, nil, 0.3},          // zero uptake is valid
			{float32(0.5), nil, 0.5}, // other numeric types
		},
	}
	have, err := LoadDraws(c, tbl)
	if err != nil {
		t.Fatal(err)
	}
	want := []Draw{
		{Ku: 1, Ke: 0.1},
		{Ku: 2.5, Ke: 0.2},
		{Ku: 3, Ke: 1},
		{Ku: 1, Ke: -0.01},
		{Ku: 0, Ke: 0.3},
		{Ku: 0.5, Ke: 0.5},
	}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("draws don't match:\n%v", pretty.Diff(have, want))
	}
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel {
		t.Errorf("expected a warning for %d draws, got %+v", len(have), e)
	}
}

func TestLoadDrawsEnough(t *testing.T) {
	c, hook := testConfig()
	have, err := LoadDraws(c, testTable(50, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(have) != 50 {
		t.Errorf("have %d draws, want 50", len(have))
	}
	for _, e := range hook.Entries {
		if e.Level == logrus.WarnLevel {
			t.Errorf("unexpected warning: %s", e.Message)
		}
	}
}

func TestLoadDrawsRenamedColumns(t *testing.T) {
	c, _ := testConfig()
	c.Columns = map[string]string{"KU": "k1", "ke": "K2"}
	tbl := Table{
		Columns: []string{"ku", "k1", "k2"},
		Rows:    [][]interface{}{{100.0, 1.0, 0.5}},
	}
	have, err := LoadDraws(c, tbl)
	if err != nil {
		t.Fatal(err)
	}
	want := []Draw{{Ku: 1, Ke: 0.5}}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("%v != %v", have, want)
	}
}

func TestLoadDrawsMissingColumn(t *testing.T) {
	c, _ := testConfig()
	for _, cols := range [][]string{
		{"ku", "k_e"},
		{"uptake", "ke"},
		{},
	} {
		_, err := LoadDraws(c, Table{Columns: cols})
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("columns %q: want *ConfigError, have %v", cols, err)
		}
	}
}

func TestLoadDrawsDuplicateColumn(t *testing.T) {
	c, _ := testConfig()
	tbl := Table{
		Columns: []string{"Ku", "ke", "KU"},
		Rows:    [][]interface{}{{1.0, 0.1, 5.0}},
	}
	have, err := LoadDraws(c, tbl)
	if err != nil {
		t.Fatal(err)
	}
	if have[0].Ku != 1 {
		t.Errorf("first matching column should be used; have ku=%g", have[0].Ku)
	}
}

func TestLoadDrawsAmbiguousRename(t *testing.T) {
	c, _ := testConfig()
	c.Columns = map[string]string{"ku": "a", "KU": "b"}
	tbl := Table{
		Columns: []string{"a", "b", "ke"},
		Rows:    [][]interface{}{{1.0, 2.0, 0.1}},
	}
	// Map iteration order varies, so repeat to cover both orders.
	for i := 0; i < 50; i++ {
		_, err := LoadDraws(c, tbl)
		var ce *ConfigError
		if !errors.As(err, &ce) || ce.Field != "Columns" {
			t.Fatalf("have %v, want Columns ConfigError", err)
		}
	}
}
