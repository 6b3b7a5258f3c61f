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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Canonical names of the required input columns.
const (
	KuColumn = "ku"
	KeColumn = "ke"
)

// Draw is one sample of the toxicokinetic parameters.
type Draw struct {
	// Ku is the uptake rate constant.
	Ku float64

	// Ke is the elimination rate constant.
	Ke float64
}

// Table holds raw input records, for example the rows of a spreadsheet.
// Cells may hold numbers, numeric strings or nil.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// columnIndex returns the index of the column matching the canonical
// name, after any renaming in c.Columns. Matching ignores case and
// surrounding space; the first match is used. More than one rename of the
// same canonical name is a *ConfigError.
func (c *Config) columnIndex(columns []string, canonical string) (int, error) {
	name := canonical
	var renamed string
	for k, v := range c.Columns {
		if !strings.EqualFold(strings.TrimSpace(k), canonical) {
			continue
		}
		if renamed != "" {
			return -1, &ConfigError{
				Field: "Columns",
				Msg:   fmt.Sprintf("%q and %q both rename column %q", renamed, k, canonical),
			}
		}
		renamed, name = k, v
	}
	name = strings.TrimSpace(name)
	for i, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}
	return -1, &ConfigError{
		Field: "input columns",
		Msg:   fmt.Sprintf("no column matching %q (for %s) in %q", name, canonical, columns),
	}
}

// parseCell converts a raw cell value to a finite number.
func parseCell(v interface{}) (float64, bool) {
	switch s := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		v = s
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || !finite(f) {
		return 0, false
	}
	return f, true
}

// LoadDraws maps the columns of t to the ku and ke parameters and returns
// the rows that form valid draws: both values finite, ku >= 0 and
// ke + c.GrowthDilution > 0. Other rows are skipped. A *ConfigError is
// returned if either column is missing. Having fewer than MinSamples
// valid draws causes a warning to be logged but is not an error.
func LoadDraws(c *Config, t Table) ([]Draw, error) {
	iKu, err := c.columnIndex(t.Columns, KuColumn)
	if err != nil {
		return nil, err
	}
	iKe, err := c.columnIndex(t.Columns, KeColumn)
	if err != nil {
		return nil, err
	}

	draws := make([]Draw, 0, len(t.Rows))
	for _, row := range t.Rows {
		if iKu >= len(row) || iKe >= len(row) {
			continue
		}
		ku, ok := parseCell(row[iKu])
		if !ok {
			continue
		}
		ke, ok := parseCell(row[iKe])
		if !ok {
			continue
		}
		if ku < 0 || !(ke+c.GrowthDilution > 0) {
			continue
		}
		draws = append(draws, Draw{Ku: ku, Ke: ke})
	}

	log := c.logger().WithFields(logrus.Fields{
		"rows":  len(t.Rows),
		"valid": len(draws),
	})
	if len(draws) < MinSamples {
		log.Warnf("tkrisk: only %d valid parameter draws; statistics will be unreliable", len(draws))
	} else {
		log.Debug("tkrisk: loaded parameter draws")
	}
	return draws, nil
}
