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
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/spatialmodel/tkrisk"
	"github.com/tealeg/xlsx"
)

// excelCache holds previously opened Microsoft Excel files
// to avoid reading the same file once per scenario.
var excelCache *requestcache.Cache

var loadExcelCacheOnce sync.Once

// loadExcelFile loads a Microsoft Excel file from disk, utilizing
// a cache to avoid loading the same file more than once.
func loadExcelFile(fileName string) (*xlsx.File, error) {
	loadExcelCacheOnce.Do(func() {
		excelCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			filename := req.(string)
			f, err := xlsx.OpenFile(filename)
			if err != nil {
				return nil, fmt.Errorf("tkriskutil: opening xlsx file: %v", err)
			}
			return f, nil
		}, 1, requestcache.Memory(20))
	})
	r := excelCache.NewRequest(context.Background(), fileName, fileName)
	fI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return fI.(*xlsx.File), nil
}

// ReadTable reads the parameter draws table from fileName, which must be
// an .xlsx or .csv file. For .xlsx files, sheet selects the sheet to read;
// if it is empty the first sheet is used. The first row holds the column
// names.
func ReadTable(fileName, sheet string) (tkrisk.Table, error) {
	if fileName == "" {
		return tkrisk.Table{}, fmt.Errorf("tkriskutil: you need to specify an input file (the InputFile configuration variable)")
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return readExcelTable(fileName, sheet)
	case ".csv":
		return readCSVTable(fileName)
	default:
		return tkrisk.Table{}, fmt.Errorf("tkriskutil: input file %s should have extension .xlsx or .csv", fileName)
	}
}

func readExcelTable(fileName, sheet string) (tkrisk.Table, error) {
	var t tkrisk.Table
	f, err := loadExcelFile(fileName)
	if err != nil {
		return t, err
	}
	var s *xlsx.Sheet
	if sheet == "" {
		if len(f.Sheets) == 0 {
			return t, fmt.Errorf("tkriskutil: reading %s: no sheets", fileName)
		}
		s = f.Sheets[0]
	} else {
		var ok bool
		if s, ok = f.Sheet[sheet]; !ok {
			return t, fmt.Errorf("tkriskutil: reading %s: no sheet %s", fileName, sheet)
		}
	}
	if len(s.Rows) == 0 {
		return t, fmt.Errorf("tkriskutil: reading %s: sheet %s is empty", fileName, s.Name)
	}
	for _, c := range s.Rows[0].Cells {
		t.Columns = append(t.Columns, strings.TrimSpace(c.Value))
	}
	for _, row := range s.Rows[1:] {
		if row == nil {
			continue
		}
		r := make([]interface{}, len(row.Cells))
		for i, c := range row.Cells {
			r[i] = cellValue(c)
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

// cellValue returns numeric cells as float64, blank cells as nil and
// anything else as its text.
func cellValue(c *xlsx.Cell) interface{} {
	if c == nil {
		return nil
	}
	v := strings.TrimSpace(c.Value)
	if v == "" {
		return nil
	}
	if c.Type() == xlsx.CellTypeNumeric {
		if f, err := c.Float(); err == nil {
			return f
		}
	}
	return v
}

func readCSVTable(fileName string) (tkrisk.Table, error) {
	var t tkrisk.Table
	f, err := os.Open(fileName)
	if err != nil {
		return t, fmt.Errorf("tkriskutil: opening input file: %v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return t, fmt.Errorf("tkriskutil: reading %s: %v", fileName, err)
	}
	if len(records) == 0 {
		return t, fmt.Errorf("tkriskutil: reading %s: file is empty", fileName)
	}
	t.Columns = records[0]
	for _, rec := range records[1:] {
		row := make([]interface{}, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
