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

import "fmt"

// ConfigError is returned when the configuration is invalid or when a
// required input column cannot be found. No results are calculated when
// it occurs.
type ConfigError struct {
	// Field is the name of the offending configuration variable or
	// input column.
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tkrisk: invalid %s: %s", e.Field, e.Msg)
}

// InsufficientDataError is returned when too few valid values remain
// after filtering to calculate meaningful statistics.
type InsufficientDataError struct {
	// Stage is the calculation step that ran out of data.
	Stage string

	// Have is the number of valid values, and Need is the minimum.
	Have, Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("tkrisk: %s: only %d valid values; at least %d are required",
		e.Stage, e.Have, e.Need)
}
