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

// Command tkrisk is a command-line interface for calculating risk-based
// water concentration thresholds from toxicokinetic parameter uncertainty.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/tkrisk/tkriskutil"
)

func main() {
	if err := tkriskutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
