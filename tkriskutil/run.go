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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/tkrisk"
)

// Run reads the parameter draws from sheet of inputFile and runs the
// pipeline with configuration cfg.
//
// OutputFile is the path to an .xlsx file to write the results to, and
// plotFile is a prefix for the result plots. Either can be empty, in which
// case the corresponding output is skipped.
func Run(cfg *tkrisk.Config, inputFile, sheet, outputFile, plotFile string) (*tkrisk.Result, error) {
	startTime := time.Now()
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("file", inputFile).Info("reading parameter draws")
	t, err := ReadTable(inputFile, sheet)
	if err != nil {
		return nil, err
	}
	r, err := tkrisk.Run(cfg, t)
	if err != nil {
		return nil, err
	}
	if outputFile != "" {
		if err := WriteResult(outputFile, cfg, r); err != nil {
			return nil, err
		}
		log.WithField("file", outputFile).Info("wrote results")
	}
	if plotFile != "" {
		files, err := Plot(plotFile, cfg, r)
		if err != nil {
			return nil, err
		}
		log.WithField("files", files).Info("wrote plots")
	}
	log.WithField("elapsed", time.Since(startTime)).Debug("run complete")
	return r, nil
}
