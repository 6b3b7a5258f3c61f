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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/tkrisk"
	"github.com/spf13/cast"
)

// checkOutputFile expands any environment variables in f and makes sure
// that its directory exists. An empty f means no output is requested.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("tkrisk: the output directory doesn't exist: %v", err)
	}
	return f, nil
}

// RunConfig unmarshals a viper configuration for a run. The returned
// configuration has not been validated.
func RunConfig(cfg *viper.Viper) (*tkrisk.Config, error) {
	fractions, err := toFloat64SliceE(cfg.Get("DietaryFractions"))
	if err != nil {
		return nil, fmt.Errorf("tkriskutil: parsing config variable DietaryFractions: %v", err)
	}
	columns, err := GetStringMapString("Columns", cfg)
	if err != nil {
		return nil, err
	}
	return &tkrisk.Config{
		GrowthDilution:   cfg.GetFloat64("GrowthDilution"),
		DietaryFractions: fractions,
		Grid: tkrisk.Grid{
			Min:  cfg.GetFloat64("Grid.Min"),
			Max:  cfg.GetFloat64("Grid.Max"),
			Step: cfg.GetFloat64("Grid.Step"),
		},
		Threshold:        cfg.GetFloat64("Threshold"),
		TargetExceedance: cfg.GetFloat64("TargetExceedance"),
		Columns:          columns,
		Log:              logrus.StandardLogger(),
	}, nil
}

// toFloat64SliceE converts a configuration value to a []float64,
// accounting for the fact that it might be a json array if it was set
// from a command line argument or environment variable.
func toFloat64SliceE(s interface{}) ([]float64, error) {
	switch v := s.(type) {
	case []float64:
		return v, nil
	case []interface{}:
		o := make([]float64, len(v))
		for i, val := range v {
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, err
			}
			o[i] = f
		}
		return o, nil
	case float64, int, int64:
		f, err := cast.ToFloat64E(v)
		return []float64{f}, err
	case string:
		v = strings.TrimSpace(v)
		if !strings.HasPrefix(v, "[") {
			// A single value or a comma separated list.
			var o []float64
			for _, part := range strings.Split(v, ",") {
				f, err := cast.ToFloat64E(strings.TrimSpace(part))
				if err != nil {
					return nil, err
				}
				o = append(o, f)
			}
			return o, nil
		}
		var o []float64
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type %T for list of numbers", s)
	}
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("tkriskutil: parsing config variable %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("tkriskutil: invalid type for config variable %s: %#v", varName, i)
	}
}
