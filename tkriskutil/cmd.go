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

// Package tkriskutil provides the command-line interface for tkrisk, along
// with the spreadsheet input, export and plotting used by it.
package tkriskutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/tkrisk"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to tkrisk.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile specifies the location of the parameter draws, either
              a Microsoft Excel (.xlsx) file or a comma-separated (.csv) file.
              The first row must hold column names, and the ku and ke columns
              are found by name regardless of case.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "InputSheet",
			usage: `
              InputSheet specifies the name of the sheet holding the parameter
              draws in an .xlsx InputFile. If empty, the first sheet is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Columns",
			usage: `
              Columns maps the canonical input column names "ku" and "ke" to
              the names used in InputFile, for example {"ku":"k1","ke":"k2"}.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "GrowthDilution",
			usage: `
              GrowthDilution is the growth dilution rate [1/d], which adds to
              the elimination rate ke.`,
			shorthand:  "g",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "DietaryFractions",
			usage: `
              DietaryFractions holds one or more fractions of total uptake that
              come from diet, each in [0, 1). Results for all fractions are
              pooled, so giving a range of values treats the dietary fraction
              as uncertain.`,
			shorthand:  "f",
			defaultVal: []float64{0.0},
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Grid.Min",
			usage: `
              Grid.Min is the lowest water concentration in the grid. It must
              be greater than zero.`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Grid.Max",
			usage: `
              Grid.Max is the highest water concentration in the grid.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Grid.Step",
			usage: `
              Grid.Step is the interval between water concentrations in the grid.`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Threshold",
			usage: `
              Threshold is the tissue concentration that should not be
              exceeded, in units consistent with the water concentration grid
              and the uptake rate.`,
			shorthand:  "t",
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "TargetExceedance",
			usage: `
              TargetExceedance is the acceptable probability that tissue
              concentration exceeds Threshold. The water concentration at which
              this probability is reached is reported.`,
			shorthand:  "p",
			defaultVal: 0.05,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies an .xlsx file to write the quantile bands,
              the exceedance curve and a run summary to. If empty, no file
              is written.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile specifies a prefix for plots of the quantile bands
              (PlotFile_bands.png) and the exceedance curve
              (PlotFile_exceedance.png). If empty, no plots are made.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ScenarioFile",
			usage: `
              ScenarioFile specifies a TOML file with one [[Scenario]] table
              per scenario, for example per species. Values not set for a
              scenario are taken from the other configuration variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the logging verbosity: debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TKRISK")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case []float64, map[string]string:
				// These are passed on the command line as JSON.
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("tkrisk: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("tkrisk: LogLevel: %v", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "tkrisk",
	Short: "Risk-based water concentration thresholds from toxicokinetic uncertainty.",
	Long: `tkrisk propagates uncertainty in toxicokinetic uptake (ku) and elimination
(ke) rates through a steady-state bioaccumulation model to calculate the
probability that tissue concentration exceeds a threshold as a function of
water concentration, and finds the water concentration at which that
probability equals a target value.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'TKRISK_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of tkrisk.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("tkrisk v%s\n", tkrisk.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that runs a single configuration.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate the exceedance curve and threshold crossing.",
	Long: `run reads the parameter draws in InputFile, calculates the tissue
concentration quantile bands and the exceedance curve over the water
concentration grid, and reports the water concentration at which the exceedance
probability equals TargetExceedance. If the target is outside the range of the
curve, the result is "undefined" and the grid should be widened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := RunConfig(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		plotFile, err := checkOutputFile(Cfg.GetString("PlotFile"))
		if err != nil {
			return err
		}
		r, err := Run(cfg,
			os.ExpandEnv(Cfg.GetString("InputFile")),
			os.ExpandEnv(Cfg.GetString("InputSheet")),
			outputFile, plotFile)
		if err != nil {
			return err
		}
		cmd.Printf("Cw* = %v\n", r.Crossing)
		return nil
	},
	DisableAutoGenTag: true,
}

// batchCmd is a command that runs every scenario in a scenario file.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run each scenario in ScenarioFile.",
	Long: `batch runs every scenario in the TOML file given by ScenarioFile, for
example one per species. Each scenario is a [[Scenario]] table with a Name and
any of the run configuration variables; variables it does not set are taken
from the global configuration. A failing scenario does not stop the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := RunConfig(Cfg)
		if err != nil {
			return err
		}
		scenarios, err := ReadScenarios(os.ExpandEnv(Cfg.GetString("ScenarioFile")))
		if err != nil {
			return err
		}
		_, err = Batch(cmd.OutOrStdout(), base,
			os.ExpandEnv(Cfg.GetString("InputFile")),
			os.ExpandEnv(Cfg.GetString("InputSheet")),
			scenarios)
		return err
	},
	DisableAutoGenTag: true,
}
