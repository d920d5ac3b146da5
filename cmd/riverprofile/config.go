/*
Copyright © 2026 the RiverProfile authors.
This file is part of RiverProfile.

RiverProfile is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RiverProfile is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RiverProfile.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/riverwq/riverprofile"
)

// Config holds the riverprofile configuration. All dataset locations are
// explicit; there are no built-in default paths.
type Config struct {
	// GeometryFile is the path of the waqgeom NetCDF file describing
	// the model mesh.
	GeometryFile string

	// StatisticsFile is the path of the NetCDF file holding the
	// per-element full-run statistics.
	StatisticsFile string

	// SearchRadius is the element lookup search radius in the model's
	// coordinate units. 0 uses the default; negative disables the
	// spatial pre-filter.
	SearchRadius float64

	// EastingColumn and NorthingColumn name the coordinate columns in
	// transect CSV files. They default to "E" and "N".
	EastingColumn, NorthingColumn string

	// OutputDir is where result tables and figures are written.
	// Defaults to the current directory.
	OutputDir string

	// DINMeanVars and DINStdDevVars override the statistics variables
	// DIN is derived from. Each must have exactly two entries.
	DINMeanVars, DINStdDevVars []string

	// Percentiles lists the DIN percentiles to derive. Defaults to
	// 10 and 90.
	Percentiles []float64
}

func loadConfig(file string) (*Config, error) {
	if file == "" {
		return nil, fmt.Errorf("no configuration file specified (use --config)")
	}
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}
	cfg := new(Config)
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return nil, fmt.Errorf("problem parsing configuration file: %v", err)
	}

	cfg.GeometryFile = os.ExpandEnv(cfg.GeometryFile)
	cfg.StatisticsFile = os.ExpandEnv(cfg.StatisticsFile)
	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)
	if cfg.GeometryFile == "" {
		return nil, fmt.Errorf("configuration is missing GeometryFile")
	}
	if cfg.StatisticsFile == "" {
		return nil, fmt.Errorf("configuration is missing StatisticsFile")
	}
	if cfg.EastingColumn == "" {
		cfg.EastingColumn = "E"
	}
	if cfg.NorthingColumn == "" {
		cfg.NorthingColumn = "N"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if len(cfg.Percentiles) == 0 {
		cfg.Percentiles = []float64{10, 90}
	}
	for _, v := range [][]string{cfg.DINMeanVars, cfg.DINStdDevVars} {
		if len(v) != 0 && len(v) != 2 {
			return nil, fmt.Errorf("DIN variable lists must have exactly 2 entries, got %d", len(v))
		}
	}
	if (len(cfg.DINMeanVars) == 0) != (len(cfg.DINStdDevVars) == 0) {
		return nil, fmt.Errorf("DINMeanVars and DINStdDevVars must be set together")
	}
	return cfg, nil
}

// transectConfig translates the file configuration into transect
// construction settings.
func (cfg *Config) transectConfig() *riverprofile.Config {
	tc := &riverprofile.Config{SearchRadius: cfg.SearchRadius}
	if len(cfg.DINMeanVars) == 2 {
		tc.DIN = riverprofile.DINConfig{
			MeanVars:   [2]string{cfg.DINMeanVars[0], cfg.DINMeanVars[1]},
			StdDevVars: [2]string{cfg.DINStdDevVars[0], cfg.DINStdDevVars[1]},
		}
	}
	return tc
}

// readCoordinates reads the easting and northing columns from a transect
// CSV file. The column names are matched against the header row.
func readCoordinates(path, eastingCol, northingCol string) (eastings, northings []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	ei, ni := -1, -1
	for i, name := range records[0] {
		switch name {
		case eastingCol:
			ei = i
		case northingCol:
			ni = i
		}
	}
	if ei < 0 || ni < 0 {
		return nil, nil, fmt.Errorf("%s is missing required columns %q and/or %q",
			path, eastingCol, northingCol)
	}

	for i, rec := range records[1:] {
		e, err := strconv.ParseFloat(rec[ei], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: bad easting %q", path, i+2, rec[ei])
		}
		n, err := strconv.ParseFloat(rec[ni], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: bad northing %q", path, i+2, rec[ni])
		}
		eastings = append(eastings, e)
		northings = append(northings, n)
	}
	return eastings, northings, nil
}
