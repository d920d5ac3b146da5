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
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/riverwq/riverprofile"
	"github.com/riverwq/riverprofile/profileplot"
)

var configFile string

// Root is the riverprofile command.
var Root = &cobra.Command{
	Use:   "riverprofile",
	Short: "riverprofile profiles water quality along river transects",
	Long: `riverprofile extracts per-element water-quality statistics from
hydrodynamic model output and aggregates them along transects of a
river, deriving DIN concentration profiles with log-normal percentile
bands and Water Framework Directive reference thresholds.`,
	SilenceUsage: true,
}

var profileCmd = &cobra.Command{
	Use:   "profile [transect CSV files]",
	Short: "Profile DIN along one or more transects",
	Long: `profile reads each transect CSV file, resolves the mesh element
containing each point, derives the DIN mean, standard deviation,
percentile and WFD threshold columns, and writes a result table plus
profile figures to the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return err
		}

		log.Println("Reading mesh geometry...")
		mesh, err := riverprofile.OpenMesh(cfg.GeometryFile, riverprofile.DefaultMeshVars)
		if err != nil {
			return err
		}
		stats, err := riverprofile.OpenStats(cfg.StatisticsFile)
		if err != nil {
			return err
		}
		defer stats.Close()

		if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
			return err
		}
		for _, path := range args {
			if err := runTransect(cfg, mesh, stats, path); err != nil {
				return fmt.Errorf("%s: %v", path, err)
			}
		}
		return nil
	},
}

var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "List the variables available in the statistics dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return err
		}
		stats, err := riverprofile.OpenStats(cfg.StatisticsFile)
		if err != nil {
			return err
		}
		defer stats.Close()
		for _, v := range stats.Variables() {
			fmt.Println(v)
		}
		return nil
	},
}

func init() {
	Root.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"configuration file location")
	Root.AddCommand(profileCmd, variablesCmd)
}

// runTransect profiles a single transect CSV file.
func runTransect(cfg *Config, mesh *riverprofile.Mesh, stats *riverprofile.StatsFile, path string) error {
	log.Printf("Processing %s...", path)

	eastings, northings, err := readCoordinates(path, cfg.EastingColumn, cfg.NorthingColumn)
	if err != nil {
		return err
	}
	log.Printf("Read %d points", len(eastings))

	t, err := riverprofile.New(eastings, northings, mesh, stats, cfg.transectConfig())
	if err != nil {
		return err
	}
	resolved := 0
	for _, id := range t.ElementIDs() {
		if id >= 0 {
			resolved++
		}
	}
	log.Printf("Resolved %d of %d points to mesh elements", resolved, t.Len())

	if ok, err := t.DeriveDIN(); !ok {
		if err != nil {
			return fmt.Errorf("deriving DIN: %v", err)
		}
		return fmt.Errorf("deriving DIN: no source data available along this transect")
	}
	if ok, err := t.DeriveDINStdDev(); !ok && err != nil {
		log.Printf("Warning: DIN standard deviation unavailable: %v", err)
	}
	for _, p := range cfg.Percentiles {
		if ok, err := t.DINPercentile(p); !ok && err != nil {
			log.Printf("Warning: %gth percentile unavailable: %v", p, err)
		}
	}
	t.AttachWFDBands()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tablePath := filepath.Join(cfg.OutputDir, base+"_profile.csv")
	f, err := os.Create(tablePath)
	if err != nil {
		return err
	}
	if err := t.Table().WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Table saved to %s", tablePath)

	title := strings.Replace(base, "_", " ", -1)
	for _, fig := range []struct {
		suffix string
		render func() error
	}{
		{"_stats.png", func() error {
			p, err := profileplot.DIN(t, "DIN concentrations in "+title)
			if err != nil {
				return err
			}
			return p.Save(12*vg.Inch, 7*vg.Inch, filepath.Join(cfg.OutputDir, base+"_stats.png"))
		}},
		{"_with_wfd.png", func() error {
			p, err := profileplot.DINWithWFD(t, "DIN concentrations in "+title+" with WFD guidelines")
			if err != nil {
				return err
			}
			return p.Save(12*vg.Inch, 7*vg.Inch, filepath.Join(cfg.OutputDir, base+"_with_wfd.png"))
		}},
	} {
		if err := fig.render(); err != nil {
			return fmt.Errorf("rendering %s%s: %v", base, fig.suffix, err)
		}
		log.Printf("Plot saved to %s", filepath.Join(cfg.OutputDir, base+fig.suffix))
	}
	return nil
}
