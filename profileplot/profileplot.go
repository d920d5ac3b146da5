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

// Package profileplot renders transect profiles as figures: DIN
// concentration against distance along the transect, with optional Water
// Framework Directive guideline overlays.
package profileplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/riverwq/riverprofile"
)

// DIN plots the mean DIN curve and the 10th and 90th log-normal percentile
// curves against distance along the transect. The DIN columns must already
// have been derived.
func DIN(t *riverprofile.Transect, title string) (*plot.Plot, error) {
	p, err := newProfilePlot(title)
	if err != nil {
		return nil, err
	}
	return p, addDINLines(p, t)
}

// DINWithWFD is like DIN but overlays the four WFD threshold bands and
// uses a logarithmic concentration axis so the full band range stays
// readable. The WFD columns are attached to the transect if they are not
// there yet.
func DINWithWFD(t *riverprofile.Transect, title string) (*plot.Plot, error) {
	p, err := newProfilePlot(title)
	if err != nil {
		return nil, err
	}
	if err := addDINLines(p, t); err != nil {
		return nil, err
	}

	if _, ok := t.Column(riverprofile.ColWFDHigh); !ok {
		t.AttachWFDBands()
	}
	dists := t.Distances()
	for _, name := range []string{
		riverprofile.ColWFDHigh,
		riverprofile.ColWFDGood,
		riverprofile.ColWFDModerate,
		riverprofile.ColWFDPoor,
	} {
		col, _ := t.Column(name)
		if err := plotutil.AddLines(p, name, xys(dists, col)); err != nil {
			return nil, err
		}
	}

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}
	return p, nil
}

// Variable plots one loaded statistics variable against distance along the
// transect.
func Variable(t *riverprofile.Transect, name, title string) (*plot.Plot, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("profileplot: variable %s is not loaded", name)
	}
	p, err := newProfilePlot(title)
	if err != nil {
		return nil, err
	}
	p.Y.Label.Text = name
	return p, plotutil.AddLinePoints(p, name, xys(t.Distances(), col))
}

// Path plots the transect path itself in map coordinates, for checking
// where the points fall.
func Path(t *riverprofile.Transect, title string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = "Easting"
	p.Y.Label.Text = "Northing"
	p.Add(plotter.NewGrid())

	pts := t.Points()
	xy := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xy[i].X = pt.Easting
		xy[i].Y = pt.Northing
	}
	return p, plotutil.AddLinePoints(p, xy)
}

func newProfilePlot(title string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "DIN concentration (mg N/l)"
	p.Add(plotter.NewGrid())
	return p, nil
}

func addDINLines(p *plot.Plot, t *riverprofile.Transect) error {
	dists := t.Distances()
	for _, curve := range []struct {
		col, label string
		optional   bool
	}{
		{riverprofile.PercentileColumn(10), "10th Percentile", true},
		{riverprofile.ColMeanDIN, "Mean", false},
		{riverprofile.PercentileColumn(90), "90th Percentile", true},
	} {
		col, ok := t.Column(curve.col)
		if !ok {
			if curve.optional {
				continue
			}
			return fmt.Errorf("profileplot: column %s has not been derived", curve.col)
		}
		if err := plotutil.AddLines(p, curve.label, xys(dists, col)); err != nil {
			return err
		}
	}
	return nil
}

// xys pairs distances with values, dropping points with missing values so
// the drawn line skips them.
func xys(dists, vals []float64) plotter.XYs {
	var out plotter.XYs
	for i := range dists {
		if math.IsNaN(vals[i]) {
			continue
		}
		out = append(out, plotter.XY{X: dists[i], Y: vals[i]})
	}
	return out
}
