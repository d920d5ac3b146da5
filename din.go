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

package riverprofile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DINConfig names the statistics variables that dissolved inorganic
// nitrogen (DIN) is derived from. DIN is the sum of the two tracer
// concentrations; the two slots of each pair must correspond (mean and
// standard deviation of the same tracers, in the same order).
type DINConfig struct {
	MeanVars   [2]string
	StdDevVars [2]string
}

// DefaultDINConfig names the full-run mean and standard deviation of the
// cTR2 and cTR4 tracers, following the Delft3D statistics output naming
// convention.
var DefaultDINConfig = DINConfig{
	MeanVars:   [2]string{"Mesh2D_2d_MEAN_FullRun_cTR2", "Mesh2D_2d_MEAN_FullRun_cTR4"},
	StdDevVars: [2]string{"Mesh2D_2d_STDEV_FullRun_cTR2", "Mesh2D_2d_STDEV_FullRun_cTR4"},
}

// Names of the derived transect columns.
const (
	ColMeanDIN   = "mean_din"
	ColDINStdDev = "din_std_dev"

	ColWFDHigh     = "WFD High"
	ColWFDGood     = "WFD Good"
	ColWFDModerate = "WFD Moderate"
	ColWFDPoor     = "WFD Poor"

	percentileColPrefix = "din_percentile_"
)

// Water Framework Directive DIN concentration thresholds [mg N/l]. These
// are fixed regulatory reference bands, identical at every point.
const (
	WFDHigh     = 0.282
	WFDGood     = 3.807
	WFDModerate = 5.7105
	WFDPoor     = 8.56575
)

// PercentileColumn returns the column name that DINPercentile(p) stores
// its result under, e.g. "din_percentile_90".
func PercentileColumn(p float64) string {
	return percentileColPrefix + strconv.FormatFloat(p, 'g', -1, 64)
}

// DeriveDIN computes the mean DIN concentration at each point as the sum
// of the two mean tracer variables, loading them first if necessary, and
// stores it in the "mean_din" column. A point missing either tracer value
// gets NaN.
//
// It returns true on success. False means one of the source variables was
// unavailable at every point, so no DIN column could be derived; the
// accompanying error, if any, reports why (e.g. a VarNotFoundError) but is
// not fatal. The column is memoized once derived.
func (t *Transect) DeriveDIN() (bool, error) {
	if col, ok := t.columns[ColMeanDIN]; ok {
		return anyValid(col), nil
	}
	return t.deriveSum(ColMeanDIN, t.din.MeanVars)
}

// DeriveDINStdDev computes the DIN standard deviation at each point as the
// plain sum of the two tracer standard deviations and stores it in the
// "din_std_dev" column. A point missing either source value gets NaN
// without affecting other points.
//
// Summing the standard deviations is the σ₁+σ₂ degenerate case of
// √(σ₁²+σ₂²+2σ₁σ₂), i.e. it assumes the two tracers are perfectly
// positively correlated. That is the established simplification for this
// nutrient pair; do not replace it with the uncorrelated combination.
func (t *Transect) DeriveDINStdDev() (bool, error) {
	if col, ok := t.columns[ColDINStdDev]; ok {
		return anyValid(col), nil
	}
	return t.deriveSum(ColDINStdDev, t.din.StdDevVars)
}

func (t *Transect) deriveSum(dst string, vars [2]string) (bool, error) {
	ok0, err := t.LoadVariable(vars[0])
	if err != nil && !isSoftErr(err) {
		return false, err
	}
	softErr := err
	ok1, err := t.LoadVariable(vars[1])
	if err != nil && !isSoftErr(err) {
		return false, err
	}
	if softErr == nil {
		softErr = err
	}
	if !ok0 || !ok1 {
		return false, softErr
	}

	a, _ := t.Column(vars[0])
	b, _ := t.Column(vars[1])
	col := make([]float64, len(t.points))
	for i := range col {
		col[i] = a[i] + b[i] // NaN on either side propagates
	}
	t.setColumn(dst, col)
	return anyValid(col), nil
}

// DINPercentile computes the p'th percentile (0 < p < 100) of DIN at each
// point, assuming DIN is log-normally distributed with that point's
// derived mean m and standard deviation s:
//
//	μ = ln(m²/√(m²+s²)),  σ = √(ln(1+s²/m²)),  value = exp(μ + σ·z(p/100))
//
// where z is the standard-normal quantile. Points with m ≤ 0 or missing m
// or s get NaN. The result is stored under PercentileColumn(p); distinct
// percentiles get independent columns.
//
// The DIN mean and standard deviation columns are derived first if they
// are not already present. False means they could not be derived, so no
// percentile column was added.
func (t *Transect) DINPercentile(p float64) (bool, error) {
	if p <= 0 || p >= 100 {
		return false, fmt.Errorf("riverprofile: percentile must be between 0 and 100 exclusive, got %g", p)
	}
	if col, ok := t.columns[PercentileColumn(p)]; ok {
		return anyValid(col), nil
	}
	if ok, err := t.DeriveDIN(); !ok {
		return false, err
	}
	if ok, err := t.DeriveDINStdDev(); !ok {
		return false, err
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(p / 100)
	m, _ := t.Column(ColMeanDIN)
	s, _ := t.Column(ColDINStdDev)
	col := make([]float64, len(t.points))
	for i := range col {
		col[i] = logNormalPercentile(m[i], s[i], z)
	}
	t.setColumn(PercentileColumn(p), col)
	return anyValid(col), nil
}

// logNormalPercentile evaluates the log-normal quantile parameterized by
// mean m and standard deviation s at standard-normal quantile z. NaN if
// the parameterization is undefined (m ≤ 0 or missing inputs).
func logNormalPercentile(m, s, z float64) float64 {
	if math.IsNaN(m) || math.IsNaN(s) || m <= 0 {
		return math.NaN()
	}
	mu := math.Log(m * m / math.Sqrt(m*m+s*s))
	sigma := math.Sqrt(math.Log(1 + s*s/(m*m)))
	return math.Exp(mu + sigma*z)
}

// AttachWFDBands adds the four constant Water Framework Directive
// threshold columns to the transect for tabular and plotted comparison
// against the derived DIN columns.
func (t *Transect) AttachWFDBands() {
	for _, band := range []struct {
		name  string
		level float64
	}{
		{ColWFDHigh, WFDHigh},
		{ColWFDGood, WFDGood},
		{ColWFDModerate, WFDModerate},
		{ColWFDPoor, WFDPoor},
	} {
		col := make([]float64, len(t.points))
		floats.AddConst(band.level, col)
		t.setColumn(band.name, col)
	}
}

// isSoftErr reports whether err is one of the per-point soft failure
// types that degrade to missing values rather than aborting.
func isSoftErr(err error) bool {
	switch err.(type) {
	case VarNotFoundError, ElementRangeError:
		return true
	}
	return false
}

// dependsOnDIN reports whether the named variable is one of the DIN source
// variables.
func (t *Transect) dependsOnDIN(name string) bool {
	return name == t.din.MeanVars[0] || name == t.din.MeanVars[1] ||
		name == t.din.StdDevVars[0] || name == t.din.StdDevVars[1]
}

// dropDerived removes the memoized DIN columns so they will be recomputed
// from freshly loaded source data. The WFD bands are static and stay.
func (t *Transect) dropDerived() {
	t.dropColumn(ColMeanDIN)
	t.dropColumn(ColDINStdDev)
	var percentiles []string
	for _, name := range t.order {
		if strings.HasPrefix(name, percentileColPrefix) {
			percentiles = append(percentiles, name)
		}
	}
	for _, name := range percentiles {
		t.dropColumn(name)
	}
}
