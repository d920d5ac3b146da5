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
	"math"

	"github.com/ctessum/geom"
)

// A TransectPoint is one coordinate on a transect path. ElementID and
// Distance are derived during transect construction and are never set by
// callers.
type TransectPoint struct {
	Easting, Northing float64

	// ElementID is the mesh element containing the point, or -1 if the
	// point is outside the mesh or its lookup failed.
	ElementID int

	// Distance is the cumulative path length from the first point of the
	// transect to this point.
	Distance float64
}

// Config holds transect construction settings.
type Config struct {
	// SearchRadius is the locator node search radius. 0 means
	// DefaultSearchRadius; a negative value disables the spatial
	// pre-filter so every element is tested.
	SearchRadius float64

	// DIN names the statistics variables that DIN derivation reads. Zero
	// value means DefaultDINConfig.
	DIN DINConfig
}

// A Transect is an ordered sequence of points along a path across or along
// a river, together with per-point data columns loaded from a statistics
// dataset. The point sequence is fixed at construction; data columns are
// loaded and derived on demand and memoized.
//
// A Transect is not safe for concurrent use: derivations extend the same
// column set in place.
type Transect struct {
	points []TransectPoint
	stats  *StatsFile
	din    DINConfig

	columns map[string][]float64
	order   []string
}

// New creates a transect from equal-length coordinate lists, computing
// cumulative distances and resolving the containing mesh element for each
// point. Points outside the mesh get ElementID -1; that is not an error.
// cfg may be nil for defaults.
func New(eastings, northings []float64, mesh *Mesh, stats *StatsFile, cfg *Config) (*Transect, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	dists, err := CumulativeDistances(eastings, northings)
	if err != nil {
		return nil, err
	}

	loc := NewLocator(mesh)
	if cfg.SearchRadius != 0 {
		loc.SearchRadius = cfg.SearchRadius
	}
	din := cfg.DIN
	if din == (DINConfig{}) {
		din = DefaultDINConfig
	}

	t := &Transect{
		points:  make([]TransectPoint, len(eastings)),
		stats:   stats,
		din:     din,
		columns: make(map[string][]float64),
	}
	for i := range eastings {
		id, ok := loc.Locate(geom.Point{X: eastings[i], Y: northings[i]})
		if !ok {
			id = -1
		}
		t.points[i] = TransectPoint{
			Easting:   eastings[i],
			Northing:  northings[i],
			ElementID: id,
			Distance:  dists[i],
		}
	}
	return t, nil
}

// Len returns the number of points on the transect.
func (t *Transect) Len() int { return len(t.points) }

// Points returns a copy of the transect points in path order.
func (t *Transect) Points() []TransectPoint {
	out := make([]TransectPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Distances returns the cumulative distance of each point.
func (t *Transect) Distances() []float64 {
	out := make([]float64, len(t.points))
	for i, p := range t.points {
		out[i] = p.Distance
	}
	return out
}

// ElementIDs returns the resolved mesh element of each point (-1 where
// unresolved).
func (t *Transect) ElementIDs() []int {
	out := make([]int, len(t.points))
	for i, p := range t.points {
		out[i] = p.ElementID
	}
	return out
}

// Column returns the named loaded or derived data column, in point order,
// with NaN for points that have no value. The returned slice is the
// transect's own storage and must not be modified.
func (t *Transect) Column(name string) ([]float64, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// Columns returns the names of all loaded and derived columns in the order
// they were added.
func (t *Transect) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// LoadVariable loads the full-run value of the named statistics variable
// for every point on the transect. Points without a resolved element, and
// points whose lookup fails softly (variable missing from the dataset,
// element out of range of the statistics array), get NaN.
//
// It returns true if at least one point received a value. False with a nil
// error means the variable is unusable for this transect (every point was
// missing), which callers should treat as a degraded result, not a crash.
// If the variable is absent from the dataset altogether the returned error
// is a VarNotFoundError so the condition can be reported; it is still not
// fatal. Columns are memoized: loading the same variable again is a no-op.
func (t *Transect) LoadVariable(name string) (bool, error) {
	if col, ok := t.columns[name]; ok {
		return anyValid(col), nil
	}
	return t.loadVariable(name)
}

// ReloadVariable re-reads the named variable from the statistics dataset
// even if it is already loaded, and discards any derived DIN columns that
// depend on it so they will be recomputed from the fresh values.
func (t *Transect) ReloadVariable(name string) (bool, error) {
	if t.dependsOnDIN(name) {
		t.dropDerived()
	}
	return t.loadVariable(name)
}

func (t *Transect) loadVariable(name string) (bool, error) {
	col := make([]float64, len(t.points))
	var softErr error
	for i, p := range t.points {
		col[i] = math.NaN()
		if p.ElementID < 0 {
			continue
		}
		v, err := t.stats.ValueForElement(p.ElementID, name)
		if err != nil {
			switch err.(type) {
			case VarNotFoundError, ElementRangeError:
				softErr = err // reported, not fatal
				continue
			default:
				return false, err
			}
		}
		col[i] = v
	}
	t.setColumn(name, col)
	return anyValid(col), softErr
}

func (t *Transect) setColumn(name string, col []float64) {
	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.columns[name] = col
}

func (t *Transect) dropColumn(name string) {
	if _, ok := t.columns[name]; !ok {
		return
	}
	delete(t.columns, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func anyValid(col []float64) bool {
	for _, v := range col {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}
