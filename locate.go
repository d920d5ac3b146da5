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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// DefaultSearchRadius is the default node search radius for the locator
// pre-filter, in the coordinate system's native units (meters for the
// projections this is normally used with).
const DefaultSearchRadius = 100.

// A Locator finds the mesh element containing a point.
//
// A point is considered inside an element if it is within the element's
// polygon or exactly on its boundary (geom.Point.Within != geom.Outside).
// When a point lies on a node or edge shared between elements, the element
// with the lowest ID wins; candidate elements are always tested in
// ascending ID order, so the result is deterministic.
type Locator struct {
	// SearchRadius restricts candidate elements to those with at least
	// one node within this distance of the query point before the exact
	// containment test is run. If it is ≤ 0, every element is a
	// candidate. If it is smaller than the largest element in the mesh,
	// points inside such an element but further than SearchRadius from
	// all of its nodes will be reported as not found; choose a radius at
	// least as large as the longest element edge. The default is
	// DefaultSearchRadius.
	SearchRadius float64

	mesh *Mesh
	tree *rtree.Rtree
}

type locatorElement struct {
	geom.Polygon
	id int
}

// NewLocator creates a Locator for the given mesh, building a spatial index
// of the element bounding boxes. Degenerate elements are excluded from the
// index.
func NewLocator(m *Mesh) *Locator {
	l := &Locator{
		SearchRadius: DefaultSearchRadius,
		mesh:         m,
		tree:         rtree.NewTree(25, 50),
	}
	for i := 0; i < m.Len(); i++ {
		if p := m.Polygon(i); p != nil {
			l.tree.Insert(&locatorElement{Polygon: p, id: i})
		}
	}
	return l
}

// Locate returns the ID of the element containing point p and true, or
// (-1, false) if no element contains it, for example because the point is
// outside the modeled domain or in a mesh gap. It never fails: unmatched
// points mean "no data here", not an error.
func (l *Locator) Locate(p geom.Point) (int, bool) {
	for _, id := range l.candidates(p) {
		if p.Within(l.mesh.Polygon(id)) != geom.Outside {
			return id, true
		}
	}
	return -1, false
}

// candidates returns the IDs of the elements that could contain p, in
// ascending order.
func (l *Locator) candidates(p geom.Point) []int {
	if l.SearchRadius <= 0 {
		ids := make([]int, 0, l.mesh.Len())
		for i := 0; i < l.mesh.Len(); i++ {
			if l.mesh.Polygon(i) != nil {
				ids = append(ids, i)
			}
		}
		return ids
	}
	r := l.SearchRadius
	b := &geom.Bounds{
		Min: geom.Point{X: p.X - r, Y: p.Y - r},
		Max: geom.Point{X: p.X + r, Y: p.Y + r},
	}
	var ids []int
	for _, e := range l.tree.SearchIntersect(b) {
		el := e.(*locatorElement)
		if l.nodeWithin(el.id, p, r) {
			ids = append(ids, el.id)
		}
	}
	// SearchIntersect returns matches in tree order; restore ID order so
	// shared-boundary ties resolve deterministically.
	sort.Ints(ids)
	return ids
}

// nodeWithin reports whether any node of element id is within distance r
// of p.
func (l *Locator) nodeWithin(id int, p geom.Point, r float64) bool {
	for _, n := range l.mesh.ElementNodes(id) {
		np := l.mesh.Nodes[n]
		if math.Hypot(np.X-p.X, np.Y-p.Y) <= r {
			return true
		}
	}
	return false
}
