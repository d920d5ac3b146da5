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
	"testing"

	"github.com/ctessum/geom"
)

func TestLocate(t *testing.T) {
	l := NewLocator(testMesh(t))

	tests := []struct {
		name   string
		p      geom.Point
		want   int
		wantOK bool
	}{
		{"interior of A", geom.Point{X: 0.5, Y: 0.5}, 0, true},
		{"interior of B", geom.Point{X: 1.5, Y: 0.5}, 1, true},
		{"interior of triangle C", geom.Point{X: 0.7, Y: 1.1}, 2, true},
		{"far outside the mesh", geom.Point{X: 10, Y: 10}, -1, false},
		{"mesh gap", geom.Point{X: 1.5, Y: 1.5}, -1, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, ok := l.Locate(test.p)
			if ok != test.wantOK || id != test.want {
				t.Errorf("Locate(%v) = (%d, %v), want (%d, %v)",
					test.p, id, ok, test.want, test.wantOK)
			}
		})
	}
}

// A point exactly on a node shared by several elements must always resolve
// to the lowest-ID containing element: containment is boundary-inclusive
// and candidates are tested in ascending ID order.
func TestLocateSharedNode(t *testing.T) {
	l := NewLocator(testMesh(t))

	// Node 4 at (1, 1) is shared by elements 0, 1 and 2.
	for i := 0; i < 10; i++ {
		id, ok := l.Locate(geom.Point{X: 1, Y: 1})
		if !ok || id != 0 {
			t.Fatalf("run %d: Locate(1,1) = (%d, %v), want (0, true)", i, id, ok)
		}
	}
}

// A point on the edge shared by elements 0 and 1 resolves to element 0;
// the boundary counts as inside.
func TestLocateOnEdge(t *testing.T) {
	l := NewLocator(testMesh(t))
	id, ok := l.Locate(geom.Point{X: 1, Y: 0.5})
	if !ok || id != 0 {
		t.Fatalf("Locate(1, 0.5) = (%d, %v), want (0, true)", id, ok)
	}
}

// The degenerate 2-node element must never be matched, even for a point on
// the segment between its two nodes.
func TestLocateDegenerateElement(t *testing.T) {
	l := NewLocator(testMesh(t))
	if id, ok := l.Locate(geom.Point{X: 1.5, Y: 1.0001}); ok {
		t.Fatalf("Locate above shared edge matched element %d, want no match", id)
	}
}

// With the pre-filter disabled the full scan must agree with the indexed
// lookup.
func TestLocateFullScan(t *testing.T) {
	l := NewLocator(testMesh(t))
	l.SearchRadius = -1
	tests := []struct {
		p    geom.Point
		want int
	}{
		{geom.Point{X: 0.5, Y: 0.5}, 0},
		{geom.Point{X: 1.5, Y: 0.5}, 1},
		{geom.Point{X: 1, Y: 1}, 0},
	}
	for _, test := range tests {
		if id, ok := l.Locate(test.p); !ok || id != test.want {
			t.Errorf("Locate(%v) = (%d, %v), want (%d, true)", test.p, id, ok, test.want)
		}
	}
	if id, ok := l.Locate(geom.Point{X: 10, Y: 10}); ok {
		t.Errorf("Locate(10,10) matched element %d, want no match", id)
	}
}

// A search radius smaller than the distance from the query point to the
// nearest node of its containing element misses the containment. This is
// the documented trade-off of the pre-filter, pinned here so a behavior
// change is noticed.
func TestLocateRadiusTooSmall(t *testing.T) {
	l := NewLocator(testMesh(t))
	l.SearchRadius = 0.1
	if id, ok := l.Locate(geom.Point{X: 0.5, Y: 0.5}); ok {
		t.Fatalf("Locate with tiny radius matched element %d, want miss", id)
	}
	l.SearchRadius = DefaultSearchRadius
	if _, ok := l.Locate(geom.Point{X: 0.5, Y: 0.5}); !ok {
		t.Fatal("Locate with default radius should match")
	}
}
