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
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
)

// The test mesh:
//
//	6    7
//	+----+
//	|C  /|
//	|  / |
//	3+/---4----+5
//	|    |    |
//	| A  | B  |
//	+----+----+
//	0    1    2
//
// Element 0 (A) and 1 (B) are unit quads, element 2 (C) is a triangle
// padded with the fill sentinel, and element 3 references only two nodes
// and is degenerate. The region x>1, y>1 is a mesh gap.
const elemFill = -999

var (
	testNodeX = []float64{0, 1, 2, 0, 1, 2, 0, 1}
	testNodeY = []float64{0, 0, 0, 1, 1, 1, 2, 2}

	// 1-based node indices, shape (4, 4).
	testElemNode = []int32{
		1, 2, 5, 4,
		2, 3, 6, 5,
		4, 5, 8, elemFill,
		5, 6, elemFill, elemFill,
	}
)

// writeTestGeom writes a waqgeom-style geometry file and returns its path.
func writeTestGeom(t *testing.T, dir string) string {
	t.Helper()
	h := cdf.NewHeader(
		[]string{"nNetNode", "nNetElem", "nNetElemMaxNode"},
		[]int{len(testNodeX), 4, 4})
	h.AddVariable("NetNode_x", []string{"nNetNode"}, []float64{0})
	h.AddVariable("NetNode_y", []string{"nNetNode"}, []float64{0})
	h.AddVariable("NetElemNode", []string{"nNetElem", "nNetElemMaxNode"}, []int32{0})
	h.AddAttribute("NetElemNode", "_FillValue", []int32{elemFill})
	h.Define()
	for _, err := range h.Check() {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "waqgeom.nc")
	ff, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		t.Fatal(err)
	}
	writeVar(t, f, "NetNode_x", []int{0}, []int{len(testNodeX) - 1}, testNodeX)
	writeVar(t, f, "NetNode_y", []int{0}, []int{len(testNodeY) - 1}, testNodeY)
	writeVar(t, f, "NetElemNode", []int{0, 0}, []int{3, 3}, testElemNode)
	if err := ff.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeTestStats writes a statistics file holding the given (time, element)
// variables, each with a single time slice over 4 elements, and returns
// its path.
func writeTestStats(t *testing.T, dir string, vars map[string][]float64) string {
	t.Helper()
	h := cdf.NewHeader([]string{"time", "nFlowElem"}, []int{1, 4})
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	for _, name := range names {
		h.AddVariable(name, []string{"time", "nFlowElem"}, []float64{0})
	}
	h.Define()
	for _, err := range h.Check() {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "stat_map.nc")
	ff, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		writeVar(t, f, name, []int{0, 0}, []int{0, 3}, vars[name])
	}
	if err := ff.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeVar(t *testing.T, f *cdf.File, name string, begin, end []int, data interface{}) {
	t.Helper()
	w := f.Writer(name, begin, end)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// testMesh reads the standard test mesh.
func testMesh(t *testing.T) *Mesh {
	t.Helper()
	m, err := OpenMesh(writeTestGeom(t, t.TempDir()), DefaultMeshVars)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// testDINStats holds full-run tracer statistics for the 4 test elements.
var testDINStats = map[string][]float64{
	"Mesh2D_2d_MEAN_FullRun_cTR2":  {1, 2, 3, 4},
	"Mesh2D_2d_MEAN_FullRun_cTR4":  {0.5, 1, 1.5, 2},
	"Mesh2D_2d_STDEV_FullRun_cTR2": {0.4, 0.2, 0.1, 0.3},
	"Mesh2D_2d_STDEV_FullRun_cTR4": {0.6, 0.3, 0.2, 0.1},
	"Mesh2D_2d_MAX_FullRun_cTR1":   {10, 20, 30, 40},
}

// testStats writes and opens a statistics file with the standard test
// data, closing it when the test finishes.
func testStats(t *testing.T) *StatsFile {
	t.Helper()
	s, err := OpenStats(writeTestStats(t, t.TempDir(), testDINStats))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
