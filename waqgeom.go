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
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/geom"
)

// MeshVars gives the names of the geometry dataset variables that describe
// the unstructured mesh.
type MeshVars struct {
	// NodeX and NodeY are the names of the node coordinate variables.
	NodeX, NodeY string

	// ElementNode is the name of the element-to-node connectivity table.
	// It is expected to have shape (element, vertex) and to hold 1-based
	// node indices, padded with a fill value in unused vertex slots.
	ElementNode string
}

// DefaultMeshVars holds the variable names used by Delft3D-FM water quality
// geometry ("waqgeom") files.
var DefaultMeshVars = MeshVars{
	NodeX:       "NetNode_x",
	NodeY:       "NetNode_y",
	ElementNode: "NetElemNode",
}

// Mesh is an immutable unstructured 2D mesh: node coordinates plus the
// polygon outline of each element. Element IDs are indices into the order
// the elements appear in the geometry dataset.
type Mesh struct {
	// Nodes holds the node coordinates in the model's native projection.
	Nodes []geom.Point

	elemNodes [][]int        // 0-based valid node indices per element
	polys     []geom.Polygon // nil where the element has <3 valid vertices
}

// Len returns the number of elements in the mesh, including degenerate
// elements that can never match a point.
func (m *Mesh) Len() int { return len(m.polys) }

// Polygon returns the outline of element i, or nil if the element is
// degenerate (fewer than 3 valid vertices).
func (m *Mesh) Polygon(i int) geom.Polygon { return m.polys[i] }

// ElementNodes returns the 0-based node indices of element i with fill
// padding removed. The returned slice must not be modified.
func (m *Mesh) ElementNodes(i int) []int { return m.elemNodes[i] }

// OpenMesh reads an unstructured mesh from the NetCDF geometry file at path.
// The whole mesh is read into memory and the file is closed before
// returning.
func OpenMesh(path string, vars MeshVars) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("riverprofile: opening geometry file: %v", err)
	}
	defer f.Close()
	m, err := ReadMesh(f, vars)
	if err != nil {
		return nil, fmt.Errorf("riverprofile: reading geometry file %s: %v", path, err)
	}
	return m, nil
}

// ReadMesh reads an unstructured mesh from a NetCDF (classic format)
// geometry dataset. Connectivity entries that are ≤ 0 or equal to the
// table's _FillValue attribute are treated as padding. Elements left with
// fewer than 3 vertices after padding removal keep their ID but get a nil
// polygon, so they can never contain a point.
func ReadMesh(rw cdf.ReaderWriterAt, vars MeshVars) (*Mesh, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, err
	}

	for _, v := range []string{vars.NodeX, vars.NodeY, vars.ElementNode} {
		if !hasVariable(f, v) {
			return nil, fmt.Errorf("geometry dataset has no variable %s", v)
		}
	}

	x, err := readFloats(f, vars.NodeX)
	if err != nil {
		return nil, err
	}
	y, err := readFloats(f, vars.NodeY)
	if err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("node coordinate variables %s and %s have different lengths (%d != %d)",
			vars.NodeX, vars.NodeY, len(x), len(y))
	}

	lengths := f.Header.Lengths(vars.ElementNode)
	if len(lengths) != 2 {
		return nil, fmt.Errorf("connectivity variable %s must have 2 dimensions but has %d",
			vars.ElementNode, len(lengths))
	}
	nElem, nVert := lengths[0], lengths[1]
	conn, err := readInts(f, vars.ElementNode)
	if err != nil {
		return nil, err
	}
	if len(conn) != nElem*nVert {
		return nil, fmt.Errorf("connectivity variable %s: read %d entries, want %d",
			vars.ElementNode, len(conn), nElem*nVert)
	}
	fill, hasFill := fillValue(f, vars.ElementNode)

	m := &Mesh{
		Nodes:     make([]geom.Point, len(x)),
		elemNodes: make([][]int, nElem),
		polys:     make([]geom.Polygon, nElem),
	}
	for i := range x {
		m.Nodes[i] = geom.Point{X: x[i], Y: y[i]}
	}

	for i := 0; i < nElem; i++ {
		row := conn[i*nVert : (i+1)*nVert]
		var nodes []int
		for _, v := range row {
			if v <= 0 || (hasFill && v == fill) {
				continue // padding
			}
			n := v - 1 // table holds 1-based node indices
			if n >= len(m.Nodes) {
				return nil, fmt.Errorf("element %d references node %d but mesh only has %d nodes",
					i, v, len(m.Nodes))
			}
			nodes = append(nodes, n)
		}
		m.elemNodes[i] = nodes
		if len(nodes) < 3 {
			continue
		}
		ring := make([]geom.Point, len(nodes)+1)
		for j, n := range nodes {
			ring[j] = m.Nodes[n]
		}
		ring[len(nodes)] = ring[0]
		m.polys[i] = geom.Polygon{ring}
	}
	return m, nil
}

func hasVariable(f *cdf.File, name string) bool {
	for _, v := range f.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// fillValue returns the _FillValue attribute of variable v as an int, if
// it has one.
func fillValue(f *cdf.File, v string) (int, bool) {
	a := f.Header.GetAttribute(v, "_FillValue")
	if a == nil {
		return 0, false
	}
	switch av := a.(type) {
	case []int32:
		if len(av) > 0 {
			return int(av[0]), true
		}
	case []int16:
		if len(av) > 0 {
			return int(av[0]), true
		}
	case []int8:
		if len(av) > 0 {
			return int(av[0]), true
		}
	}
	return 0, false
}

// readFloats reads the full contents of a 1-D numeric variable as float64.
func readFloats(f *cdf.File, v string) ([]float64, error) {
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading variable %s: %v", v, err)
	}
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, val := range b {
			out[i] = float64(val)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(b))
		for i, val := range b {
			out[i] = float64(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("variable %s has unsupported type %T", v, buf)
	}
}

// readInts reads the full contents of an integer variable as int.
func readInts(f *cdf.File, v string) ([]int, error) {
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading variable %s: %v", v, err)
	}
	switch b := buf.(type) {
	case []int32:
		out := make([]int, len(b))
		for i, val := range b {
			out[i] = int(val)
		}
		return out, nil
	case []int16:
		out := make([]int, len(b))
		for i, val := range b {
			out[i] = int(val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("variable %s has unsupported type %T", v, buf)
	}
}
