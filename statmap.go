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
)

// A StatsFile provides read-only access to a statistics dataset: a NetCDF
// (classic format) file of named 2D arrays shaped (time, element) holding
// per-element summary statistics of a simulation run. Only time slice 0,
// the full-run aggregate, is ever read.
type StatsFile struct {
	f      *cdf.File
	closer *os.File // nil unless opened through OpenStats
}

// OpenStats opens the statistics dataset at path. The returned StatsFile
// holds the file open until Close is called.
func OpenStats(path string) (*StatsFile, error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("riverprofile: opening statistics file: %v", err)
	}
	f, err := cdf.Open(ff)
	if err != nil {
		ff.Close()
		return nil, fmt.Errorf("riverprofile: reading statistics file %s: %v", path, err)
	}
	return &StatsFile{f: f, closer: ff}, nil
}

// NewStats creates a StatsFile from already-open NetCDF storage.
func NewStats(rw cdf.ReaderWriterAt) (*StatsFile, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, err
	}
	return &StatsFile{f: f}, nil
}

// Close releases the underlying file if this StatsFile owns one.
func (s *StatsFile) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Variables returns the names of all variables in the dataset.
func (s *StatsFile) Variables() []string { return s.f.Header.Variables() }

// HasVariable reports whether the dataset contains the named variable.
func (s *StatsFile) HasVariable(name string) bool { return hasVariable(s.f, name) }

// ValueForElement returns the full-run (time slice 0) value of the named
// variable for the given element.
//
// If the variable is not in the dataset a VarNotFoundError is returned; if
// elementID is outside the variable's element dimension, usually a sign
// that the geometry and statistics datasets are out of sync, an
// ElementRangeError is returned. Both are soft failures that callers are
// expected to turn into missing values.
func (s *StatsFile) ValueForElement(elementID int, variable string) (float64, error) {
	if !s.HasVariable(variable) {
		return 0, VarNotFoundError{Name: variable}
	}
	lengths := s.f.Header.Lengths(variable)
	if len(lengths) != 2 {
		return 0, fmt.Errorf("riverprofile: statistics variable %s has %d dimensions, want 2 (time, element)",
			variable, len(lengths))
	}
	if elementID < 0 || elementID >= lengths[1] {
		return 0, ElementRangeError{ID: elementID, N: lengths[1]}
	}

	r := s.f.Reader(variable, []int{0, elementID}, []int{0, elementID})
	buf := r.Zero(1)
	if _, err := r.Read(buf); err != nil {
		return 0, fmt.Errorf("riverprofile: reading %s for element %d: %v", variable, elementID, err)
	}
	switch b := buf.(type) {
	case []float64:
		return b[0], nil
	case []float32:
		return float64(b[0]), nil
	case []int32:
		return float64(b[0]), nil
	case []int16:
		return float64(b[0]), nil
	default:
		return 0, fmt.Errorf("riverprofile: statistics variable %s has unsupported type %T", variable, buf)
	}
}
