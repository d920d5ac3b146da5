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
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// A Table is an immutable tabular snapshot of a transect: one row per
// point, with the fixed columns easting, northing, element_id and
// distance followed by the loaded and derived data columns in the order
// they were added to the transect.
type Table struct {
	names  []string
	points []TransectPoint
	cols   [][]float64
}

// Table returns a tabular snapshot of the transect. Later changes to the
// transect are not reflected in it.
func (t *Transect) Table() *Table {
	tb := &Table{
		names:  []string{"easting", "northing", "element_id", "distance"},
		points: t.Points(),
	}
	for _, name := range t.order {
		col := t.columns[name]
		c := make([]float64, len(col))
		copy(c, col)
		tb.names = append(tb.names, name)
		tb.cols = append(tb.cols, c)
	}
	return tb
}

// Header returns the column names.
func (tb *Table) Header() []string {
	out := make([]string, len(tb.names))
	copy(out, tb.names)
	return out
}

// Len returns the number of rows.
func (tb *Table) Len() int { return len(tb.points) }

// Row returns row i formatted as strings. Missing values (NaN data,
// unresolved element IDs) are empty strings.
func (tb *Table) Row(i int) []string {
	p := tb.points[i]
	row := make([]string, 0, len(tb.names))
	row = append(row, formatFloat(p.Easting), formatFloat(p.Northing))
	if p.ElementID < 0 {
		row = append(row, "")
	} else {
		row = append(row, strconv.Itoa(p.ElementID))
	}
	row = append(row, formatFloat(p.Distance))
	for _, col := range tb.cols {
		row = append(row, formatFloat(col[i]))
	}
	return row
}

// WriteCSV writes the table, including a header row, in CSV format.
func (tb *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tb.Header()); err != nil {
		return err
	}
	for i := 0; i < tb.Len(); i++ {
		if err := cw.Write(tb.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
