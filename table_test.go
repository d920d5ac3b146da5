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
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestTable(t *testing.T) {
	tr := newTestTransect(t)
	if ok, err := tr.DeriveDIN(); !ok || err != nil {
		t.Fatalf("DeriveDIN = (%v, %v)", ok, err)
	}
	tr.AttachWFDBands()

	tb := tr.Table()
	wantHeader := []string{
		"easting", "northing", "element_id", "distance",
		DefaultDINConfig.MeanVars[0], DefaultDINConfig.MeanVars[1],
		ColMeanDIN,
		ColWFDHigh, ColWFDGood, ColWFDModerate, ColWFDPoor,
	}
	if got := tb.Header(); !reflect.DeepEqual(got, wantHeader) {
		t.Fatalf("header:\ngot  %v\nwant %v", got, wantHeader)
	}
	if got, want := tb.Len(), tr.Len(); got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}

	// The gap point (row 2) has no element and no data.
	row := tb.Row(2)
	if row[2] != "" {
		t.Errorf("unresolved element_id cell: got %q, want empty", row[2])
	}
	for i := 4; i < 7; i++ {
		if row[i] != "" {
			t.Errorf("missing value cell %s: got %q, want empty", wantHeader[i], row[i])
		}
	}
	// WFD bands are present even for unresolved points.
	if row[7] != "0.282" {
		t.Errorf("WFD High cell: got %q, want 0.282", row[7])
	}

	// A snapshot does not track later derivations.
	if ok, err := tr.DeriveDINStdDev(); !ok || err != nil {
		t.Fatalf("DeriveDINStdDev = (%v, %v)", ok, err)
	}
	if got := len(tb.Header()); got != len(wantHeader) {
		t.Errorf("snapshot grew to %d columns", got)
	}
}

func TestTableWriteCSV(t *testing.T) {
	tr := newTestTransect(t)
	if ok, err := tr.DeriveDIN(); !ok || err != nil {
		t.Fatalf("DeriveDIN = (%v, %v)", ok, err)
	}

	var buf bytes.Buffer
	if err := tr.Table().WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(records), tr.Len()+1; got != want {
		t.Fatalf("CSV records: got %d, want %d", got, want)
	}
	for i, rec := range records {
		if got, want := len(rec), 7; got != want {
			t.Errorf("record %d: got %d fields, want %d", i, got, want)
		}
	}
	// First data row: point (0.5, 0.5) in element 0, DIN 1.5.
	first := records[1]
	if first[0] != "0.5" || first[2] != "0" || first[3] != "0" || first[6] != "1.5" {
		t.Errorf("first row: got %v", first)
	}
}
