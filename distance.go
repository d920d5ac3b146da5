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

import "math"

// CumulativeDistances returns the cumulative Euclidean path length along
// the ordered point sequence given by eastings and northings: the first
// entry is 0 and each subsequent entry is the previous entry plus the
// straight-line distance from the previous point. Distances are in the
// coordinate system's native units; no reprojection is performed.
//
// An InputLengthError is returned if the two slices differ in length.
// Empty input returns an empty slice; a single point returns [0].
func CumulativeDistances(eastings, northings []float64) ([]float64, error) {
	if len(eastings) != len(northings) {
		return nil, InputLengthError{Eastings: len(eastings), Northings: len(northings)}
	}
	d := make([]float64, len(eastings))
	for i := 1; i < len(eastings); i++ {
		d[i] = d[i-1] + math.Hypot(eastings[i]-eastings[i-1], northings[i]-northings[i-1])
	}
	return d, nil
}
