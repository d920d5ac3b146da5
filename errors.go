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

import "fmt"

// InputLengthError is returned when the easting and northing coordinate
// lists supplied by a caller do not have the same length.
type InputLengthError struct {
	Eastings, Northings int
}

func (e InputLengthError) Error() string {
	return fmt.Sprintf("riverprofile: eastings and northings must have the same length (%d != %d)",
		e.Eastings, e.Northings)
}

// VarNotFoundError is returned when a named variable is not present in a
// statistics dataset. It is a soft failure: callers typically record a
// missing value and continue.
type VarNotFoundError struct {
	Name string
}

func (e VarNotFoundError) Error() string {
	return fmt.Sprintf("riverprofile: variable %s not found in statistics dataset", e.Name)
}

// ElementRangeError is returned when an element ID is outside the element
// dimension of a statistics variable, which usually means the geometry and
// statistics datasets come from different model runs. It is a soft failure.
type ElementRangeError struct {
	ID, N int
}

func (e ElementRangeError) Error() string {
	return fmt.Sprintf("riverprofile: element %d out of range for statistics array with %d elements", e.ID, e.N)
}
