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

// Package riverprofile extracts water-quality statistics from the output of
// a hydrodynamic model and aggregates them along user-defined river
// transects.
//
// The model output comes as two NetCDF (classic format) datasets: a geometry
// dataset describing an unstructured 2D mesh (node coordinates plus an
// element-to-node connectivity table) and a statistics dataset holding
// per-element summary statistics (mean, standard deviation, maximum) of
// named variables over a simulation run. Given an ordered list of easting
// and northing coordinates describing a path across or along the river, this
// package locates the mesh element containing each point, computes
// cumulative distance along the path, loads statistics for each point, and
// derives dissolved inorganic nitrogen (DIN) concentration columns including
// log-normal percentile estimates and Water Framework Directive (WFD)
// threshold bands.
//
// No interpolation is performed between mesh elements: each transect point
// takes the value of the single element whose polygon contains it, or a
// missing value (NaN) if it lies outside the modeled domain.
package riverprofile
