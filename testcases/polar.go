// seehuhn.de/go/mapproj - adaptive composite map projections
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"github.com/paulmach/orb"

	"seehuhn.de/go/mapproj/projection"
)

// polarCases are centred near the poles.
var polarCases = []TestCase{
	{
		Name:     "north_pole_scale_8",
		Geometry: orb.Polygon{circle(0, 80, 6, 36)},
		Width:    256,
		Height:   256,
		Origin:   projection.Coordinate{Lat: 82},
		Scale:    8,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:      "south_pole_scale_3",
		Geometry:  orb.Polygon{circle(60, -75, 8, 36)},
		Width:     256,
		Height:    256,
		Origin:    projection.Coordinate{Lat: -90},
		Scale:     3,
		Op:        Fill{Rule: EvenOdd},
		Graticule: 30,
	},
	{
		Name:       "antipode_rim",
		Geometry:   orb.Polygon{square(170, -5, -170, 5)},
		Width:      256,
		Height:     256,
		Projection: "lambert",
		Scale:      1,
		Op:         Fill{Rule: NonZero},
	},
}
