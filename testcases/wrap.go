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

// wrapCases contain geometry crossing the antimeridian.
var wrapCases = []TestCase{
	{
		Name:       "line_across",
		Geometry:   orb.LineString{{170, 10}, {-170, -10}},
		Width:      256,
		Height:     128,
		Projection: "cylindrical",
		Scale:      0.5,
		Op:         Stroke{Width: 2},
	},
	{
		Name:       "fiji_box",
		Geometry:   orb.Polygon{square(175, -20, -175, -15)},
		Width:      256,
		Height:     128,
		Projection: "hammer",
		Scale:      0.5,
		Op:         Fill{Rule: NonZero},
	},
	{
		Name:     "pacific_centred",
		Geometry: orb.MultiPolygon{australia, {square(175, -20, -175, -15)}},
		Width:    256,
		Height:   128,
		Origin:   projection.Coordinate{Lon: 180},
		Scale:    1,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:       "rotated_graticule",
		Width:      256,
		Height:     256,
		Projection: "lambert",
		Origin:     projection.Coordinate{Lon: -30, Lat: 40},
		Scale:      1,
		Op:         Stroke{Width: 1},
		Graticule:  20,
	},
}
