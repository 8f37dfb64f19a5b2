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

// europe is a box around central Europe, with a hole.
var europe = orb.Polygon{
	square(0, 42, 20, 55),
	square(8, 46, 12, 50),
}

// zoomCases show the same region at increasing scales, covering every
// regime of the composite projection.
var zoomCases = []TestCase{
	zoomCase("scale_1", 1),
	zoomCase("scale_1_8", 1.8),
	zoomCase("scale_3", 3),
	zoomCase("scale_5", 5),
	zoomCase("scale_8", 8),
	zoomCase("scale_14", 14),
	zoomCase("scale_20", 20),
	{
		Name:     "equator_scale_5",
		Geometry: square(-10, -8, 10, 8),
		Width:    256,
		Height:   256,
		Origin:   projection.Coordinate{Lat: 10},
		Scale:    5,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "high_latitude_scale_8",
		Geometry: square(-20, 60, 20, 72),
		Width:    256,
		Height:   256,
		Origin:   projection.Coordinate{Lat: 66},
		Scale:    8,
		Op:       Fill{Rule: NonZero},
	},
}

func zoomCase(name string, scale float64) TestCase {
	return TestCase{
		Name:      name,
		Geometry:  europe,
		Width:     256,
		Height:    192,
		Origin:    projection.Coordinate{Lon: 10, Lat: 48},
		Scale:     scale,
		Op:        Fill{Rule: EvenOdd},
		Graticule: 10,
	}
}
