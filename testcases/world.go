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

// africa is a coarse outline of Africa.
var africa = orb.Polygon{{
	{-17, 21}, {-10, 30}, {-6, 36}, {10, 37}, {11, 33}, {20, 31},
	{32, 31}, {35, 28}, {43, 12}, {51, 12}, {40, -5}, {40, -15},
	{35, -25}, {20, -35}, {18, -30}, {12, -15}, {9, -1}, {9, 4},
	{-8, 4}, {-17, 14}, {-17, 21},
}}

// australia is a coarse outline of Australia.
var australia = orb.Polygon{{
	{114, -22}, {122, -18}, {130, -12}, {137, -12}, {142, -11}, {146, -19},
	{153, -28}, {150, -37}, {141, -38}, {131, -31}, {115, -34}, {114, -22},
}}

// worldCases show the whole globe.
var worldCases = []TestCase{
	{
		Name:       "hammer_graticule",
		Width:      480,
		Height:     250,
		Projection: "hammer",
		Scale:      1,
		Op:         Stroke{Width: 1},
		Graticule:  30,
	},
	{
		Name:     "composite_continents",
		Geometry: orb.MultiPolygon{africa, australia},
		Width:    480,
		Height:   250,
		Scale:    1,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:       "equirectangular_continents",
		Geometry:   orb.MultiPolygon{africa, australia},
		Width:      480,
		Height:     250,
		Projection: "equirectangular",
		Scale:      1,
		Op:         Fill{Rule: NonZero},
	},
	{
		Name:       "lambert_hemisphere",
		Geometry:   africa,
		Width:      256,
		Height:     256,
		Projection: "lambert",
		Origin:     projection.Coordinate{Lon: 20},
		Scale:      2,
		Op:         Fill{Rule: EvenOdd},
	},
}
