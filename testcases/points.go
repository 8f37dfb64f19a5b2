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

// cities are a few point locations.
var cities = orb.MultiPoint{
	{-0.13, 51.51},   // London
	{2.35, 48.86},    // Paris
	{13.40, 52.52},   // Berlin
	{-3.70, 40.42},   // Madrid
	{12.50, 41.90},   // Rome
	{-74.01, 40.71},  // New York
	{151.21, -33.87}, // Sydney
}

// pointCases draw point markers.
var pointCases = []TestCase{
	{
		Name:     "cities_world",
		Geometry: cities,
		Width:    480,
		Height:   250,
		Scale:    1,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "cities_europe",
		Geometry: orb.Collection{cities, europe},
		Width:    256,
		Height:   256,
		Origin:   projection.Coordinate{Lon: 5, Lat: 47},
		Scale:    8,
		Op:       Fill{Rule: NonZero},
	},
}
