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

package mapproj

import (
	"math"

	"github.com/paulmach/orb"
)

// Graticule returns the meridians and parallels at multiples of step
// degrees. Meridians run from pole to pole, parallels once around the globe.
// Vertices are spaced step degrees apart; the renderer subdivides further
// where needed.
func Graticule(step float64) orb.MultiLineString {
	if !(step > 0) || step > 90 {
		return nil
	}

	var res orb.MultiLineString
	for lon := -180.0; lon < 180; lon += step {
		var m orb.LineString
		for lat := -90.0; lat < 90; lat += step {
			m = append(m, orb.Point{lon, lat})
		}
		m = append(m, orb.Point{lon, 90})
		res = append(res, m)
	}

	first := -step * math.Floor(90/step)
	if first == -90 {
		first += step
	}
	for lat := first; lat < 90; lat += step {
		var p orb.LineString
		for lon := -180.0; lon < 180; lon += step {
			p = append(p, orb.Point{lon, lat})
		}
		p = append(p, orb.Point{180, lat})
		res = append(res, p)
	}
	return res
}
