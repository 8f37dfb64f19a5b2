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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SVGPathData formats p in the syntax of the SVG "d" attribute, for example
// "M480,250L490,250Z". Numbers are written in plain decimal notation,
// rounded to the given number of digits after the decimal point; a
// negative value for digits gives the shortest exact representation.
func SVGPathData(p *path.Data, digits int) string {
	if p == nil {
		return ""
	}

	b := &strings.Builder{}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
			writePoints(b, p.Coords[k:k+1], digits)
			k++
		case path.CmdLineTo:
			b.WriteByte('L')
			writePoints(b, p.Coords[k:k+1], digits)
			k++
		case path.CmdQuadTo:
			b.WriteByte('Q')
			writePoints(b, p.Coords[k:k+2], digits)
			k += 2
		case path.CmdCubeTo:
			b.WriteByte('C')
			writePoints(b, p.Coords[k:k+3], digits)
			k += 3
		case path.CmdClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoints(b *strings.Builder, pts []vec.Vec2, digits int) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X, digits))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y, digits))
	}
}

func formatNumber(x float64, digits int) string {
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if digits > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
