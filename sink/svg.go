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

package sink

import (
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/mapproj"
)

// Digits is the number of decimal places used for SVG coordinates.
const Digits = 2

// WriteSVG writes the layers as a standalone SVG document.
func WriteSVG(w io.Writer, width, height int, layers []Layer) error {
	if err := checkSize(width, height); err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	fmt.Fprintf(out, "<rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", width, height)
	for _, l := range layers {
		if l.Path == nil || len(l.Path.Cmds) == 0 || !(l.Fill || l.Stroke) {
			continue
		}
		c := svgGray(l.Gray)
		fmt.Fprintf(out, "<path d=%q", mapproj.SVGPathData(l.Path, Digits))
		if l.Fill {
			fmt.Fprintf(out, " fill=%q", c)
			if l.EvenOdd {
				fmt.Fprint(out, ` fill-rule="evenodd"`)
			}
		} else {
			fmt.Fprint(out, ` fill="none"`)
		}
		if l.Stroke {
			fmt.Fprintf(out, " stroke=%q stroke-width=\"%g\" stroke-linecap=\"round\" stroke-linejoin=\"round\"",
				c, l.Width)
		}
		fmt.Fprint(out, "/>\n")
	}
	fmt.Fprint(out, "</svg>\n")
	return out.Flush()
}

func svgGray(g float64) string {
	v := toByte(g)
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

func toByte(g float64) uint8 {
	return uint8(max(0, min(255, int(g*255+0.5))))
}
