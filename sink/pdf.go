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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the layers to a single page PDF file. One pixel of the
// viewport becomes one PDF point.
func WritePDF(fname string, width, height int, layers []Layer) error {
	if err := checkSize(width, height); err != nil {
		return err
	}

	paper := &pdf.Rectangle{URx: float64(width), URy: float64(height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF user space has y pointing up.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	draw := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	for _, l := range layers {
		if l.Path == nil || len(l.Path.Cmds) == 0 {
			continue
		}
		c := color.DeviceGray(l.Gray)
		if l.Fill {
			page.SetFillColor(c)
			draw(l.Path)
			if l.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		}
		if l.Stroke && l.Width > 0 {
			page.SetStrokeColor(c)
			page.SetLineWidth(l.Width)
			draw(l.Path)
			page.Stroke()
		}
	}

	return page.Close()
}
