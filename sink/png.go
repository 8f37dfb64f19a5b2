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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapproj/raster"
)

// Rasterise paints the layers onto a white grayscale image. If label is not
// empty, it is printed into the top-left corner.
func Rasterise(width, height int, layers []Layer, label string) (*image.Gray, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	for _, l := range layers {
		if l.Path == nil {
			continue
		}
		paint := float32(toByte(l.Gray))
		emit := func(y, xMin int, coverage []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, c := range coverage {
				old := float32(row[i])
				row[i] = uint8(old + (paint-old)*c + 0.5)
			}
		}
		if l.Fill {
			rule := raster.NonZero
			if l.EvenOdd {
				rule = raster.EvenOdd
			}
			r.Fill(l.Path, rule, emit)
		}
		if l.Stroke {
			r.Width = l.Width
			r.Stroke(l.Path, emit)
		}
	}

	if label != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Gray{Y: 0}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 13),
		}
		d.DrawString(label)
	}
	return img, nil
}

// WritePNG writes the layers as a grayscale PNG image.
func WritePNG(w io.Writer, width, height int, layers []Layer, label string) error {
	img, err := Rasterise(width, height, layers, label)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
