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
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func testLayers() []Layer {
	return []Layer{
		{Path: square(10, 10, 30, 30), Fill: true, Gray: 0},
		{Path: square(40, 10, 60, 30), Stroke: true, Width: 2, Gray: 0.5},
	}
}

func TestWriteSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteSVG(buf, 80, 40, testLayers())
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="80" height="40"`,
		`d="M10,10L30,10L30,30L10,30Z" fill="#000000"`,
		`fill="none" stroke="#808080" stroke-width="2"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRasterise(t *testing.T) {
	img, err := Rasterise(80, 40, testLayers(), "")
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Fatalf("image size %dx%d", b.Dx(), b.Dy())
	}

	cases := []struct {
		x, y int
		want uint8
	}{
		{20, 20, 0},   // filled square
		{5, 5, 255},   // background
		{40, 20, 128}, // stroked outline
		{50, 20, 255}, // inside the outline
	}
	for _, c := range cases {
		if got := img.GrayAt(c.x, c.y).Y; got != c.want {
			t.Errorf("pixel (%d, %d): got %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestLabel(t *testing.T) {
	img, err := Rasterise(80, 40, nil, "Hammer")
	if err != nil {
		t.Fatal(err)
	}
	dark := 0
	for y := range 16 {
		for x := range 60 {
			if img.GrayAt(x, y).Y < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("label was not drawn")
	}
}

func TestWritePNG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, 80, 40, testLayers(), "test"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("decoded size %dx%d", b.Dx(), b.Dy())
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "map.pdf")
	if err := WritePDF(fname, 80, 40, testLayers()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
	}
}

func TestEmptyCanvas(t *testing.T) {
	if err := WriteSVG(&bytes.Buffer{}, 0, 10, nil); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("WriteSVG: got %v", err)
	}
	if err := WritePNG(&bytes.Buffer{}, 10, -1, nil, ""); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("WritePNG: got %v", err)
	}
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(fname, 0, 0, nil); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("WritePDF: got %v", err)
	}
}
