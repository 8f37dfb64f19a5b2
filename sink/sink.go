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

// Package sink writes rendered map paths to SVG, PNG and PDF files.
//
// All writers use the same device space as the renderer: the origin is the
// top-left corner of the viewport and y grows downwards.
package sink

import (
	"errors"

	"seehuhn.de/go/geom/path"
)

// ErrEmptyCanvas is returned when the output size is not positive.
var ErrEmptyCanvas = errors.New("sink: empty canvas")

// Layer is one painted path. Layers are painted in order.
type Layer struct {
	Path *path.Data

	// Fill selects whether the interior of Path is painted, and EvenOdd
	// which fill rule is used.
	Fill    bool
	EvenOdd bool

	// Stroke selects whether the outline of Path is painted with a round
	// pen of diameter Width.
	Stroke bool
	Width  float64

	// Gray is the paint colour, from 0 (black) to 1 (white).
	Gray float64
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptyCanvas
	}
	return nil
}
