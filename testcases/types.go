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
	"math"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapproj/composite"
	"seehuhn.de/go/mapproj/projection"
)

// TestCase defines a single map scene.
type TestCase struct {
	Name       string       // lowercase a-z, 0-9 and _ only
	Geometry   orb.Geometry // longitude/latitude in degrees
	Width      int          // canvas width in pixels
	Height     int          // canvas height in pixels
	Projection string       // a name from composite.Names()
	Origin     projection.Coordinate
	Scale      float64   // relative to the viewport; 1 shows the whole globe
	Op         Operation // fill or stroke
	Graticule  float64   // if positive, the graticule spacing in degrees
}

// Viewport returns the canvas rectangle, in screen coordinates.
func (tc *TestCase) Viewport() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

// NewProjection returns the projection of the scene.
func (tc *TestCase) NewProjection() (projection.Projection, error) {
	name := tc.Projection
	if name == "" {
		name = "composite"
	}
	return composite.NewNamed(name, tc.Viewport(), tc.Origin, tc.Scale)
}

// Operation is the rendering operation to apply to the projected geometry.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width float64 // line width (>0)
}

func (Stroke) isOperation() {}

// square returns the closed ring of the longitude/latitude box with the
// given corners.
func square(lon0, lat0, lon1, lat1 float64) orb.Ring {
	return orb.Ring{
		{lon0, lat0},
		{lon1, lat0},
		{lon1, lat1},
		{lon0, lat1},
		{lon0, lat0},
	}
}

// circle returns a closed ring of n vertices at angular radius r (degrees,
// measured in longitude/latitude) around the centre.
func circle(lon, lat, r float64, n int) orb.Ring {
	ring := make(orb.Ring, 0, n+1)
	for i := range n {
		θ := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, orb.Point{lon + r*math.Cos(θ), lat + r*math.Sin(θ)})
	}
	return append(ring, ring[0])
}
