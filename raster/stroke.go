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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke reports the coverage of the outline of p, drawn with a pen of
// diameter Width. Line ends and corners are round. Subpaths without any
// extent are not drawn.
//
// The outline is the union of one rectangle per flattened segment and one
// disc per vertex, all with the same orientation, filled with the nonzero
// rule.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.begin()
	hw := r.Width / 2
	if !(hw > 0) {
		return
	}
	n := r.discVertices(hw)

	drawn := false
	pen := func(a, b vec.Vec2) {
		d := b.Sub(a)
		l := d.Length()
		if !(l > 0) {
			return
		}
		nrm := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
		r.polygon(a.Sub(nrm), b.Sub(nrm), b.Add(nrm), a.Add(nrm))
		r.disc(b, hw, n)
		drawn = true
	}
	end := func(a, b vec.Vec2, closed bool) {
		if closed {
			pen(a, b)
		} else if drawn {
			r.disc(b, hw, n)
		}
		drawn = false
	}
	r.walk(p, pen, end)
	r.sweep(NonZero, emit)
}

// polygon adds the closed polygon through the given user space vertices.
func (r *Rasteriser) polygon(vv ...vec.Vec2) {
	for i, v := range vv {
		r.addSegment(v, vv[(i+1)%len(vv)])
	}
}

// disc adds a regular polygon approximating the circle of radius rad
// around c. The orientation matches the rectangles added by Stroke.
func (r *Rasteriser) disc(c vec.Vec2, rad float64, n int) {
	first := vec.Vec2{X: c.X + rad, Y: c.Y}
	prev := first
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		next := vec.Vec2{X: c.X + rad*cos, Y: c.Y + rad*sin}
		r.addSegment(prev, next)
		prev = next
	}
	r.addSegment(prev, first)
}

// discVertices returns the number of polygon vertices needed to draw a
// circle of user space radius rad within the flatness tolerance.
func (r *Rasteriser) discVertices(rad float64) int {
	m := r.CTM
	dev := rad * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2]))
	if dev <= r.Flatness {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-r.Flatness/dev)))
	return min(max(n, 8), 256)
}
