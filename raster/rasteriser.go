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

// Package raster converts rendered map paths into anti-aliased pixel
// coverage.
//
// Coverage is computed exactly from the signed area of the path inside each
// pixel; no supersampling is used. Curves are flattened to line segments
// first, within the tolerance given by [Rasteriser.Flatness].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Default values for new rasterisers.
const (
	// DefaultFlatness is the curve flattening tolerance in device pixels.
	DefaultFlatness = 0.25

	// DefaultWidth is the stroke width in user space units.
	DefaultWidth = 1.0
)

const (
	// flatEdge is the smallest vertical extent of an edge that contributes
	// to coverage.
	flatEdge = 1e-10

	// denseArea is the largest bounding box, in pixels, for which the
	// coverage of all rows is accumulated at once. Larger paths are swept
	// one scanline at a time.
	denseArea = 1 << 16
)

// segment is a line segment in device coordinates with y0 != y1.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	slope  float64 // dx/dy
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// xAt returns the x coordinate of the segment's supporting line at height y.
func (s *segment) xAt(y float64) float64 { return s.x0 + s.slope*(y-s.y0) }

// Rule selects how the winding number of a point decides whether it is
// inside a filled path.
type Rule int

// These are the supported fill rules.
const (
	NonZero Rule = iota
	EvenOdd
)

// EmitFunc receives the coverage of one pixel row. The row starts at pixel
// column xMin; values lie in [0, 1]. The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser computes pixel coverage for filled and stroked paths.
//
// A Rasteriser keeps its scratch buffers between calls, so a single
// instance should be reused for all paths of an image. It is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. It must be invertible.
	CTM matrix.Matrix

	// Clip is the device space region where coverage is reported. The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	dense int // bounding box area limit for the dense strategy

	segs      []segment
	active    []int
	cover     []float32 // per pixel change of the winding number
	area      []float32 // per pixel partial area
	rowLo     []int
	rowHi     []int
	crossings []float64

	// device space bounding box of segs
	haveBox      bool
	boxX0, boxX1 float64
	boxY0, boxY1 float64
}

// NewRasteriser returns a rasteriser which reports coverage inside clip.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Scratch buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.Width = DefaultWidth
	r.dense = denseArea

	r.segs = r.segs[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
	r.haveBox = false
}

// Fill reports the coverage of the interior of p under the given rule.
func (r *Rasteriser) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	r.begin()
	r.walk(p, r.addSegment, r.closeSegment)
	r.sweep(rule, emit)
}

// FillNonZero is Fill with the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd is Fill with the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// walk flattens p. Line segments in user space are passed to seg. At the
// end of every subpath, end is called with the current point, the subpath
// start and whether the subpath was closed explicitly.
func (r *Rasteriser) walk(p *path.Data, seg func(a, b vec.Vec2), end func(a, b vec.Vec2, closed bool)) {
	if p == nil {
		return
	}
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				end(cur, start, false)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			seg(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], seg)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], seg)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				end(cur, start, true)
			}
			cur = start
			open = false
		}
	}
	if open {
		end(cur, start, false)
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

func (r *Rasteriser) device(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y + m[4], Y: m[1]*v.X + m[3]*v.Y + m[5]}
}

// flattenQuad replaces a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		seg(prev, q)
		prev = q
	}
}

// flattenCube replaces a cubic Bézier curve by line segments. The number of
// segments follows Wang's formula.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2, seg func(a, b vec.Vec2)) {
	m := max(
		r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length(),
		r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length(),
	)
	n := 1
	if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		seg(prev, q)
		prev = q
	}
}

// begin starts a new set of segments.
func (r *Rasteriser) begin() {
	r.segs = r.segs[:0]
	r.haveBox = false
}

// closeSegment adds the closing segment of a subpath. Filled subpaths are
// always closed.
func (r *Rasteriser) closeSegment(a, b vec.Vec2, _ bool) {
	if a != b {
		r.addSegment(a, b)
	}
}

// addSegment adds the user space segment from a to b.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	r.addDevice(r.device(a), r.device(b))
}

func (r *Rasteriser) addDevice(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if !(math.Abs(dy) >= flatEdge) || math.IsInf(dy, 0) || math.IsNaN(a.X+b.X) {
		return
	}
	r.segs = append(r.segs, segment{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		slope: (b.X - a.X) / dy,
	})

	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	if !r.haveBox {
		r.boxX0, r.boxX1, r.boxY0, r.boxY1 = x0, x1, y0, y1
		r.haveBox = true
		return
	}
	r.boxX0 = min(r.boxX0, x0)
	r.boxX1 = max(r.boxX1, x1)
	r.boxY0 = min(r.boxY0, y0)
	r.boxY1 = max(r.boxY1, y1)
}

// bounds returns the pixel range covered by the segments, clipped.
func (r *Rasteriser) bounds() (x0, x1, y0, y1 int, ok bool) {
	if !r.haveBox {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

// sweep turns the collected segments into coverage.
func (r *Rasteriser) sweep(rule Rule, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.bounds()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.dense {
		r.sweepDense(x0, x1, y0, y1, rule, emit)
	} else {
		r.sweepRows(x0, x1, y0, y1, rule, emit)
	}
}

// Each segment adds, for every pixel it passes through, its signed
// vertical extent to cover and the part of that extent lying to the right
// of the segment to area. The coverage of a pixel is the running sum of
// cover over the pixels to its left, plus its own area.

// accumulate adds the contribution of s to scanline y. The buffers start at
// pixel column lo and end before hi.
func (r *Rasteriser) accumulate(s *segment, y int, cover, area []float32, lo, hi int) {
	top := max(float64(y), s.top())
	bot := min(float64(y+1), s.bottom())
	if bot <= top {
		return
	}
	dir := float32(1)
	if s.y1 < s.y0 {
		dir = -1
	}

	xa, xb := s.xAt(top), s.xAt(bot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))
	switch {
	case right < lo:
		c := dir * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case left >= hi:
		return
	case left == right:
		r.deposit(s, top, bot, dir, left, cover, area, lo, hi)
		return
	}

	// Split at the pixel boundaries the segment crosses.
	r.crossings = append(r.crossings[:0], top, bot)
	inv := 1 / s.slope
	for x := left + 1; x <= right; x++ {
		yx := s.y0 + inv*(float64(x)-s.x0)
		if yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		a, b := r.crossings[i-1], r.crossings[i]
		if b <= a {
			continue
		}
		pix := int(math.Floor(s.xAt((a + b) / 2)))
		r.deposit(s, a, b, dir, pix, cover, area, lo, hi)
	}
}

// deposit adds the part of s between heights top and bot, which lies
// inside pixel column pix.
func (r *Rasteriser) deposit(s *segment, top, bot float64, dir float32, pix int, cover, area []float32, lo, hi int) {
	c := dir * float32(bot-top)
	switch {
	case pix < lo:
		cover[0] += c
		area[0] += c
	case pix < hi:
		frac := s.xAt((top+bot)/2) - float64(pix)
		cover[pix-lo] += c
		area[pix-lo] += c * float32(1-frac)
	}
}

// column returns the clipped pixel column of s at the middle of its part
// inside scanline y, and false if s does not reach into the scanline.
func (s *segment) column(y, lo, hi int) (int, bool) {
	top := max(float64(y), s.top())
	bot := min(float64(y+1), s.bottom())
	if bot <= top {
		return 0, false
	}
	x := int(math.Floor(s.xAt((top + bot) / 2)))
	return min(max(x, lo), hi-1), true
}

// resolve converts accumulated cover and area into coverage, in place.
func resolve(rule Rule, cover, area []float32) {
	var sum float32
	for i := range cover {
		w := sum + area[i]
		sum += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trim strips zero coverage from both ends of a row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// sweepDense accumulates all rows of the bounding box at once.
func (r *Rasteriser) sweepDense(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	w, h := x1-x0, y1-y0
	r.cover = grow(r.cover, w*h)
	r.area = grow(r.area, w*h)
	r.rowLo = slices.Grow(r.rowLo[:0], h)[:h]
	r.rowHi = slices.Grow(r.rowHi[:0], h)[:h]
	for i := range h {
		r.rowLo[i] = x1
		r.rowHi[i] = x0 - 1
	}

	for i := range r.segs {
		s := &r.segs[i]
		top := max(int(math.Floor(s.top())), y0)
		bot := min(int(math.Floor(s.bottom()))+1, y1)
		for y := top; y < bot; y++ {
			row := y - y0
			off := row * w
			r.accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			if x, ok := s.column(y, x0, x1); ok {
				r.rowLo[row] = min(r.rowLo[row], x)
				r.rowHi[row] = max(r.rowHi[row], x)
			}
		}
	}

	for row := range h {
		if r.rowHi[row] < r.rowLo[row] {
			continue
		}
		off := row * w
		cov := r.cover[off : off+w]
		resolve(rule, cov, r.area[off:off+w])
		if run, k := trim(cov); run != nil {
			emit(y0+row, x0+k, run)
		}
	}
}

// sweepRows processes one scanline at a time, keeping a list of the
// segments which intersect it.
func (r *Rasteriser) sweepRows(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		for next < len(r.segs) && r.segs[next].top() < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(s, y, r.cover, r.area, x0, x1)
			if _, ok := s.column(y, x0, x1); ok {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		resolve(rule, r.cover, r.area)
		if run, k := trim(r.cover); run != nil {
			emit(y, x0+k, run)
		}
	}
}

// grow returns buf resized to n zeroed elements.
func grow(buf []float32, n int) []float32 {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}
