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

// Package mapproj draws geographic geometry through a map projection.
//
// A [Renderer] turns polylines and rings of geographic coordinates into
// planar paths made of MoveTo, LineTo and ClosePath instructions. Straight
// segments in longitude and latitude usually become curves on the map; the
// renderer samples them adaptively until the pieces are short enough to be
// drawn as straight lines. Segments which cross the edge of the map are cut
// there, so that no stray lines are drawn across the whole map.
package mapproj

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

// ErrDegenerateGeometry is returned for geometry which cannot be drawn, for
// example a line with a single vertex or an unclosed polygon ring.
var ErrDegenerateGeometry = errors.New("mapproj: degenerate geometry")

// Default values for the renderer settings.
const (
	DefaultTolerance       = 25.0
	DefaultMaxDepth        = 20
	DefaultMagnitudeMargin = 2.0
	DefaultPointRadius     = 4.5
)

const (
	// cutIterations is the number of bisection steps used to locate the
	// point where a segment crosses the edge of the map.
	cutIterations = 40

	// maxCuts limits the number of edge crossings handled per segment.
	maxCuts = 4
)

// Renderer draws geographic geometry using a projection.
//
// The zero value is not usable; use NewRenderer to get the default settings.
// A Renderer may be used concurrently, provided that the projection is not
// modified at the same time.
type Renderer struct {
	Projection projection.Projection

	// Tolerance is the length, in output units, below which a projected
	// segment is drawn as a straight line.
	Tolerance float64

	// MaxDepth limits the recursion depth of the adaptive subdivision.
	// Every input segment produces at most 2^MaxDepth output segments.
	MaxDepth int

	// MagnitudeMargin is the exponent by which one half of a segment must
	// dominate the other for only the longer half to be subdivided.
	MagnitudeMargin float64

	// PointRadius is the radius of the circle drawn for point geometry.
	PointRadius float64
}

// NewRenderer returns a renderer for p with the default settings.
func NewRenderer(p projection.Projection) *Renderer {
	return &Renderer{
		Projection:      p,
		Tolerance:       DefaultTolerance,
		MaxDepth:        DefaultMaxDepth,
		MagnitudeMargin: DefaultMagnitudeMargin,
		PointRadius:     DefaultPointRadius,
	}
}

// Line draws an open polyline.
func (r *Renderer) Line(coords []projection.Coordinate) (*path.Data, error) {
	return r.AppendLine(nil, coords)
}

// Ring draws a closed polygon ring. The closing vertex may be given
// explicitly or omitted.
func (r *Renderer) Ring(coords []projection.Coordinate) (*path.Data, error) {
	return r.AppendRing(nil, coords)
}

// AppendLine appends an open polyline to dst. If dst is nil, a new path is
// allocated.
func (r *Renderer) AppendLine(dst *path.Data, coords []projection.Coordinate) (*path.Data, error) {
	if len(coords) < 2 {
		return dst, fmt.Errorf("%w: line with %d vertices", ErrDegenerateGeometry, len(coords))
	}
	w := r.newWriter(dst)
	w.polyline(coords)
	return w.dst, nil
}

// AppendRing appends a closed polygon ring to dst. If dst is nil, a new path
// is allocated.
//
// If the projection rejects the ring (see [projection.Projection]), only a
// MoveTo to the first vertex followed by ClosePath is appended.
func (r *Renderer) AppendRing(dst *path.Data, coords []projection.Coordinate) (*path.Data, error) {
	if n := distinctVertices(coords, 3); n < 3 {
		return dst, fmt.Errorf("%w: ring with %d distinct vertices", ErrDegenerateGeometry, n)
	}
	w := r.newWriter(dst)

	if !projection.ValidatePath(r.Projection, coords) {
		q, _ := r.Projection.Forward(coords[0])
		w.moveTo(q)
		w.close()
		return w.dst, nil
	}

	if coords[0] != coords[len(coords)-1] {
		coords = append(slices.Clip(coords), coords[0])
	}
	w.polyline(coords)
	w.close()
	return w.dst, nil
}

// distinctVertices counts the distinct values in coords, stopping at limit.
func distinctVertices(coords []projection.Coordinate, limit int) int {
	var seen []projection.Coordinate
	for _, c := range coords {
		if !slices.Contains(seen, c) {
			seen = append(seen, c)
			if len(seen) >= limit {
				break
			}
		}
	}
	return len(seen)
}

// writer holds the state of a single rendering call.
type writer struct {
	*Renderer
	dst         *path.Data
	seams       []projection.Rotation
	interpolate bool
	penUp       bool
	tree        tree
}

func (r *Renderer) newWriter(dst *path.Data) *writer {
	if dst == nil {
		dst = &path.Data{}
	}
	return &writer{
		Renderer:    r,
		dst:         dst,
		seams:       projection.Seams(r.Projection),
		interpolate: projection.ShouldInterpolate(r.Projection),
		penUp:       true,
	}
}

func (w *writer) moveTo(q vec.Vec2) {
	if isNaN(q) {
		w.penUp = true
		return
	}
	w.dst = w.dst.MoveTo(q)
	w.penUp = false
}

// lineTo draws a line to q. NaN points are skipped; the next valid point
// then starts a new subpath.
func (w *writer) lineTo(q vec.Vec2) {
	if isNaN(q) {
		w.penUp = true
		return
	}
	if w.penUp {
		w.moveTo(q)
		return
	}
	w.dst = w.dst.LineTo(q)
}

func (w *writer) close() {
	if len(w.dst.Cmds) > 0 {
		w.dst = w.dst.Close()
	}
}

// polyline draws the vertices as one connected subpath, except where the
// line leaves the map on one side and re-enters it on the other.
func (w *writer) polyline(coords []projection.Coordinate) {
	a := coords[0]
	pa, _ := w.Projection.Forward(a)
	w.moveTo(pa)
	for _, b := range coords[1:] {
		b = unwrap(a, b)
		pa = w.segment(a, pa, b)
		a = b
	}
}

// unwrap shifts the longitude of b by a multiple of 360° such that the
// segment from a to b takes the shorter way around the globe.
func unwrap(a, b projection.Coordinate) projection.Coordinate {
	d := b.Lon - a.Lon
	if math.Abs(d) > 180 {
		b.Lon -= 360 * math.Round(d/360)
	}
	return b
}

// segment draws the segment from a to b, where pa is the projection of a.
// The return value is the projection of b.
func (w *writer) segment(a projection.Coordinate, pa vec.Vec2, b projection.Coordinate) vec.Vec2 {
	pb, _ := w.Projection.Forward(b)
	for range maxCuts {
		before, after, ok := w.findCut(a, b)
		if !ok {
			break
		}
		p1, _ := w.Projection.Forward(before)
		w.draw(a, pa, before, p1)
		p2, _ := w.Projection.Forward(after)
		w.moveTo(p2)
		a, pa = after, p2
	}
	w.draw(a, pa, b, pb)
	return pb
}

// findCut checks whether the segment from a to b crosses the antimeridian
// of one of the projection's local frames. If so, it returns two points on
// the segment very close to either side of the first crossing.
func (w *writer) findCut(a, b projection.Coordinate) (before, after projection.Coordinate, ok bool) {
	best := 2.0
	for _, rot := range w.seams {
		lo, hi, found := cutFrame(rot, a, b)
		if found && lo < best {
			best = lo
			before, after, ok = lerp(a, b, lo), lerp(a, b, hi), true
		}
	}
	return before, after, ok
}

// cutFrame locates a crossing of the antimeridian of the frame given by
// rot, as a bracket [lo, hi] of segment parameters.
func cutFrame(rot projection.Rotation, a, b projection.Coordinate) (lo, hi float64, ok bool) {
	λa := localLon(rot, a)
	λb := localLon(rot, b)
	if math.Abs(λa) == 180 {
		λa = math.Copysign(180, λb)
	}
	if math.Abs(λb) == 180 {
		λb = math.Copysign(180, λa)
	}
	if !(math.Abs(λa-λb) > 180) {
		return 0, 0, false
	}

	lo, hi = 0.0, 1.0
	for range cutIterations {
		mid := (lo + hi) / 2
		λm := localLon(rot, lerp(a, b, mid))
		if math.Abs(λa-λm) > 180 {
			hi = mid
		} else {
			lo, λa = mid, λm
		}
	}
	return lo, hi, true
}

func localLon(rot projection.Rotation, c projection.Coordinate) float64 {
	l, _ := rot.Apply(c)
	return l.Lon
}

// draw draws the segment from a to b, without checking for edge crossings.
// The current point must be pa.
func (w *writer) draw(a projection.Coordinate, pa vec.Vec2, b projection.Coordinate, pb vec.Vec2) {
	if !w.interpolate {
		w.lineTo(pb)
		return
	}
	w.tree.reset()
	root := w.tree.build(w.Renderer, a, b, pa, pb, 0)
	w.tree.walk(root, w.lineTo)
}

func lerp(a, b projection.Coordinate, t float64) projection.Coordinate {
	return projection.Coordinate{
		Lon: a.Lon + t*(b.Lon-a.Lon),
		Lat: a.Lat + t*(b.Lat-a.Lat),
	}
}

func isNaN(q vec.Vec2) bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y)
}
