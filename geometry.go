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
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

// circleK is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const circleK = 0.5522847498307936

// Geometry draws g. Orb points are (longitude, latitude) pairs in degrees.
//
// Points are drawn as circles of radius PointRadius. Polygon rings must be
// closed and have at least four vertices. Geometry which cannot be drawn is
// skipped; the other members of a multi-geometry or collection are still
// drawn, and the returned error joins the reasons for all skipped parts.
func (r *Renderer) Geometry(g orb.Geometry) (*path.Data, error) {
	return r.AppendGeometry(nil, g)
}

// AppendGeometry is like Geometry, but appends to dst.
func (r *Renderer) AppendGeometry(dst *path.Data, g orb.Geometry) (*path.Data, error) {
	if dst == nil {
		dst = &path.Data{}
	}
	var errs []error
	dst = r.appendGeometry(dst, g, &errs)
	return dst, errors.Join(errs...)
}

// Feature draws the geometry of a GeoJSON feature.
func (r *Renderer) Feature(f *geojson.Feature) (*path.Data, error) {
	dst, err := r.AppendGeometry(nil, f.Geometry)
	if err != nil && f.ID != nil {
		err = fmt.Errorf("feature %v: %w", f.ID, err)
	}
	return dst, err
}

// FeatureCollection draws all features of fc into a single path.
func (r *Renderer) FeatureCollection(fc *geojson.FeatureCollection) (*path.Data, error) {
	dst := &path.Data{}
	var errs []error
	for i, f := range fc.Features {
		var featureErrs []error
		dst = r.appendGeometry(dst, f.Geometry, &featureErrs)
		if len(featureErrs) > 0 {
			id := f.ID
			if id == nil {
				id = i
			}
			errs = append(errs, fmt.Errorf("feature %v: %w", id, errors.Join(featureErrs...)))
		}
	}
	return dst, errors.Join(errs...)
}

func (r *Renderer) appendGeometry(dst *path.Data, g orb.Geometry, errs *[]error) *path.Data {
	var err error
	switch g := g.(type) {
	case nil:
		// nothing to draw
	case orb.Point:
		dst = r.appendMarker(dst, g)
	case orb.MultiPoint:
		for _, pt := range g {
			dst = r.appendMarker(dst, pt)
		}
	case orb.LineString:
		dst, err = r.AppendLine(dst, coordinates(g))
	case orb.MultiLineString:
		for _, ls := range g {
			dst = r.appendGeometry(dst, ls, errs)
		}
	case orb.Ring:
		dst, err = r.appendPolygonRing(dst, g)
	case orb.Polygon:
		for _, ring := range g {
			dst = r.appendGeometry(dst, ring, errs)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			dst = r.appendGeometry(dst, poly, errs)
		}
	case orb.Collection:
		for _, member := range g {
			dst = r.appendGeometry(dst, member, errs)
		}
	case orb.Bound:
		dst = r.appendGeometry(dst, g.ToPolygon(), errs)
	default:
		err = fmt.Errorf("%w: unsupported geometry type %T", ErrDegenerateGeometry, g)
	}
	if err != nil {
		*errs = append(*errs, err)
	}
	return dst
}

func (r *Renderer) appendPolygonRing(dst *path.Data, ring orb.Ring) (*path.Data, error) {
	if len(ring) < 4 {
		return dst, fmt.Errorf("%w: ring with %d vertices", ErrDegenerateGeometry, len(ring))
	}
	if !ring.Closed() {
		return dst, fmt.Errorf("%w: ring is not closed", ErrDegenerateGeometry)
	}
	return r.AppendRing(dst, coordinates(ring))
}

// appendMarker draws a circle around the projection of pt.
func (r *Renderer) appendMarker(dst *path.Data, pt orb.Point) *path.Data {
	c, _ := r.Projection.Forward(projection.Coordinate{Lon: pt[0], Lat: pt[1]})
	if isNaN(c) || !(r.PointRadius > 0) {
		return dst
	}

	rad := r.PointRadius
	k := circleK * rad
	p := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return dst.
		MoveTo(p(rad, 0)).
		CubeTo(p(rad, -k), p(k, -rad), p(0, -rad)).
		CubeTo(p(-k, -rad), p(-rad, -k), p(-rad, 0)).
		CubeTo(p(-rad, k), p(-k, rad), p(0, rad)).
		CubeTo(p(k, rad), p(rad, k), p(rad, 0)).
		Close()
}

func coordinates[S ~[]orb.Point](pts S) []projection.Coordinate {
	res := make([]projection.Coordinate, len(pts))
	for i, pt := range pts {
		res[i] = projection.Coordinate{Lon: pt[0], Lat: pt[1]}
	}
	return res
}

// Project returns a copy of g with every vertex projected. The input is not
// modified. Edges are not subdivided.
func (r *Renderer) Project(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), func(pt orb.Point) orb.Point {
		q, _ := r.Projection.Forward(projection.Coordinate{Lon: pt[0], Lat: pt[1]})
		return orb.Point{q.X, q.Y}
	})
}

// Area returns the area of the projected geometry, in square output units.
// Only polygons contribute; holes are subtracted.
func (r *Renderer) Area(g orb.Geometry) float64 {
	return math.Abs(planar.Area(r.Project(g)))
}

// Centroid returns the centroid of the projected geometry. For polygons
// this is the area-weighted centroid.
func (r *Renderer) Centroid(g orb.Geometry) vec.Vec2 {
	c, _ := planar.CentroidArea(r.Project(g))
	return vec.Vec2{X: c[0], Y: c[1]}
}
