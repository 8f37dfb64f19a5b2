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
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/composite"
	"seehuhn.de/go/mapproj/projection"
	"seehuhn.de/go/mapproj/testcases"
)

func coords(pts ...float64) []projection.Coordinate {
	res := make([]projection.Coordinate, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		res = append(res, projection.Coordinate{Lon: pts[i], Lat: pts[i+1]})
	}
	return res
}

func count(p *path.Data, cmd path.Command) int {
	n := 0
	for _, c := range p.Cmds {
		if c == cmd {
			n++
		}
	}
	return n
}

// longestLine returns the length of the longest LineTo in p.
func longestLine(p *path.Data) float64 {
	var res float64
	var prev vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			prev = p.Coords[k]
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			k++
			res = max(res, q.Sub(prev).Length())
			prev = q
		}
	}
	return res
}

// depth returns the height of the subtree below idx.
func (t *tree) depth(idx int) int {
	n := t.nodes[idx]
	if n.left < 0 {
		return 0
	}
	return 1 + max(t.depth(n.left), t.depth(n.right))
}

func TestWrap(t *testing.T) {
	for _, p := range []projection.Projection{
		projection.NewCylindrical(),
		projection.NewHammer(2),
		projection.NewMercator(),
	} {
		a := projection.Coordinate{Lon: 179}
		b := projection.Coordinate{Lon: -179}
		_, wa := p.Forward(a)
		_, wb := p.Forward(unwrap(a, b))
		if wa == wb {
			t.Errorf("%T: segment not flagged as wrapped", p)
		}

		r := NewRenderer(p)
		res, err := r.Line([]projection.Coordinate{a, b})
		if err != nil {
			t.Fatal(err)
		}
		if n := count(res, path.CmdMoveTo); n != 2 {
			t.Errorf("%T: %d subpaths, want 2: %s", p, n, SVGPathData(res, 2))
		}

		// No piece may run across the map.
		k := 0
		var prev vec.Vec2
		for _, cmd := range res.Cmds {
			q := res.Coords[k]
			k++
			if cmd == path.CmdLineTo {
				if d := q.Sub(prev).Length(); d > 50 {
					t.Errorf("%T: line of length %g", p, d)
				}
			}
			prev = q
		}
	}
}

func TestNoWrap(t *testing.T) {
	r := NewRenderer(projection.NewCylindrical())
	res, err := r.Line(coords(170, 0, 175, 0, 179, 1))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdMoveTo); n != 1 {
		t.Errorf("%d subpaths, want 1", n)
	}
}

func TestWrapTilted(t *testing.T) {
	// The map edge is the local antimeridian, opposite the centre.
	p := projection.NewLambertAzimuthal().SetOrigin(projection.Coordinate{Lon: 0, Lat: 45})
	r := NewRenderer(p)

	// crosses the source antimeridian in the visible part of the map
	res, err := r.Line(coords(170, 70, -170, 70))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdMoveTo); n != 1 {
		t.Errorf("%d subpaths, want 1", n)
	}

	// crosses the far side of the globe
	res, err = r.Line(coords(170, -10, -170, -10))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdMoveTo); n != 2 {
		t.Errorf("%d subpaths, want 2", n)
	}
}

func TestWrapMercatorBlend(t *testing.T) {
	// Near the pole, the cross-fade mixes a tilted azimuthal frame with the
	// upright Mercator frame. The source antimeridian is a seam only in the
	// latter.
	c, err := composite.New(rect.Rect{URx: 960, URy: 500})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetOrigin(projection.Coordinate{Lat: 80}); err != nil {
		t.Fatal(err)
	}
	for _, s := range []float64{13.5, 14} {
		if err := c.SetRelativeScale(s); err != nil {
			t.Fatal(err)
		}
		if c.Regime() != composite.RegimeMercatorInterpolation {
			t.Fatalf("scale %g: regime %s", s, c.ProjectionName())
		}

		r := NewRenderer(c)
		res, err := r.Line(coords(170, 85, -170, 85))
		if err != nil {
			t.Fatal(err)
		}
		if n := count(res, path.CmdMoveTo); n != 2 {
			t.Errorf("scale %g: %d subpaths, want 2", s, n)
		}
		if d := longestLine(res); d > r.Tolerance {
			t.Errorf("scale %g: line of length %g", s, d)
		}
	}
}

func TestWrapComposite(t *testing.T) {
	c, err := composite.New(rect.Rect{URx: 960, URy: 500})
	if err != nil {
		t.Fatal(err)
	}
	for _, lat := range []float64{0, 45, 80} {
		if err := c.SetOrigin(projection.Coordinate{Lat: lat}); err != nil {
			t.Fatal(err)
		}
		for s := 1.0; s <= 20; s += 0.5 {
			if err := c.SetRelativeScale(s); err != nil {
				t.Fatal(err)
			}
			r := NewRenderer(c)
			res, err := r.Line(coords(179, lat+5, -179, lat+5))
			if err != nil {
				t.Fatal(err)
			}
			if d := longestLine(res); d > r.Tolerance {
				t.Errorf("lat %g, scale %g (%s): line of length %g",
					lat, s, c.ProjectionName(), d)
			}
		}
	}
}

func TestSubdivisionDepth(t *testing.T) {
	r := NewRenderer(projection.NewHammer(2))
	r.Tolerance = 0
	r.MaxDepth = 3

	res, err := r.Line(coords(-60, 10, 60, 10))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdLineTo); n != 8 {
		t.Errorf("%d line segments, want 8", n)
	}

	r.MaxDepth = 10
	tr := &tree{}
	a, b := coords(-170, -80, 170, 80)[0], coords(-170, -80, 170, 80)[1]
	pa, _ := r.Projection.Forward(a)
	pb, _ := r.Projection.Forward(b)
	root := tr.build(r, a, b, pa, pb, 0)
	if d := tr.depth(root); d > r.MaxDepth {
		t.Errorf("depth %d exceeds the limit %d", d, r.MaxDepth)
	}
	leaves := 0
	tr.walk(root, func(vec.Vec2) { leaves++ })
	if leaves > 1<<r.MaxDepth {
		t.Errorf("%d leaves", leaves)
	}
}

func TestSubdivisionAdaptive(t *testing.T) {
	r := NewRenderer(projection.NewHammer(2))

	// short segments are straight
	res, err := r.Line(coords(0, 0, 0.1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdLineTo); n != 1 {
		t.Errorf("%d line segments, want 1", n)
	}

	// long segments are split until the pieces are short
	res, err = r.Line(coords(-150, 60, -10, 60))
	if err != nil {
		t.Fatal(err)
	}
	if n := count(res, path.CmdLineTo); n < 8 {
		t.Errorf("only %d line segments", n)
	}
	for i, cmd := range res.Cmds {
		if cmd != path.CmdLineTo {
			continue
		}
		if d := res.Coords[i].Sub(res.Coords[i-1]).Length(); d >= r.Tolerance {
			t.Errorf("piece %d has length %g", i, d)
		}
	}
}

func TestStraightProjection(t *testing.T) {
	r := NewRenderer(projection.NewEquirectangular())
	res, err := r.Line(coords(0, 0, 90, 0, 90, 45))
	if err != nil {
		t.Fatal(err)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}
	if d := cmp.Diff(want, res.Cmds); d != "" {
		t.Error(d)
	}
}

func TestRimScreening(t *testing.T) {
	r := NewRenderer(projection.NewLambertAzimuthal())

	rim := coords(178, 2, -178, 2, -178, -2, 178, -2, 178, 2)
	res, err := r.Ring(rim)
	if err != nil {
		t.Fatal(err)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdClose}
	if d := cmp.Diff(want, res.Cmds); d != "" {
		t.Error(d)
	}

	reaching := coords(178, 2, 90, 40, -178, -2, 178, -2, 178, 2)
	res, err = r.Ring(reaching)
	if err != nil {
		t.Fatal(err)
	}
	if count(res, path.CmdLineTo) == 0 {
		t.Error("polygon with a vertex outside the rim band was not drawn")
	}
}

func TestRingClosing(t *testing.T) {
	r := NewRenderer(projection.NewHammer(2))
	open, err := r.Ring(coords(0, 0, 40, 0, 40, 30))
	if err != nil {
		t.Fatal(err)
	}
	closed, err := r.Ring(coords(0, 0, 40, 0, 40, 30, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(SVGPathData(closed, 3), SVGPathData(open, 3)); d != "" {
		t.Error(d)
	}
	if open.Cmds[len(open.Cmds)-1] != path.CmdClose {
		t.Error("ring not closed")
	}
}

func TestDegenerate(t *testing.T) {
	r := NewRenderer(projection.NewHammer(2))

	if _, err := r.Line(coords(10, 10)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("single vertex line: err = %v", err)
	}
	if _, err := r.Ring(coords(10, 10, 20, 20, 10, 10)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("two vertex ring: err = %v", err)
	}

	unclosed := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if _, err := r.Geometry(unclosed); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("unclosed ring: err = %v", err)
	}
	short := orb.Polygon{{{0, 0}, {10, 0}, {0, 0}}}
	if _, err := r.Geometry(short); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("short ring: err = %v", err)
	}
}

func TestFeatureCollectionSiblings(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.LineString{{5, 5}}))
	fc.Append(geojson.NewFeature(orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}}))

	r := NewRenderer(projection.NewHammer(2))
	res, err := r.FeatureCollection(fc)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("err = %v", err)
	}
	if count(res, path.CmdMoveTo) != 1 || count(res, path.CmdClose) != 1 {
		t.Errorf("polygon not drawn: %s", SVGPathData(res, 1))
	}
}

func TestPointMarker(t *testing.T) {
	r := NewRenderer(projection.NewEquirectangular())
	res, err := r.Geometry(orb.Point{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []path.Command{
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose,
	}
	if d := cmp.Diff(want, res.Cmds); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(vec.Vec2{X: 484.5, Y: 250}, res.Coords[0]); d != "" {
		t.Error(d)
	}
}

func TestAreaCentroid(t *testing.T) {
	r := NewRenderer(projection.NewEquirectangular())
	box := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}

	side := 250 * 10 * math.Pi / 180
	opt := cmpopts.EquateApprox(1e-9, 1e-9)
	if d := cmp.Diff(side*side, r.Area(box), opt); d != "" {
		t.Error(d)
	}
	want := vec.Vec2{X: 480 + side/2, Y: 250 - side/2}
	if d := cmp.Diff(want, r.Centroid(box), opt); d != "" {
		t.Error(d)
	}

	// the input is not modified
	if box[0][1] != (orb.Point{10, 0}) {
		t.Error("Project modified its input")
	}
}

func TestGraticule(t *testing.T) {
	g := Graticule(30)
	if len(g) != 12+5 {
		t.Errorf("got %d lines, want 17", len(g))
	}
	if Graticule(0) != nil || Graticule(-5) != nil {
		t.Error("invalid step accepted")
	}

	r := NewRenderer(projection.NewHammer(2))
	res, err := r.Geometry(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range res.Coords {
		if isNaN(q) {
			t.Fatal("NaN in graticule")
		}
	}
}

func TestSVGPathData(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 480, Y: 250}).
		LineTo(vec.Vec2{X: 490, Y: 250}).
		Close()
	if d := cmp.Diff("M480,250L490,250Z", SVGPathData(p, -1)); d != "" {
		t.Error(d)
	}

	p = (&path.Data{}).
		MoveTo(vec.Vec2{X: 1.234, Y: -0.001}).
		LineTo(vec.Vec2{X: 2.5, Y: 3})
	if d := cmp.Diff("M1.23,0L2.5,3", SVGPathData(p, 2)); d != "" {
		t.Error(d)
	}
}

func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p, err := tc.NewProjection()
				if err != nil {
					t.Fatal(err)
				}
				r := NewRenderer(p)
				res, err := r.Geometry(tc.Geometry)
				if err != nil {
					t.Fatal(err)
				}
				if tc.Graticule > 0 {
					res, err = r.AppendGeometry(res, Graticule(tc.Graticule))
					if err != nil {
						t.Fatal(err)
					}
				}
				if len(res.Cmds) == 0 {
					t.Fatal("empty path")
				}

				inside := false
				for _, q := range res.Coords {
					if isNaN(q) || math.IsInf(q.X, 0) || math.IsInf(q.Y, 0) {
						t.Fatalf("invalid point %v", q)
					}
					if q.X >= 0 && q.X <= float64(tc.Width) && q.Y >= 0 && q.Y <= float64(tc.Height) {
						inside = true
					}
				}
				if !inside && len(res.Cmds) > 2 {
					t.Error("nothing drawn inside the viewport")
				}
			})
		}
	}
}
