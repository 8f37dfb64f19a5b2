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

// Package scene turns a map scene description into painted layers.
package scene

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/mapproj"
	"seehuhn.de/go/mapproj/composite"
	"seehuhn.de/go/mapproj/projection"
	"seehuhn.de/go/mapproj/sink"
	"seehuhn.de/go/mapproj/testcases"
)

// Colours and widths of the map layers.
const (
	GraticuleGray  = 0.75
	GraticuleWidth = 0.5
	LandGray       = 0.35
	OutlineGray    = 0.0
)

// Result is a rendered scene.
type Result struct {
	Projection projection.Projection
	Layers     []sink.Layer

	label string
}

// Name returns the name of the projection which drew the scene. For a
// composite projection this is the active regime.
func (res *Result) Name() string {
	if c, ok := res.Projection.(*composite.Composite); ok {
		return c.ProjectionName()
	}
	if res.label != "" {
		return res.label
	}
	return fmt.Sprintf("%T", res.Projection)
}

// Render projects the scene geometry and its graticule.
func Render(tc *testcases.TestCase) (*Result, error) {
	p, err := tc.NewProjection()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", tc.Name, err)
	}
	return Draw(tc, p, nil)
}

// Draw renders the scene with the projection p. If fc is not nil, its
// features are drawn instead of the scene geometry.
//
// Geometry which cannot be drawn is left out. In this case both the result
// and an error describing the omissions are returned.
func Draw(tc *testcases.TestCase, p projection.Projection, fc *geojson.FeatureCollection) (*Result, error) {
	r := mapproj.NewRenderer(p)
	res := &Result{Projection: p, label: tc.Projection}

	if tc.Graticule > 0 {
		grid, err := r.Geometry(mapproj.Graticule(tc.Graticule))
		if err != nil {
			return nil, fmt.Errorf("scene %q: graticule: %w", tc.Name, err)
		}
		res.Layers = append(res.Layers, sink.Layer{
			Path:   grid,
			Stroke: true,
			Width:  GraticuleWidth,
			Gray:   GraticuleGray,
		})
	}

	var geom *path.Data
	var err error
	if fc != nil {
		geom, err = r.FeatureCollection(fc)
	} else {
		geom, err = r.Geometry(tc.Geometry)
	}
	if err != nil {
		err = fmt.Errorf("scene %q: %w", tc.Name, err)
	}

	layer := sink.Layer{Path: geom}
	switch op := tc.Op.(type) {
	case testcases.Stroke:
		layer.Stroke = true
		layer.Width = op.Width
		layer.Gray = OutlineGray
	case testcases.Fill:
		layer.Fill = true
		layer.EvenOdd = op.Rule == testcases.EvenOdd
		layer.Gray = LandGray
	default:
		layer.Fill = true
		layer.Gray = LandGray
	}
	res.Layers = append(res.Layers, layer)
	return res, err
}
