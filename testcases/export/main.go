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

// Command export writes all map scenes, projected and rendered, to
// testdata/scenes.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/mapproj"
	"seehuhn.de/go/mapproj/internal/scene"
	"seehuhn.de/go/mapproj/sink"
	"seehuhn.de/go/mapproj/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			res, err := scene.Render(&tc)
			if err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(category, &tc, res))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Projection string      `json:"projection"`
	Origin     [2]float64  `json:"origin"`
	Scale      float64     `json:"scale"`
	Active     string      `json:"active"`
	Layers     []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	D        string  `json:"d"`
	Op       string  `json:"op"`
	FillRule string  `json:"fill_rule,omitempty"`
	Width    float64 `json:"line_width,omitempty"`
	Gray     float64 `json:"gray"`
}

func toJSON(category string, tc *testcases.TestCase, res *scene.Result) jsonScene {
	js := jsonScene{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Projection: tc.Projection,
		Origin:     [2]float64{tc.Origin.Lon, tc.Origin.Lat},
		Scale:      tc.Scale,
		Active:     res.Name(),
	}
	if js.Projection == "" {
		js.Projection = "composite"
	}
	for _, l := range res.Layers {
		js.Layers = append(js.Layers, layerToJSON(l))
	}
	return js
}

func layerToJSON(l sink.Layer) jsonLayer {
	jl := jsonLayer{
		D:    mapproj.SVGPathData(l.Path, sink.Digits),
		Gray: l.Gray,
	}
	if l.Stroke {
		jl.Op = "stroke"
		jl.Width = l.Width
	} else {
		jl.Op = "fill"
		jl.FillRule = "nonzero"
		if l.EvenOdd {
			jl.FillRule = "evenodd"
		}
	}
	return jl
}
