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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"seehuhn.de/go/mapproj"
	"seehuhn.de/go/mapproj/internal/scene"
	"seehuhn.de/go/mapproj/sink"
	"seehuhn.de/go/mapproj/testcases"
)

var formats = []string{"svg", "png", "pdf", "json"}

type renderOpts struct {
	viewOpts
	format    string
	output    string // "-" for stdout
	graticule float64
	stroke    float64 // outline width; 0 fills the geometry
	evenOdd   bool
	label     bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		viewOpts:  defaultViewOpts(),
		format:    "svg",
		graticule: 15,
		label:     true,
	}

	cmd := &cobra.Command{
		Use:   "render FILE.geojson",
		Short: "Draw the features of a GeoJSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}
	opts.addFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(formats, ", "))
	f.StringVarP(&opts.output, "output", "o", "", `output file (default: input name with the format's extension, "-" for stdout)`)
	f.Float64Var(&opts.graticule, "graticule", opts.graticule, "graticule spacing in degrees (0 for none)")
	f.Float64Var(&opts.stroke, "stroke", 0, "draw feature outlines of this width instead of filling")
	f.BoolVar(&opts.evenOdd, "evenodd", false, "fill with the even-odd rule")
	f.BoolVar(&opts.label, "label", opts.label, "print the projection name onto PNG output")
	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	known := false
	for _, f := range formats {
		known = known || f == opts.format
	}
	if !known {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	fc, err := readFeatures(input)
	if err != nil {
		return err
	}
	logger.Debug("read features", "file", input, "count", len(fc.Features))

	p, err := opts.build(ctx)
	if err != nil {
		return err
	}

	tc := &testcases.TestCase{
		Name:       strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
		Width:      opts.width,
		Height:     opts.height,
		Projection: opts.projection,
		Scale:      opts.scale,
		Origin:     p.Origin(),
		Graticule:  opts.graticule,
	}
	if opts.stroke > 0 {
		tc.Op = testcases.Stroke{Width: opts.stroke}
	} else {
		rule := testcases.NonZero
		if opts.evenOdd {
			rule = testcases.EvenOdd
		}
		tc.Op = testcases.Fill{Rule: rule}
	}

	res, err := scene.Draw(tc, p, fc)
	if res == nil {
		return err
	}
	if err != nil {
		logger.Warn("some features were skipped", "err", err)
	}
	name := projectionName(p, opts.projection)

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := writeResult(stdout, out, opts, res, name); err != nil {
		return err
	}
	prog.done("rendered map", "projection", name, "output", out)
	return nil
}

// readFeatures reads a GeoJSON FeatureCollection, Feature or geometry.
func readFeatures(fname string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return fc, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		fc := geojson.NewFeatureCollection()
		return fc.Append(f), nil
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		fc := geojson.NewFeatureCollection()
		return fc.Append(geojson.NewFeature(g.Geometry())), nil
	}
}

func writeResult(stdout io.Writer, out string, opts *renderOpts, res *scene.Result, name string) error {
	w, h := opts.width, opts.height

	if opts.format == "pdf" {
		if out == "-" {
			return fmt.Errorf("PDF output cannot be written to stdout")
		}
		return sink.WritePDF(out, w, h, res.Layers)
	}

	buf := &bytes.Buffer{}
	var err error
	switch opts.format {
	case "svg":
		err = sink.WriteSVG(buf, w, h, res.Layers)
	case "png":
		label := ""
		if opts.label {
			label = name
		}
		err = sink.WritePNG(buf, w, h, res.Layers, label)
	case "json":
		err = writeJSON(buf, name, res)
	}
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0644)
}

type jsonLayer struct {
	D        string  `json:"d"`
	Op       string  `json:"op"`
	FillRule string  `json:"fill_rule,omitempty"`
	Width    float64 `json:"line_width,omitempty"`
	Gray     float64 `json:"gray"`
}

func writeJSON(w io.Writer, name string, res *scene.Result) error {
	out := struct {
		Projection string      `json:"projection"`
		Scale      float64     `json:"scale"`
		Origin     [2]float64  `json:"origin"`
		Layers     []jsonLayer `json:"layers"`
	}{
		Projection: name,
		Scale:      res.Projection.Scale(),
		Origin:     [2]float64{res.Projection.Origin().Lon, res.Projection.Origin().Lat},
	}
	for _, l := range res.Layers {
		jl := jsonLayer{D: mapproj.SVGPathData(l.Path, sink.Digits), Gray: l.Gray}
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
		out.Layers = append(out.Layers, jl)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
