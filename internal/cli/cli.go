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

// Package cli implements the mapproj command line interface.
//
// The commands are:
//   - render: draw a GeoJSON file as SVG, PNG, PDF or JSON path data
//   - regimes: show which projection the composite selects at each scale
//   - project: convert a single coordinate forward and back
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// in the command context and is also installed as the logger of the
// composite package, so that regime changes show up in debug output.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mapproj/composite"
	"seehuhn.de/go/mapproj/projection"
)

// Execute runs the command line interface with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mapproj",
		Short:        "Draw maps with adaptive composite projections",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			composite.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newRegimesCmd())
	root.AddCommand(newProjectCmd())
	return root
}

// viewOpts are the flags which set up a projection.
type viewOpts struct {
	projection string
	scale      float64
	origin     string
	width      int
	height     int
	thresholds string
}

func defaultViewOpts() viewOpts {
	return viewOpts{
		projection: "composite",
		scale:      1,
		origin:     "0,0",
		width:      960,
		height:     500,
	}
}

func (o *viewOpts) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.projection, "projection", o.projection,
		"projection: "+strings.Join(composite.Names(), ", "))
	f.Float64Var(&o.scale, "scale", o.scale, "scale relative to the viewport; 1 shows the whole globe")
	f.StringVar(&o.origin, "origin", o.origin, "map centre as lon,lat in degrees")
	f.IntVar(&o.width, "width", o.width, "viewport width in pixels")
	f.IntVar(&o.height, "height", o.height, "viewport height in pixels")
	f.StringVar(&o.thresholds, "thresholds", o.thresholds, "TOML file with composite thresholds")
}

func (o *viewOpts) viewport() rect.Rect {
	return rect.Rect{URx: float64(o.width), URy: float64(o.height)}
}

// build returns the configured projection.
func (o *viewOpts) build(ctx context.Context) (projection.Projection, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("invalid viewport size %dx%d", o.width, o.height)
	}
	origin, err := parseCoordinate(o.origin)
	if err != nil {
		return nil, fmt.Errorf("--origin: %w", err)
	}

	p, err := composite.NewNamed(o.projection, o.viewport(), origin, o.scale)
	if err != nil {
		return nil, err
	}
	if o.thresholds == "" {
		return p, nil
	}

	c, ok := p.(*composite.Composite)
	if !ok {
		return nil, fmt.Errorf("--thresholds needs the composite projection, not %q", o.projection)
	}
	th, err := composite.LoadThresholds(o.thresholds)
	if err != nil {
		return nil, err
	}
	if err := c.SetThresholds(th); err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("loaded thresholds", "file", o.thresholds)
	return c, nil
}

// parseCoordinate parses "lon,lat" in degrees.
func parseCoordinate(s string) (projection.Coordinate, error) {
	lon, lat, ok := strings.Cut(s, ",")
	if !ok {
		return projection.Coordinate{}, fmt.Errorf("%q is not of the form lon,lat", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return projection.Coordinate{}, fmt.Errorf("longitude: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return projection.Coordinate{}, fmt.Errorf("latitude: %w", err)
	}
	if y < -90 || y > 90 {
		return projection.Coordinate{}, fmt.Errorf("latitude %g out of range", y)
	}
	return projection.Coordinate{Lon: x, Lat: y}, nil
}

// projectionName describes p for log messages and tables.
func projectionName(p projection.Projection, fallback string) string {
	if c, ok := p.(*composite.Composite); ok {
		return c.ProjectionName()
	}
	return fallback
}

