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
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	opts := defaultViewOpts()

	cmd := &cobra.Command{
		Use:   "project LON,LAT",
		Short: "Convert a coordinate to screen space and back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runProject(ctx context.Context, w io.Writer, arg string, opts *viewOpts) error {
	c, err := parseCoordinate(arg)
	if err != nil {
		return err
	}
	p, err := opts.build(ctx)
	if err != nil {
		return err
	}

	q, wrapped := p.Forward(c)
	fmt.Fprintf(w, "projection: %s\n", projectionName(p, opts.projection))
	fmt.Fprintf(w, "forward:    %.4f,%.4f", q.X, q.Y)
	if wrapped {
		fmt.Fprint(w, " (wrapped)")
	}
	fmt.Fprintln(w)

	back, err := p.Inverse(q)
	if err != nil {
		loggerFromContext(ctx).Warn("inverse failed", "err", err)
		fmt.Fprintln(w, "inverse:    -")
		return nil
	}
	fmt.Fprintf(w, "inverse:    %.6f,%.6f\n", back.Lon, back.Lat)
	return nil
}
