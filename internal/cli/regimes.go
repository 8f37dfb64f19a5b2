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
	"math"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mapproj/composite"
)

type regimesOpts struct {
	viewOpts
	from, to, step float64
	point          string
}

func newRegimesCmd() *cobra.Command {
	opts := regimesOpts{
		viewOpts: defaultViewOpts(),
		from:     1,
		to:       20,
		step:     0.5,
	}

	cmd := &cobra.Command{
		Use:   "regimes",
		Short: "List the projection selected at each scale",
		Long: `Regimes sweeps the relative scale of the composite projection and prints,
for every step, the active projection and the screen position of a point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegimes(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().Lookup("projection").Hidden = true
	f := cmd.Flags()
	f.Float64Var(&opts.from, "from", opts.from, "first relative scale")
	f.Float64Var(&opts.to, "to", opts.to, "last relative scale")
	f.Float64Var(&opts.step, "step", opts.step, "scale increment")
	f.StringVar(&opts.point, "point", "", "lon,lat to project at every step (default: the origin)")
	return cmd
}

func runRegimes(ctx context.Context, w io.Writer, opts *regimesOpts) error {
	if !(opts.step > 0) || !(opts.from > 0) || opts.to < opts.from {
		return fmt.Errorf("invalid scale range %g..%g step %g", opts.from, opts.to, opts.step)
	}

	opts.projection = "composite"
	opts.scale = opts.from
	p, err := opts.build(ctx)
	if err != nil {
		return err
	}
	c := p.(*composite.Composite)

	pt := c.Origin()
	if opts.point != "" {
		pt, err = parseCoordinate(opts.point)
		if err != nil {
			return fmt.Errorf("--point: %w", err)
		}
	}

	n := int(math.Floor((opts.to-opts.from)/opts.step+1e-9)) + 1
	fmt.Fprintf(w, "%8s  %-46s  %s\n", "scale", "projection", pt)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := opts.from + float64(i)*opts.step
		if err := c.SetRelativeScale(s); err != nil {
			return err
		}
		q, _ := c.Forward(pt)
		fmt.Fprintf(w, "%8.3f  %-46s  %.2f,%.2f\n", s, c.ProjectionName(), q.X, q.Y)
	}
	return nil
}
