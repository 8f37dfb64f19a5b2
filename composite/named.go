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

package composite

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

var names = []string{
	"composite",
	"hammer",
	"lambert",
	"cylindrical",
	"equirectangular",
	"mercator",
	"albers",
}

// Names returns the projection names understood by NewNamed.
func Names() []string {
	return slices.Clone(names)
}

// NewNamed returns the projection with the given name, set up for the
// viewport like a Composite at the given origin and relative scale.
// The name "composite" gives a [Composite]; the other names give a single
// fixed projection.
func NewNamed(name string, viewport rect.Rect, origin projection.Coordinate, scale float64) (projection.Projection, error) {
	if name == "composite" {
		c, err := New(viewport)
		if err != nil {
			return nil, err
		}
		if err := c.SetOrigin(origin); err != nil {
			return nil, err
		}
		if err := c.SetRelativeScale(scale); err != nil {
			return nil, err
		}
		return c, nil
	}

	v := &view{
		viewport: viewport,
		origin:   origin,
		translate: vec.Vec2{
			X: (viewport.LLx + viewport.URx) / 2,
			Y: (viewport.LLy + viewport.URy) / 2,
		},
		th: DefaultThresholds(),
	}
	v.scale = scale * v.halfSize()
	if !(v.scale > 0) {
		return nil, fmt.Errorf("%w: invalid scale %g", ErrUnhandledRegime, scale)
	}

	switch name {
	case "hammer":
		return v.hammer(2), nil
	case "lambert":
		return v.hammer(1), nil
	case "cylindrical":
		return v.cylindrical(), nil
	case "equirectangular":
		return projection.NewEquirectangular().
			SetScale(v.scale).
			SetTranslate(v.translate).
			SetOrigin(origin), nil
	case "mercator":
		return v.mercator(), nil
	case "albers":
		return v.albers(nil, 0, 0), nil
	}
	return nil, fmt.Errorf("unknown projection %q", name)
}
