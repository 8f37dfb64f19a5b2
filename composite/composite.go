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

// Package composite implements an adaptive composite map projection.
//
// A [Composite] chooses a projection depending on the map scale and on the
// latitude of the map centre, following Jenny, "Adaptive Composite Map
// Projections" (2012). Small scale world maps use the Hammer projection,
// which morphs into the Lambert azimuthal projection as the map is zoomed
// in. Medium scales use conic and cylindrical equal-area projections, and
// large scales fade into the Mercator projection. The transitions are
// continuous in most places, so that zooming and panning do not make the map
// jump.
//
// Unlike the setters of the fixed projections, the setters of a Composite
// do not return the receiver for chaining. Each of them re-selects the
// active projection and returns an error if no regime can handle the new
// view.
//
// A Composite is not safe for concurrent use.
package composite

import (
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

// DefaultScale is the pixel scale of a newly created Composite.
const DefaultScale = 100

// Composite is an adaptive composite projection for a fixed viewport.
//
// Every setter re-selects the active projection. If re-selection fails, the
// setter returns an error and the Composite keeps its previous state.
type Composite struct {
	view
	active projection.Projection
	regime Regime
}

var _ projection.Projection = (*Composite)(nil)

// New returns a composite projection for the given viewport, in screen
// coordinates (y growing downwards). The map is centred on (0°, 0°) in the
// middle of the viewport, at scale DefaultScale.
func New(viewport rect.Rect) (*Composite, error) {
	c := &Composite{
		view: view{
			viewport: viewport,
			scale:    DefaultScale,
			translate: vec.Vec2{
				X: (viewport.LLx + viewport.URx) / 2,
				Y: (viewport.LLy + viewport.URy) / 2,
			},
			th: DefaultThresholds(),
		},
	}
	if !(c.halfSize() > 0) {
		return nil, fmt.Errorf("composite: empty viewport %v", viewport)
	}
	if err := c.update(c.view); err != nil {
		return nil, err
	}
	return c, nil
}

// update selects the projection for v and, on success, makes v the
// current view.
func (c *Composite) update(v view) error {
	p, regime, err := selectProjection(&v, c.active, false)
	if err != nil {
		return err
	}
	if regime != c.regime {
		Logger().Debug("regime change",
			slog.String("from", c.regime.String()),
			slog.String("to", regime.String()),
			slog.Float64("scale", v.relative()),
			slog.Float64("lat", v.origin.Lat))
	}
	c.view = v
	c.active = p
	c.regime = regime
	return nil
}

// Viewport returns the viewport the composite was created for.
func (c *Composite) Viewport() rect.Rect {
	return c.viewport
}

// SetScale sets the pixel scale. At scale s, one radian near the map
// centre covers s/2 pixels.
func (c *Composite) SetScale(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: invalid scale %g", ErrUnhandledRegime, s)
	}
	v := c.view
	v.scale = s
	return c.update(v)
}

// RelativeScale returns the scale relative to the viewport: 1 means that
// the whole globe fits into the viewport.
func (c *Composite) RelativeScale() float64 {
	return c.relative()
}

// SetRelativeScale sets the scale relative to the viewport.
func (c *Composite) SetRelativeScale(s float64) error {
	return c.SetScale(s * c.halfSize())
}

// SetOrigin sets the geographic coordinate shown at the translate point.
func (c *Composite) SetOrigin(o projection.Coordinate) error {
	v := c.view
	v.origin = o
	return c.update(v)
}

// SetTranslate sets the output position of the origin.
// The new value persists across regime changes.
func (c *Composite) SetTranslate(t vec.Vec2) error {
	v := c.view
	v.translate = t
	return c.update(v)
}

// SetRotate sets the origin to (-r.Lambda, -r.Phi) and the roll angle to
// r.Gamma.
func (c *Composite) SetRotate(r projection.Rotation) error {
	v := c.view
	v.origin = projection.Coordinate{Lon: -r.Lambda, Lat: -r.Phi}
	v.gamma = r.Gamma
	return c.update(v)
}

// Thresholds returns the regime thresholds in use.
func (c *Composite) Thresholds() Thresholds {
	return c.th
}

// SetThresholds replaces the regime thresholds.
func (c *Composite) SetThresholds(th Thresholds) error {
	if err := th.Validate(); err != nil {
		return err
	}
	v := c.view
	v.th = th
	return c.update(v)
}

// Regime returns the regime of the active projection.
func (c *Composite) Regime() Regime {
	return c.regime
}

// ProjectionName returns a human readable name of the active regime.
func (c *Composite) ProjectionName() string {
	return c.regime.String()
}

// Active returns the active projection. The returned value is not changed by
// later calls to the setters of c.
func (c *Composite) Active() projection.Projection {
	return c.active
}

// Forward implements the [projection.Projection] interface.
func (c *Composite) Forward(p projection.Coordinate) (vec.Vec2, bool) {
	return c.active.Forward(p)
}

// Inverse implements the [projection.Projection] interface.
func (c *Composite) Inverse(q vec.Vec2) (projection.Coordinate, error) {
	return c.active.Inverse(q)
}

// Origin implements the [projection.Projection] interface.
func (c *Composite) Origin() projection.Coordinate {
	return c.origin
}

// Scale implements the [projection.Projection] interface.
func (c *Composite) Scale() float64 {
	return c.scale
}

// Translate implements the [projection.Projection] interface.
func (c *Composite) Translate() vec.Vec2 {
	return c.translate
}

// Rotate implements the [projection.Projection] interface.
// This is the rotation of the active projection, which for cylindrical and
// conic regimes has no latitude component.
func (c *Composite) Rotate() projection.Rotation {
	return c.active.Rotate()
}

// Seams returns the seams of the active projection. In the Mercator
// cross-fade these include the frames of both blended projections.
func (c *Composite) Seams() []projection.Rotation {
	return projection.Seams(c.active)
}

// ShouldInterpolate implements the [projection.Projection] interface.
func (c *Composite) ShouldInterpolate() bool {
	return projection.ShouldInterpolate(c.active)
}

// ValidatePath implements the [projection.Projection] interface.
func (c *Composite) ValidatePath(coords []projection.Coordinate) bool {
	return projection.ValidatePath(c.active, coords)
}
