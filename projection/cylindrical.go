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

package projection

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Cylindrical is the Lambert cylindrical equal-area projection.
//
// The projection is centred by rotating the sphere in longitude only; the
// latitude of the origin is moved to the translate point.
type Cylindrical struct {
	frame
	Capabilities
}

var _ Projection = (*Cylindrical)(nil)

// NewCylindrical returns a Lambert cylindrical equal-area projection centred
// at (0°, 0°).
func NewCylindrical() *Cylindrical {
	return &Cylindrical{frame: newFrame()}
}

// SetOrigin centres the projection on c.
func (p *Cylindrical) SetOrigin(c Coordinate) *Cylindrical {
	p.setOriginCylindrical(c)
	return p
}

// SetScale sets the scale factor.
func (p *Cylindrical) SetScale(s float64) *Cylindrical {
	p.scale = s
	return p
}

// SetTranslate sets the output position of the origin.
func (p *Cylindrical) SetTranslate(t vec.Vec2) *Cylindrical {
	p.translate = t
	return p
}

// SetRotate sets the rotation into the local frame.
func (p *Cylindrical) SetRotate(r Rotation) *Cylindrical {
	p.rot = r
	return p
}

// Forward implements the [Projection] interface.
func (p *Cylindrical) Forward(c Coordinate) (vec.Vec2, bool) {
	return p.forward(p, c)
}

// Inverse implements the [Projection] interface.
func (p *Cylindrical) Inverse(q vec.Vec2) (Coordinate, error) {
	return p.inverse(p, q)
}

func (p *Cylindrical) project(λ, φ float64) (float64, float64) {
	return λ, -math.Sin(φ)
}

func (p *Cylindrical) invert(x, y float64) (float64, float64, error) {
	φ := safeAsin(-y)
	if math.IsNaN(φ) {
		return 0, 0, ErrNotInvertible
	}
	return x, φ, nil
}

// Equirectangular is the plate carrée (cylindrical equidistant) projection.
// Lines of constant slope in longitude/latitude map to straight lines, so
// no subdivision is needed.
type Equirectangular struct {
	frame
	Capabilities
}

var _ Projection = (*Equirectangular)(nil)

// NewEquirectangular returns an equirectangular projection centred at
// (0°, 0°).
func NewEquirectangular() *Equirectangular {
	return &Equirectangular{frame: newFrame()}
}

// SetOrigin centres the projection on c.
func (p *Equirectangular) SetOrigin(c Coordinate) *Equirectangular {
	p.setOriginCylindrical(c)
	return p
}

// SetScale sets the scale factor.
func (p *Equirectangular) SetScale(s float64) *Equirectangular {
	p.scale = s
	return p
}

// SetTranslate sets the output position of the origin.
func (p *Equirectangular) SetTranslate(t vec.Vec2) *Equirectangular {
	p.translate = t
	return p
}

// SetRotate sets the rotation into the local frame.
func (p *Equirectangular) SetRotate(r Rotation) *Equirectangular {
	p.rot = r
	return p
}

// Forward implements the [Projection] interface.
func (p *Equirectangular) Forward(c Coordinate) (vec.Vec2, bool) {
	return p.forward(p, c)
}

// Inverse implements the [Projection] interface.
func (p *Equirectangular) Inverse(q vec.Vec2) (Coordinate, error) {
	return p.inverse(p, q)
}

// ShouldInterpolate implements the [Projection] interface.
// It returns true only if the sphere is tilted, since then meridians and
// parallels of the source no longer map to straight lines.
func (p *Equirectangular) ShouldInterpolate() bool {
	return p.rot.Phi != 0 || p.rot.Gamma != 0
}

func (p *Equirectangular) project(λ, φ float64) (float64, float64) {
	return λ, -φ
}

func (p *Equirectangular) invert(x, y float64) (float64, float64, error) {
	if math.Abs(y) > math.Pi/2 {
		return 0, 0, ErrNotInvertible
	}
	return x, -y, nil
}
