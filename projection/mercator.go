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

// Mercator is the spherical Mercator projection.
//
// Latitudes are clamped to ±MercatorLatitudeLimit, so that the poles map to
// finite (if distant) points.
type Mercator struct {
	frame
	Capabilities
}

var _ Projection = (*Mercator)(nil)

// NewMercator returns a Mercator projection centred at (0°, 0°).
func NewMercator() *Mercator {
	return &Mercator{frame: newFrame()}
}

// SetOrigin centres the projection on c.
func (p *Mercator) SetOrigin(c Coordinate) *Mercator {
	p.setOriginCylindrical(Coordinate{
		Lon: c.Lon,
		Lat: clamp(c.Lat, -MercatorLatitudeLimit, MercatorLatitudeLimit),
	})
	return p
}

// SetScale sets the scale factor.
func (p *Mercator) SetScale(s float64) *Mercator {
	p.scale = s
	return p
}

// SetTranslate sets the output position of the origin.
func (p *Mercator) SetTranslate(t vec.Vec2) *Mercator {
	p.translate = t
	return p
}

// SetRotate sets the rotation into the local frame.
func (p *Mercator) SetRotate(r Rotation) *Mercator {
	p.rot = r
	return p
}

// Forward implements the [Projection] interface.
func (p *Mercator) Forward(c Coordinate) (vec.Vec2, bool) {
	return p.forward(p, c)
}

// Inverse implements the [Projection] interface.
func (p *Mercator) Inverse(q vec.Vec2) (Coordinate, error) {
	return p.inverse(p, q)
}

const mercatorLimit = MercatorLatitudeLimit * radians

func (p *Mercator) project(λ, φ float64) (float64, float64) {
	φ = clamp(φ, -mercatorLimit, mercatorLimit)
	return λ, -math.Log(math.Tan(math.Pi/4 + φ/2))
}

func (p *Mercator) invert(x, y float64) (float64, float64, error) {
	return x, 2*math.Atan(math.Exp(-y)) - math.Pi/2, nil
}
