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

// Albers is the Albers conic equal-area projection with two standard
// parallels.
//
// If the standard parallels are (almost) symmetric about the equator, the
// cone degenerates into a cylinder and the projection becomes the
// cylindrical equal-area projection whose standard parallel is the first
// one given.
type Albers struct {
	frame
	Capabilities

	φ1, φ2 float64 // standard parallels in degrees

	n, c, r0 float64
	cosφ0    float64 // used in the cylindrical limit
}

var _ Projection = (*Albers)(nil)

// NewAlbers returns an Albers projection with standard parallels φ1 and φ2
// (in degrees), centred at (0°, 0°).
func NewAlbers(φ1, φ2 float64) *Albers {
	p := &Albers{frame: newFrame()}
	return p.SetParallels(φ1, φ2)
}

// Parallels returns the two standard parallels in degrees.
func (p *Albers) Parallels() (float64, float64) {
	return p.φ1, p.φ2
}

// SetParallels sets the two standard parallels, in degrees.
func (p *Albers) SetParallels(φ1, φ2 float64) *Albers {
	p.φ1, p.φ2 = φ1, φ2

	sy0, cy0 := math.Sincos(φ1 * radians)
	p.n = (sy0 + math.Sin(φ2*radians)) / 2
	p.cosφ0 = cy0
	if math.Abs(p.n) < conicEpsilon {
		p.n = 0
		return p
	}
	p.c = 1 + sy0*(2*p.n-sy0)
	p.r0 = math.Sqrt(p.c) / p.n
	return p
}

// SetOrigin centres the projection on c.
func (p *Albers) SetOrigin(c Coordinate) *Albers {
	p.setOriginCylindrical(c)
	return p
}

// SetScale sets the scale factor.
func (p *Albers) SetScale(s float64) *Albers {
	p.scale = s
	return p
}

// SetTranslate sets the output position of the origin.
func (p *Albers) SetTranslate(t vec.Vec2) *Albers {
	p.translate = t
	return p
}

// SetRotate sets the rotation into the local frame.
func (p *Albers) SetRotate(r Rotation) *Albers {
	p.rot = r
	return p
}

// Forward implements the [Projection] interface.
func (p *Albers) Forward(c Coordinate) (vec.Vec2, bool) {
	return p.forward(p, c)
}

// Inverse implements the [Projection] interface.
func (p *Albers) Inverse(q vec.Vec2) (Coordinate, error) {
	return p.inverse(p, q)
}

func (p *Albers) project(λ, φ float64) (float64, float64) {
	if p.n == 0 {
		return λ * p.cosφ0, -math.Sin(φ) / p.cosφ0
	}
	r := math.Sqrt(max(0, p.c-2*p.n*math.Sin(φ))) / p.n
	sinnλ, cosnλ := math.Sincos(p.n * λ)
	return r * sinnλ, r*cosnλ - p.r0
}

func (p *Albers) invert(x, y float64) (float64, float64, error) {
	if p.n == 0 {
		φ := safeAsin(-y * p.cosφ0)
		if math.IsNaN(φ) {
			return 0, 0, ErrNotInvertible
		}
		return x / p.cosφ0, φ, nil
	}

	r0y := p.r0 + y
	l := math.Atan2(x, math.Abs(r0y)) * sign(r0y)
	if r0y*p.n < 0 {
		l -= math.Pi * sign(x) * sign(r0y)
	}
	φ := safeAsin((p.c - (x*x+r0y*r0y)*p.n*p.n) / (2 * p.n))
	if math.IsNaN(φ) {
		return 0, 0, ErrNotInvertible
	}
	return l / p.n, φ, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
