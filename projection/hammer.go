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

// Hammer is the generalized Hammer projection with shape constant B.
//
// B = 2 gives the Hammer (Hammer-Aitoff) equal-area projection of the whole
// sphere, B = 1 gives the Lambert azimuthal equal-area projection. Values in
// between interpolate smoothly between the two. The projection is centred
// by a full rotation of the sphere.
type Hammer struct {
	frame
	b float64
}

var _ Projection = (*Hammer)(nil)

// NewHammer returns a generalized Hammer projection with shape constant b,
// centred at (0°, 0°).
func NewHammer(b float64) *Hammer {
	return &Hammer{frame: newFrame(), b: b}
}

// NewLambertAzimuthal returns a Lambert azimuthal equal-area projection.
func NewLambertAzimuthal() *Hammer {
	return NewHammer(1)
}

// B returns the shape constant.
func (h *Hammer) B() float64 {
	return h.b
}

// SetOrigin centres the projection on c.
func (h *Hammer) SetOrigin(c Coordinate) *Hammer {
	h.setOriginAzimuthal(c)
	return h
}

// SetScale sets the scale factor.
func (h *Hammer) SetScale(s float64) *Hammer {
	h.scale = s
	return h
}

// SetTranslate sets the output position of the origin.
func (h *Hammer) SetTranslate(t vec.Vec2) *Hammer {
	h.translate = t
	return h
}

// SetRotate sets the rotation into the local frame.
func (h *Hammer) SetRotate(r Rotation) *Hammer {
	h.rot = r
	return h
}

// Forward implements the [Projection] interface.
func (h *Hammer) Forward(c Coordinate) (vec.Vec2, bool) {
	return h.forward(h, c)
}

// Inverse implements the [Projection] interface.
func (h *Hammer) Inverse(p vec.Vec2) (Coordinate, error) {
	return h.inverse(h, p)
}

// ShouldInterpolate implements the [Projection] interface.
func (h *Hammer) ShouldInterpolate() bool {
	return true
}

// ValidatePath implements the [Projection] interface.
//
// Near B = 1 the antipode of the centre maps to the whole outer circle, and
// polygons hugging it are smeared around the rim. Such a polygon is rejected
// if every one of its vertices lies in a band around the antipode.
// Otherwise, and for all other shape constants, the path is accepted.
func (h *Hammer) ValidatePath(coords []Coordinate) bool {
	if math.Abs(h.b-1) >= lambertTolerance || len(coords) == 0 {
		return true
	}
	for _, c := range coords {
		λ, φ, _ := h.rot.forward(c.Lon*radians, c.Lat*radians)
		if math.Abs(math.Pi-math.Abs(λ)) >= rimLongitude || math.Abs(φ) >= rimLatitude {
			return true
		}
	}
	return false
}

func (h *Hammer) project(λ, φ float64) (float64, float64) {
	sinλ, cosλ := math.Sincos(λ / h.b)
	sinφ, cosφ := math.Sincos(φ)
	ν := math.Sqrt(1 + cosφ*cosλ)
	if !(ν > 0) {
		ν = SingularityEpsilon
	}
	x := h.b * math.Sqrt2 * cosφ * sinλ / ν
	y := -math.Sqrt2 * sinφ / ν
	return x, y
}

func (h *Hammer) invert(x, y float64) (float64, float64, error) {
	wx := x / h.b
	y = -y
	zz := 1 - 0.25*(wx*wx+y*y)
	if zz < 0 {
		return 0, 0, ErrNotInvertible
	}
	z := math.Sqrt(zz)
	d := 2*z*z - 1
	if math.Abs(d) < InverseTolerance {
		return 0, 0, ErrNotInvertible
	}
	λ := h.b * safeAtan2(wx*z, d)
	φ := safeAsin(clamp(z*y, -1, 1))
	return λ, φ, nil
}
