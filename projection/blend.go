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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Blend is the linear cross-fade (1-α)·A + α·B of two projections.
//
// Both forward and inverse outputs are blended. The two projections are
// expected to share origin, scale and translate; the frame queries report
// the values of A.
type Blend struct {
	A, B  Projection
	Alpha float64
}

var _ Projection = (*Blend)(nil)

// NewBlend returns the blend of a and b with weight α for b. The weight is
// clamped to [0, 1].
func NewBlend(a, b Projection, α float64) *Blend {
	return &Blend{A: a, B: b, Alpha: clamp(α, 0, 1)}
}

// Forward implements the [Projection] interface. The point is reported
// as wrapped if it wrapped for either side with non-zero weight.
func (p *Blend) Forward(c Coordinate) (vec.Vec2, bool) {
	pa, wa := p.A.Forward(c)
	pb, wb := p.B.Forward(c)
	q := pa.Mul(1 - p.Alpha).Add(pb.Mul(p.Alpha))
	return q, (wa && p.Alpha < 1) || (wb && p.Alpha > 0)
}

// Inverse implements the [Projection] interface.
//
// The result is the weighted mean of the two inverses. Longitudes are
// averaged along the shorter arc.
func (p *Blend) Inverse(q vec.Vec2) (Coordinate, error) {
	ca, err := p.A.Inverse(q)
	if err != nil {
		return ca, err
	}
	cb, err := p.B.Inverse(q)
	if err != nil {
		return cb, err
	}
	if d := cb.Lon - ca.Lon; d > 180 {
		cb.Lon -= 360
	} else if d < -180 {
		cb.Lon += 360
	}

	α := p.Alpha
	c := Coordinate{
		Lon: (1-α)*ca.Lon + α*cb.Lon,
		Lat: (1-α)*ca.Lat + α*cb.Lat,
	}
	λ, _ := normalizeLongitude(c.Lon * radians)
	c.Lon = λ * degrees
	if c.IsNaN() {
		return Coordinate{Lon: math.NaN(), Lat: math.NaN()},
			fmt.Errorf("blended inverse of (%g, %g): %w", q.X, q.Y, ErrNotInvertible)
	}
	return c, nil
}

// Origin implements the [Projection] interface.
func (p *Blend) Origin() Coordinate { return p.A.Origin() }

// Scale implements the [Projection] interface.
func (p *Blend) Scale() float64 { return p.A.Scale() }

// Translate implements the [Projection] interface.
func (p *Blend) Translate() vec.Vec2 { return p.A.Translate() }

// Rotate implements the [Projection] interface.
// It returns the rotation of the projection with the larger weight.
func (p *Blend) Rotate() Rotation {
	if p.Alpha > 0.5 {
		return p.B.Rotate()
	}
	return p.A.Rotate()
}

// Seams returns the seams of both sides which carry weight. The blend
// jumps wherever either side does.
func (p *Blend) Seams() []Rotation {
	var sides []Rotation
	if p.Alpha < 1 {
		sides = append(sides, Seams(p.A)...)
	}
	if p.Alpha > 0 {
		sides = append(sides, Seams(p.B)...)
	}
	var res []Rotation
	for _, r := range sides {
		if !slices.Contains(res, r) {
			res = append(res, r)
		}
	}
	return res
}

// ShouldInterpolate implements the [Projection] interface.
func (p *Blend) ShouldInterpolate() bool {
	return ShouldInterpolate(p.A) || ShouldInterpolate(p.B)
}

// ValidatePath implements the [Projection] interface.
func (p *Blend) ValidatePath(coords []Coordinate) bool {
	return ValidatePath(p.A, coords) && ValidatePath(p.B, coords)
}
