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

// Package projection implements forward and inverse map projections from
// geographic coordinates (degrees) to a planar drawing surface.
//
// All projections work on the unit sphere. The raw projection output is
// multiplied by Scale/2 and offset by Translate; the y axis points down, as
// on a screen.
package projection

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrNotInvertible is returned by Inverse for points where the projection
// algebra is singular or which lie outside the projected domain.
var ErrNotInvertible = errors.New("projection: not invertible")

// Default frame parameters of newly constructed projections.
const (
	DefaultScale = 500.0
)

// DefaultTranslate is the translate point of newly constructed projections,
// the centre of a 960×500 viewport.
var DefaultTranslate = vec.Vec2{X: 480, Y: 250}

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Lon float64
	Lat float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g°, %g°)", c.Lon, c.Lat)
}

// IsNaN reports whether either component of c is NaN.
func (c Coordinate) IsNaN() bool {
	return math.IsNaN(c.Lon) || math.IsNaN(c.Lat)
}

// Projection is a map projection.
type Projection interface {
	// Forward maps a geographic coordinate to the output plane. The boolean
	// reports whether normalizing the coordinate's longitude into the
	// projection's local frame crossed the antimeridian.
	Forward(c Coordinate) (vec.Vec2, bool)

	// Inverse maps a point of the output plane back to geographic
	// coordinates. Where this is not possible, the coordinate is NaN and
	// the error wraps ErrNotInvertible.
	Inverse(p vec.Vec2) (Coordinate, error)

	// Origin returns the geographic coordinate at the centre of the
	// projection.
	Origin() Coordinate

	// Scale returns the number of output units per unit of the raw
	// projection, times two.
	Scale() float64

	// Translate returns the output point of the origin.
	Translate() vec.Vec2

	// Rotate returns the rotation from source coordinates into the
	// projection's local frame.
	Rotate() Rotation

	// ShouldInterpolate reports whether straight segments in geographic
	// coordinates may map to curves, so that a renderer needs to subdivide
	// them.
	ShouldInterpolate() bool

	// ValidatePath reports whether the closed path through the given
	// coordinates can be drawn without artifacts.
	ValidatePath(coords []Coordinate) bool
}

// Capabilities provides the default answers to the optional queries of the
// Projection interface. Projections embed it and override what they
// support.
type Capabilities struct{}

// ShouldInterpolate returns true.
func (Capabilities) ShouldInterpolate() bool { return true }

// ValidatePath returns true.
func (Capabilities) ValidatePath([]Coordinate) bool { return true }

// ShouldInterpolate reports whether segments drawn with p need subdividing.
// A nil projection never does.
func ShouldInterpolate(p Projection) bool {
	if p == nil {
		return false
	}
	return p.ShouldInterpolate()
}

// ValidatePath reports whether p can draw the closed path through coords.
// A nil projection accepts every path.
func ValidatePath(p Projection, coords []Coordinate) bool {
	if p == nil {
		return true
	}
	return p.ValidatePath(coords)
}

// Seams returns the rotations into every local frame whose antimeridian is
// a discontinuity of p. Projections which combine several frames report
// them through a Seams method; for all others this is p.Rotate().
func Seams(p Projection) []Rotation {
	if s, ok := p.(interface{ Seams() []Rotation }); ok {
		return s.Seams()
	}
	return []Rotation{p.Rotate()}
}

// Local rotates c into the local frame of p.
func Local(p Projection, c Coordinate) (Coordinate, bool) {
	return p.Rotate().Apply(c)
}
