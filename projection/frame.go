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

	"seehuhn.de/go/geom/vec"
)

// raw is the projection of the unit sphere in the local frame: radians in,
// unit-sphere plane coordinates (y down) out.
type raw interface {
	project(λ, φ float64) (x, y float64)
	invert(x, y float64) (λ, φ float64, err error)
}

// frame holds the state shared by every concrete projection and applies it
// around a raw projection.
type frame struct {
	rot       Rotation
	center    float64 // latitude (degrees) placed at the translate point
	scale     float64
	translate vec.Vec2
}

func newFrame() frame {
	return frame{scale: DefaultScale, translate: DefaultTranslate}
}

// forward projects a source coordinate.
func (f *frame) forward(r raw, c Coordinate) (vec.Vec2, bool) {
	λ, φ, wrapped := f.rot.forward(c.Lon*radians, c.Lat*radians)
	x, y := r.project(λ, φ)
	cx, cy := f.offset(r)
	k := f.scale / 2
	return vec.Vec2{
		X: f.translate.X + k*(x-cx),
		Y: f.translate.Y + k*(y-cy),
	}, wrapped
}

// inverse undoes forward.
func (f *frame) inverse(r raw, p vec.Vec2) (Coordinate, error) {
	k := f.scale / 2
	cx, cy := f.offset(r)
	x := (p.X-f.translate.X)/k + cx
	y := (p.Y-f.translate.Y)/k + cy
	λ, φ, err := r.invert(x, y)
	if err != nil || math.IsNaN(λ) || math.IsNaN(φ) {
		if err == nil {
			err = ErrNotInvertible
		}
		return Coordinate{Lon: math.NaN(), Lat: math.NaN()},
			fmt.Errorf("inverse of (%g, %g): %w", p.X, p.Y, err)
	}
	λ, φ = f.rot.inverse(λ, φ)
	return Coordinate{Lon: λ * degrees, Lat: φ * degrees}, nil
}

// offset returns the raw position of the centre latitude on the local
// central meridian.
func (f *frame) offset(r raw) (float64, float64) {
	if f.center == 0 {
		return r.project(0, 0)
	}
	return r.project(0, f.center*radians)
}

// Origin implements the Projection interface.
func (f *frame) Origin() Coordinate {
	return Coordinate{Lon: -f.rot.Lambda, Lat: f.center - f.rot.Phi}
}

// Scale implements the Projection interface.
func (f *frame) Scale() float64 { return f.scale }

// Translate implements the Projection interface.
func (f *frame) Translate() vec.Vec2 { return f.translate }

// Rotate implements the Projection interface.
func (f *frame) Rotate() Rotation { return f.rot }

// setOriginAzimuthal centres the projection on c by a full rotation.
func (f *frame) setOriginAzimuthal(c Coordinate) {
	f.rot = Rotation{Lambda: -c.Lon, Phi: -c.Lat, Gamma: f.rot.Gamma}
	f.center = 0
}

// setOriginCylindrical rotates only in longitude and moves the origin
// latitude to the translate point.
func (f *frame) setOriginCylindrical(c Coordinate) {
	f.rot = Rotation{Lambda: -c.Lon, Gamma: f.rot.Gamma}
	f.center = c.Lat
}
