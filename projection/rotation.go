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

import "math"

// Rotation is a spherical rotation given by three angles in degrees.
//
// The rotation first adds Lambda to the longitude, then tilts the sphere by
// Phi about the axis through (±90°, 0°), and finally rolls it by Gamma about
// the axis through (0°, 0°). A projection centred at (λ0, φ0) uses the
// rotation {-λ0, -φ0, 0}.
type Rotation struct {
	Lambda, Phi, Gamma float64
}

// Apply rotates the source coordinate c into the rotated frame. The boolean
// reports whether the longitude step wrapped across the antimeridian.
func (r Rotation) Apply(c Coordinate) (Coordinate, bool) {
	λ, φ, wrapped := r.forward(c.Lon*radians, c.Lat*radians)
	return Coordinate{Lon: λ * degrees, Lat: φ * degrees}, wrapped
}

// Invert maps a coordinate from the rotated frame back to the source frame.
func (r Rotation) Invert(c Coordinate) Coordinate {
	λ, φ := r.inverse(c.Lon*radians, c.Lat*radians)
	return Coordinate{Lon: λ * degrees, Lat: φ * degrees}
}

// forward is Apply on radians.
func (r Rotation) forward(λ, φ float64) (float64, float64, bool) {
	λ, wrapped := normalizeLongitude(λ + r.Lambda*radians)
	if r.Phi == 0 && r.Gamma == 0 {
		return λ, φ, wrapped
	}

	sinδφ, cosδφ := math.Sincos(r.Phi * radians)
	sinδγ, cosδγ := math.Sincos(r.Gamma * radians)
	cosφ := math.Cos(φ)
	x := math.Cos(λ) * cosφ
	y := math.Sin(λ) * cosφ
	z := math.Sin(φ)
	k := z*cosδφ + x*sinδφ
	return safeAtan2(y*cosδγ-k*sinδγ, x*cosδφ-z*sinδφ),
		safeAsin(k*cosδγ + y*sinδγ),
		wrapped
}

// inverse is Invert on radians.
func (r Rotation) inverse(λ, φ float64) (float64, float64) {
	if r.Phi != 0 || r.Gamma != 0 {
		sinδφ, cosδφ := math.Sincos(r.Phi * radians)
		sinδγ, cosδγ := math.Sincos(r.Gamma * radians)
		cosφ := math.Cos(φ)
		x := math.Cos(λ) * cosφ
		y := math.Sin(λ) * cosφ
		z := math.Sin(φ)
		k := z*cosδγ - y*sinδγ
		λ = safeAtan2(y*cosδγ+z*sinδγ, x*cosδφ+k*sinδφ)
		φ = safeAsin(k*cosδφ - x*sinδφ)
	}
	λ, _ = normalizeLongitude(λ - r.Lambda*radians)
	return λ, φ
}
