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

// Numerical policy for all projections in this package.
//
// None of these thresholds signal domain errors. They exist so that
// floating-point overshoot near singular loci yields a slightly wrong point
// instead of a NaN in the output stream.
const (
	// SingularityEpsilon replaces a denominator that evaluates to zero in a
	// forward transform (the Hammer ν at the antipode of a Lambert
	// azimuthal projection).
	SingularityEpsilon = 1e-12

	// InverseTolerance is the smallest |2z²-1| for which the Hammer inverse
	// is considered well defined.
	InverseTolerance = 1e-10

	// asinTolerance is how far beyond ±1 the argument of safeAsin may be
	// before the result is NaN instead of ±π/2.
	asinTolerance = 1 + 1e-14

	// atan2Tolerance is the magnitude below which both atan2 arguments are
	// treated as zero.
	atan2Tolerance = 1e-50

	// conicEpsilon is the smallest cone constant n for which the Albers
	// formulas are used; below it the cylindrical limit is used instead.
	conicEpsilon = 1e-6

	// lambertTolerance is how close to 1 the Hammer shape constant must be
	// for the rim heuristic of ValidatePath to apply.
	lambertTolerance = 1e-3

	// MercatorLatitudeLimit is the largest absolute latitude, in degrees,
	// that the Mercator projection evaluates. Larger latitudes are clamped.
	MercatorLatitudeLimit = 89.5
)

// Rim band of the Lambert azimuthal projection, measured in the local frame
// from the antipode of the projection centre.
const (
	rimLongitude = math.Pi / 4
	rimLatitude  = math.Pi / 12
)

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// safeAsin returns asin(v), mapping arguments within asinTolerance of ±1 to
// ±π/2. Arguments further out give NaN.
func safeAsin(v float64) float64 {
	av := math.Abs(v)
	if av >= 1 {
		if av > asinTolerance {
			return math.NaN()
		}
		if v < 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}
	return math.Asin(v)
}

// safeAtan2 returns atan2(n, d), or 0 if both arguments are (almost) zero.
func safeAtan2(n, d float64) float64 {
	if math.Abs(n) < atan2Tolerance && math.Abs(d) < atan2Tolerance {
		return 0
	}
	return math.Atan2(n, d)
}

// normalizeLongitude maps λ (radians) into (-π, π]. The boolean reports
// whether an odd number of full turns had to be removed.
func normalizeLongitude(λ float64) (float64, bool) {
	if λ > -math.Pi && λ <= math.Pi {
		return λ, false
	}
	if math.IsNaN(λ) || math.IsInf(λ, 0) {
		return math.NaN(), false
	}
	k := math.Ceil((λ - math.Pi) / (2 * math.Pi))
	return λ - 2*math.Pi*k, math.Mod(k, 2) != 0
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
