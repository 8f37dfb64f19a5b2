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

package composite

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mapproj/projection"
)

// ErrUnhandledRegime is returned if no regime covers the requested scale and
// origin, or if the thresholds would leave such gaps.
var ErrUnhandledRegime = errors.New("composite: unhandled regime")

// Regime identifies the projection configuration chosen by a [Composite].
type Regime int

// These are the regimes, in order of increasing scale.
const (
	RegimeNone Regime = iota
	RegimeHammer
	RegimeModifiedHammer
	RegimeLambertAzimuthal
	RegimeLambertCylindrical
	RegimeAdjustedAlbers
	RegimeAlbers
	RegimeMercatorInterpolation
	RegimeMercator
)

func (r Regime) String() string {
	switch r {
	case RegimeNone:
		return "none"
	case RegimeHammer:
		return "Hammer"
	case RegimeModifiedHammer:
		return "Modified Hammer"
	case RegimeLambertAzimuthal:
		return "Lambert azimuthal"
	case RegimeLambertCylindrical:
		return "Lambert cylindrical"
	case RegimeAdjustedAlbers:
		return "Albers conic with adjusted standard parallels"
	case RegimeAlbers:
		return "Albers conic"
	case RegimeMercatorInterpolation:
		return "Interpolation with Mercator"
	case RegimeMercator:
		return "Mercator"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// view is the input of the regime selection.
type view struct {
	viewport  rect.Rect
	origin    projection.Coordinate
	scale     float64 // pixels
	translate vec.Vec2
	gamma     float64
	th        Thresholds
}

// halfSize is half the shorter side of the viewport.
func (v *view) halfSize() float64 {
	return min(v.viewport.URx-v.viewport.LLx, v.viewport.URy-v.viewport.LLy) / 2
}

// relative returns the scale relative to the viewport size.
func (v *view) relative() float64 {
	return v.scale / v.halfSize()
}

// selectProjection constructs the projection for the view. The previous
// projection, if any, is used to find the latitude range visible in the
// viewport. If dontInterpolate is set, the Mercator cross-fade band is
// covered by the conic regimes instead.
func selectProjection(v *view, prev projection.Projection, dontInterpolate bool) (projection.Projection, Regime, error) {
	s := v.relative()
	lat := math.Abs(v.origin.Lat)
	th := &v.th
	if math.IsNaN(s) || math.IsNaN(lat) || math.IsNaN(v.origin.Lon) || s <= 0 {
		return nil, RegimeNone, fmt.Errorf("%w: scale %g at %v",
			ErrUnhandledRegime, s, v.origin)
	}

	switch {
	case s <= th.Hammer:
		return v.hammer(2), RegimeHammer, nil

	case s <= th.ModifiedHammer:
		b := 2 - (s-th.Hammer)/(th.ModifiedHammer-th.Hammer)
		return v.hammer(b), RegimeModifiedHammer, nil

	case s <= th.Azimuthal:
		return v.hammer(1), RegimeLambertAzimuthal, nil

	case s <= th.Equatorial && lat < th.EquatorLatitude:
		lat2 := (s - th.Azimuthal) / (th.Equatorial - th.Azimuthal) * th.CylindricalLatitude
		if lat < lat2 {
			return v.cylindrical(), RegimeLambertCylindrical, nil
		}
		α := (th.EquatorLatitude - lat) / (th.EquatorLatitude - lat2)
		return v.albers(prev, α, 0), RegimeAdjustedAlbers, nil

	case s <= th.Conic || (s < th.Mercator && dontInterpolate):
		switch {
		case lat <= th.CylindricalLatitude:
			return v.cylindrical(), RegimeLambertCylindrical, nil
		case lat >= th.PolarLatitude:
			return v.hammer(1), RegimeLambertAzimuthal, nil
		case lat < th.EquatorLatitude:
			α := (th.EquatorLatitude - lat) / (th.EquatorLatitude - th.CylindricalLatitude)
			return v.albers(prev, α, 0), RegimeAdjustedAlbers, nil
		case lat > th.HighLatitude:
			α := (lat - th.HighLatitude) / (th.PolarLatitude - th.HighLatitude)
			dest := 90.0
			if v.origin.Lat < 0 {
				dest = -90
			}
			return v.albers(prev, α, dest), RegimeAdjustedAlbers, nil
		default:
			return v.albers(prev, 0, 0), RegimeAlbers, nil
		}

	case s < th.Mercator:
		inner, _, err := selectProjection(v, prev, true)
		if err != nil {
			return nil, RegimeNone, err
		}
		α := (s - th.Conic) / (th.Mercator - th.Conic)
		return projection.NewBlend(inner, v.mercator(), α), RegimeMercatorInterpolation, nil

	case s >= th.Mercator:
		return v.mercator(), RegimeMercator, nil
	}

	return nil, RegimeNone, fmt.Errorf("%w: relative scale %g, latitude %g",
		ErrUnhandledRegime, s, v.origin.Lat)
}

func (v *view) hammer(b float64) projection.Projection {
	return projection.NewHammer(b).
		SetScale(v.scale).
		SetTranslate(v.translate).
		SetRotate(projection.Rotation{
			Lambda: -v.origin.Lon,
			Phi:    -v.origin.Lat,
			Gamma:  v.gamma,
		})
}

func (v *view) cylindrical() projection.Projection {
	return projection.NewCylindrical().
		SetScale(v.scale).
		SetTranslate(v.translate).
		SetRotate(projection.Rotation{Gamma: v.gamma}).
		SetOrigin(v.origin)
}

func (v *view) mercator() projection.Projection {
	return projection.NewMercator().
		SetScale(v.scale).
		SetTranslate(v.translate).
		SetRotate(projection.Rotation{Gamma: v.gamma}).
		SetOrigin(v.origin)
}

// albers returns a conic projection whose standard parallels lie inside the
// visible latitude range, moved towards dest by the fraction α.
func (v *view) albers(prev projection.Projection, α, dest float64) projection.Projection {
	top, bottom := v.visibleLatitudes(prev)
	span := top - bottom
	topParallel := top - v.th.ParallelInset*span
	bottomParallel := bottom + v.th.ParallelInset*span
	if α != 0 {
		topParallel = (1-α)*topParallel + α*dest
		bottomParallel = (1-α)*bottomParallel + α*dest
	}

	return projection.NewAlbers(bottomParallel, topParallel).
		SetScale(v.scale).
		SetTranslate(v.translate).
		SetRotate(projection.Rotation{Gamma: v.gamma}).
		SetOrigin(v.origin)
}

// visibleLatitudes returns the latitudes at the top centre and the bottom
// centre of the viewport. These are found using the inverse of prev. If
// this is not possible, the range is estimated from the viewport height.
func (v *view) visibleLatitudes(prev projection.Projection) (top, bottom float64) {
	cx := (v.viewport.LLx + v.viewport.URx) / 2
	if prev != nil {
		t, errT := prev.Inverse(vec.Vec2{X: cx, Y: v.viewport.LLy})
		b, errB := prev.Inverse(vec.Vec2{X: cx, Y: v.viewport.URy})
		if errT == nil && errB == nil && !math.IsNaN(t.Lat) && !math.IsNaN(b.Lat) {
			return t.Lat, b.Lat
		}
	}

	// Near the origin, one radian corresponds to scale/2 pixels.
	half := (v.viewport.URy - v.viewport.LLy) / v.scale * 180 / math.Pi
	top = min(90, v.origin.Lat+half)
	bottom = max(-90, v.origin.Lat-half)
	return top, bottom
}
