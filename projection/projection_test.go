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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func projections(origin Coordinate) map[string]Projection {
	return map[string]Projection{
		"hammer":          NewHammer(2).SetOrigin(origin),
		"modified-hammer": NewHammer(1.5).SetOrigin(origin),
		"lambert":         NewLambertAzimuthal().SetOrigin(origin),
		"cylindrical":     NewCylindrical().SetOrigin(origin),
		"equirectangular": NewEquirectangular().SetOrigin(origin),
		"mercator":        NewMercator().SetOrigin(origin),
		"albers":          NewAlbers(29.5, 45.5).SetOrigin(origin),
		"albers-south":    NewAlbers(-50, -20).SetOrigin(origin),
		"albers-flat":     NewAlbers(-30, 30).SetOrigin(origin),
		"blend": NewBlend(
			NewCylindrical().SetOrigin(origin),
			NewMercator().SetOrigin(origin),
			0.3),
	}
}

func TestRoundTrip(t *testing.T) {
	origins := []Coordinate{{0, 0}, {10, 20}, {-100, -35}, {170, 5}}
	for _, origin := range origins {
		for name, p := range projections(origin) {
			if _, isBlend := p.(*Blend); isBlend {
				// the blended inverse is not the inverse of the blend
				continue
			}
			for dλ := -60.0; dλ <= 60; dλ += 15 {
				for dφ := -40.0; dφ <= 40; dφ += 10 {
					lat := origin.Lat + dφ
					if math.Abs(lat) > 80 {
						continue
					}
					lon, _ := normalizeLongitude((origin.Lon + dλ) * radians)
					c := Coordinate{Lon: lon * degrees, Lat: lat}

					q, _ := p.Forward(c)
					got, err := p.Inverse(q)
					if err != nil {
						t.Errorf("%s at %v: %v: %v", name, origin, c, err)
						continue
					}
					diff(t, c, got, cmpopts.EquateApprox(0, 1e-6))
				}
			}
		}
	}
}

func TestOriginMapsToTranslate(t *testing.T) {
	origin := Coordinate{Lon: 25, Lat: -40}
	for name, p := range projections(origin) {
		q, _ := p.Forward(origin)
		if d := q.Sub(DefaultTranslate).Length(); d > 1e-9 {
			t.Errorf("%s: origin maps to %v, %g away from the translate point", name, q, d)
		}
		diff(t, origin, p.Origin(), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestRotationRoundTrip(t *testing.T) {
	rotations := []Rotation{
		{},
		{Lambda: 30},
		{Lambda: -120, Phi: 45},
		{Lambda: 10, Phi: -20, Gamma: 30},
		{Phi: 90},
	}
	points := []Coordinate{{0, 0}, {45, 45}, {-170, -10}, {179, 60}, {-90, -89}}
	for _, r := range rotations {
		for _, c := range points {
			local, _ := r.Apply(c)
			got := r.Invert(local)
			diff(t, c, got, cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestRotationCentre(t *testing.T) {
	r := Rotation{Lambda: -30, Phi: -50}
	got, _ := r.Apply(Coordinate{Lon: 30, Lat: 50})
	diff(t, Coordinate{}, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestRotationWrap(t *testing.T) {
	r := Rotation{Lambda: -170}
	_, wrapped := r.Apply(Coordinate{Lon: 10})
	if wrapped {
		t.Error("10° - 170° should not wrap")
	}
	_, wrapped = r.Apply(Coordinate{Lon: -20})
	if !wrapped {
		t.Error("-20° - 170° should wrap")
	}
}

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct {
		in      float64
		out     float64
		wrapped bool
	}{
		{0, 0, false},
		{math.Pi, math.Pi, false},
		{-math.Pi, math.Pi, true},
		{1.5 * math.Pi, -0.5 * math.Pi, true},
		{-1.5 * math.Pi, 0.5 * math.Pi, true},
		{4.5 * math.Pi, 0.5 * math.Pi, false},
	}
	for _, tc := range cases {
		out, wrapped := normalizeLongitude(tc.in)
		if math.Abs(out-tc.out) > 1e-12 || wrapped != tc.wrapped {
			t.Errorf("normalizeLongitude(%g) = %g, %t, want %g, %t",
				tc.in, out, wrapped, tc.out, tc.wrapped)
		}
	}

	if out, _ := normalizeLongitude(math.Inf(1)); !math.IsNaN(out) {
		t.Errorf("normalizeLongitude(+Inf) = %g", out)
	}
}

func TestSafeFunctions(t *testing.T) {
	diff(t, math.Pi/2, safeAsin(1+1e-15))
	diff(t, -math.Pi/2, safeAsin(-1-1e-15))
	if v := safeAsin(1.001); !math.IsNaN(v) {
		t.Errorf("safeAsin(1.001) = %g", v)
	}
	diff(t, 0.0, safeAtan2(1e-60, -1e-60))
	diff(t, math.Pi/4, safeAtan2(1, 1))
}

func TestHammerKnownValues(t *testing.T) {
	p := NewLambertAzimuthal()
	got, _ := p.Forward(Coordinate{Lon: 0, Lat: 0})
	diff(t, DefaultTranslate, got)

	got, _ = p.Forward(Coordinate{Lon: 0, Lat: 90})
	want := vec.Vec2{X: 480, Y: 250 - 250*math.Sqrt2}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	h := NewHammer(2)
	got, _ = h.Forward(Coordinate{Lon: 180, Lat: 0})
	want = vec.Vec2{X: 480 + 250*2*math.Sqrt2, Y: 250}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestHammerAntipode(t *testing.T) {
	p := NewLambertAzimuthal()
	q, _ := p.Forward(Coordinate{Lon: 180, Lat: 0})
	if math.IsNaN(q.X) || math.IsNaN(q.Y) {
		t.Errorf("antipode maps to %v", q)
	}
}

func TestHammerNotInvertible(t *testing.T) {
	p := NewLambertAzimuthal()

	// the rim of the hemisphere, where 2z²-1 vanishes
	q, _ := p.Forward(Coordinate{Lon: 90, Lat: 0})
	c, err := p.Inverse(q)
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Inverse(%v): err = %v", q, err)
	}
	if !c.IsNaN() {
		t.Errorf("Inverse(%v) = %v, want NaN", q, c)
	}

	// outside the disk
	_, err = p.Inverse(vec.Vec2{X: 480 + 250*3, Y: 250})
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("outside disk: err = %v", err)
	}
}

func TestHammerValidatePath(t *testing.T) {
	p := NewLambertAzimuthal()
	rim := []Coordinate{{178, 2}, {-178, 2}, {-178, -2}, {178, -2}}
	if p.ValidatePath(rim) {
		t.Error("polygon around the antipode accepted")
	}
	mixed := append([]Coordinate{{0, 0}}, rim...)
	if !p.ValidatePath(mixed) {
		t.Error("polygon reaching the centre rejected")
	}
	if !NewHammer(2).ValidatePath(rim) {
		t.Error("Hammer with B=2 rejected a path")
	}

	// after re-centring, the band moves with the antipode
	p.SetOrigin(Coordinate{Lon: 180})
	if !p.ValidatePath(rim) {
		t.Error("polygon at the centre rejected")
	}
}

func TestCapabilities(t *testing.T) {
	if ShouldInterpolate(nil) {
		t.Error("nil projection should not interpolate")
	}
	if !ValidatePath(nil, nil) {
		t.Error("nil projection should accept all paths")
	}
	if ShouldInterpolate(NewEquirectangular()) {
		t.Error("equirectangular should not interpolate")
	}
	if !ValidatePath(NewEquirectangular(), []Coordinate{{0, 0}, {90, 0}, {90, 45}}) {
		t.Error("equirectangular should accept all paths")
	}
	if !ShouldInterpolate(NewEquirectangular().SetRotate(Rotation{Phi: 10})) {
		t.Error("tilted equirectangular should interpolate")
	}
	if !ShouldInterpolate(NewCylindrical()) || !ShouldInterpolate(NewMercator()) {
		t.Error("curved projections should interpolate")
	}
	b := NewBlend(NewEquirectangular(), NewMercator(), 0.5)
	if !b.ShouldInterpolate() {
		t.Error("blend with a curved side should interpolate")
	}
}

func TestMercatorPole(t *testing.T) {
	p := NewMercator()
	q1, _ := p.Forward(Coordinate{Lat: 90})
	q2, _ := p.Forward(Coordinate{Lat: MercatorLatitudeLimit})
	if math.IsInf(q1.Y, 0) || math.IsNaN(q1.Y) {
		t.Fatalf("pole maps to %v", q1)
	}
	diff(t, q2, q1, cmpopts.EquateApprox(0, 1e-9))
}

func TestAlbersCylindricalLimit(t *testing.T) {
	a := NewAlbers(-20, 20)
	c := NewCylindrical()
	cosφ0 := math.Cos(-20 * radians)
	for _, pt := range []Coordinate{{30, 10}, {-60, -45}} {
		qa, _ := a.Forward(pt)
		qc, _ := c.Forward(pt)
		want := vec.Vec2{
			X: 480 + (qc.X-480)*cosφ0,
			Y: 250 + (qc.Y-250)/cosφ0,
		}
		diff(t, want, qa, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestAlbersParallelsPreserveScale(t *testing.T) {
	// on a standard parallel, east-west distances are true to scale
	p := NewAlbers(30, 50)
	for _, φ := range []float64{30, 50} {
		q1, _ := p.Forward(Coordinate{Lon: 0, Lat: φ})
		q2, _ := p.Forward(Coordinate{Lon: 0.001, Lat: φ})
		got := q2.Sub(q1).Length()
		want := 250 * math.Cos(φ*radians) * 0.001 * radians
		diff(t, want, got, cmpopts.EquateApprox(1e-6, 0))
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := NewCylindrical()
	b := NewMercator()
	c := Coordinate{Lon: 40, Lat: 50}
	qa, _ := a.Forward(c)
	qb, _ := b.Forward(c)

	for _, α := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got, _ := NewBlend(a, b, α).Forward(c)
		want := qa.Mul(1 - α).Add(qb.Mul(α))
		diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestBlendSeams(t *testing.T) {
	a := NewLambertAzimuthal().SetOrigin(Coordinate{Lat: 80})
	b := NewMercator()
	diff(t, []Rotation{b.Rotate()}, Seams(b))

	for _, test := range []struct {
		α    float64
		want []Rotation
	}{
		{0, []Rotation{a.Rotate()}},
		{0.3, []Rotation{a.Rotate(), b.Rotate()}},
		{0.7, []Rotation{a.Rotate(), b.Rotate()}},
		{1, []Rotation{b.Rotate()}},
	} {
		diff(t, test.want, Seams(NewBlend(a, b, test.α)))
	}

	// sides sharing a frame have a single seam
	if got := Seams(NewBlend(NewCylindrical(), NewMercator(), 0.5)); len(got) != 1 {
		t.Errorf("got %d seams, want 1", len(got))
	}
}

func TestBlendWrapFlag(t *testing.T) {
	// only the Mercator side wraps at (179.5°, 85°)
	a := NewLambertAzimuthal().SetOrigin(Coordinate{Lon: 179.5, Lat: 80})
	b := NewMercator()
	c := Coordinate{Lon: 180.5, Lat: 85}
	if _, wa := a.Forward(c); wa {
		t.Fatal("tilted frame wraps")
	}
	if _, w := NewBlend(a, b, 0.1).Forward(c); !w {
		t.Error("blend with a wrapping side not flagged")
	}
	if _, w := NewBlend(a, b, 0).Forward(c); w {
		t.Error("side without weight reported a wrap")
	}
}
