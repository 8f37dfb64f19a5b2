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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Thresholds are the break points of the regime selection.
//
// Scales are relative scales (pixel scale divided by half the shorter side
// of the viewport), latitudes are absolute latitudes of the origin in
// degrees. The default values are empirical.
type Thresholds struct {
	// Relative scales at which the regimes end.
	Hammer         float64 `toml:"hammer"`
	ModifiedHammer float64 `toml:"modified_hammer"`
	Azimuthal      float64 `toml:"azimuthal"`
	Equatorial     float64 `toml:"equatorial"`
	Conic          float64 `toml:"conic"`
	Mercator       float64 `toml:"mercator"`

	// Latitude bands of the conic regimes.
	CylindricalLatitude float64 `toml:"cylindrical_latitude"`
	EquatorLatitude     float64 `toml:"equator_latitude"`
	HighLatitude        float64 `toml:"high_latitude"`
	PolarLatitude       float64 `toml:"polar_latitude"`

	// ParallelInset is the fraction of the visible latitude range by which
	// the standard parallels of the conic projection lie inside the
	// viewport.
	ParallelInset float64 `toml:"parallel_inset"`
}

// DefaultThresholds returns the thresholds described by Jenny (2012).
func DefaultThresholds() Thresholds {
	return Thresholds{
		Hammer:         1.5,
		ModifiedHammer: 2,
		Azimuthal:      4,
		Equatorial:     6,
		Conic:          13,
		Mercator:       15,

		CylindricalLatitude: 15,
		EquatorLatitude:     22,
		HighLatitude:        60,
		PolarLatitude:       75,

		ParallelInset: 0.15,
	}
}

// Validate checks that the thresholds are ordered so that every relative
// scale and latitude falls into exactly one regime. The returned error
// wraps ErrUnhandledRegime.
func (th *Thresholds) Validate() error {
	scales := []struct {
		name string
		v    float64
	}{
		{"hammer", th.Hammer},
		{"modified_hammer", th.ModifiedHammer},
		{"azimuthal", th.Azimuthal},
		{"equatorial", th.Equatorial},
		{"conic", th.Conic},
		{"mercator", th.Mercator},
	}
	if !(scales[0].v > 0) {
		return fmt.Errorf("%w: hammer threshold %g is not positive",
			ErrUnhandledRegime, th.Hammer)
	}
	for i := 1; i < len(scales); i++ {
		if !(scales[i].v > scales[i-1].v) {
			return fmt.Errorf("%w: %s threshold %g is not above %s threshold %g",
				ErrUnhandledRegime, scales[i].name, scales[i].v, scales[i-1].name, scales[i-1].v)
		}
	}

	if !(th.CylindricalLatitude >= 0 &&
		th.CylindricalLatitude < th.EquatorLatitude &&
		th.EquatorLatitude <= th.HighLatitude &&
		th.HighLatitude < th.PolarLatitude &&
		th.PolarLatitude <= 90) {
		return fmt.Errorf("%w: latitude thresholds %g, %g, %g, %g are not increasing in [0, 90]",
			ErrUnhandledRegime, th.CylindricalLatitude, th.EquatorLatitude,
			th.HighLatitude, th.PolarLatitude)
	}

	if !(th.ParallelInset >= 0 && th.ParallelInset < 0.5) {
		return fmt.Errorf("%w: parallel inset %g outside [0, 0.5)",
			ErrUnhandledRegime, th.ParallelInset)
	}
	return nil
}

// LoadThresholds reads thresholds from a TOML file. Keys missing from the
// file keep their default values.
func LoadThresholds(fname string) (Thresholds, error) {
	th := DefaultThresholds()

	data, err := os.ReadFile(fname)
	if err != nil {
		return th, err
	}
	if err := toml.Unmarshal(data, &th); err != nil {
		return th, fmt.Errorf("parsing %s: %w", fname, err)
	}
	if err := th.Validate(); err != nil {
		return th, fmt.Errorf("%s: %w", fname, err)
	}
	return th, nil
}
