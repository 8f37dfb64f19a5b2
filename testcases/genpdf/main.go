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

// Command genpdf renders every map scene to a PDF file and a labelled PNG
// image in testdata/scenes, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mapproj/internal/scene"
	"seehuhn.de/go/mapproj/sink"
	"seehuhn.de/go/mapproj/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(&tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc *testcases.TestCase, name string) error {
	res, err := scene.Render(tc)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(outDir, name+".pdf")
	if err := sink.WritePDF(pdfPath, tc.Width, tc.Height, res.Layers); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	label := fmt.Sprintf("%s  s=%g", res.Name(), tc.Scale)
	err = sink.WritePNG(f, tc.Width, tc.Height, res.Layers, label)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
