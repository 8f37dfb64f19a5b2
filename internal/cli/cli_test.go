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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mapproj/projection"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should give the default logger")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("attached logger was not returned")
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    projection.Coordinate
		wantErr bool
	}{
		{"0,0", projection.Coordinate{}, false},
		{"-12.5, 47", projection.Coordinate{Lon: -12.5, Lat: 47}, false},
		{"180,-90", projection.Coordinate{Lon: 180, Lat: -90}, false},
		{"10", projection.Coordinate{}, true},
		{"a,1", projection.Coordinate{}, true},
		{"1,b", projection.Coordinate{}, true},
		{"0,91", projection.Coordinate{}, true},
	}
	for _, tt := range tests {
		got, err := parseCoordinate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: error %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if d := cmp.Diff(tt.want, got); !tt.wantErr && d != "" {
			t.Errorf("%q: (-want +got):\n%s", tt.in, d)
		}
	}
}

// run executes the root command with the given arguments and returns its
// standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProjectCmd(t *testing.T) {
	out, err := run(t, "project", "10,20", "--projection", "equirectangular")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "inverse:    10.000000,20.000000") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "project", "10,20", "--projection", "nonsense"); err == nil {
		t.Error("unknown projection was accepted")
	}
}

func TestRegimesCmd(t *testing.T) {
	out, err := run(t, "regimes", "--from", "1", "--to", "16", "--step", "1", "--origin", "0,45")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 17 {
		t.Fatalf("got %d lines, want header plus 16 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Hammer") {
		t.Errorf("scale 1: %q", lines[1])
	}
	if !strings.Contains(lines[16], "Mercator") {
		t.Errorf("scale 16: %q", lines[16])
	}

	if _, err := run(t, "regimes", "--step", "0"); err == nil {
		t.Error("zero step was accepted")
	}
}

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "box", "properties": {},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[30,0],[30,30],[0,30],[0,0]]]}},
    {"type": "Feature", "id": "city", "properties": {},
     "geometry": {"type": "Point", "coordinates": [13.4, 52.5]}}
  ]
}`

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "map.geojson")
	if err := os.WriteFile(input, []byte(testGeoJSON), 0644); err != nil {
		t.Fatal(err)
	}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			out := filepath.Join(dir, "out."+format)
			_, err := run(t, "render", input, "--format", format, "--output", out,
				"--width", "200", "--height", "100", "--origin", "15,20", "--scale", "3")
			if err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			switch format {
			case "svg":
				if !bytes.Contains(data, []byte("<path d=\"M")) {
					t.Error("no path in SVG output")
				}
			case "png":
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					t.Error(err)
				}
			case "pdf":
				if !bytes.HasPrefix(data, []byte("%PDF-")) {
					t.Error("no PDF header")
				}
			case "json":
				var res struct {
					Projection string `json:"projection"`
					Layers     []struct {
						D string `json:"d"`
					} `json:"layers"`
				}
				if err := json.Unmarshal(data, &res); err != nil {
					t.Fatal(err)
				}
				if res.Projection != "Lambert azimuthal" || len(res.Layers) != 2 {
					t.Errorf("got projection %q with %d layers", res.Projection, len(res.Layers))
				}
			}
		})
	}
}

func TestRenderCmdErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "map.geojson")
	if err := os.WriteFile(input, []byte(testGeoJSON), 0644); err != nil {
		t.Fatal(err)
	}
	toml := filepath.Join(dir, "th.toml")
	if err := os.WriteFile(toml, []byte("conic = 13\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		{"render", filepath.Join(dir, "missing.geojson")},
		{"render", input, "--format", "gif"},
		{"render", input, "--format", "pdf", "--output", "-"},
		{"render", input, "--projection", "mercator", "--thresholds", toml},
		{"render", input, "--width", "0"},
	}
	for _, args := range cases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}

	out, err := run(t, "render", input, "--thresholds", toml, "--format", "svg", "--output", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("stdout does not hold an SVG document: %.40q", out)
	}
}
