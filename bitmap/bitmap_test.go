// pendulum.dev/go/sxbp - a rectilinear self-avoiding curve generator
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

package bitmap

import (
	"bytes"
	"errors"
	"testing"

	"pendulum.dev/go/sxbp/figure"
	"pendulum.dev/go/sxbp/lattice"
	"pendulum.dev/go/sxbp/refine"
)

// s1Figure builds and solves scenario S1's figure: its bounds are
// (x_min=-2, y_min=-2, x_max=3, y_max=4), giving a 13x15 bitmap (S4).
func s1Figure(t *testing.T) *figure.Figure {
	t.Helper()
	letters := []string{
		"U", "L", "D", "L", "D", "R", "D", "R",
		"U", "L", "U", "R", "D", "R", "U", "L",
	}
	byName := map[string]lattice.Direction{
		"U": lattice.Up, "R": lattice.Right, "D": lattice.Down, "L": lattice.Left,
	}
	dirs := make([]lattice.Direction, len(letters))
	for i, s := range letters {
		dirs[i] = byName[s]
	}
	f := figure.New(dirs)
	if err := refine.Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return f
}

func TestRenderDimensions(t *testing.T) {
	f := s1Figure(t)
	f.CacheUpTo(len(f.Lines))
	bounds := f.Cache.Bounds()
	wantBounds := lattice.Bounds{XMin: -2, YMin: -2, XMax: 3, YMax: 4}
	if bounds != wantBounds {
		t.Fatalf("bounds = %+v, want %+v", bounds, wantBounds)
	}

	bm, err := Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if bm.Width != 13 {
		t.Errorf("Width = %d, want 13", bm.Width)
	}
	if bm.Height != 15 {
		t.Errorf("Height = %d, want 15", bm.Height)
	}
}

func TestRenderUnsolvedFigureErrors(t *testing.T) {
	f := figure.New([]lattice.Direction{lattice.Right, lattice.Up, lattice.Left, lattice.Down})
	_, err := Render(f)
	if !errors.Is(err, ErrUnsolved) {
		t.Fatalf("err = %v, want ErrUnsolved", err)
	}
}

func TestRenderHasFilledPixels(t *testing.T) {
	f := s1Figure(t)
	bm, err := Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var filled int
	for _, p := range bm.Pix {
		if p != 0 {
			filled++
		}
	}
	if filled == 0 {
		t.Fatalf("rendered bitmap has no filled pixels")
	}
}

func TestWritePBMHeader(t *testing.T) {
	f := s1Figure(t)
	bm, err := Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePBM(&buf, bm); err != nil {
		t.Fatalf("WritePBM: %v", err)
	}
	want := "P4\n13 15\n"
	if got := buf.String()[:len(want)]; got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestWritePNGProducesValidPNG(t *testing.T) {
	f := s1Figure(t)
	bm, err := Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, bm); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output does not start with the PNG signature")
	}
}
