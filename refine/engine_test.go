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

package refine

import (
	"testing"

	"pendulum.dev/go/sxbp/figure"
	"pendulum.dev/go/sxbp/lattice"
)

// s1Directions is the 16-line direction sequence following the sentinel
// for scenario S1 (input bytes {0x6D, 0xC7}).
func s1Directions() []lattice.Direction {
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
	return dirs
}

func TestSolveS1Lengths(t *testing.T) {
	f := figure.New(s1Directions())

	if err := Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []int64{0, 1, 1, 1, 1, 1, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 1}
	if len(f.Lines) != len(want) {
		t.Fatalf("len(Lines) = %d, want %d", len(f.Lines), len(want))
	}
	for i, w := range want {
		if f.Lines[i].Length != w {
			t.Errorf("Lines[%d].Length = %d, want %d", i, f.Lines[i].Length, w)
		}
	}
}

func TestSolveS1DistinctPointCount(t *testing.T) {
	f := figure.New(s1Directions())
	if err := Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	f.CacheUpTo(f.N())

	seen := make(map[lattice.Coordinate]bool)
	for _, p := range f.Cache.Points() {
		seen[p] = true
	}
	if len(seen) != 23 {
		t.Fatalf("distinct points = %d, want 23", len(seen))
	}
}

func TestSolveIsSelfAvoiding(t *testing.T) {
	f := figure.New(s1Directions())
	if err := Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	f.CacheUpTo(f.N())

	points := f.Cache.Points()
	seen := make(map[lattice.Coordinate]bool, len(points))
	for i, p := range points {
		if seen[p] {
			t.Fatalf("point %d (%v) repeats an earlier point", i, p)
		}
		seen[p] = true
	}
}

func TestSolveProgressCallback(t *testing.T) {
	f := figure.New(s1Directions())
	var calls int
	err := Solve(f, func(f *figure.Figure) { calls++ })
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if calls != f.N() {
		t.Fatalf("progress called %d times, want %d", calls, f.N())
	}
}

func TestSolveShortFigureNeverBacktracks(t *testing.T) {
	// Three lines after the sentinel: a walk of three unit segments that
	// turn at every step cannot revisit a point, so every length stays at 1.
	f := figure.New([]lattice.Direction{lattice.Right, lattice.Up, lattice.Left})
	if err := Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i := 1; i < len(f.Lines); i++ {
		if f.Lines[i].Length != 1 {
			t.Errorf("Lines[%d].Length = %d, want 1", i, f.Lines[i].Length)
		}
	}
}

// TestSolveFromBitsReproducesS1 is the end-to-end check that the input-to-
// figure derivation (figure.FromBits, spec.md §6 — the CLI's -p step) feeds
// the refinement engine a figure congruent to scenario S1. FromBits always
// starts its running direction at Up, while S1's published direction list
// starts its first turn already rotated a quarter-turn anticlockwise from
// that; the two direction sequences are the same curve rotated, not
// identical, so this derives S1's own input bytes through FromBits and
// checks the rotation relationship directly before confirming the solved
// lengths match (rotating every line by the same amount changes no
// distances, so the length sequence is unaffected).
func TestSolveFromBitsReproducesS1(t *testing.T) {
	f := figure.FromBits([]byte{0x6D, 0xC7})

	want := s1Directions()
	if f.N() != len(want) {
		t.Fatalf("N() = %d, want %d", f.N(), len(want))
	}
	for i, w := range want {
		got := lattice.Apply(f.Lines[i+1].Direction, lattice.Anticlockwise)
		if got != w {
			t.Fatalf("line %d direction rotated = %s, want %s", i+1, got, w)
		}
	}

	if err := Solve(f, nil); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	wantLengths := []int64{0, 1, 1, 1, 1, 1, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 1}
	for i, w := range wantLengths {
		if f.Lines[i].Length != w {
			t.Errorf("Lines[%d].Length = %d, want %d", i, f.Lines[i].Length, w)
		}
	}
}
