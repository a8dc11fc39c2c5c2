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

// Package figure owns the Figure container: an ordered sequence of lines,
// a count of lines not yet refined, and the coordinate cache that the plot
// package maintains on its behalf.
package figure

import (
	"pendulum.dev/go/sxbp/lattice"
	"pendulum.dev/go/sxbp/plot"
)

// Figure is an ordered sequence of N+1 lines: a fixed Up/0 sentinel
// followed by N lines with directions fixed at construction time and
// lengths assigned by the refinement engine.
type Figure struct {
	Lines          []lattice.Line
	LinesRemaining int
	Cache          plot.Cache
}

// New constructs a blank figure from the given directions: a sentinel
// Up/0 line followed by one zero-length line per entry in directions.
// Adjacent directions (including consecutive entries in directions) must
// differ by ±1 mod 4; New does not itself validate this. FromBits, which
// calls New, guarantees it by construction.
func New(directions []lattice.Direction) *Figure {
	lines := make([]lattice.Line, len(directions)+1)
	lines[0] = lattice.Line{Direction: lattice.Up, Length: 0}
	for i, d := range directions {
		lines[i+1] = lattice.Line{Direction: d, Length: 0}
	}
	return &Figure{
		Lines:          lines,
		LinesRemaining: len(directions),
	}
}

// FromBits derives a figure's initial directions from a stream of input
// bytes, per the bit-to-rotation rule: bits are read most-significant-bit
// first within each byte; a 0 bit rotates the running direction clockwise,
// a 1 bit rotates it anticlockwise. The figure has 8*len(data)+1 lines.
func FromBits(data []byte) *Figure {
	directions := make([]lattice.Direction, 0, 8*len(data))
	cur := lattice.Up
	for _, b := range data {
		for bit := 7; bit >= 0; bit-- {
			if (b>>uint(bit))&1 == 0 {
				cur = lattice.Apply(cur, lattice.Clockwise)
			} else {
				cur = lattice.Apply(cur, lattice.Anticlockwise)
			}
			directions = append(directions, cur)
		}
	}
	return New(directions)
}

// N returns the number of non-sentinel lines in the figure.
func (f *Figure) N() int {
	return len(f.Lines) - 1
}

// SetLength assigns length to line i, clamping the coordinate cache's
// validity frontier to min(validity, i) so that any subsequent cache read
// re-plots from this point on. This is the only way refine should mutate a
// line's length — it keeps the cache's validity frontier honest.
func (f *Figure) SetLength(i int, length int64) {
	f.Lines[i].Length = length
	f.Cache.Invalidate(i)
}

// CacheUpTo ensures the coordinate cache holds points for lines[0:limit].
func (f *Figure) CacheUpTo(limit int) {
	f.Cache.CacheUpTo(f.Lines, limit)
}

// Bounds returns the axis-aligned bounding box of the figure's lattice
// points, forcing a full plot first if the cache isn't already valid for
// every line.
func (f *Figure) Bounds() lattice.Bounds {
	if f.Cache.Validity() < len(f.Lines) {
		f.CacheUpTo(len(f.Lines))
	}
	return f.Cache.Bounds()
}

// Solved reports whether every non-sentinel line has a length of at least
// 1 and LinesRemaining has reached zero. It does not itself check for
// self-intersection — that is refine's job during the solve, not a
// property Figure can verify cheaply after the fact without re-plotting
// and re-checking every point pair.
func (f *Figure) Solved() bool {
	if f.LinesRemaining != 0 {
		return false
	}
	for _, l := range f.Lines[1:] {
		if l.Length < 1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of f with an empty coordinate cache — the
// cache is derived state and is never shared between copies.
func (f *Figure) Clone() *Figure {
	lines := make([]lattice.Line, len(f.Lines))
	copy(lines, f.Lines)
	return &Figure{Lines: lines, LinesRemaining: f.LinesRemaining}
}
