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

// Package plot expands a sequence of lines into lattice points and keeps
// that expansion consistent as individual line lengths change, via an
// explicit validity frontier (the index up to which the cache is known
// correct under the figure's current lengths).
package plot

import (
	"slices"

	"pendulum.dev/go/sxbp/lattice"
)

// Cache is a coordinate cache for a sequence of lines. The zero value is an
// empty cache (validity 0, holding only the origin once primed).
//
// A Cache's internal buffers grow as needed and are never reallocated from
// scratch on every call — only on truncation followed by re-growth — the
// same "grow, never shrink in steady state" discipline the Rasterizer
// uses for its cover/area buffers (see raster).
type Cache struct {
	points  []lattice.Coordinate // points[0] is the origin
	lineEnd []int                // lineEnd[i] = index into points of line i's endpoint
	valid   int                  // validity frontier v: lines [0,valid) are known correct
}

// Validity returns the current validity frontier v.
func (c *Cache) Validity() int { return c.valid }

// Points returns the cached points for lines [0,Validity()). The returned
// slice is only valid until the next call that mutates the cache.
func (c *Cache) Points() []lattice.Coordinate { return c.points }

// Invalidate clamps the validity frontier to min(Validity(), from). Callers
// must do this before re-plotting or re-checking collisions after changing
// the length of line `from` or later.
func (c *Cache) Invalidate(from int) {
	if from < c.valid {
		c.valid = from
		if from == 0 {
			c.points = c.points[:0]
			c.lineEnd = c.lineEnd[:0]
			return
		}
		c.points = c.points[:c.lineEnd[from-1]+1]
		c.lineEnd = c.lineEnd[:from]
	}
}

// PlotRange walks lines[startIndex:endIndex] starting from startPoint and
// returns the sum(lengths)+1 points visited. It does not touch the cache.
func PlotRange(lines []lattice.Line, startPoint lattice.Coordinate, startIndex, endIndex int) []lattice.Coordinate {
	total := int64(1)
	for i := startIndex; i < endIndex; i++ {
		total += lines[i].Length
	}
	pts := make([]lattice.Coordinate, 1, total)
	pts[0] = startPoint
	cur := startPoint
	for i := startIndex; i < endIndex; i++ {
		l := lines[i]
		for step := int64(0); step < l.Length; step++ {
			cur = cur.Add(l.Direction, 1)
			pts = append(pts, cur)
		}
	}
	return pts
}

// CacheUpTo ensures the cache holds the points for lines[0:limit], reusing
// any already-valid prefix, and advances the validity frontier to at least
// limit. A limit at or below the current frontier leaves the cache as it
// is. limit=0 yields a single-point cache containing the origin.
func (c *Cache) CacheUpTo(lines []lattice.Line, limit int) {
	if len(c.points) == 0 {
		c.points = append(c.points, lattice.Coordinate{})
	}
	if limit <= c.valid {
		return
	}
	w := c.valid
	var start lattice.Coordinate
	if w == 0 {
		start = c.points[0]
	} else {
		start = c.points[c.lineEnd[w-1]]
	}

	extra := PlotRange(lines, start, w, limit)[1:] // skip the shared start point
	c.points = append(c.points, extra...)

	c.lineEnd = slices.Grow(c.lineEnd, limit-w)
	acc := 0
	if w > 0 {
		acc = c.lineEnd[w-1]
	}
	for i := w; i < limit; i++ {
		acc += int(lines[i].Length)
		c.lineEnd = append(c.lineEnd, acc)
	}
	c.valid = limit
}

// LineOwning returns the index of the line that owns cache point pointIndex
// (the line whose plotted range contains it). pointIndex 0 (the origin) is
// owned by line 0.
func (c *Cache) LineOwning(pointIndex int) int {
	if pointIndex == 0 {
		return 0
	}
	lo, hi := 0, len(c.lineEnd)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c.lineEnd[mid] >= pointIndex {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// LineStart returns the cache point index at which line i begins (i.e. the
// endpoint of line i-1, or the origin for line 0).
func (c *Cache) LineStart(i int) int {
	if i == 0 {
		return 0
	}
	return c.lineEnd[i-1]
}

// LineEndIndex returns the cache point index of line i's endpoint.
func (c *Cache) LineEndIndex(i int) int {
	return c.lineEnd[i]
}

// Bounds returns the axis-aligned bounding box of all points currently in
// the cache. The cache must already be valid up to the desired limit;
// Bounds does not itself force a plot.
func (c *Cache) Bounds() lattice.Bounds {
	b := lattice.BoundsOf(c.points[0])
	for _, p := range c.points[1:] {
		b = b.Union(p)
	}
	return b
}
