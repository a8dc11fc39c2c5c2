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

// Package raster fills axis-aligned, integer-coordinate rectangles onto a
// monochrome pixel grid. bitmap.fillLatticeCells is the only caller: it
// feeds one unit square per visited lattice point, so every pixel a
// rectangle covers is either fully in or fully out — there is no
// sub-pixel coverage, curved geometry, or stroking in this domain, and
// none of that machinery is carried here (see DESIGN.md).
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// span is a half-open pixel-column range [xMin, xMax) fully covered on one
// scanline.
type span struct {
	xMin, xMax int
}

// Rasterizer accumulates axis-aligned rectangles into per-row pixel spans.
// Create one instance and reuse it across the squares of a figure; its
// internal buffers grow as needed but are never reallocated from scratch.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds output to this device-coordinate rectangle. Coordinates
	// must be integer-aligned.
	Clip rect.Rect

	rows    map[int][]span // cleared, not reallocated, between Fill calls
	subpath []vec.Vec2     // current subpath's corner points, reused
	ones    []float32      // a run of 1.0s long enough for the widest span seen
}

// NewRasterizer returns a Rasterizer with the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip: clip,
		rows: make(map[int][]span),
	}
}

// FillNonZero fills p, which must be built only of closed, axis-aligned
// rectangle subpaths (MoveTo/LineTo/LineTo/LineTo/Close) — exactly what
// bitmap.fillLatticeCells emits. Rectangles that overlap or share an edge
// merge into one span per row rather than double-covering a pixel, which
// is the only winding behaviour this domain needs: bitmap's unit squares
// never nest, so a pixel is either touched by some square or it isn't. The
// emit callback receives full coverage (1.0) for each merged span; its
// slice argument is valid only during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	for y := range r.rows {
		delete(r.rows, y)
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.flushSubpath(clipXMin, clipXMax, clipYMin, clipYMax)
			r.subpath = append(r.subpath[:0], p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			r.subpath = append(r.subpath, p.Coords[coordIdx])
			coordIdx++
		case path.CmdClose:
			r.flushSubpath(clipXMin, clipXMax, clipYMin, clipYMax)
		}
	}
	r.flushSubpath(clipXMin, clipXMax, clipYMin, clipYMax)

	if len(r.rows) == 0 {
		return
	}
	ys := make([]int, 0, len(r.rows))
	for y := range r.rows {
		ys = append(ys, y)
	}
	slices.Sort(ys)

	for _, y := range ys {
		for _, s := range mergeSpans(r.rows[y]) {
			emit(y, s.xMin, r.coverageOnes(s.xMax-s.xMin))
		}
	}
}

// flushSubpath records the bounding rectangle of the accumulated subpath
// points (order-agnostic: a rectangle's axis-aligned extent is exactly its
// corners' min/max x and min/max y) as a full-coverage span on every row it
// spans, then clears the subpath buffer.
func (r *Rasterizer) flushSubpath(clipXMin, clipXMax, clipYMin, clipYMax int) {
	if len(r.subpath) == 0 {
		return
	}
	xMinF, xMaxF := r.subpath[0].X, r.subpath[0].X
	yMinF, yMaxF := r.subpath[0].Y, r.subpath[0].Y
	for _, p := range r.subpath[1:] {
		xMinF = math.Min(xMinF, p.X)
		xMaxF = math.Max(xMaxF, p.X)
		yMinF = math.Min(yMinF, p.Y)
		yMaxF = math.Max(yMaxF, p.Y)
	}
	r.subpath = r.subpath[:0]

	xMin := max(int(math.Round(xMinF)), clipXMin)
	xMax := min(int(math.Round(xMaxF)), clipXMax)
	yMin := max(int(math.Round(yMinF)), clipYMin)
	yMax := min(int(math.Round(yMaxF)), clipYMax)
	if xMin >= xMax || yMin >= yMax {
		return
	}

	for y := yMin; y < yMax; y++ {
		r.rows[y] = append(r.rows[y], span{xMin: xMin, xMax: xMax})
	}
}

// mergeSpans sorts spans by xMin and merges any that overlap or touch, so
// adjacent or coincident unit squares emit one connected span instead of
// two abutting ones.
func mergeSpans(spans []span) []span {
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.xMin, b.xMin) })
	merged := spans[:0]
	for _, s := range spans {
		if n := len(merged); n > 0 && s.xMin <= merged[n-1].xMax {
			if s.xMax > merged[n-1].xMax {
				merged[n-1].xMax = s.xMax
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// coverageOnes returns a slice of n 1.0s, growing the backing buffer but
// never shrinking it between calls.
func (r *Rasterizer) coverageOnes(n int) []float32 {
	if len(r.ones) < n {
		old := len(r.ones)
		r.ones = slices.Grow(r.ones, n-old)[:n]
		for i := old; i < n; i++ {
			r.ones[i] = 1
		}
	}
	return r.ones[:n]
}
