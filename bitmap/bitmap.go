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

// Package bitmap rasterizes a solved figure into a monochrome, doubled-
// resolution bitmap: width 2*(x_max-x_min+1)+1 and height
// 2*(y_max-y_min+1)+1, with the lattice normalized so x_min,y_min=0 and
// the y-axis flipped on output.
//
// Rendering itself is delegated to the adapted raster.Rasterizer: the
// figure's visited lattice cells become a path.Data of unit squares, filled
// at lattice resolution, then scaled 2x with golang.org/x/image/draw and
// placed one pixel in from the left and bottom edges, so the extra column
// and row the width/height formula reserves stay empty.
package bitmap

import (
	"image"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"pendulum.dev/go/sxbp/figure"
	"pendulum.dev/go/sxbp/lattice"
	"pendulum.dev/go/sxbp/raster"
)

// Bitmap is a monochrome pixel grid: Pix[y*Width+x] is 1 for a filled pixel,
// 0 for background. Row 0 is the top row of the rendered image.
type Bitmap struct {
	Width, Height int
	Pix           []byte
}

// At reports whether the pixel at (x,y) is filled.
func (b *Bitmap) At(x, y int) bool {
	return b.Pix[y*b.Width+x] != 0
}

// Render rasterizes a solved figure into its doubled-resolution bitmap.
// f must already satisfy Solved(); Render does not itself invoke refine.
func Render(f *figure.Figure) (*Bitmap, error) {
	if !f.Solved() {
		return nil, ErrUnsolved
	}
	f.CacheUpTo(len(f.Lines))
	bounds := f.Cache.Bounds()

	latticeW := int(bounds.Width())
	latticeH := int(bounds.Height())

	cells := fillLatticeCells(f.Cache.Points(), bounds, latticeW, latticeH)

	width := 2*latticeW + 1
	height := 2*latticeH + 1
	bm := &Bitmap{Width: width, Height: height, Pix: make([]byte, width*height)}

	scaled := scaleUp(cells, latticeW, latticeH)
	for y := 0; y < 2*latticeH; y++ {
		for x := 0; x < 2*latticeW; x++ {
			if scaled.GrayAt(x, y).Y == 0 {
				continue
			}
			// Flip the y-axis: lattice row y_max plots at the top of the
			// output image.
			outY := height - 1 - (1 + y)
			bm.Pix[outY*width+(1+x)] = 1
		}
	}
	return bm, nil
}

// fillLatticeCells builds a lattice-resolution coverage mask (one pixel per
// visited lattice cell) by filling a unit square per cached point through
// the adapted Rasterizer. Consecutive points in the cache are exactly one
// lattice unit apart, so adjacent squares share an edge and the filled
// region is the connected trace of the walk.
func fillLatticeCells(points []lattice.Coordinate, bounds lattice.Bounds, latticeW, latticeH int) *image.Gray {
	p := &path.Data{}
	for _, pt := range points {
		x := float64(pt.X - bounds.XMin)
		y := float64(pt.Y - bounds.YMin)
		p = p.MoveTo(vec.Vec2{X: x, Y: y}).
			LineTo(vec.Vec2{X: x + 1, Y: y}).
			LineTo(vec.Vec2{X: x + 1, Y: y + 1}).
			LineTo(vec.Vec2{X: x, Y: y + 1}).
			Close()
	}

	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(latticeW), URy: float64(latticeH)}
	r := raster.NewRasterizer(clip)

	cells := image.NewGray(image.Rect(0, 0, latticeW, latticeH))
	emit := func(y, xMin int, coverage []float32) {
		row := cells.Pix[y*cells.Stride:]
		for i, c := range coverage {
			if c > 0 {
				row[xMin+i] = 255
			}
		}
	}
	r.FillNonZero(p, emit)
	return cells
}

// scaleUp expands a latticeW x latticeH coverage mask to 2*latticeW x
// 2*latticeH using nearest-neighbour scaling.
func scaleUp(cells *image.Gray, latticeW, latticeH int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, 2*latticeW, 2*latticeH))
	draw.NearestNeighbor.Scale(dst, dst.Rect, cells, cells.Rect, draw.Src, nil)
	return dst
}
