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

package lattice

// Coordinate is a lattice point with signed 64-bit components, wide enough
// that a pathological input cannot overflow it: a walk's total length can
// exceed 2^32.
type Coordinate struct {
	X, Y int64
}

// Add returns the coordinate offset by d's unit vector, scaled by n.
func (c Coordinate) Add(d Direction, n int64) Coordinate {
	u := d.Unit()
	return Coordinate{X: c.X + u.X*n, Y: c.Y + u.Y*n}
}

// Bounds is an axis-aligned rectangle of lattice points, inclusive on all
// four sides.
type Bounds struct {
	XMin, YMin, XMax, YMax int64
}

// BoundsOf returns the smallest Bounds containing c.
func BoundsOf(c Coordinate) Bounds {
	return Bounds{XMin: c.X, YMin: c.Y, XMax: c.X, YMax: c.Y}
}

// Union grows b to also contain c.
func (b Bounds) Union(c Coordinate) Bounds {
	if c.X < b.XMin {
		b.XMin = c.X
	}
	if c.X > b.XMax {
		b.XMax = c.X
	}
	if c.Y < b.YMin {
		b.YMin = c.Y
	}
	if c.Y > b.YMax {
		b.YMax = c.Y
	}
	return b
}

// Width and Height return the number of lattice points spanned along each
// axis (inclusive), i.e. XMax-XMin+1 and YMax-YMin+1.
func (b Bounds) Width() int64  { return b.XMax - b.XMin + 1 }
func (b Bounds) Height() int64 { return b.YMax - b.YMin + 1 }
