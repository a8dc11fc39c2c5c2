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

// MaxLength is the largest value a 30-bit length field can hold. Any
// length assigned to a line must not exceed this, or Pack silently
// truncates it on encode.
const MaxLength = 1<<30 - 1

// Line is a single directed segment: a direction and a non-negative length.
// Lines not yet refined have length 0; in a solved figure, length 0 occurs
// only on the sentinel first line.
type Line struct {
	Direction Direction
	Length    int64
}

// Pack encodes l into the 32-bit big-endian word the codec persists:
// bits[31:30] hold the direction, bits[29:0] hold the length.
func (l Line) Pack() uint32 {
	length := uint32(l.Length) & MaxLength
	return uint32(l.Direction)<<30 | length
}

// UnpackLine decodes a 32-bit word produced by Line.Pack.
func UnpackLine(word uint32) Line {
	return Line{
		Direction: Direction(word >> 30),
		Length:    int64(word & MaxLength),
	}
}
