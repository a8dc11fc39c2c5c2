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
	"errors"

	"pendulum.dev/go/sxbp/lattice"
)

// ErrResourceExhausted is returned when a backtrack would grow a segment's
// length past MaxSegmentLength, bounding the search the same way an
// allocator refusal would in a process that could run out of memory.
var ErrResourceExhausted = errors.New("refine: resource exhausted")

// MaxSegmentLength bounds any single segment's length. A real collision
// search terminates long before this on any figure with a finite bounding
// box; it exists only to convert a runaway backtrack into a reported error
// instead of an unbounded loop. It is capped at lattice.MaxLength, the
// largest value the codec's 30-bit length field can hold — a backtrack
// that exceeded that would solve successfully but silently truncate on
// Pack, breaking the decode(encode(figure)) round-trip.
const MaxSegmentLength = lattice.MaxLength
