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

import "pendulum.dev/go/sxbp/lattice"

// resizeSuggestion computes the length to try for the previous segment
// (lines[prevIdx], the one being backtracked onto) after it collided with
// the collider segment lines[colliderIdx].
//
// For a same-direction pair, delta is the collider's origin minus the
// previous segment's origin (on their shared axis); for an opposite-
// direction pair, delta is the collider's end minus the previous segment's
// origin. See DESIGN.md for why this variant was chosen over the other
// plausible reading and how it was verified.
func resizeSuggestion(lines []lattice.Line, prevOrigin, colliderOrigin, colliderEnd lattice.Coordinate, prevIdx, colliderIdx int) int64 {
	p := lines[prevIdx]
	r := lines[colliderIdx]

	if p.Direction.Axis() != r.Direction.Axis() {
		return p.Length + 1
	}

	vertical := p.Direction.Axis() == lattice.Up.Axis()

	var delta int64
	switch {
	case p.Direction == r.Direction && vertical:
		delta = colliderOrigin.Y - prevOrigin.Y
	case p.Direction == r.Direction && !vertical:
		delta = colliderOrigin.X - prevOrigin.X
	case p.Direction != r.Direction && vertical:
		delta = colliderEnd.Y - prevOrigin.Y
	case p.Direction != r.Direction && !vertical:
		delta = colliderEnd.X - prevOrigin.X
	default:
		return p.Length + 1
	}

	return r.Length + 1 + delta
}
