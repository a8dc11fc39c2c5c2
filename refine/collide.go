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

// collide walks points in order, keyed by coordinate, and reports the first
// index whose point repeats an earlier one. The caller passes the cached
// points up to and including the endpoint of the line being checked. This sparse map is the faster equivalent of the naive O(P²)
// double loop: each point is inserted once, and a collision is an
// attempted double-write.
//
// With fewer than 4 total segments a collision is geometrically
// impossible, so callers should short-circuit before calling collide.
func collide(points []lattice.Coordinate) (colliderPoint int, ok bool) {
	seen := make(map[lattice.Coordinate]int, len(points))
	for i, p := range points {
		if _, dup := seen[p]; dup {
			return i, true
		}
		seen[p] = i
	}
	return 0, false
}
