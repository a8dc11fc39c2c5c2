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

// Package lattice defines the primitive geometry of the rectilinear curve:
// directions, rotations, coordinates, bounds, and the packed line record
// the codec persists.
package lattice

// Direction is one of four compass directions. Incrementing a Direction by
// one, modulo 4, turns it a quarter-circle clockwise.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the single-letter name used throughout diagnostics and
// test fixtures ("U", "R", "D", "L").
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Unit returns the unit displacement vector for d.
func (d Direction) Unit() Coordinate {
	switch d {
	case Up:
		return Coordinate{X: 0, Y: 1}
	case Right:
		return Coordinate{X: 1, Y: 0}
	case Down:
		return Coordinate{X: 0, Y: -1}
	case Left:
		return Coordinate{X: -1, Y: 0}
	default:
		return Coordinate{}
	}
}

// Axis returns 0 for the vertical directions (Up, Down) and 1 for the
// horizontal ones (Right, Left). Two directions share an axis when their
// Axis values are equal; this is the "parallel" test the refinement engine
// uses to pick a resize rule.
func (d Direction) Axis() int {
	return int(d) % 2
}

// Rotation is a quarter turn: +1 clockwise, -1 anticlockwise.
type Rotation int

const (
	Clockwise     Rotation = 1
	Anticlockwise Rotation = -1
)

// Apply rotates d by r, wrapping modulo 4.
func Apply(d Direction, r Rotation) Direction {
	return Direction(((int(d)+int(r))%4 + 4) % 4)
}
