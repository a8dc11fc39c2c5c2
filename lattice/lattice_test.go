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

import "testing"

func TestApplyRoundTrip(t *testing.T) {
	for d := Up; d <= Left; d++ {
		for _, r := range []Rotation{Clockwise, Anticlockwise} {
			got := Apply(Apply(d, r), -r)
			if got != d {
				t.Errorf("Apply(Apply(%s, %d), %d) = %s, want %s", d, r, -r, got, d)
			}
		}
	}
}

func TestApplyWraps(t *testing.T) {
	cases := []struct {
		d    Direction
		r    Rotation
		want Direction
	}{
		{Up, Clockwise, Right},
		{Right, Clockwise, Down},
		{Down, Clockwise, Left},
		{Left, Clockwise, Up},
		{Up, Anticlockwise, Left},
		{Left, Anticlockwise, Down},
	}
	for _, c := range cases {
		if got := Apply(c.d, c.r); got != c.want {
			t.Errorf("Apply(%s, %d) = %s, want %s", c.d, c.r, got, c.want)
		}
	}
}

func TestDirectionAxis(t *testing.T) {
	if Up.Axis() != Down.Axis() {
		t.Errorf("Up and Down should share an axis")
	}
	if Right.Axis() != Left.Axis() {
		t.Errorf("Right and Left should share an axis")
	}
	if Up.Axis() == Right.Axis() {
		t.Errorf("Up and Right should not share an axis")
	}
}

func TestLinePackRoundTrip(t *testing.T) {
	cases := []Line{
		{Direction: Up, Length: 0},
		{Direction: Right, Length: 1},
		{Direction: Down, Length: MaxLength},
		{Direction: Left, Length: 12345},
	}
	for _, l := range cases {
		got := UnpackLine(l.Pack())
		if got != l {
			t.Errorf("UnpackLine(Pack(%+v)) = %+v", l, got)
		}
	}
}

func TestLinePackLayout(t *testing.T) {
	l := Line{Direction: Left, Length: 1}
	word := l.Pack()
	if dir := word >> 30; dir != uint32(Left) {
		t.Errorf("direction bits = %d, want %d", dir, Left)
	}
	if length := word & MaxLength; length != 1 {
		t.Errorf("length bits = %d, want 1", length)
	}
}

func TestBoundsUnion(t *testing.T) {
	b := BoundsOf(Coordinate{X: 0, Y: 0})
	b = b.Union(Coordinate{X: -2, Y: 4})
	b = b.Union(Coordinate{X: 3, Y: -2})
	want := Bounds{XMin: -2, YMin: -2, XMax: 3, YMax: 4}
	if b != want {
		t.Errorf("Union bounds = %+v, want %+v", b, want)
	}
	if b.Width() != 6 {
		t.Errorf("Width() = %d, want 6", b.Width())
	}
	if b.Height() != 7 {
		t.Errorf("Height() = %d, want 7", b.Height())
	}
}
