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

// Package version holds the single process-wide version number that the
// codec embeds in every header it writes.
package version

import "strconv"

// Major, Minor and Patch identify the refinement rule and on-disk layout
// this build produces. The codec rejects any decoded header whose Major
// is below MinAccepted.
const (
	Major = 3
	Minor = 0
	Patch = 0

	// MinAccepted is the lowest Major this build's decoder will accept.
	// A modern "sxbp" header with an older Major is rejected with
	// codec.ErrBadVersion; a legacy header fails the magic check first and
	// is rejected with codec.ErrBadMagicNumber.
	MinAccepted = 3
)

// String renders the version as "major.minor.patch".
func String() string {
	return strconv.Itoa(Major) + "." + strconv.Itoa(Minor) + "." + strconv.Itoa(Patch)
}
