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

package codec

import "errors"

// The sentinel errors below are the diagnostics a Decode can return. Decode
// always returns them wrapped with %w by the fmt.Errorf calls in codec.go,
// which add context to the message; compare with errors.Is.
var (
	// ErrBadHeaderSize is returned when the buffer is shorter than a
	// complete header.
	ErrBadHeaderSize = errors.New("codec: bad header size")

	// ErrBadMagicNumber is returned when the buffer's first 4 bytes are
	// not the modern "sxbp" magic.
	ErrBadMagicNumber = errors.New("codec: bad magic number")

	// ErrBadVersion is returned when the header's major version is below
	// version.MinAccepted.
	ErrBadVersion = errors.New("codec: unsupported version")

	// ErrBadDataSize is returned when the buffer is shorter than the
	// header declares the line-record section to be.
	ErrBadDataSize = errors.New("codec: bad data size")

	// ErrMemoryRefused stands in for the original format's allocation
	// failure diagnostic: returned when the header's declared line count
	// would require an implausibly large allocation.
	ErrMemoryRefused = errors.New("codec: memory refused")
)
