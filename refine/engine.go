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

// Package refine assigns a positive integer length to every non-sentinel
// line of a figure such that the resulting walk is self-avoiding, by
// growing each segment from length 1 and backtracking on collision.
package refine

import "pendulum.dev/go/sxbp/figure"

// ProgressFunc is called once per completed outer-loop iteration (once per
// line solved). It must not mutate f; implementations may ignore it
// entirely without affecting correctness.
type ProgressFunc func(f *figure.Figure)

// Solve assigns lengths to every non-sentinel line of f so that the
// resulting walk is self-avoiding. progress may be nil.
//
// Solve is iterative, not recursive: target-index/target-length state
// variables drive the backtrack instead of a call stack, so a long input's
// backtrack depth cannot overflow the goroutine stack.
func Solve(f *figure.Figure, progress ProgressFunc) error {
	n := f.N()
	for i := 1; i <= n; i++ {
		if err := setLength(f, i, 1); err != nil {
			return err
		}
		f.LinesRemaining--
		if progress != nil {
			progress(f)
		}
	}
	return nil
}

func setLength(f *figure.Figure, i int, length int64) error {
	targetIndex := i
	targetLength := length

	for {
		if targetLength > MaxSegmentLength {
			return ErrResourceExhausted
		}

		f.SetLength(targetIndex, targetLength)
		f.CacheUpTo(targetIndex + 1)

		colliderLine, ok := checkCollision(f, targetIndex)
		switch {
		case ok:
			prevIdx := targetIndex - 1
			points := f.Cache.Points()
			prevOrigin := points[f.Cache.LineStart(prevIdx)]
			colliderOrigin := points[f.Cache.LineStart(colliderLine)]
			colliderEnd := points[f.Cache.LineEndIndex(colliderLine)]
			targetLength = resizeSuggestion(f.Lines, prevOrigin, colliderOrigin, colliderEnd, prevIdx, colliderLine)
			targetIndex = prevIdx
		case targetIndex != i:
			targetIndex++
			targetLength = 1
		default:
			return nil
		}
	}
}

// checkCollision reports the line owning the first repeated point among
// lines[0:upTo+1]'s plotted points, if any. Figures with fewer than four
// total lines cannot self-intersect.
func checkCollision(f *figure.Figure, upTo int) (line int, ok bool) {
	if len(f.Lines) < 4 {
		return 0, false
	}
	points := f.Cache.Points()[:f.Cache.LineEndIndex(upTo)+1]
	pointIdx, ok := collide(points)
	if !ok {
		return 0, false
	}
	return f.Cache.LineOwning(pointIdx), true
}
