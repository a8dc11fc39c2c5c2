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

package bitmap

import (
	"bufio"
	"fmt"
	"io"
)

// WritePBM writes bm as a binary (P4) portable bitmap: a 1-bit-per-pixel,
// MSB-first, row-padded-to-a-byte-boundary format. 1 bits are black.
func WritePBM(w io.Writer, bm *Bitmap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", bm.Width, bm.Height); err != nil {
		return fmt.Errorf("bitmap: write pbm header: %w", err)
	}

	rowBytes := (bm.Width + 7) / 8
	row := make([]byte, rowBytes)
	for y := 0; y < bm.Height; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < bm.Width; x++ {
			if bm.Pix[y*bm.Width+x] != 0 {
				row[x/8] |= 0x80 >> uint(x%8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("bitmap: write pbm row %d: %w", y, err)
		}
	}
	return bw.Flush()
}
