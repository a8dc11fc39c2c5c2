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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// monochrome is the two-entry palette PNG output uses: filled pixels are
// black, background is white.
var monochrome = color.Palette{color.White, color.Black}

// WritePNG writes bm as a 1-bit-per-pixel paletted PNG.
func WritePNG(w io.Writer, bm *Bitmap) error {
	img := image.NewPaletted(image.Rect(0, 0, bm.Width, bm.Height), monochrome)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.Pix[y*bm.Width+x] != 0 {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("bitmap: write png: %w", err)
	}
	return nil
}
