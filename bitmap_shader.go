// seehuhn.de/go/raster - a 2D rendering library
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

package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster/pixel"
)

// BitmapShader paints with the pixels of a bitmap.  Samples outside the
// bitmap repeat the nearest edge pixel.
type BitmapShader struct {
	bm *pixel.Bitmap

	// local maps bitmap coordinates to user space.
	local matrix.Matrix

	// inv maps device coordinates to bitmap coordinates.
	inv matrix.Matrix
}

// NewBitmapShader returns a shader which draws bm.  The matrix local maps
// bitmap pixel coordinates into user space; use [matrix.Identity] to
// place the bitmap at the user space origin with one unit per pixel.
func NewBitmapShader(bm *pixel.Bitmap, local matrix.Matrix) *BitmapShader {
	return &BitmapShader{bm: bm, local: local}
}

// Configure implements the [Shader] interface.  Configure fails if the
// bitmap has no pixels.
func (s *BitmapShader) Configure(ctm matrix.Matrix) bool {
	if s.bm.Width <= 0 || s.bm.Height <= 0 {
		return false
	}
	inv, ok := invert(concat(s.local, ctm))
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

// IsOpaque implements the [Shader] interface.
func (s *BitmapShader) IsOpaque() bool {
	return s.bm.IsOpaque()
}

// ShadeRow implements the [Shader] interface.
func (s *BitmapShader) ShadeRow(x, y int, row []pixel.Pixel) {
	w, h := s.bm.Width, s.bm.Height
	if w <= 0 || h <= 0 {
		return
	}

	p := apply(s.inv, vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	dx, dy := s.inv[0], s.inv[1]

	if dy == 0 {
		// no rotation or shear: the source row is the same for all pixels
		src := s.bm.Row(clampFloor(p.Y, h))
		for i := range row {
			row[i] = src[clampFloor(p.X, w)]
			p.X += dx
		}
		return
	}

	for i := range row {
		row[i] = s.bm.Pix[clampFloor(p.Y, h)*s.bm.Stride+clampFloor(p.X, w)]
		p.X += dx
		p.Y += dy
	}
}

// clampFloor returns floor(v) clamped to 0, ..., n-1.
func clampFloor(v float64, n int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(math.Floor(v))
}
