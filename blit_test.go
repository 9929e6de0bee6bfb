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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster/pixel"
)

func TestBlitterClipping(t *testing.T) {
	dst := pixel.NewBitmap(5, 3)
	b := newBlitter(dst, &Paint{Color: pixel.Red, Mode: pixel.Src}, nil)

	b.fillSpan(-1, 0, 5)
	b.fillSpan(3, 0, 5)
	b.fillSpan(0, 4, 2)
	b.fillSpan(0, 5, 9)
	b.fillSpan(0, -9, 0)
	if slices.ContainsFunc(dst.Pix, func(p pixel.Pixel) bool { return p != 0 }) {
		t.Fatal("spans outside the bitmap changed pixels")
	}

	b.fillSpan(1, -100, 100)
	b.fillSpan(2, 3, 4)
	red := pixel.Red.Pixel()
	for y := range 3 {
		for x := range 5 {
			expected := pixel.Pixel(0)
			if y == 1 || (y == 2 && x == 3) {
				expected = red
			}
			if got := dst.Pixel(x, y); got != expected {
				t.Errorf("pixel (%d, %d) = %08x, expected %08x", x, y, got, expected)
			}
		}
	}
}

// TestBlitterShaded checks that shaded spans use the blend function
// matching the alpha of each source pixel.
func TestBlitterShaded(t *testing.T) {
	colors := []pixel.Color{
		{R: 1, A: 0},
		{G: 1, A: 0.5},
		{B: 1, A: 1},
	}
	grad, err := NewLinearGradient(vec.Vec2{X: 0.5}, vec.Vec2{X: 8.5}, colors...)
	if err != nil {
		t.Fatal(err)
	}
	if !grad.Configure(matrix.Identity) {
		t.Fatal("Configure failed")
	}

	src := make([]pixel.Pixel, 9)
	grad.ShadeRow(0, 0, src)

	background := pixel.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}.Pixel()
	for _, mode := range []pixel.Mode{pixel.SrcOver, pixel.SrcIn, pixel.DstOut, pixel.Xor} {
		dst := pixel.NewBitmap(9, 1)
		dst.Fill(background)

		b := newBlitter(dst, &Paint{Shader: grad, Mode: mode}, nil)
		b.fillSpan(0, 0, 9)

		for x, s := range src {
			expected := pixel.Blend(mode, background, s)
			if got := dst.Pixel(x, 0); got != expected {
				t.Errorf("%s, x=%d: got %08x, expected %08x", mode, x, got, expected)
			}
		}
	}
}

func TestBlitterRowBuffer(t *testing.T) {
	dst := pixel.NewBitmap(16, 1)
	grad, err := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 16}, pixel.Red, pixel.Blue)
	if err != nil {
		t.Fatal(err)
	}
	grad.Configure(matrix.Identity)

	buf := make([]pixel.Pixel, 0, 32)
	b := newBlitter(dst, &Paint{Shader: grad, Mode: pixel.SrcOver}, buf)
	if len(b.row) != 16 || &b.row[0] != &buf[:1][0] {
		t.Error("row buffer was not reused")
	}

	b = newBlitter(dst, &Paint{Shader: grad, Mode: pixel.SrcOver}, nil)
	if len(b.row) != 16 {
		t.Errorf("row buffer has length %d, expected 16", len(b.row))
	}
}
