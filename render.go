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

// Package raster fills polygons and paths into 32-bit premultiplied ARGB
// bitmaps, without anti-aliasing.
//
// Shapes are drawn through a [Canvas], using a [Paint] which combines a
// colour or a [Shader] with one of the Porter-Duff blend modes from
// package [seehuhn.de/go/raster/pixel].  A pixel belongs to a shape if its
// centre lies inside the shape.  Paths are filled with the nonzero winding
// rule.
package raster

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/raster/pixel"
	"seehuhn.de/go/raster/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte is 255 for pixels inside the shape and 0 elsewhere.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	bm := pixel.NewBitmap(width, height)
	c := NewCanvas(bm)
	if tc.CTM != (matrix.Matrix{}) {
		c.Concat(tc.CTM)
	}

	p := NewPaint(pixel.White)
	switch tc.Op.(type) {
	case testcases.FillConvex:
		c.FillConvexPolygon(testcases.Vertices(tc.Path), p)
	default:
		c.FillPath(tc.Path, p)
	}

	for y := range height {
		row := bm.Row(y)
		out := buf[y*stride : y*stride+width]
		for x, px := range row[:width] {
			out[x] = px.A()
		}
	}
}
