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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// precisionCases place edges close to pixel centres and use large
// coordinates.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_49",
		Path:   offsetRectangle(20, 20, 24, 24, 0.49),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "thin_bar_covering_centres",
		Path:   rectangle(5, 10.4, 59, 10.6),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "thin_bar_between_centres",
		Path:   rectangle(5, 10.6, 59, 11.4),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "large_coord_centered",
		Path:   largeOffsetRectangle(1000, 1000, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "small_shape_large_offset",
		Path:   smallShapeAtLargeOffset(10000, 10000, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "far_outside",
		Path:   triangle(-1e6, -1e6, 1e6, 32.3, -1e6, 1e6),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) path.Path {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// largeOffsetRectangle builds a rectangle centered at large coordinates,
// but translated back to fit the canvas. This tests precision at large offsets.
func largeOffsetRectangle(cx, cy, size float64) path.Path {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY

	return rectangle(x1, y1, x2, y2)
}

// smallShapeAtLargeOffset builds a tiny triangle at a large offset,
// translated back to the canvas for rendering.
func smallShapeAtLargeOffset(cx, cy, size float64) path.Path {
	translateX := 32.3 - cx
	translateY := 32.3 - cy

	return triangle(
		cx-size+translateX, cy+size+translateY,
		cx+translateX, cy-size+translateY,
		cx+size+translateX, cy+size+translateY,
	)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() path.Path {
	// These values differ only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return rectangle(x1, y1, x2, y2)
}
