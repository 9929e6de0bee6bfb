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
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "overlapping_rect",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ring_hole",
		Path:   ringShape(32, 32, 25, 12, true),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ring_filled",
		Path:   ringShape(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Op:     Fill{},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Op:     Fill{},
	},
	{
		Name:   "open_subpaths",
		Path:   openSubpaths(),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// First triangle
		if !moveTo(yield, cx1, cy1-size) {
			return
		}
		if !lineTo(yield, cx1+size, cy1+size) {
			return
		}
		if !lineTo(yield, cx1-size, cy1+size) {
			return
		}
		if !closePath(yield) {
			return
		}

		// Second triangle
		if !moveTo(yield, cx2, cy2-size) {
			return
		}
		if !lineTo(yield, cx2+size, cy2+size) {
			return
		}
		if !lineTo(yield, cx2-size, cy2+size) {
			return
		}
		closePath(yield)
	}
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// First rectangle
		if !moveTo(yield, x1a, y1a) {
			return
		}
		if !lineTo(yield, x2a, y1a) {
			return
		}
		if !lineTo(yield, x2a, y2a) {
			return
		}
		if !lineTo(yield, x1a, y2a) {
			return
		}
		if !closePath(yield) {
			return
		}

		// Second rectangle
		if !moveTo(yield, x1b, y1b) {
			return
		}
		if !lineTo(yield, x2b, y1b) {
			return
		}
		if !lineTo(yield, x2b, y2b) {
			return
		}
		if !lineTo(yield, x1b, y2b) {
			return
		}
		closePath(yield)
	}
}

// ringShape builds a square ring.  If hole is true, the inner square is
// traversed in the opposite direction and is excluded by the nonzero
// winding rule; otherwise the inner square is filled as well.
func ringShape(cx, cy, outerSize, innerSize float64, hole bool) path.Path {
	outer := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	inner := rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
	if hole {
		inner = rectangle(cx+innerSize, cy-innerSize, cx-innerSize, cy+innerSize)
	}
	return join(outer, inner)
}

// multipleRings builds three rings with holes, one of them overlapping
// the other two.
func multipleRings(cx, cy float64) path.Path {
	return join(
		ringShape(cx-30, cy-30, 20, 10, true),
		ringShape(cx+30, cy-30, 20, 10, true),
		ringShape(cx, cy+10, 30, 8, true),
	)
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		size := 5.0
		spacing := 14.0

		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cx := 10.0 + float64(col)*spacing
				cy := 10.0 + float64(row)*spacing

				// Small triangle
				if !moveTo(yield, cx, cy-size) {
					return
				}
				if !lineTo(yield, cx+size, cy+size) {
					return
				}
				if !lineTo(yield, cx-size, cy+size) {
					return
				}
				if !closePath(yield) {
					return
				}
			}
		}
	}
}

// openSubpaths builds two triangles without ClosePath commands.  Every
// subpath is closed implicitly when filling.
func openSubpaths() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, 8, 8) || !lineTo(yield, 56, 8) || !lineTo(yield, 8, 30) {
			return
		}
		if !moveTo(yield, 56, 34) || !lineTo(yield, 56, 56) {
			return
		}
		lineTo(yield, 8, 56)
	}
}
