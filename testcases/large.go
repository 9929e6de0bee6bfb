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

// largeCases use a bigger canvas and many edges.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_concentric",
		Path:   ringShape(256, 256, 200, 100, true),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Op:     FillConvex{},
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_polygon",
		Path:   regularPolygon(256, 256, 240, 720, 0.001),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) path.Path {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	return func(yield func(path.Command, []vec.Vec2) bool) {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				x1 := float64(col)*cellW + gap
				y1 := float64(row)*cellH + gap
				x2 := float64(col+1)*cellW - gap
				y2 := float64(row+1)*cellH - gap

				for cmd, pts := range rectangle(x1, y1, x2, y2) {
					if !yield(cmd, pts) {
						return
					}
				}
			}
		}
	}
}
