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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// convexCases are filled with the convex scan converter.  Filling the
// same paths with [Fill] must give identical results.
var convexCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "triangle_reversed",
		Path:   triangle(54, 50, 32, 10, 10, 50),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10.3, 12.7, 50.6, 41.2),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "pentagon",
		Path:   regularPolygon(32, 32, 26, 5, 0.1),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "octagon",
		Path:   regularPolygon(32, 32, 28, 8, 0.3),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "many_sides",
		Path:   regularPolygon(64, 64, 60, 64, 0),
		Width:  128,
		Height: 128,
		Op:     FillConvex{},
	},
	{
		Name:   "sliver",
		Path:   triangle(2, 2, 62, 61, 3.5, 4.1),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "tiny",
		Path:   triangle(31.2, 31.3, 32.9, 31.6, 31.8, 33.1),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
}

// regularPolygon builds a regular polygon with n vertices on the circle
// with centre (cx, cy) and radius r.  The first vertex is at the given
// angle (in radians) from the positive x-axis.
func regularPolygon(cx, cy, r float64, n int, angle float64) path.Path {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := angle + float64(i)*2*math.Pi/float64(n)
		pts[i] = vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	return polygon(pts...)
}
