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

// clipCases contain shapes which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:   "left",
		Path:   triangle(-30, 10, 40, 32, -30, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "right",
		Path:   triangle(90, 10, 90, 54, 20, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "top",
		Path:   triangle(10, -40, 54, -40, 32, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "bottom",
		Path:   triangle(32, 20, 70, 100, -6, 100),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "all_sides",
		Path:   regularPolygon(32, 32, 40, 6, 0.2),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "all_sides_convex",
		Path:   regularPolygon(32, 32, 40, 6, 0.2),
		Width:  64,
		Height: 64,
		Op:     FillConvex{},
	},
	{
		Name:   "crossing_corner",
		Path:   triangle(-20, 30, 30, -20, 40, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star_clipped",
		Path:   fivePointStar(10, 54, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "outside",
		Path:   rectangle(70, 10, 90, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}
