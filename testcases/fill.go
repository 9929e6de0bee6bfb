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

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "arrow",
		Path:   polygon(pt(8, 32), pt(32, 8), pt(32, 22), pt(56, 22), pt(56, 42), pt(32, 42), pt(32, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "comb",
		Path:   comb(6, 10, 52, 44, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "spike",
		Path:   triangle(4, 31.2, 60, 32.1, 4, 33.4),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// fivePointStar builds a five-pointed star (self-intersecting).  With the
// nonzero winding rule the central pentagon is inside the shape.
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// five points, connecting every second point
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y2}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// comb builds a concave polygon with n teeth pointing down.  The
// bounding box is (x, y) to (x+w, y+h).
func comb(x, y, w, h float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		tooth := w / float64(2*n-1)
		if !moveTo(yield, x, y) {
			return
		}
		if !lineTo(yield, x+w, y) {
			return
		}
		for i := n - 1; i >= 0; i-- {
			left := x + float64(2*i)*tooth
			if !lineTo(yield, left+tooth, y+h) {
				return
			}
			if !lineTo(yield, left, y+h) {
				return
			}
			if i > 0 && !lineTo(yield, left, y+h/3) {
				return
			}
			if i > 0 && !lineTo(yield, left-tooth, y+h/3) {
				return
			}
		}
		closePath(yield)
	}
}
