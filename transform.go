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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// The helpers below use the PDF convention of [matrix.Matrix]:
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]

// apply maps the point v through m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// concat returns the transformation which first applies a, then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

// invert returns the inverse of m.  The second return value is false if
// m is singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return matrix.Matrix{}, false
	}
	s := 1 / det
	a := m[3] * s
	b := -m[1] * s
	c := -m[2] * s
	d := m[0] * s
	return matrix.Matrix{
		a, b,
		c, d,
		-(m[4]*a + m[5]*c),
		-(m[4]*b + m[5]*d),
	}, true
}

// isAxisAligned reports whether m maps horizontal and vertical lines to
// horizontal and vertical lines, without swapping the axes.
func isAxisAligned(m matrix.Matrix) bool {
	return m[1] == 0 && m[2] == 0
}
