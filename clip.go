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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// boundaryCode classifies a point relative to the clip rectangle.
// Corner regions combine a vertical and a horizontal bit.
type boundaryCode uint8

const (
	codeTop boundaryCode = 1 << iota
	codeBottom
	codeLeft
	codeRight
)

// clipper cuts polygon boundaries to a device rectangle.  In device space
// y grows downwards, so bounds.LLy is the top and bounds.URy the bottom
// of the rectangle.
//
// Parts of a segment to the left or right of the rectangle are replaced
// by vertical edges on the left or right boundary.  This keeps the
// winding numbers inside the rectangle unchanged.
type clipper struct {
	bounds rect.Rect
}

// code computes the boundary code of p.
func (c *clipper) code(p vec.Vec2) boundaryCode {
	var res boundaryCode
	if p.Y < c.bounds.LLy {
		res |= codeTop
	} else if p.Y > c.bounds.URy {
		res |= codeBottom
	}
	if p.X < c.bounds.LLx {
		res |= codeLeft
	} else if p.X > c.bounds.URx {
		res |= codeRight
	}
	return res
}

// clipPolygon clips the closed polygon through pts and appends the
// resulting edges to out.  The last point connects back to the first.
func (c *clipper) clipPolygon(pts []vec.Vec2, out []edge) []edge {
	n := len(pts)
	if n < 2 {
		return out
	}

	// Rows are compared as floats, since coordinates far outside the
	// device may not fit into an int before clipping.
	prev := pts[n-1]
	prevRow := math.Floor(prev.Y + 0.5)
	for _, p := range pts {
		row := math.Floor(p.Y + 0.5)
		if row != prevRow {
			out = c.clipSegment(prev, p, out)
		}
		prev, prevRow = p, row
	}
	return out
}

// clipSegment clips the segment from p0 to p1 and appends the resulting
// edges to out.
func (c *clipper) clipSegment(p0, p1 vec.Vec2, out []edge) []edge {
	wind := 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		wind = -1
	}

	code0 := c.code(p0)
	code1 := c.code(p1)
	if code1&codeTop != 0 || code0&codeBottom != 0 {
		return out
	}

	top, bottom := c.bounds.LLy, c.bounds.URy
	left, right := c.bounds.LLx, c.bounds.URx

	// clamp vertically
	if code0&codeTop != 0 {
		p0.X += (p1.X - p0.X) * (top - p0.Y) / (p1.Y - p0.Y)
		p0.Y = top
	}
	if code1&codeBottom != 0 {
		p1.X -= (p1.X - p0.X) * (p1.Y - bottom) / (p1.Y - p0.Y)
		p1.Y = bottom
	}

	// from here on, a is the left and b the right endpoint
	a, b := p0, p1
	if a.X > b.X {
		a, b = b, a
	}

	if b.X <= left {
		return c.appendEdge(out, vec.Vec2{X: left, Y: a.Y}, vec.Vec2{X: left, Y: b.Y}, wind)
	}
	if a.X >= right {
		return c.appendEdge(out, vec.Vec2{X: right, Y: a.Y}, vec.Vec2{X: right, Y: b.Y}, wind)
	}

	if a.X < left {
		y := a.Y + (b.Y-a.Y)*(left-a.X)/(b.X-a.X)
		out = c.appendEdge(out, vec.Vec2{X: left, Y: a.Y}, vec.Vec2{X: left, Y: y}, wind)
		a = vec.Vec2{X: left, Y: y}
	}
	if b.X > right {
		y := b.Y - (b.Y-a.Y)*(b.X-right)/(b.X-a.X)
		out = c.appendEdge(out, vec.Vec2{X: right, Y: y}, vec.Vec2{X: right, Y: b.Y}, wind)
		b = vec.Vec2{X: right, Y: y}
	}

	return c.appendEdge(out, a, b, wind)
}

// appendEdge adds the edge from p0 to p1, unless it covers no rows.
func (c *clipper) appendEdge(out []edge, p0, p1 vec.Vec2, wind int) []edge {
	if roundToInt(p0.Y) == roundToInt(p1.Y) {
		return out
	}
	return append(out, makeEdge(p0, p1, wind))
}
