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
	"cmp"
	"math"

	"seehuhn.de/go/geom/vec"
)

// edge is a polygon boundary segment in device coordinates, prepared for
// scan conversion.  The edge covers the rows yTop <= y < yBottom and
// is sampled at pixel centres, i.e. at y+0.5.
type edge struct {
	yTop    int     // first row (inclusive)
	yBottom int     // last row (exclusive)
	slope   float64 // dx/dy
	x       float64 // x-intercept at the centre of the current row
	wind    int     // +1 if the original segment pointed down, -1 if up
}

// makeEdge builds the edge between p0 and p1.  The winding direction is
// chosen by the caller and is kept even if the endpoints are swapped.
// The caller must ensure that the rounded y coordinates differ.
func makeEdge(p0, p1 vec.Vec2, wind int) edge {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}

	yTop := roundToInt(p0.Y)
	yBottom := roundToInt(p1.Y)
	slope := (p1.X - p0.X) / (p1.Y - p0.Y)

	return edge{
		yTop:    yTop,
		yBottom: yBottom,
		slope:   slope,
		x:       p0.X + slope*(float64(yTop)-p0.Y+0.5),
		wind:    wind,
	}
}

// compareEdges orders edges by first row, then by x, then by slope.
// Within a group of edges starting on the same row this gives
// left-to-right order.
func compareEdges(a, b edge) int {
	if c := cmp.Compare(a.yTop, b.yTop); c != 0 {
		return c
	}
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}
	return cmp.Compare(a.slope, b.slope)
}

// roundToInt rounds halfway cases towards positive infinity.
func roundToInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
