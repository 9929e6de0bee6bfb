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

import "slices"

// spanFunc receives one run of covered pixels, xLeft <= x < xRight on
// row y.  Runs may extend beyond the device; the receiver clips them.
type spanFunc func(y, xLeft, xRight int)

// scanRect emits the rows yTop <= y < yBottom of an integer rectangle.
func scanRect(xLeft, yTop, xRight, yBottom int, emit spanFunc) {
	for y := yTop; y < yBottom; y++ {
		emit(y, xLeft, xRight)
	}
}

// scanConvex fills a convex polygon.  At every row exactly two edges are
// active, so the left and right boundary can be followed directly
// without maintaining an active edge list.
//
// The edges are sorted in place.
func scanConvex(edges []edge, emit spanFunc) {
	if len(edges) < 2 {
		return
	}
	slices.SortFunc(edges, compareEdges)

	yEnd := edges[0].yBottom
	for i := 1; i < len(edges); i++ {
		yEnd = max(yEnd, edges[i].yBottom)
	}

	// Clipped polygons can start with two identical edges along the
	// device boundary, so "left" and "right" may follow the opposite
	// boundaries.  The span is ordered before emitting.
	left, right := 0, 1
	next := 2
	xLeft, xRight := edges[left].x, edges[right].x
	for y := edges[0].yTop; y < yEnd; y++ {
		emit(y, roundToInt(min(xLeft, xRight)), roundToInt(max(xLeft, xRight)))

		if edges[left].yBottom <= y+1 {
			if next >= len(edges) {
				break
			}
			left = next
			next++
			xLeft = edges[left].x
		} else {
			xLeft += edges[left].slope
		}

		if edges[right].yBottom <= y+1 {
			if next >= len(edges) {
				break
			}
			right = next
			next++
			xRight = edges[right].x
		} else {
			xRight += edges[right].slope
		}
	}
}

// scanNonZero fills an arbitrary set of closed polygons using the nonzero
// winding rule.
//
// The edge slice doubles as the active edge table: edges[:active] are
// the edges crossing the current row, ordered by x, and
// edges[active:count] are the edges still waiting to start, ordered by
// first row.  Finished edges are removed by shifting the tail down.
//
// The edges are modified in place.
func scanNonZero(edges []edge, emit spanFunc) {
	if len(edges) < 2 {
		return
	}
	slices.SortFunc(edges, compareEdges)

	count := len(edges)
	y := edges[0].yTop
	active := admitEdges(edges[:count], 0, y)

	for count > 0 {
		winding := 0
		xStart := 0
		for i := 0; i < active; {
			e := &edges[i]
			x := roundToInt(e.x)
			if winding == 0 {
				xStart = x
			}
			winding += e.wind
			if winding == 0 {
				emit(y, xStart, x)
			}

			if e.yBottom <= y+1 {
				copy(edges[i:count-1], edges[i+1:count])
				count--
				active--
			} else {
				e.x += e.slope
				i++
			}
		}

		y++
		active = admitEdges(edges[:count], active, y)
		sortByX(edges[:active])
	}
}

// admitEdges returns the new length of the active prefix after adding
// all waiting edges which start on or before row y.
func admitEdges(edges []edge, active, y int) int {
	for active < len(edges) && edges[active].yTop <= y {
		active++
	}
	return active
}

// sortByX is an insertion sort.  From one row to the next the active
// edges are almost sorted: only newly admitted edges and edges which
// crossed another edge are out of place.
func sortByX(edges []edge) {
	for i := 1; i < len(edges); i++ {
		e := edges[i]
		j := i
		for j > 0 && edges[j-1].x > e.x {
			edges[j] = edges[j-1]
			j--
		}
		edges[j] = e
	}
}
