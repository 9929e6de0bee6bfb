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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func newTestClipper(w, h float64) *clipper {
	return &clipper{bounds: rect.Rect{URx: w, URy: h}}
}

func TestClipperCode(t *testing.T) {
	c := newTestClipper(10, 10)
	cases := []struct {
		p    vec.Vec2
		code boundaryCode
	}{
		{vec.Vec2{X: 5, Y: 5}, 0},
		{vec.Vec2{X: 0, Y: 10}, 0},
		{vec.Vec2{X: 5, Y: -1}, codeTop},
		{vec.Vec2{X: 5, Y: 11}, codeBottom},
		{vec.Vec2{X: -1, Y: 5}, codeLeft},
		{vec.Vec2{X: 11, Y: 5}, codeRight},
		{vec.Vec2{X: -1, Y: -1}, codeTop | codeLeft},
		{vec.Vec2{X: 11, Y: 11}, codeBottom | codeRight},
	}
	for _, tc := range cases {
		if got := c.code(tc.p); got != tc.code {
			t.Errorf("code(%v) = %04b, expected %04b", tc.p, got, tc.code)
		}
	}
}

// TestClipInside checks that polygons inside the bounds are converted
// into plain edges.
func TestClipInside(t *testing.T) {
	c := newTestClipper(64, 64)
	pts := []vec.Vec2{{X: 10, Y: 10}, {X: 50, Y: 20.3}, {X: 30, Y: 55.7}}

	edges := c.clipPolygon(pts, nil)

	expected := []edge{
		makeEdge(pts[2], pts[0], -1),
		makeEdge(pts[0], pts[1], 1),
		makeEdge(pts[1], pts[2], 1),
	}
	if len(edges) != len(expected) {
		t.Fatalf("got %d edges, expected %d", len(edges), len(expected))
	}
	for i := range edges {
		if edges[i] != expected[i] {
			t.Errorf("edge %d: got %+v, expected %+v", i, edges[i], expected[i])
		}
	}
}

// TestClipHugePolygon uses coordinates which do not fit into an int.
func TestClipHugePolygon(t *testing.T) {
	c := newTestClipper(10, 10)
	pts := []vec.Vec2{
		{X: 1, Y: -1e20},
		{X: 3, Y: -1e20},
		{X: 3, Y: 1e20},
		{X: 1, Y: 1e20},
	}
	edges := c.clipPolygon(pts, nil)

	expected := []edge{
		{yTop: 0, yBottom: 10, slope: 0, x: 1, wind: -1},
		{yTop: 0, yBottom: 10, slope: 0, x: 3, wind: 1},
	}
	if len(edges) != len(expected) {
		t.Fatalf("got %d edges, expected %d", len(edges), len(expected))
	}
	for i := range edges {
		if edges[i] != expected[i] {
			t.Errorf("edge %d: got %+v, expected %+v", i, edges[i], expected[i])
		}
	}
}

func TestClipSegment(t *testing.T) {
	cases := []struct {
		name     string
		p0, p1   vec.Vec2
		expected []edge
	}{
		{
			name: "above",
			p0:   vec.Vec2{X: 10, Y: -20},
			p1:   vec.Vec2{X: 20, Y: -1},
		},
		{
			name: "below",
			p0:   vec.Vec2{X: 10, Y: 70},
			p1:   vec.Vec2{X: 20, Y: 80},
		},
		{
			name: "top",
			p0:   vec.Vec2{X: 0, Y: -10},
			p1:   vec.Vec2{X: 20, Y: 10},
			expected: []edge{
				{yTop: 0, yBottom: 10, slope: 1, x: 10.5, wind: 1},
			},
		},
		{
			name: "bottom",
			p0:   vec.Vec2{X: 20, Y: 74},
			p1:   vec.Vec2{X: 10, Y: 54},
			expected: []edge{
				{yTop: 54, yBottom: 64, slope: 0.5, x: 10.25, wind: -1},
			},
		},
		{
			name: "left",
			p0:   vec.Vec2{X: -10, Y: 0},
			p1:   vec.Vec2{X: -5, Y: 20},
			expected: []edge{
				{yTop: 0, yBottom: 20, slope: 0, x: 0, wind: 1},
			},
		},
		{
			name: "right",
			p0:   vec.Vec2{X: 70, Y: 20},
			p1:   vec.Vec2{X: 80, Y: 0},
			expected: []edge{
				{yTop: 0, yBottom: 20, slope: 0, x: 64, wind: -1},
			},
		},
		{
			name: "crossing_left",
			p0:   vec.Vec2{X: -10, Y: 0},
			p1:   vec.Vec2{X: 10, Y: 20},
			expected: []edge{
				{yTop: 0, yBottom: 10, slope: 0, x: 0, wind: 1},
				{yTop: 10, yBottom: 20, slope: 1, x: 0.5, wind: 1},
			},
		},
		{
			name: "crossing_right",
			p0:   vec.Vec2{X: 60, Y: 0},
			p1:   vec.Vec2{X: 70, Y: 20},
			expected: []edge{
				{yTop: 8, yBottom: 20, slope: 0, x: 64, wind: 1},
				{yTop: 0, yBottom: 8, slope: 0.5, x: 60.25, wind: 1},
			},
		},
		{
			name: "crossing_both",
			p0:   vec.Vec2{X: 96, Y: 0},
			p1:   vec.Vec2{X: -32, Y: 64},
			expected: []edge{
				{yTop: 48, yBottom: 64, slope: 0, x: 0, wind: 1},
				{yTop: 0, yBottom: 16, slope: 0, x: 64, wind: 1},
				{yTop: 16, yBottom: 48, slope: -2, x: 63, wind: 1},
			},
		},
	}

	c := newTestClipper(64, 64)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges := c.clipSegment(tc.p0, tc.p1, nil)
			if len(edges) != len(tc.expected) {
				t.Fatalf("got %d edges %+v, expected %d", len(edges), edges, len(tc.expected))
			}
			for i, e := range edges {
				x := tc.expected[i]
				if e.yTop != x.yTop || e.yBottom != x.yBottom || e.wind != x.wind ||
					math.Abs(e.slope-x.slope) > 1e-9 || math.Abs(e.x-x.x) > 1e-9 {
					t.Errorf("edge %d: got %+v, expected %+v", i, e, x)
				}
			}
		})
	}
}

// TestClipBounds checks that clipped edges of random polygons stay within
// the clipping rectangle.
func TestClipBounds(t *testing.T) {
	const w, h = 64, 48
	c := newTestClipper(w, h)
	rng := rand.New(rand.NewPCG(1, 2))

	var edges []edge
	for range 200 {
		pts := make([]vec.Vec2, 3+rng.IntN(10))
		for i := range pts {
			pts[i] = vec.Vec2{
				X: rng.Float64()*3*w - w,
				Y: rng.Float64()*3*h - h,
			}
		}

		edges = c.clipPolygon(pts, edges[:0])

		for _, e := range edges {
			if e.yTop < 0 || e.yBottom > h || e.yTop >= e.yBottom {
				t.Fatalf("edge rows %d..%d out of range", e.yTop, e.yBottom)
			}
			for _, x := range []float64{e.x, e.x + e.slope*float64(e.yBottom-e.yTop-1)} {
				if x < -1e-6 || x > w+1e-6 {
					t.Fatalf("edge x %g out of range", x)
				}
			}
		}

		sum := make([]int, h)
		for _, e := range edges {
			for y := e.yTop; y < e.yBottom; y++ {
				sum[y] += e.wind
			}
		}
		for y, s := range sum {
			if s != 0 {
				t.Fatalf("row %d: winding sum %d, expected 0", y, s)
			}
		}
	}
}
