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

// Package testcases contains the shapes used to test the scan converters
// against reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to render, in user space
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // how the path is filled
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill fills all subpaths using the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// FillConvex fills the first subpath, which must be a convex polygon,
// using the convex scan converter.
type FillConvex struct{}

func (FillConvex) isOperation() {}

// Vertices returns the vertices of the first subpath of p.  Curves
// contribute their end point only.
func Vertices(p path.Path) []vec.Vec2 {
	var res []vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if res != nil {
				return res
			}
			res = append(res, pts[0])
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			res = append(res, pts[len(pts)-1])
		case path.CmdClose:
			return res
		}
	}
	return res
}

type yieldFunc = func(path.Command, []vec.Vec2) bool

func moveTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

func closePath(yield yieldFunc) bool {
	return yield(path.CmdClose, nil)
}

// polygon builds a closed path through the given vertices.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !moveTo(yield, pts[0].X, pts[0].Y) {
			return
		}
		for _, p := range pts[1:] {
			if !lineTo(yield, p.X, p.Y) {
				return
			}
		}
		closePath(yield)
	}
}

// join concatenates the subpaths of several paths.
func join(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
