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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster/pixel"
)

// Canvas fills shapes into a bitmap.  Shapes are given in user space and
// mapped to device space (bitmap pixels, y pointing down) by the current
// transformation matrix.
//
// Pixel (x, y) is covered by a shape if its centre (x+0.5, y+0.5) lies
// inside the shape.  There is no anti-aliasing.
//
// Draw calls which cannot produce output are skipped without touching any
// pixel.  This happens for degenerate geometry, for a shader which fails
// to configure, and for a paint which leaves the destination unchanged.
//
// A Canvas is not safe for concurrent use.  Internal buffers grow as
// needed but never shrink.
type Canvas struct {
	dst   *pixel.Bitmap
	ctm   matrix.Matrix
	stack []matrix.Matrix
	clip  clipper

	// Internal buffers (reused across calls)
	points   []vec.Vec2    // device space vertices, all contours contiguous
	contours []int         // start index of each contour in points[]
	edges    []edge        // clipped edges of the current shape
	row      []pixel.Pixel // shader output for one span
}

// NewCanvas returns a canvas which draws into dst, with the identity
// transformation.
func NewCanvas(dst *pixel.Bitmap) *Canvas {
	return &Canvas{
		dst: dst,
		ctm: matrix.Identity,
		clip: clipper{bounds: rect.Rect{
			URx: float64(dst.Width),
			URy: float64(dst.Height),
		}},
	}
}

// Bitmap returns the bitmap the canvas draws into.
func (c *Canvas) Bitmap() *pixel.Bitmap {
	return c.dst
}

// CTM returns the current transformation matrix.
func (c *Canvas) CTM() matrix.Matrix {
	return c.ctm
}

// Save pushes a copy of the current transformation onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the transformation saved by the matching call to Save.
// Calling Restore without a matching Save has no effect.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		Logger().Warn("raster: Restore without matching Save")
		return
	}
	c.ctm = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Concat modifies the current transformation so that m is applied to
// user space coordinates before the previous transformation.
func (c *Canvas) Concat(m matrix.Matrix) {
	c.ctm = concat(m, c.ctm)
}

// Clear overwrites every pixel with col, ignoring the transformation.
func (c *Canvas) Clear(col pixel.Color) {
	c.dst.Fill(col.Pixel())
}

// FillRect fills the rectangle r.  If the transformation contains no
// rotation or shear, the device rectangle is rounded to whole pixels and
// filled directly.
func (c *Canvas) FillRect(r rect.Rect, p *Paint) {
	const op = "FillRect"
	if !c.prepare(op, p) {
		return
	}

	corners := []vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
	if !isAxisAligned(c.ctm) {
		c.fillConvex(op, corners, p)
		return
	}

	q0 := apply(c.ctm, corners[0])
	q1 := apply(c.ctm, corners[2])
	bounds := c.clip.bounds
	// clamp before converting, the corners may not fit into an int
	xLeft := roundToInt(max(min(q0.X, q1.X), bounds.LLx))
	xRight := roundToInt(min(max(q0.X, q1.X), bounds.URx))
	yTop := roundToInt(max(min(q0.Y, q1.Y), bounds.LLy))
	yBottom := roundToInt(min(max(q0.Y, q1.Y), bounds.URy))
	if xLeft >= xRight || yTop >= yBottom {
		logSkip(op, skipClipped)
		return
	}

	b := newBlitter(c.dst, p, c.row)
	scanRect(xLeft, yTop, xRight, yBottom, b.fillSpan)
	c.row = b.row
}

// FillConvexPolygon fills the polygon with vertices pts.  The polygon is
// closed automatically.  The result is only correct if the polygon is
// convex; use [Canvas.FillPath] for general shapes.
func (c *Canvas) FillConvexPolygon(pts []vec.Vec2, p *Paint) {
	const op = "FillConvexPolygon"
	if len(pts) < 3 {
		logSkip(op, skipDegenerate)
		return
	}
	if !c.prepare(op, p) {
		return
	}
	c.fillConvex(op, pts, p)
}

func (c *Canvas) fillConvex(op string, pts []vec.Vec2, p *Paint) {
	c.points = c.points[:0]
	for _, pt := range pts {
		c.points = append(c.points, apply(c.ctm, pt))
	}

	c.edges = c.clip.clipPolygon(c.points, c.edges[:0])
	if len(c.edges) < 2 {
		logSkip(op, skipClipped)
		return
	}

	b := newBlitter(c.dst, p, c.row)
	scanConvex(c.edges, b.fillSpan)
	c.row = b.row
}

// FillPath fills the path using the nonzero winding rule.  Every subpath
// is closed automatically.  Curves are replaced by straight lines to
// their end points; callers should flatten curves first.
func (c *Canvas) FillPath(pth path.Path, p *Paint) {
	const op = "FillPath"
	c.collectContours(pth)
	if len(c.points) < 3 {
		logSkip(op, skipDegenerate)
		return
	}
	if !c.prepare(op, p) {
		return
	}

	c.edges = c.edges[:0]
	for i, start := range c.contours {
		end := len(c.points)
		if i+1 < len(c.contours) {
			end = c.contours[i+1]
		}
		c.edges = c.clip.clipPolygon(c.points[start:end], c.edges)
	}
	if len(c.edges) < 2 {
		logSkip(op, skipClipped)
		return
	}

	b := newBlitter(c.dst, p, c.row)
	scanNonZero(c.edges, b.fillSpan)
	c.row = b.row
}

// collectContours walks the path and stores the device space vertices of
// all subpaths in c.points, with the start indices in c.contours.
func (c *Canvas) collectContours(pth path.Path) {
	c.points = c.points[:0]
	c.contours = c.contours[:0]

	var start vec.Vec2 // start of the current subpath, device space
	open := false      // whether a subpath has been started
	closed := false    // whether the last command was ClosePath
	lineTo := func(pt vec.Vec2) {
		if !open {
			return
		}
		if closed {
			c.contours = append(c.contours, len(c.points))
			c.points = append(c.points, start)
			closed = false
		}
		c.points = append(c.points, apply(c.ctm, pt))
	}

	for cmd, pts := range pth {
		switch cmd {
		case path.CmdMoveTo:
			start = apply(c.ctm, pts[0])
			c.contours = append(c.contours, len(c.points))
			c.points = append(c.points, start)
			open, closed = true, false
		case path.CmdLineTo:
			lineTo(pts[0])
		case path.CmdQuadTo, path.CmdCubeTo:
			lineTo(pts[len(pts)-1])
		case path.CmdClose:
			closed = open
		}
	}
}

// prepare checks the paint and configures its shader for the current
// transformation.  It returns false if the draw call should be skipped.
func (c *Canvas) prepare(op string, p *Paint) bool {
	if p.leavesDst() {
		logSkip(op, skipTransparent)
		return false
	}
	if p.Shader != nil && !p.Shader.Configure(c.ctm) {
		logSkip(op, skipShader)
		return false
	}
	return true
}
