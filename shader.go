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
	"seehuhn.de/go/raster/pixel"
)

// Shader computes per-pixel source colours for a fill.
//
// Before a draw call, the canvas calls Configure with the current
// transformation.  After a successful Configure, ShadeRow depends only on
// its arguments.
type Shader interface {
	// Configure prepares the shader for drawing with the given
	// user-to-device transformation.  If the combined transformation is
	// singular, or the shader has nothing to sample, Configure returns
	// false and the draw call is skipped.
	Configure(ctm matrix.Matrix) bool

	// ShadeRow writes the colours of the pixels (x, y), (x+1, y), ...,
	// (x+len(row)-1, y) into row.  Colours are sampled at pixel centres.
	ShadeRow(x, y int, row []pixel.Pixel)

	// IsOpaque reports whether every colour produced by the shader has
	// alpha 255.
	IsOpaque() bool
}

// Paint describes how a shape is filled.
type Paint struct {
	// Color is used when Shader is nil.
	Color pixel.Color

	// Shader, if set, overrides Color.
	Shader Shader

	// Mode is the compositing operator.  The zero value is [pixel.Clear];
	// use [NewPaint] for the usual source-over compositing.
	Mode pixel.Mode
}

// NewPaint returns a paint which draws the solid colour c using
// source-over compositing.
func NewPaint(c pixel.Color) *Paint {
	return &Paint{Color: c, Mode: pixel.SrcOver}
}

// leavesDst reports whether drawing with p cannot change any pixel.
func (p *Paint) leavesDst() bool {
	if p.Shader != nil {
		return p.Mode == pixel.Dst
	}
	return pixel.LeavesDst(p.Mode, p.Color.Pixel())
}
