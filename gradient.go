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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster/pixel"
)

// ErrNoColors is returned when a gradient is created without colours.
var ErrNoColors = errors.New("raster: gradient needs at least one color")

// LinearGradient interpolates colours along the line from P0 to P1.
// The colours are evenly spaced, with the first colour at P0 and the last
// at P1.  Beyond the end points the gradient is padded with the end
// colours.
type LinearGradient struct {
	colors []pixel.Color
	opaque bool

	// unit maps the interval [0, 1] on the x-axis onto the segment P0-P1.
	unit matrix.Matrix

	// inv maps device coordinates to gradient space.
	inv matrix.Matrix
}

// NewLinearGradient creates a gradient from p0 to p1.  The colours are
// copied and pinned to [0, 1].
func NewLinearGradient(p0, p1 vec.Vec2, colors ...pixel.Color) (*LinearGradient, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}

	g := &LinearGradient{
		colors: make([]pixel.Color, len(colors)),
		opaque: true,
	}
	for i, c := range colors {
		c = c.Pin()
		g.colors[i] = c
		if !c.IsOpaque() {
			g.opaque = false
		}
	}

	d := p1.Sub(p0)
	g.unit = matrix.Matrix{d.X, d.Y, -d.Y, d.X, p0.X, p0.Y}
	return g, nil
}

// Configure implements the [Shader] interface.  Configure fails if the
// two end points of the gradient coincide.
func (g *LinearGradient) Configure(ctm matrix.Matrix) bool {
	inv, ok := invert(concat(g.unit, ctm))
	if !ok {
		return false
	}
	g.inv = inv
	return true
}

// IsOpaque implements the [Shader] interface.
func (g *LinearGradient) IsOpaque() bool {
	return g.opaque
}

// ShadeRow implements the [Shader] interface.
func (g *LinearGradient) ShadeRow(x, y int, row []pixel.Pixel) {
	n := len(g.colors)
	if n == 1 {
		c := g.colors[0].Pixel()
		for i := range row {
			row[i] = c
		}
		return
	}

	t := apply(g.inv, vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}).X
	dt := g.inv[0]

	if n == 2 {
		c0, c1 := g.colors[0], g.colors[1]
		for i := range row {
			row[i] = c0.Lerp(c1, pinUnit(t)).Pixel()
			t += dt
		}
		return
	}

	segments := float64(n - 1)
	for i := range row {
		u := pinUnit(t)
		switch u {
		case 0:
			row[i] = g.colors[0].Pixel()
		case 1:
			row[i] = g.colors[n-1].Pixel()
		default:
			k := min(int(math.Floor(u*segments)), n-2)
			local := pinUnit(u*segments - float64(k))
			row[i] = g.colors[k].Lerp(g.colors[k+1], local).Pixel()
		}
		t += dt
	}
}

// pinUnit clamps t to [0, 1].  NaN becomes 0.
func pinUnit(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
