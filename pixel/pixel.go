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

// Package pixel implements premultiplied 8-bit RGBA pixels, the
// Porter-Duff compositing operators on them, and a simple raster buffer.
//
// A [Pixel] packs alpha, red, green and blue into one uint32 as
// 0xAARRGGBB.  Colour channels are premultiplied, so no channel
// ever exceeds the alpha value.
package pixel

import "math"

// Pixel is a premultiplied colour in 0xAARRGGBB layout.
type Pixel uint32

// Bit positions of the channels within a Pixel.
const (
	shiftA = 24
	shiftR = 16
	shiftG = 8
	shiftB = 0
)

// Pack assembles a pixel from premultiplied channel values.
// The caller must ensure that r, g and b do not exceed a.
func Pack(a, r, g, b uint8) Pixel {
	return Pixel(a)<<shiftA | Pixel(r)<<shiftR | Pixel(g)<<shiftG | Pixel(b)<<shiftB
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> shiftA) }

// R returns the premultiplied red channel.
func (p Pixel) R() uint8 { return uint8(p >> shiftR) }

// G returns the premultiplied green channel.
func (p Pixel) G() uint8 { return uint8(p >> shiftG) }

// B returns the premultiplied blue channel.
func (p Pixel) B() uint8 { return uint8(p >> shiftB) }

// withAlpha replaces the alpha channel of rgb by a.
func withAlpha(a uint8, rgb Pixel) Pixel {
	return Pixel(a)<<shiftA | rgb&0x00FFFFFF
}

// Color is a straight (non-premultiplied) colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Some frequently used colours.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
)

// Pin returns c with every channel clamped to [0, 1].
// NaN channels become 0.
func (c Color) Pin() Color {
	return Color{R: pin(c.R), G: pin(c.G), B: pin(c.B), A: pin(c.A)}
}

// IsOpaque reports whether the colour has full alpha.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// Pixel quantises the colour to a premultiplied pixel.
// Channels are pinned to [0, 1] first.
func (c Color) Pixel() Pixel {
	c = c.Pin()
	a := to8(c.A)
	return Pack(a, to8(c.R*c.A), to8(c.G*c.A), to8(c.B*c.A))
}

// Lerp returns the channel-wise linear interpolation between c and d.
// For t=0 the result is c, for t=1 it is d.
func (c Color) Lerp(d Color, t float64) Color {
	s := 1 - t
	return Color{
		R: c.R*s + d.R*t,
		G: c.G*s + d.G*t,
		B: c.B*s + d.B*t,
		A: c.A*s + d.A*t,
	}
}

func pin(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8 maps [0, 1] to 0..255, rounding to nearest.
func to8(x float64) uint8 {
	return uint8(math.Floor(x*255 + 0.5))
}
