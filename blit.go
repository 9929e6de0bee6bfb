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
	"slices"

	"seehuhn.de/go/raster/pixel"
)

const opaqueBlack = pixel.Pixel(0xFF000000)

// blitter composites horizontal spans of a paint into a bitmap.
type blitter struct {
	dst  *pixel.Bitmap
	mode pixel.Mode

	// solid fills
	src   pixel.Pixel
	blend pixel.BlendFunc

	// shaded fills
	sh  Shader
	row []pixel.Pixel
}

// newBlitter prepares a blitter for one draw call.  The row buffer is
// reused from buf if it is large enough.
func newBlitter(dst *pixel.Bitmap, p *Paint, buf []pixel.Pixel) *blitter {
	b := &blitter{
		dst:  dst,
		mode: p.Mode,
		sh:   p.Shader,
	}
	if b.sh == nil {
		b.src = p.Color.Pixel()
		b.blend = pixel.Lookup(p.Mode, b.src)
	} else {
		b.row = slices.Grow(buf[:0], dst.Width)[:dst.Width]
		if b.sh.IsOpaque() {
			// every source pixel falls into the opaque alpha class
			b.blend = pixel.Lookup(p.Mode, opaqueBlack)
		}
	}
	return b
}

// fillSpan composites the pixels xLeft <= x < xRight of row y.
// The span is clipped to the bitmap.
func (b *blitter) fillSpan(y, xLeft, xRight int) {
	if y < 0 || y >= b.dst.Height {
		return
	}
	xLeft = max(xLeft, 0)
	xRight = min(xRight, b.dst.Width)
	if xLeft >= xRight {
		return
	}

	dst := b.dst.Row(y)[xLeft:xRight]
	if b.sh == nil {
		for i, d := range dst {
			dst[i] = b.blend(d, b.src)
		}
		return
	}

	src := b.row[:len(dst)]
	b.sh.ShadeRow(xLeft, y, src)
	if b.blend != nil {
		for i, s := range src {
			dst[i] = b.blend(dst[i], s)
		}
		return
	}
	for i, s := range src {
		dst[i] = pixel.Lookup(b.mode, s)(dst[i], s)
	}
}
