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

package pixel

// Fixed-point arithmetic for compositing.
//
// MulDiv255 spreads the four 8-bit channels of a pixel over the four
// 16-bit lanes of a uint64:
//
//	0xAARRGGBB  ->  0x00AA00GG00RR00BB
//
// The lane order does not matter as long as the mapping is undone
// afterwards.  Each lane then holds at most 255*255+128 < 2^16, so the
// multiply, the rounding bias and the correction term can be applied to
// all channels at once without carries crossing lanes.

const (
	laneMaskAG = 0xFF00FF00         // alpha and green within a Pixel
	laneMaskRB = 0x00FF00FF         // red and blue within a Pixel
	lanes128   = 0x0080008000800080 // 128 in every lane
	lanes255   = 0x00FF00FF00FF00FF // 255 in every lane
)

func expand(p Pixel) uint64 {
	x := uint64(p)
	return (x&laneMaskAG)<<24 | x&laneMaskRB
}

func compact(x uint64) Pixel {
	return Pixel((x>>24)&laneMaskAG | x&laneMaskRB)
}

// MulDiv255 multiplies every channel of p by s/255, rounding to nearest.
// The result is exact for all inputs: each channel equals
// round(c*s/255).
func MulDiv255(p Pixel, s uint8) Pixel {
	x := expand(p)*uint64(s) + lanes128
	x += (x >> 8) & lanes255
	return compact(x >> 8)
}

// div255 computes round(x/255) for x in [0, 255*255].
func div255(x uint32) uint8 {
	return uint8((x*0x10101 + 1<<23) >> 24)
}
