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

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrEmptyBitmap is returned when a bitmap would have no pixels.
var ErrEmptyBitmap = errors.New("pixel: empty bitmap")

// Bitmap is a row-major buffer of premultiplied pixels.
// Pixel (x, y) is stored at Pix[y*Stride+x].
//
// Bitmap implements [image.Image], so it can be passed directly to
// image/png and similar encoders.
type Bitmap struct {
	Width, Height int
	Stride        int
	Pix           []Pixel

	// Opaque declares that every pixel has alpha 255.
	// Shaders sampling the bitmap use this as their opacity hint.
	Opaque bool
}

// NewBitmap allocates a width×height bitmap of transparent black pixels.
func NewBitmap(width, height int) *Bitmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]Pixel, width*height),
	}
}

// FromImage converts img into a new bitmap, premultiplying as needed.
func FromImage(img image.Image) (*Bitmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyBitmap
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)

	bm := NewBitmap(b.Dx(), b.Dy())
	opaque := true
	for y := range bm.Height {
		row := bm.Row(y)
		src := rgba.Pix[y*rgba.Stride:]
		for x := range row {
			s := src[4*x : 4*x+4]
			row[x] = Pack(s[3], s[0], s[1], s[2])
			if s[3] != 255 {
				opaque = false
			}
		}
	}
	bm.Opaque = opaque
	return bm, nil
}

// Row returns the pixels of row y.  The slice aliases the bitmap.
func (bm *Bitmap) Row(y int) []Pixel {
	start := y * bm.Stride
	return bm.Pix[start : start+bm.Width]
}

// Pixel returns the pixel at (x, y).  Coordinates outside the bitmap
// give transparent black.
func (bm *Bitmap) Pixel(x, y int) Pixel {
	if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
		return 0
	}
	return bm.Pix[y*bm.Stride+x]
}

// Set stores p at (x, y).  Coordinates outside the bitmap are ignored.
func (bm *Bitmap) Set(x, y int, p Pixel) {
	if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
		return
	}
	bm.Pix[y*bm.Stride+x] = p
}

// Fill overwrites every pixel with p.
func (bm *Bitmap) Fill(p Pixel) {
	for y := range bm.Height {
		row := bm.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// IsOpaque reports whether the bitmap is declared to be fully opaque.
func (bm *Bitmap) IsOpaque() bool {
	return bm.Opaque
}

// ColorModel implements [image.Image].
func (bm *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements [image.Image].
func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.Width, bm.Height)
}

// At implements [image.Image].
func (bm *Bitmap) At(x, y int) color.Color {
	p := bm.Pixel(x, y)
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}
