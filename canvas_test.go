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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster/pixel"
)

func rectPath(x0, y0, x1, y1 float64) path.Path {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close().Iter()
}

func rectPoints(x0, y0, x1, y1 float64) []vec.Vec2 {
	return []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func checkAll(t *testing.T, bm *pixel.Bitmap, expected pixel.Pixel) {
	t.Helper()
	for y := range bm.Height {
		for x := range bm.Width {
			if got := bm.Pixel(x, y); got != expected {
				t.Fatalf("pixel (%d, %d) = %08x, expected %08x", x, y, got, expected)
			}
		}
	}
}

// TestFillWholeBitmap fills a 4×4 bitmap with opaque red, using each of
// the fill methods.
func TestFillWholeBitmap(t *testing.T) {
	red := pixel.Red.Pixel()
	fills := map[string]func(c *Canvas, p *Paint){
		"FillRect": func(c *Canvas, p *Paint) {
			c.FillRect(rect.Rect{URx: 4, URy: 4}, p)
		},
		"FillConvexPolygon": func(c *Canvas, p *Paint) {
			c.FillConvexPolygon(rectPoints(0, 0, 4, 4), p)
		},
		"FillPath": func(c *Canvas, p *Paint) {
			c.FillPath(rectPath(0, 0, 4, 4), p)
		},
	}
	for name, fill := range fills {
		t.Run(name, func(t *testing.T) {
			bm := pixel.NewBitmap(4, 4)
			c := NewCanvas(bm)
			fill(c, NewPaint(pixel.Red))
			checkAll(t, bm, red)
			if red != 0xFFFF0000 {
				t.Errorf("red = %08x", red)
			}
		})
	}
}

func TestFillClearMode(t *testing.T) {
	bm := pixel.NewBitmap(4, 4)
	c := NewCanvas(bm)
	c.Clear(pixel.Red)

	c.FillRect(rect.Rect{URx: 4, URy: 4}, &Paint{Color: pixel.Blue, Mode: pixel.Clear})
	checkAll(t, bm, 0)
}

func TestFillSrcIdempotent(t *testing.T) {
	bm := pixel.NewBitmap(8, 8)
	c := NewCanvas(bm)
	c.Clear(pixel.Green)

	p := &Paint{Color: pixel.Color{R: 0.2, G: 0.4, B: 0.6, A: 0.5}, Mode: pixel.Src}
	pts := []vec.Vec2{{X: 1, Y: 0.5}, {X: 7.3, Y: 3}, {X: 2, Y: 7.8}}
	c.FillConvexPolygon(pts, p)
	once := slices.Clone(bm.Pix)
	c.FillConvexPolygon(pts, p)

	if !slices.Equal(once, bm.Pix) {
		t.Error("second Src fill changed the bitmap")
	}
	if bm.Pixel(3, 3) != p.Color.Pixel() {
		t.Errorf("pixel (3, 3) = %08x, expected %08x", bm.Pixel(3, 3), p.Color.Pixel())
	}
}

func TestFillTranslucent(t *testing.T) {
	bm := pixel.NewBitmap(3, 3)
	c := NewCanvas(bm)
	c.Clear(pixel.Blue)

	col := pixel.Color{R: 1, A: 0.5}
	c.FillRect(rect.Rect{LLx: 1, LLy: 1, URx: 2, URy: 2}, NewPaint(col))

	expected := pixel.Blend(pixel.SrcOver, pixel.Blue.Pixel(), col.Pixel())
	if got := bm.Pixel(1, 1); got != expected {
		t.Errorf("centre = %08x, expected %08x", got, expected)
	}
	if got := bm.Pixel(0, 0); got != pixel.Blue.Pixel() {
		t.Errorf("corner = %08x, expected %08x", got, pixel.Blue.Pixel())
	}
}

// TestFillLeavesDst checks draw calls which cannot change the bitmap.
func TestFillLeavesDst(t *testing.T) {
	grad, err := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 4}, pixel.Red, pixel.Blue)
	if err != nil {
		t.Fatal(err)
	}
	paints := map[string]*Paint{
		"transparent_src_over": NewPaint(pixel.Transparent),
		"dst":                  {Color: pixel.Red, Mode: pixel.Dst},
		"shader_dst":           {Shader: grad, Mode: pixel.Dst},
		"dst_over_opaque":      {Color: pixel.Red, Mode: pixel.DstOver},
	}
	for name, p := range paints {
		t.Run(name, func(t *testing.T) {
			bm := pixel.NewBitmap(4, 4)
			c := NewCanvas(bm)
			c.Clear(pixel.Green)
			c.FillPath(rectPath(0, 0, 4, 4), p)
			checkAll(t, bm, pixel.Green.Pixel())
		})
	}
}

func TestFillTransparentSrc(t *testing.T) {
	bm := pixel.NewBitmap(4, 4)
	c := NewCanvas(bm)
	c.Clear(pixel.Green)

	c.FillRect(rect.Rect{URx: 4, URy: 4}, &Paint{Color: pixel.Transparent, Mode: pixel.Src})
	checkAll(t, bm, 0)
}

func TestFillSingular(t *testing.T) {
	grad, err := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 4}, pixel.Red, pixel.Blue)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []*Paint{NewPaint(pixel.Red), {Shader: grad, Mode: pixel.SrcOver}} {
		bm := pixel.NewBitmap(4, 4)
		c := NewCanvas(bm)
		c.Concat(matrix.Matrix{1, 0, 0, 0, 0, 2})

		c.FillRect(rect.Rect{URx: 4, URy: 4}, p)
		c.FillConvexPolygon(rectPoints(0, 0, 4, 4), p)
		c.FillPath(rectPath(0, 0, 4, 4), p)
		checkAll(t, bm, 0)
	}
}

// TestFillEmptyBitmapShader checks that a shader without pixels skips the
// draw, even when the row buffer still holds colours from an earlier fill.
func TestFillEmptyBitmapShader(t *testing.T) {
	grad, err := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 4}, pixel.Red, pixel.Blue)
	if err != nil {
		t.Fatal(err)
	}
	empty := NewBitmapShader(pixel.NewBitmap(0, 0), matrix.Identity)

	for _, mode := range []pixel.Mode{pixel.Src, pixel.SrcOver} {
		t.Run(mode.String(), func(t *testing.T) {
			bm := pixel.NewBitmap(4, 4)
			c := NewCanvas(bm)
			c.FillRect(rect.Rect{URx: 4, URy: 4}, &Paint{Shader: grad, Mode: pixel.Src})
			c.Clear(pixel.White)

			p := &Paint{Shader: empty, Mode: mode}
			c.FillRect(rect.Rect{URx: 4, URy: 4}, p)
			c.FillConvexPolygon(rectPoints(0, 0, 4, 4), p)
			c.FillPath(rectPath(0, 0, 4, 4), p)
			checkAll(t, bm, pixel.White.Pixel())
		})
	}
}

// TestFillHugeCoordinates checks that shapes reaching far outside the
// device are clamped to the device instead of being dropped.
func TestFillHugeCoordinates(t *testing.T) {
	const big = 1e20
	red := pixel.Red.Pixel()

	t.Run("FillRect", func(t *testing.T) {
		for _, r := range []rect.Rect{
			{LLx: 0, LLy: 0, URx: big, URy: big},
			{LLx: -big, LLy: -big, URx: 4, URy: 4},
			{LLx: -big, LLy: -big, URx: big, URy: big},
		} {
			bm := pixel.NewBitmap(4, 4)
			NewCanvas(bm).FillRect(r, NewPaint(pixel.Red))
			checkAll(t, bm, red)
		}
	})

	t.Run("FillConvexPolygon", func(t *testing.T) {
		bm := pixel.NewBitmap(4, 4)
		NewCanvas(bm).FillConvexPolygon(rectPoints(-big, -big, big, big), NewPaint(pixel.Red))
		checkAll(t, bm, red)
	})

	t.Run("FillPath", func(t *testing.T) {
		bm := pixel.NewBitmap(4, 4)
		NewCanvas(bm).FillPath(rectPath(1, -big, 3, big), NewPaint(pixel.Red))
		for y := range 4 {
			for x := range 4 {
				expected := pixel.Pixel(0)
				if x == 1 || x == 2 {
					expected = red
				}
				if got := bm.Pixel(x, y); got != expected {
					t.Errorf("pixel (%d, %d) = %08x, expected %08x", x, y, got, expected)
				}
			}
		}
	})
}

func TestFillDegenerate(t *testing.T) {
	bm := pixel.NewBitmap(4, 4)
	c := NewCanvas(bm)
	p := NewPaint(pixel.Red)

	c.FillConvexPolygon(nil, p)
	c.FillConvexPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}}, p)
	c.FillPath((&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 3, Y: 3}).Iter(), p)
	c.FillPath(rectPath(0, 1.6, 4, 2.4), p)
	c.FillRect(rect.Rect{LLx: 1, LLy: 1, URx: 1, URy: 3}, p)
	c.FillRect(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}, p)
	checkAll(t, bm, 0)
}

// TestFillRectMatchesFillPath checks the axis-aligned fast path against
// the general scan converter.
func TestFillRectMatchesFillPath(t *testing.T) {
	rects := []rect.Rect{
		{LLx: 0.3, LLy: 1.6, URx: 3.7, URy: 3.2},
		{LLx: -3, LLy: -2, URx: 5.2, URy: 4.9},
		{LLx: 5, LLy: 6, URx: 1.2, URy: 0.9},
		{LLx: 1.49, LLy: 1.51, URx: 6.51, URy: 6.49},
	}
	ctms := []matrix.Matrix{
		matrix.Identity,
		matrix.Scale(1.5, 0.75),
		{-1, 0, 0, 1, 8, 0},
		{0.5, 0, 0, -2, 1, 9},
	}
	for i, r := range rects {
		for j, m := range ctms {
			fast := pixel.NewBitmap(8, 8)
			c := NewCanvas(fast)
			c.Concat(m)
			c.FillRect(r, NewPaint(pixel.Red))

			general := pixel.NewBitmap(8, 8)
			c = NewCanvas(general)
			c.Concat(m)
			c.FillPath(rectPath(r.LLx, r.LLy, r.URx, r.URy), NewPaint(pixel.Red))

			if !slices.Equal(fast.Pix, general.Pix) {
				t.Errorf("rect %d, ctm %d: FillRect and FillPath disagree", i, j)
			}
		}
	}
}

func TestFillRectRotated(t *testing.T) {
	m := matrix.RotateDeg(30)
	m[4], m[5] = 8, 2

	a := pixel.NewBitmap(16, 16)
	c := NewCanvas(a)
	c.Concat(m)
	c.FillRect(rect.Rect{LLx: 1, LLy: 1, URx: 9, URy: 6}, NewPaint(pixel.Red))

	b := pixel.NewBitmap(16, 16)
	c = NewCanvas(b)
	c.Concat(m)
	c.FillPath(rectPath(1, 1, 9, 6), NewPaint(pixel.Red))

	if !slices.Equal(a.Pix, b.Pix) {
		t.Error("FillRect and FillPath disagree")
	}
	if !slices.Contains(a.Pix, pixel.Red.Pixel()) {
		t.Error("nothing was drawn")
	}
}

func TestFillPathSubpaths(t *testing.T) {
	outer := rectPoints(1, 1, 9, 9)
	inner := rectPoints(3, 3, 7, 7)
	slices.Reverse(inner)

	// the inner square is left open, it is closed implicitly
	var d path.Data
	d.MoveTo(outer[0])
	for _, p := range outer[1:] {
		d.LineTo(p)
	}
	d.Close()
	d.MoveTo(inner[0])
	for _, p := range inner[1:] {
		d.LineTo(p)
	}

	bm := pixel.NewBitmap(10, 10)
	c := NewCanvas(bm)
	c.FillPath(d.Iter(), NewPaint(pixel.Red))

	red := pixel.Red.Pixel()
	cases := []struct {
		x, y     int
		expected pixel.Pixel
	}{
		{0, 0, 0},
		{1, 1, red},
		{2, 5, red},
		{5, 5, 0},
		{6, 6, 0},
		{7, 7, red},
		{8, 8, red},
		{9, 9, 0},
	}
	for _, tc := range cases {
		if got := bm.Pixel(tc.x, tc.y); got != tc.expected {
			t.Errorf("pixel (%d, %d) = %08x, expected %08x", tc.x, tc.y, got, tc.expected)
		}
	}
}

// TestFillPathAfterClose checks that a LineTo after ClosePath starts a
// new subpath at the start point of the closed one.
func TestFillPathAfterClose(t *testing.T) {
	pth := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 2}).
		LineTo(vec.Vec2{X: 0, Y: 2}).
		Close().
		LineTo(vec.Vec2{X: 2, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Iter()

	bm := pixel.NewBitmap(4, 4)
	c := NewCanvas(bm)
	c.FillPath(pth, NewPaint(pixel.Red))

	red := pixel.Red.Pixel()
	for _, p := range [][2]int{{0, 0}, {3, 1}, {0, 3}} {
		if got := bm.Pixel(p[0], p[1]); got != red {
			t.Errorf("pixel %v = %08x, expected %08x", p, got, red)
		}
	}
	if got := bm.Pixel(3, 3); got != 0 {
		t.Errorf("pixel (3, 3) = %08x, expected 0", got)
	}
}

func TestFillPathCurves(t *testing.T) {
	// curves are replaced by straight lines to their end points
	pth := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 4, Y: 0}).
		QuadTo(vec.Vec2{X: -50, Y: 2}, vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close().
		Iter()

	bm := pixel.NewBitmap(4, 4)
	c := NewCanvas(bm)
	c.FillPath(pth, NewPaint(pixel.Red))
	checkAll(t, bm, pixel.Red.Pixel())
}

func TestSaveRestore(t *testing.T) {
	c := NewCanvas(pixel.NewBitmap(4, 4))

	c.Save()
	c.Concat(matrix.Scale(2, 2))
	c.Concat(matrix.Matrix{1, 0, 0, 1, 1, 0})

	// user space is translated first, then scaled
	expected := matrix.Matrix{2, 0, 0, 2, 2, 0}
	if c.CTM() != expected {
		t.Errorf("CTM = %v, expected %v", c.CTM(), expected)
	}

	c.Save()
	c.Concat(matrix.Scale(3, 3))
	c.Restore()
	if c.CTM() != expected {
		t.Errorf("CTM after inner Restore = %v, expected %v", c.CTM(), expected)
	}

	c.Restore()
	if c.CTM() != matrix.Identity {
		t.Errorf("CTM after outer Restore = %v, expected identity", c.CTM())
	}

	// unbalanced Restore is ignored
	c.Concat(matrix.Scale(5, 5))
	c.Restore()
	if c.CTM() != matrix.Scale(5, 5) {
		t.Errorf("CTM after unbalanced Restore = %v", c.CTM())
	}
}

func TestTranslatedFill(t *testing.T) {
	bm := pixel.NewBitmap(6, 6)
	c := NewCanvas(bm)
	c.Concat(matrix.Matrix{1, 0, 0, 1, 2, 3})
	c.FillConvexPolygon(rectPoints(0, 0, 2, 2), NewPaint(pixel.Red))

	red := pixel.Red.Pixel()
	for y := range 6 {
		for x := range 6 {
			expected := pixel.Pixel(0)
			if x >= 2 && x < 4 && y >= 3 && y < 5 {
				expected = red
			}
			if got := bm.Pixel(x, y); got != expected {
				t.Errorf("pixel (%d, %d) = %08x, expected %08x", x, y, got, expected)
			}
		}
	}
}

func TestFillShaded(t *testing.T) {
	src := pixel.NewBitmap(2, 2)
	src.Set(0, 0, pixel.Red.Pixel())
	src.Set(1, 0, pixel.Green.Pixel())
	src.Set(0, 1, pixel.Blue.Pixel())
	src.Set(1, 1, pixel.Color{R: 1, A: 0.5}.Pixel())

	for _, mode := range []pixel.Mode{pixel.Src, pixel.SrcOver, pixel.Xor} {
		t.Run(mode.String(), func(t *testing.T) {
			bm := pixel.NewBitmap(2, 2)
			c := NewCanvas(bm)
			c.Clear(pixel.White)

			p := &Paint{Shader: NewBitmapShader(src, matrix.Identity), Mode: mode}
			c.FillRect(rect.Rect{URx: 2, URy: 2}, p)

			white := pixel.White.Pixel()
			for y := range 2 {
				for x := range 2 {
					expected := pixel.Blend(mode, white, src.Pixel(x, y))
					if got := bm.Pixel(x, y); got != expected {
						t.Errorf("pixel (%d, %d) = %08x, expected %08x", x, y, got, expected)
					}
				}
			}
		})
	}
}

// TestCanvasBuffersReused checks that, once the internal buffers have
// grown, the number of allocations per draw call does not depend on the
// size of the shape.
func TestCanvasBuffersReused(t *testing.T) {
	bm := pixel.NewBitmap(64, 64)
	c := NewCanvas(bm)
	grad, err := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 64}, pixel.Red, pixel.Blue)
	if err != nil {
		t.Fatal(err)
	}
	p := &Paint{Shader: grad, Mode: pixel.SrcOver}

	small := rectPath(1, 1, 5, 5)
	d := &path.Data{}
	for i := range 500 {
		phi := float64(i) * 2 * math.Pi / 500
		v := vec.Vec2{X: 32 + 30*math.Cos(phi), Y: 32 + 30*math.Sin(phi)}
		if i == 0 {
			d.MoveTo(v)
		} else {
			d.LineTo(v)
		}
	}
	large := d.Close().Iter()

	c.FillPath(large, p)
	smallAllocs := testing.AllocsPerRun(10, func() {
		c.FillPath(small, p)
	})
	largeAllocs := testing.AllocsPerRun(10, func() {
		c.FillPath(large, p)
	})
	if largeAllocs > smallAllocs {
		t.Errorf("large shape: %g allocations, small shape: %g", largeAllocs, smallAllocs)
	}
}
