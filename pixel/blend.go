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

import "fmt"

// Mode selects a Porter-Duff compositing operator.
// In the formulas below, S and D are the premultiplied source and
// destination pixels, Sa and Da their alpha values in [0, 1].
type Mode uint8

const (
	Clear   Mode = iota // 0
	Src                 // S
	Dst                 // D
	SrcOver             // S + D*(1-Sa)
	DstOver             // S*(1-Da) + D
	SrcIn               // S*Da
	DstIn               // D*Sa
	SrcOut              // S*(1-Da)
	DstOut              // D*(1-Sa)
	SrcATop             // S*Da + D*(1-Sa)
	DstATop             // S*(1-Da) + D*Sa
	Xor                 // S*(1-Da) + D*(1-Sa)

	numModes
)

var modeNames = [numModes]string{
	"clear", "src", "dst", "src-over", "dst-over", "src-in", "dst-in",
	"src-out", "dst-out", "src-atop", "dst-atop", "xor",
}

func (m Mode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// BlendFunc combines a destination pixel with a source pixel.
type BlendFunc func(dst, src Pixel) Pixel

// alphaClass partitions source pixels by their alpha value.  Each
// operator is specialised per class, so the per-pixel code never needs
// to branch on the alpha value.
type alphaClass uint8

const (
	alphaZero alphaClass = iota
	alphaTranslucent
	alphaOpaque

	numAlphaClasses
)

func classify(src Pixel) alphaClass {
	switch src.A() {
	case 0:
		return alphaZero
	case 255:
		return alphaOpaque
	default:
		return alphaTranslucent
	}
}

// op names one of the specialised blend formulas.
type op uint8

const (
	opClear op = iota
	opSrc
	opDst
	opSrcOver
	opDstOver
	opSrcIn
	opDstIn
	opSrcOut
	opDstOut
	opSrcATop
	opDstATop
	opXor
)

var opFuncs = [...]BlendFunc{
	opClear:   blendClear,
	opSrc:     blendSrc,
	opDst:     blendDst,
	opSrcOver: blendSrcOver,
	opDstOver: blendDstOver,
	opSrcIn:   blendSrcIn,
	opDstIn:   blendDstIn,
	opSrcOut:  blendSrcOut,
	opDstOut:  blendDstOut,
	opSrcATop: blendSrcATop,
	opDstATop: blendDstATop,
	opXor:     blendXor,
}

// opTable selects the formula for every (mode, source alpha class) pair.
// Columns are zero, translucent and opaque source alpha.
var opTable = [numModes][numAlphaClasses]op{
	Clear:   {opClear, opClear, opClear},
	Src:     {opClear, opSrc, opSrc},
	Dst:     {opDst, opDst, opDst},
	SrcOver: {opDst, opSrcOver, opSrc},
	DstOver: {opDst, opDstOver, opDstOver},
	SrcIn:   {opClear, opSrcIn, opSrcIn},
	DstIn:   {opClear, opDstIn, opDst},
	SrcOut:  {opClear, opSrcOut, opSrcOut},
	DstOut:  {opDst, opDstOut, opClear},
	SrcATop: {opDst, opSrcATop, opSrcATop},
	DstATop: {opClear, opDstATop, opDstATop},
	Xor:     {opDst, opXor, opSrcOut},
}

// Lookup returns the blend function for drawing src with the given mode.
// Modes outside the defined range behave like SrcOver.
func Lookup(m Mode, src Pixel) BlendFunc {
	return opFuncs[lookupOp(m, src)]
}

// LeavesDst reports whether drawing src with mode m leaves every
// destination pixel unchanged.
func LeavesDst(m Mode, src Pixel) bool {
	return lookupOp(m, src) == opDst
}

func lookupOp(m Mode, src Pixel) op {
	if m >= numModes {
		m = SrcOver
	}
	return opTable[m][classify(src)]
}

// Blend composites src onto dst using mode m.
func Blend(m Mode, dst, src Pixel) Pixel {
	return Lookup(m, src)(dst, src)
}

func blendClear(dst, src Pixel) Pixel { return 0 }

func blendSrc(dst, src Pixel) Pixel { return src }

func blendDst(dst, src Pixel) Pixel { return dst }

func blendSrcOver(dst, src Pixel) Pixel {
	return src + MulDiv255(dst, 255-src.A())
}

func blendDstOver(dst, src Pixel) Pixel {
	return dst + MulDiv255(src, 255-dst.A())
}

func blendSrcIn(dst, src Pixel) Pixel {
	return MulDiv255(src, dst.A())
}

func blendDstIn(dst, src Pixel) Pixel {
	return MulDiv255(dst, src.A())
}

func blendSrcOut(dst, src Pixel) Pixel {
	return MulDiv255(src, 255-dst.A())
}

func blendDstOut(dst, src Pixel) Pixel {
	return MulDiv255(dst, 255-src.A())
}

// The sum of the two rounded terms can exceed the exact alpha by one,
// so the alpha channel is set explicitly.
func blendSrcATop(dst, src Pixel) Pixel {
	da := dst.A()
	rgb := MulDiv255(src, da) + MulDiv255(dst, 255-src.A())
	return withAlpha(da, rgb)
}

func blendDstATop(dst, src Pixel) Pixel {
	sa := src.A()
	rgb := MulDiv255(dst, sa) + MulDiv255(src, 255-dst.A())
	return withAlpha(sa, rgb)
}

func blendXor(dst, src Pixel) Pixel {
	switch dst.A() {
	case 0:
		return src
	case 255:
		return blendDstOut(dst, src)
	}
	return MulDiv255(dst, 255-src.A()) + MulDiv255(src, 255-dst.A())
}
