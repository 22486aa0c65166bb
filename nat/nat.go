// Package nat implements fixed-width unsigned integer arithmetic over 192-bit
// (6 word) and 384-bit (12 word) values stored as little-endian arrays of
// 32-bit words.
//
// The functions here know nothing about any modulus. They report carries and
// borrows to the caller, which decides how to correct for them. Outputs may
// alias inputs unless stated otherwise.
package nat

import (
	"math/bits"
)

const (
	// Len is the number of words in a single-width value.
	Len = 6
	// LenExt is the number of words in a double-width value.
	LenExt = 12
)

// Add sets z = x + y and returns the carry out of the top word.
func Add(x, y, z *[Len]uint32) uint32 {
	var c uint32
	for i := 0; i < Len; i++ {
		z[i], c = bits.Add32(x[i], y[i], c)
	}
	return c
}

// AddTo sets z = z + x and returns the carry.
func AddTo(x, z *[Len]uint32) uint32 {
	return Add(x, z, z)
}

// AddExt sets zz = xx + yy and returns the carry.
func AddExt(xx, yy, zz *[LenExt]uint32) uint32 {
	var c uint32
	for i := 0; i < LenExt; i++ {
		zz[i], c = bits.Add32(xx[i], yy[i], c)
	}
	return c
}

// Sub sets z = x - y and returns 1 if the subtraction borrowed.
func Sub(x, y, z *[Len]uint32) uint32 {
	var b uint32
	for i := 0; i < Len; i++ {
		z[i], b = bits.Sub32(x[i], y[i], b)
	}
	return b
}

// SubFrom sets z = z - x and returns the borrow.
func SubFrom(x, z *[Len]uint32) uint32 {
	return Sub(z, x, z)
}

// SubExt sets zz = xx - yy and returns the borrow.
func SubExt(xx, yy, zz *[LenExt]uint32) uint32 {
	var b uint32
	for i := 0; i < LenExt; i++ {
		zz[i], b = bits.Sub32(xx[i], yy[i], b)
	}
	return b
}

// Gte reports whether x >= y.
func Gte(x, y *[Len]uint32) bool {
	for i := Len - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return x[i] > y[i]
		}
	}
	return true
}

// GteExt reports whether xx >= yy.
func GteExt(xx, yy *[LenExt]uint32) bool {
	for i := LenExt - 1; i >= 0; i-- {
		if xx[i] != yy[i] {
			return xx[i] > yy[i]
		}
	}
	return true
}

// Inc adds one to z in place and returns the carry.
func Inc(z *[Len]uint32) uint32 {
	return AddWord(1, z, 0)
}

// AddWord adds x at word offset off of z, propagating the carry through the
// remaining words. It returns the carry out of the top word.
func AddWord(x uint32, z *[Len]uint32, off int) uint32 {
	if off < 0 || off >= Len {
		panic("word offset out of range")
	}
	c := x
	for i := off; i < Len && c != 0; i++ {
		z[i], c = bits.Add32(z[i], c, 0)
	}
	return c
}

// ShiftUpBit sets z = (x << 1) | (c & 1) and returns the bit shifted out of
// the top word.
func ShiftUpBit(x, z *[Len]uint32, c uint32) uint32 {
	c &= 1
	for i := 0; i < Len; i++ {
		next := x[i]
		z[i] = next<<1 | c
		c = next >> 31
	}
	return c
}

// ShiftDownBit sets z = (x >> 1) | (c & 1) << 191 and returns the bit shifted
// out of the bottom word.
func ShiftDownBit(x, z *[Len]uint32, c uint32) uint32 {
	c &= 1
	for i := Len - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>1 | c<<31
		c = next & 1
	}
	return c
}

// IsZero reports whether every word of x is zero.
func IsZero(x *[Len]uint32) bool {
	var acc uint32
	for i := 0; i < Len; i++ {
		acc |= x[i]
	}
	return acc == 0
}

// IsOne reports whether x == 1.
func IsOne(x *[Len]uint32) bool {
	acc := x[0] ^ 1
	for i := 1; i < Len; i++ {
		acc |= x[i]
	}
	return acc == 0
}

// IsZeroExt reports whether every word of xx is zero.
func IsZeroExt(xx *[LenExt]uint32) bool {
	var acc uint32
	for i := 0; i < LenExt; i++ {
		acc |= xx[i]
	}
	return acc == 0
}

// Zero clears z.
func Zero(z *[Len]uint32) {
	*z = [Len]uint32{}
}

// ZeroExt clears zz.
func ZeroExt(zz *[LenExt]uint32) {
	*zz = [LenExt]uint32{}
}
