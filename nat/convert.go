package nat

import (
	"encoding/binary"
	"math/big"
)

const (
	// Bytes is the size of the big-endian encoding of a single-width value.
	Bytes = Len * 4
	// BytesExt is the size of the big-endian encoding of a double-width value.
	BytesExt = LenExt * 4
)

var (
	mask192 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1))
	mask384 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 384), big.NewInt(1))
)

// FromBig returns the low 192 bits of x. Negative values are taken in two's
// complement, so the result is x mod 2^192.
func FromBig(x *big.Int) [Len]uint32 {
	var b [Bytes]byte
	new(big.Int).And(x, mask192).FillBytes(b[:])
	var z [Len]uint32
	decode(b[:], z[:])
	return z
}

// FromBigExt returns the low 384 bits of x, as FromBig does for 192 bits.
func FromBigExt(x *big.Int) [LenExt]uint32 {
	var b [BytesExt]byte
	new(big.Int).And(x, mask384).FillBytes(b[:])
	var zz [LenExt]uint32
	decode(b[:], zz[:])
	return zz
}

// ToBig returns x as a big integer.
func ToBig(x *[Len]uint32) *big.Int {
	var b [Bytes]byte
	encode(x[:], b[:])
	return new(big.Int).SetBytes(b[:])
}

// ToBigExt returns xx as a big integer.
func ToBigExt(xx *[LenExt]uint32) *big.Int {
	var b [BytesExt]byte
	encode(xx[:], b[:])
	return new(big.Int).SetBytes(b[:])
}

// SetBytes decodes a 24-byte big-endian value. The second return value is
// false if b has the wrong length, in which case the result is zero.
func SetBytes(b []byte) ([Len]uint32, bool) {
	var z [Len]uint32
	if len(b) != Bytes {
		return z, false
	}
	decode(b, z[:])
	return z, true
}

// SetBytesExt decodes a 48-byte big-endian value.
func SetBytesExt(b []byte) ([LenExt]uint32, bool) {
	var zz [LenExt]uint32
	if len(b) != BytesExt {
		return zz, false
	}
	decode(b, zz[:])
	return zz, true
}

// PutBytes writes x to b as 24 big-endian bytes. It panics if b is shorter.
func PutBytes(x *[Len]uint32, b []byte) {
	if len(b) < Bytes {
		panic("output buffer must be at least 24 bytes")
	}
	encode(x[:], b[:Bytes])
}

// decode reads big-endian bytes into little-endian words.
func decode(b []byte, z []uint32) {
	n := len(z)
	for i := 0; i < n; i++ {
		z[i] = binary.BigEndian.Uint32(b[4*(n-1-i):])
	}
}

// encode writes little-endian words as big-endian bytes.
func encode(z []uint32, b []byte) {
	n := len(z)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(b[4*(n-1-i):], z[i])
	}
}
