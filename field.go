package p192

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"

	"p192.mleku.dev/nat"
)

// FieldElement represents an element of the field of integers modulo the
// P-192 prime 2^192 - 2^64 - 1, as six 32-bit words, least significant first.
//
// Every method that writes a FieldElement leaves it in canonical form, that is
// strictly below the prime. Inputs are assumed canonical and are not checked.
// The receiver may alias any argument.
type FieldElement [nat.Len]uint32

// ExtendedElement is a double-width (384-bit) value, least significant word
// first. It holds unreduced products and the running sums callers keep at
// double width before a single reduction.
type ExtendedElement [nat.LenExt]uint32

// Field constants
const (
	// Top word of the prime. A value whose top word is below this cannot be
	// larger than the prime, so the full comparison is skipped.
	fieldP5 = 0xFFFFFFFF
	// Top word of the extended modulus, used the same way.
	fieldPExt11 = 0xFFFFFFFF
)

var (
	// fieldP is 2^192 - 2^64 - 1.
	fieldP = [nat.Len]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFE, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}

	// fieldPExt is the square of the prime, the bound for extended values.
	fieldPExt = [nat.LenExt]uint32{
		0x00000001, 0x00000000, 0x00000002, 0x00000000, 0x00000001, 0x00000000,
		0xFFFFFFFE, 0xFFFFFFFF, 0xFFFFFFFD, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	}
)

// Field element constants
var (
	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{1}
)

var (
	errFieldLength = errors.New("field element byte array must be 24 bytes")
	errFieldHex    = errors.New("field element hex string is malformed")
)

// Modulus returns the field prime as a big integer.
func Modulus() *big.Int {
	return nat.ToBig(&fieldP)
}

func (r *FieldElement) words() *[nat.Len]uint32 {
	return (*[nat.Len]uint32)(r)
}

func (rr *ExtendedElement) words() *[nat.LenExt]uint32 {
	return (*[nat.LenExt]uint32)(rr)
}

// reduceOnce subtracts the prime once if the preceding operation carried out
// of the top word or left a value at or above the prime. The cheap top word
// check short circuits the full comparison for nearly all values.
func (r *FieldElement) reduceOnce(carry uint32) {
	z := r.words()
	if carry != 0 || (z[5] == fieldP5 && nat.Gte(z, &fieldP)) {
		nat.SubFrom(&fieldP, z)
	}
}

// Set sets r = a.
func (r *FieldElement) Set(a *FieldElement) {
	*r = *a
}

// SetInt sets r to a small integer. Every uint32 is below the prime.
func (r *FieldElement) SetInt(a uint32) {
	*r = FieldElement{a}
}

// Clear sets r to zero.
func (r *FieldElement) Clear() {
	nat.Zero(r.words())
}

// IsZero returns true if r is zero
func (r *FieldElement) IsZero() bool {
	return nat.IsZero(r.words())
}

// IsOne returns true if r is one
func (r *FieldElement) IsOne() bool {
	return nat.IsOne(r.words())
}

// IsOdd returns true if r is odd
func (r *FieldElement) IsOdd() bool {
	return r[0]&1 == 1
}

// Equal returns true if r and a are the same element. It runs in constant
// time.
func (r *FieldElement) Equal(a *FieldElement) bool {
	var acc uint32
	for i := 0; i < nat.Len; i++ {
		acc |= r[i] ^ a[i]
	}
	return subtle.ConstantTimeEq(int32(acc), 0) == 1
}

// Add sets r = a + b.
//
// Both inputs are below the prime, so the raw sum is below twice the prime
// and one conditional subtraction is enough.
func (r *FieldElement) Add(a, b *FieldElement) {
	c := nat.Add(a.words(), b.words(), r.words())
	r.reduceOnce(c)
}

// AddOne sets r = a + 1.
func (r *FieldElement) AddOne(a *FieldElement) {
	*r = *a
	c := nat.Inc(r.words())
	r.reduceOnce(c)
}

// Sub sets r = a - b. The raw difference lies in (-p, p), so a borrow is
// corrected by adding the prime once.
func (r *FieldElement) Sub(a, b *FieldElement) {
	if nat.Sub(a.words(), b.words(), r.words()) != 0 {
		nat.AddTo(&fieldP, r.words())
	}
}

// Negate sets r = -a.
func (r *FieldElement) Negate(a *FieldElement) {
	if a.IsZero() {
		r.Clear()
		return
	}
	nat.Sub(&fieldP, a.words(), r.words())
}

// Twice sets r = 2a.
func (r *FieldElement) Twice(a *FieldElement) {
	c := nat.ShiftUpBit(a.words(), r.words(), 0)
	r.reduceOnce(c)
}

// Half sets r = a/2, the product of a and the inverse of 2.
//
// An even a is shifted down directly. An odd a has the (odd) prime added to
// make it even; the carry out of that addition becomes the top bit of the
// shifted result.
func (r *FieldElement) Half(a *FieldElement) {
	if !a.IsOdd() {
		nat.ShiftDownBit(a.words(), r.words(), 0)
		return
	}
	c := nat.Add(a.words(), &fieldP, r.words())
	nat.ShiftDownBit(r.words(), r.words(), c)
}

// Mul sets r = a * b.
func (r *FieldElement) Mul(a, b *FieldElement) {
	var tt ExtendedElement
	nat.Mul(a.words(), b.words(), tt.words())
	r.Reduce(&tt)
}

// Square sets r = a^2.
func (r *FieldElement) Square(a *FieldElement) {
	var tt ExtendedElement
	nat.Square(a.words(), tt.words())
	r.Reduce(&tt)
}

// SquareN sets r = a^(2^n) by squaring n times. n must be positive; anything
// else is a programming error and panics.
func (r *FieldElement) SquareN(a *FieldElement, n int) {
	if n <= 0 {
		panic("square count must be positive")
	}

	var tt ExtendedElement
	nat.Square(a.words(), tt.words())
	r.Reduce(&tt)
	for n--; n > 0; n-- {
		nat.Square(r.words(), tt.words())
		r.Reduce(&tt)
	}
}

// Reduce sets r = xx mod p for any 384-bit xx.
//
// Since 2^192 = 2^64 + 1 (mod p), each of the six high words xx[6..11] is
// added back into the low half twice, once at its own offset minus six words
// and once two words higher. Words 10 and 11 land a further 2^192 up, so they
// wrap around once more. Collecting the terms per output word:
//
//	z0 += xx6 + xx10         z1 += xx7 + xx11
//	z2 += xx6 + xx8 + xx10   z3 += xx7 + xx9 + xx11
//	z4 += xx8 + xx10         z5 += xx9 + xx11
//
// The sums are accumulated in 64 bits and the word left over above 2^192 is
// folded by Reduce32.
func (r *FieldElement) Reduce(xx *ExtendedElement) {
	xx06, xx07 := uint64(xx[6]), uint64(xx[7])
	xx08, xx09 := uint64(xx[8]), uint64(xx[9])
	xx10, xx11 := uint64(xx[10]), uint64(xx[11])

	t0 := xx06 + xx10
	t1 := xx07 + xx11

	var cc uint64
	cc += uint64(xx[0]) + t0
	z0 := uint32(cc)
	cc >>= 32
	cc += uint64(xx[1]) + t1
	z1 := uint32(cc)
	cc >>= 32

	t0 += xx08
	t1 += xx09

	cc += uint64(xx[2]) + t0
	z2 := uint32(cc)
	cc >>= 32
	cc += uint64(xx[3]) + t1
	z3 := uint32(cc)
	cc >>= 32

	t0 -= xx06
	t1 -= xx07

	cc += uint64(xx[4]) + t0
	z4 := uint32(cc)
	cc >>= 32
	cc += uint64(xx[5]) + t1
	z5 := uint32(cc)
	cc >>= 32

	*r = FieldElement{z0, z1, z2, z3, z4, z5}
	r.Reduce32(uint32(cc))
}

// Reduce32 folds a carry word x sitting above 2^192 back into r, then
// subtracts the prime if the result is not canonical. x * 2^192 is congruent
// to x * (2^64 + 1), so x is added at word offsets 0 and 2.
func (r *FieldElement) Reduce32(x uint32) {
	z := r.words()
	var c uint32
	if x != 0 {
		c = nat.AddWord(x, z, 0)
		c += nat.AddWord(x, z, 2)
	}
	r.reduceOnce(c)
}

// SetBig sets r to the low 192 bits of x, minus the prime if those bits are
// at or above it. Negative x is taken in two's complement.
func (r *FieldElement) SetBig(x *big.Int) {
	*r = nat.FromBig(x)
	r.reduceOnce(0)
}

// FromBigInteger returns a new field element holding x as SetBig does.
func FromBigInteger(x *big.Int) *FieldElement {
	var r FieldElement
	r.SetBig(x)
	return &r
}

// Big returns r as a big integer.
func (r *FieldElement) Big() *big.Int {
	return nat.ToBig(r.words())
}

// SetBytes sets r from a 24-byte big-endian array. A value at or above the
// prime is reduced and reported through overflow.
func (r *FieldElement) SetBytes(b []byte) (overflow bool, err error) {
	z, ok := nat.SetBytes(b)
	if !ok {
		return false, errFieldLength
	}
	overflow = z[5] == fieldP5 && nat.Gte(&z, &fieldP)
	*r = z
	r.reduceOnce(0)
	return overflow, nil
}

// Bytes returns the 24-byte big-endian encoding of r.
func (r *FieldElement) Bytes() [nat.Bytes]byte {
	var b [nat.Bytes]byte
	nat.PutBytes(r.words(), b[:])
	return b
}

// SetHex sets r from a big-endian hex string of at most 48 digits. Shorter
// strings are zero padded on the left.
func (r *FieldElement) SetHex(s string) error {
	if len(s) > 2*nat.Bytes {
		return errFieldHex
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return errFieldHex
	}
	var b [nat.Bytes]byte
	copy(b[nat.Bytes-len(raw):], raw)
	_, err = r.SetBytes(b[:])
	return err
}

// String returns r as 48 hex digits.
func (r *FieldElement) String() string {
	b := r.Bytes()
	return hex.EncodeToString(b[:])
}

// Add sets rr = aa + bb, keeping the sum below the extended modulus.
func (rr *ExtendedElement) Add(aa, bb *ExtendedElement) {
	zz := rr.words()
	c := nat.AddExt(aa.words(), bb.words(), zz)
	if c != 0 || (zz[11] == fieldPExt11 && nat.GteExt(zz, &fieldPExt)) {
		nat.SubExt(zz, &fieldPExt, zz)
	}
}

// Sub sets rr = aa - bb, adding the extended modulus back on borrow.
func (rr *ExtendedElement) Sub(aa, bb *ExtendedElement) {
	zz := rr.words()
	if nat.SubExt(aa.words(), bb.words(), zz) != 0 {
		nat.AddExt(zz, &fieldPExt, zz)
	}
}

// Mul sets rr to the unreduced product of a and b.
func (rr *ExtendedElement) Mul(a, b *FieldElement) {
	nat.Mul(a.words(), b.words(), rr.words())
}

// SetBig sets rr to the low 384 bits of x.
func (rr *ExtendedElement) SetBig(x *big.Int) {
	*rr = nat.FromBigExt(x)
}

// Big returns rr as a big integer.
func (rr *ExtendedElement) Big() *big.Int {
	return nat.ToBigExt(rr.words())
}

// IsZero returns true if rr is zero
func (rr *ExtendedElement) IsZero() bool {
	return nat.IsZeroExt(rr.words())
}
