package nat

// mulAddWord returns the 64-bit value a*b + c + d split into its high and low
// words. The sum cannot overflow 64 bits for 32-bit inputs.
func mulAddWord(a, b, c, d uint32) (hi, lo uint32) {
	t := uint64(a)*uint64(b) + uint64(c) + uint64(d)
	return uint32(t >> 32), uint32(t)
}

// Mul sets zz to the full 384-bit product x * y.
func Mul(x, y *[Len]uint32, zz *[LenExt]uint32) {
	a, b := *x, *y

	var r [LenExt]uint32
	for i := 0; i < Len; i++ {
		var carry uint32
		for j := 0; j < Len; j++ {
			carry, r[i+j] = mulAddWord(a[i], b[j], r[i+j], carry)
		}
		r[i+Len] = carry
	}
	*zz = r
}

// Square sets zz to the full 384-bit square of x. The cross products are
// computed once and doubled, which saves 15 of the 36 word multiplications
// Mul would need.
func Square(x *[Len]uint32, zz *[LenExt]uint32) {
	a := *x

	var r [LenExt]uint32
	for i := 0; i < Len-1; i++ {
		var carry uint32
		for j := i + 1; j < Len; j++ {
			carry, r[i+j] = mulAddWord(a[i], a[j], r[i+j], carry)
		}
		r[i+Len] = carry
	}

	// Double the cross products. Their sum is below 2^383, so no bit is
	// shifted out of the top word.
	var c uint32
	for i := 0; i < LenExt; i++ {
		next := r[i]
		r[i] = next<<1 | c
		c = next >> 31
	}

	// Add the diagonal terms.
	var cc uint64
	for i := 0; i < Len; i++ {
		sq := uint64(a[i]) * uint64(a[i])
		cc += uint64(r[2*i]) + sq&0xFFFFFFFF
		r[2*i] = uint32(cc)
		cc >>= 32
		cc += uint64(r[2*i+1]) + sq>>32
		r[2*i+1] = uint32(cc)
		cc >>= 32
	}
	*zz = r
}
