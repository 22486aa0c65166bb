package p192

// pow2k1 holds the powers xk = a^(2^k - 1) that the inversion and square root
// addition chains reuse. The chain is 1, 2, 3, 6, 12, 24, 30, 31, 62, 124, 127.
type pow2k1 struct {
	x3, x31, x62, x127 FieldElement
}

func (c *pow2k1) compute(a *FieldElement) {
	var x2, x6, x12, x24, x30, x124 FieldElement

	x2.Square(a)
	x2.Mul(&x2, a)

	c.x3.Square(&x2)
	c.x3.Mul(&c.x3, a)

	x6.SquareN(&c.x3, 3)
	x6.Mul(&x6, &c.x3)

	x12.SquareN(&x6, 6)
	x12.Mul(&x12, &x6)

	x24.SquareN(&x12, 12)
	x24.Mul(&x24, &x12)

	x30.SquareN(&x24, 6)
	x30.Mul(&x30, &x6)

	c.x31.Square(&x30)
	c.x31.Mul(&c.x31, a)

	c.x62.SquareN(&c.x31, 31)
	c.x62.Mul(&c.x62, &c.x31)

	x124.SquareN(&c.x62, 62)
	x124.Mul(&x124, &c.x62)

	c.x127.SquareN(&x124, 3)
	c.x127.Mul(&c.x127, &c.x3)
}

// Inv sets r = a^-1, computed as a^(p-2). The inverse of zero is zero.
func (r *FieldElement) Inv(a *FieldElement) {
	// p - 2 in binary is 127 ones, a zero, 62 ones, a zero and a one.
	var c pow2k1
	c.compute(a)

	var t FieldElement
	t.Square(&c.x127)
	t.SquareN(&t, 62)
	t.Mul(&t, &c.x62)
	t.SquareN(&t, 2)
	t.Mul(&t, a)
	*r = t
}

// Sqrt sets r to a square root of a and reports whether one exists. When it
// does not, r holds the square root of -a instead.
func (r *FieldElement) Sqrt(a *FieldElement) bool {
	// p is 3 mod 4, so a^((p+1)/4) is a root of any square a. (p+1)/4 is
	// 2^190 - 2^62, that is 128 ones followed by 62 zeros.
	var c pow2k1
	c.compute(a)

	var t FieldElement
	t.Square(&c.x127)
	t.Mul(&t, a)
	t.SquareN(&t, 62)

	var check FieldElement
	check.Square(&t)
	ok := check.Equal(a)
	*r = t
	return ok
}
