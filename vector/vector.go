// Package vector generates and checks reference test vectors for the P-192
// field arithmetic.
//
// Expected results are computed with math/big alone, so a vector file is an
// independent check on the word-level code in p192. Vectors are stored one per
// line as
//
//	op x y n want
//
// with hex operands and "-" marking an unused field.
package vector

import (
	"math/big"

	"github.com/pkg/errors"

	"p192.mleku.dev"
)

// Op names a field operation covered by the vectors.
type Op string

// Operations.
const (
	OpAdd    Op = "add"
	OpAddOne Op = "addone"
	OpSub    Op = "sub"
	OpNeg    Op = "neg"
	OpTwice  Op = "twice"
	OpHalf   Op = "half"
	OpMul    Op = "mul"
	OpSqr    Op = "sqr"
	OpSqrN   Op = "sqrn"
	OpReduce Op = "reduce"
	OpInv    Op = "inv"
	OpSqrt   Op = "sqrt"
	OpAddExt Op = "addext"
	OpSubExt Op = "subext"
)

// AllOps lists every supported operation.
var AllOps = []Op{
	OpAdd, OpAddOne, OpSub, OpNeg, OpTwice, OpHalf, OpMul, OpSqr, OpSqrN,
	OpReduce, OpInv, OpSqrt, OpAddExt, OpSubExt,
}

// maxSquarings bounds the n operand of sqrn vectors.
const maxSquarings = 16

// ErrMismatch is returned by Check when the field code disagrees with the
// expected result.
var ErrMismatch = errors.New("result mismatch")

// Vector is a single test case. Operands and the expected result are
// big-endian hex without prefix. Y is empty for unary operations and N is
// only used by sqrn. For sqrt, an empty Want means a has no square root.
type Vector struct {
	Op   Op
	X    string
	Y    string
	N    int
	Want string
}

type operandKind int

const (
	kindField operandKind = iota
	kindExtended
	kindWide
)

type opInfo struct {
	binary bool
	kind   operandKind
}

var ops = map[Op]opInfo{
	OpAdd:    {binary: true, kind: kindField},
	OpAddOne: {kind: kindField},
	OpSub:    {binary: true, kind: kindField},
	OpNeg:    {kind: kindField},
	OpTwice:  {kind: kindField},
	OpHalf:   {kind: kindField},
	OpMul:    {binary: true, kind: kindField},
	OpSqr:    {kind: kindField},
	OpSqrN:   {kind: kindField},
	OpReduce: {kind: kindWide},
	OpInv:    {kind: kindField},
	OpSqrt:   {kind: kindField},
	OpAddExt: {binary: true, kind: kindExtended},
	OpSubExt: {binary: true, kind: kindExtended},
}

// ParseOp returns the Op named by s.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	if _, ok := ops[op]; !ok {
		return "", errors.Errorf("unknown operation %q", s)
	}
	return op, nil
}

var (
	prime        = p192.Modulus()
	primeSquared = new(big.Int).Mul(prime, prime)
	two384       = new(big.Int).Lsh(big.NewInt(1), 384)
)

func parseHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("malformed operand %q", s)
	}
	return v, nil
}

func toHex(v *big.Int) string {
	return v.Text(16)
}

// expected computes the result of op with math/big only. The second return
// value is false for a sqrt of a non-square.
func expected(op Op, x, y *big.Int, n int) (*big.Int, bool) {
	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(x, y)
	case OpAddOne:
		r.Add(x, big.NewInt(1))
	case OpSub:
		r.Sub(x, y)
	case OpNeg:
		r.Neg(x)
	case OpTwice:
		r.Lsh(x, 1)
	case OpHalf:
		r.Mul(x, new(big.Int).ModInverse(big.NewInt(2), prime))
	case OpMul:
		r.Mul(x, y)
	case OpSqr:
		r.Mul(x, x)
	case OpSqrN:
		r.Exp(x, new(big.Int).Lsh(big.NewInt(1), uint(n)), prime)
	case OpReduce:
		r.Set(x)
	case OpInv:
		if x.Sign() == 0 {
			return r, true
		}
		r.ModInverse(x, prime)
	case OpSqrt:
		if r.ModSqrt(x, prime) == nil {
			return nil, false
		}
	case OpAddExt:
		return r.Mod(r.Add(x, y), primeSquared), true
	case OpSubExt:
		return r.Mod(r.Sub(x, y), primeSquared), true
	}
	return r.Mod(r, prime), true
}

// newVector fills in the expected result for the given operands.
func newVector(op Op, x, y *big.Int, n int) Vector {
	v := Vector{Op: op, X: toHex(x), N: n}
	if y != nil {
		v.Y = toHex(y)
	}
	if want, ok := expected(op, x, y, n); ok {
		v.Want = toHex(want)
	}
	return v
}
