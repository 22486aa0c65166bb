package vector

import (
	"math/big"

	"github.com/pkg/errors"

	"p192.mleku.dev"
)

func fieldOperand(s string) (*p192.FieldElement, error) {
	v, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	if v.Cmp(prime) >= 0 {
		return nil, errors.Errorf("operand %s is not a canonical field element", s)
	}
	var fe p192.FieldElement
	fe.SetBig(v)
	return &fe, nil
}

func extendedOperand(s string, bound *big.Int) (*p192.ExtendedElement, error) {
	v, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	if v.Cmp(bound) >= 0 {
		return nil, errors.Errorf("operand %s is out of range", s)
	}
	var xx p192.ExtendedElement
	xx.SetBig(v)
	return &xx, nil
}

// compute runs v through the field code and returns the result as hex. The
// hex string is empty for a sqrt with no root.
func compute(v Vector) (string, error) {
	info, ok := ops[v.Op]
	if !ok {
		return "", errors.Errorf("unknown operation %q", v.Op)
	}

	switch info.kind {
	case kindWide:
		xx, err := extendedOperand(v.X, two384)
		if err != nil {
			return "", err
		}
		var r p192.FieldElement
		r.Reduce(xx)
		return toHex(r.Big()), nil

	case kindExtended:
		xx, err := extendedOperand(v.X, primeSquared)
		if err != nil {
			return "", err
		}
		yy, err := extendedOperand(v.Y, primeSquared)
		if err != nil {
			return "", err
		}
		var rr p192.ExtendedElement
		if v.Op == OpAddExt {
			rr.Add(xx, yy)
		} else {
			rr.Sub(xx, yy)
		}
		return toHex(rr.Big()), nil
	}

	x, err := fieldOperand(v.X)
	if err != nil {
		return "", err
	}
	y := &p192.FieldElement{}
	if info.binary {
		if y, err = fieldOperand(v.Y); err != nil {
			return "", err
		}
	}

	var r p192.FieldElement
	switch v.Op {
	case OpAdd:
		r.Add(x, y)
	case OpAddOne:
		r.AddOne(x)
	case OpSub:
		r.Sub(x, y)
	case OpNeg:
		r.Negate(x)
	case OpTwice:
		r.Twice(x)
	case OpHalf:
		r.Half(x)
	case OpMul:
		r.Mul(x, y)
	case OpSqr:
		r.Square(x)
	case OpSqrN:
		if v.N <= 0 || v.N > maxSquarings {
			return "", errors.Errorf("square count %d out of range", v.N)
		}
		r.SquareN(x, v.N)
	case OpInv:
		r.Inv(x)
	case OpSqrt:
		if !r.Sqrt(x) {
			return "", nil
		}
	}
	return toHex(r.Big()), nil
}

// Check recomputes v with the field code and returns an error wrapping
// ErrMismatch if the result differs from v.Want.
func Check(v Vector) error {
	got, err := compute(v)
	if err != nil {
		return errors.Wrapf(err, "%s vector", v.Op)
	}
	if v.Op == OpSqrt && got != "" && v.Want != "" {
		// Either root is acceptable.
		w, err := parseHex(v.Want)
		if err != nil {
			return errors.Wrapf(err, "%s vector", v.Op)
		}
		g, _ := parseHex(got)
		if g.Cmp(w) != 0 && new(big.Int).Add(g, w).Cmp(prime) != 0 {
			return errors.Wrapf(ErrMismatch, "%s %s: got %s, want %s", v.Op, v.X, got, v.Want)
		}
		return nil
	}
	if got != v.Want {
		return errors.Wrapf(ErrMismatch, "%s %s %s %d: got %q, want %q",
			v.Op, v.X, v.Y, v.N, got, v.Want)
	}
	return nil
}

// CheckAll checks every vector, logging each failure, and returns an error
// counting the failures if there were any.
func CheckAll(vs []Vector) error {
	failed := 0
	for i, v := range vs {
		if err := Check(v); err != nil {
			log.Errorf("Vector %d: %v", i, err)
			failed++
		}
	}
	if failed != 0 {
		return errors.Errorf("%d of %d vectors failed", failed, len(vs))
	}
	log.Infof("All %d vectors passed", len(vs))
	return nil
}
