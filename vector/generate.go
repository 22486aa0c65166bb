package vector

import (
	"math/big"

	"github.com/pkg/errors"

	"p192.mleku.dev"
)

// fieldEdges are operands that exercise the conditional corrections.
func fieldEdges() []*big.Int {
	one := big.NewInt(1)
	half := new(big.Int).Rsh(new(big.Int).Add(prime, one), 1)
	return []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(prime, one),
		new(big.Int).Sub(prime, big.NewInt(2)),
		half,
		new(big.Int).Sub(half, one),
		new(big.Int).Lsh(one, 64),
		new(big.Int).Lsh(one, 128),
	}
}

// extendedEdges are operands near the extended modulus.
func extendedEdges() []*big.Int {
	one := big.NewInt(1)
	return []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Sub(primeSquared, one),
		new(big.Int).Sub(primeSquared, big.NewInt(2)),
		new(big.Int).Lsh(one, 383),
	}
}

// wideEdges are 384-bit values at and around multiples of the prime.
func wideEdges(g *p192.ElementGenerator) []*big.Int {
	one := big.NewInt(1)
	out := []*big.Int{
		big.NewInt(0),
		new(big.Int).Sub(two384, one),
		new(big.Int).Set(primeSquared),
		new(big.Int).Sub(primeSquared, one),
		new(big.Int).Lsh(one, 192),
	}
	var k p192.FieldElement
	for i := 0; i < 4; i++ {
		g.Next(&k)
		base := new(big.Int).Mul(k.Big(), prime)
		out = append(out,
			new(big.Int).Sub(base, one),
			base,
			new(big.Int).Add(base, one),
		)
	}
	return out
}

type source struct {
	g *p192.ElementGenerator
}

func (s *source) field() *big.Int {
	var fe p192.FieldElement
	s.g.Next(&fe)
	return fe.Big()
}

func (s *source) extended() *big.Int {
	var xx p192.ExtendedElement
	s.g.NextExtended(&xx)
	v := xx.Big()
	return v.Mod(v, primeSquared)
}

func (s *source) wide() *big.Int {
	var xx p192.ExtendedElement
	s.g.NextExtended(&xx)
	return xx.Big()
}

func (s *source) squarings() int {
	var fe p192.FieldElement
	s.g.Next(&fe)
	return int(fe[0]%maxSquarings) + 1
}

// Generate returns the edge cases of every requested operation followed by
// count randomly drawn cases each. Operands come from a generator seeded with
// seed, so the output is reproducible.
func Generate(seed []byte, opList []Op, count int) ([]Vector, error) {
	if count < 0 {
		return nil, errors.Errorf("negative vector count %d", count)
	}
	if len(opList) == 0 {
		opList = AllOps
	}

	src := &source{g: p192.NewElementGenerator(seed)}
	defer src.g.Clear()

	var out []Vector
	for _, op := range opList {
		info, ok := ops[op]
		if !ok {
			return nil, errors.Errorf("unknown operation %q", op)
		}

		before := len(out)
		out = appendEdges(out, src, op, info)

		for i := 0; i < count; i++ {
			switch info.kind {
			case kindWide:
				out = append(out, newVector(op, src.wide(), nil, 0))
			case kindExtended:
				out = append(out, newVector(op, src.extended(), src.extended(), 0))
			default:
				x := src.field()
				var y *big.Int
				if info.binary {
					y = src.field()
				}
				n := 0
				if op == OpSqrN {
					n = src.squarings()
				}
				out = append(out, newVector(op, x, y, n))
			}
		}
		log.Debugf("Generated %d %s vectors", len(out)-before, op)
	}

	log.Infof("Generated %d vectors for %d operations", len(out), len(opList))
	return out, nil
}

func appendEdges(out []Vector, src *source, op Op, info opInfo) []Vector {
	switch info.kind {
	case kindWide:
		for _, x := range wideEdges(src.g) {
			out = append(out, newVector(op, x, nil, 0))
		}
	case kindExtended:
		edges := extendedEdges()
		for _, x := range edges {
			for _, y := range edges {
				out = append(out, newVector(op, x, y, 0))
			}
		}
	default:
		edges := fieldEdges()
		for _, x := range edges {
			switch {
			case info.binary:
				for _, y := range edges {
					out = append(out, newVector(op, x, y, 0))
				}
			case op == OpSqrN:
				for _, n := range []int{1, 2, 8} {
					out = append(out, newVector(op, x, nil, n))
				}
			default:
				out = append(out, newVector(op, x, nil, 0))
			}
		}
	}
	return out
}
