package bench

import (
	"crypto/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"p192.mleku.dev"
)

// This file compares the P-192 field (six 32-bit words, special form
// reduction) against the secp256k1 field of btcec (ten 26-bit limbs), the
// pure Go field arithmetic most of our callers already depend on.

var (
	benchP192A, benchP192B   p192.FieldElement
	benchBtcecA, benchBtcecB btcec.FieldVal
	compBenchInitialized     bool
)

func initComparisonBenchData() {
	if compBenchInitialized {
		return
	}

	g := p192.NewElementGenerator([]byte("comparison bench"))
	g.Next(&benchP192A)
	g.Next(&benchP192B)

	var buf [32]byte
	for _, f := range []*btcec.FieldVal{&benchBtcecA, &benchBtcecB} {
		for {
			if _, err := rand.Read(buf[:]); err != nil {
				panic(err)
			}
			if !f.SetByteSlice(buf[:]) {
				break
			}
		}
		f.Normalize()
	}

	compBenchInitialized = true
}

func BenchmarkFieldMul_P192(b *testing.B) {
	initComparisonBenchData()
	r := benchP192A

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Mul(&r, &benchP192B)
	}
}

func BenchmarkFieldMul_Btcec(b *testing.B) {
	initComparisonBenchData()
	r := benchBtcecA

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Mul(&benchBtcecB)
	}
}

func BenchmarkFieldSquare_P192(b *testing.B) {
	initComparisonBenchData()
	r := benchP192A

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Square(&r)
	}
}

func BenchmarkFieldSquare_Btcec(b *testing.B) {
	initComparisonBenchData()
	r := benchBtcecA

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Square()
	}
}

func BenchmarkFieldAdd_P192(b *testing.B) {
	initComparisonBenchData()
	r := benchP192A

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(&r, &benchP192B)
	}
}

func BenchmarkFieldAdd_Btcec(b *testing.B) {
	initComparisonBenchData()
	r := benchBtcecA

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(&benchBtcecB)
		r.Normalize()
	}
}

func BenchmarkFieldInv_P192(b *testing.B) {
	initComparisonBenchData()
	r := benchP192A

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Inv(&r)
	}
}

func BenchmarkFieldInv_Btcec(b *testing.B) {
	initComparisonBenchData()
	r := benchBtcecA

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Inverse()
	}
}

func BenchmarkFieldHalf_P192(b *testing.B) {
	initComparisonBenchData()
	r := benchP192A

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Half(&r)
	}
}
