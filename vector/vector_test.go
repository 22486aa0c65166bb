package vector

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndCheckAllOps(t *testing.T) {
	vs, err := Generate([]byte("vector test seed"), nil, 50)
	require.NoError(t, err)
	require.NotEmpty(t, vs)

	seen := make(map[Op]int)
	for _, v := range vs {
		seen[v.Op]++
	}
	for _, op := range AllOps {
		require.Greater(t, seen[op], 50, "op %s", op)
	}

	require.NoError(t, CheckAll(vs))
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate([]byte("seed"), []Op{OpMul, OpReduce}, 10)
	require.NoError(t, err)
	b, err := Generate([]byte("seed"), []Op{OpMul, OpReduce}, 10)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Generate([]byte("other"), []Op{OpMul, OpReduce}, 10)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(nil, []Op{"frobnicate"}, 1)
	require.Error(t, err)

	_, err = Generate(nil, []Op{OpAdd}, -1)
	require.Error(t, err)
}

func TestReduceManyVectors(t *testing.T) {
	vs, err := Generate([]byte("reduce"), []Op{OpReduce}, 10000)
	require.NoError(t, err)
	require.NoError(t, CheckAll(vs))
}

func TestCheckKnownAnswers(t *testing.T) {
	pMinus1 := new(big.Int).Sub(prime, big.NewInt(1))
	tests := []Vector{
		{Op: OpAdd, X: toHex(pMinus1), Y: "2", Want: "1"},
		{Op: OpAddOne, X: toHex(pMinus1), Want: "0"},
		{Op: OpSub, X: "0", Y: "1", Want: toHex(pMinus1)},
		{Op: OpNeg, X: "0", Want: "0"},
		{Op: OpHalf, X: "1", Want: "7fffffffffffffffffffffffffffffff8000000000000000"},
		{Op: OpMul, X: "2", Y: "7fffffffffffffffffffffffffffffff8000000000000000", Want: "1"},
		{Op: OpSqrN, X: "2", N: 3, Want: "100"},
		{Op: OpInv, X: "0", Want: "0"},
		{Op: OpReduce, X: "1000000000000000000000000000000000000000000000000", Want: "10000000000000001"},
	}
	for _, v := range tests {
		require.NoError(t, Check(v), v.String())
	}
}

func TestCheckDetectsMismatch(t *testing.T) {
	err := Check(Vector{Op: OpAdd, X: "1", Y: "1", Want: "3"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMismatch))

	err = Check(Vector{Op: OpSqrt, X: "4", Want: "3"})
	require.True(t, errors.Is(err, ErrMismatch))

	require.Error(t, CheckAll([]Vector{{Op: OpAdd, X: "1", Y: "1", Want: "3"}}))
}

func TestCheckRejectsBadOperands(t *testing.T) {
	bad := []Vector{
		{Op: OpAdd, X: "zz", Y: "1", Want: "1"},
		{Op: OpAdd, X: toHex(prime), Y: "1", Want: "1"},
		{Op: OpSqrN, X: "2", N: 0, Want: "2"},
		{Op: OpAddExt, X: toHex(primeSquared), Y: "0", Want: "0"},
		{Op: "bogus", X: "1", Want: "1"},
	}
	for _, v := range bad {
		err := Check(v)
		require.Error(t, err, v.String())
		require.False(t, errors.Is(err, ErrMismatch), v.String())
	}
}

func TestSqrtEitherRoot(t *testing.T) {
	// 4 has roots 2 and p-2.
	minusTwo := toHex(new(big.Int).Sub(prime, big.NewInt(2)))
	require.NoError(t, Check(Vector{Op: OpSqrt, X: "4", Want: "2"}))
	require.NoError(t, Check(Vector{Op: OpSqrt, X: "4", Want: minusTwo}))

	// -1 has no root.
	minusOne := toHex(new(big.Int).Sub(prime, big.NewInt(1)))
	require.NoError(t, Check(Vector{Op: OpSqrt, X: minusOne}))
}

func TestWriteRead(t *testing.T) {
	vs, err := Generate([]byte("format"), []Op{OpSqrt, OpSqrN, OpAddExt}, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vs))

	text := "# header comment\n\n" + buf.String()
	got, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, vs, got)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("add 1 2 0\n"))
	require.Error(t, err)

	_, err = Read(strings.NewReader("nope 1 2 0 3\n"))
	require.Error(t, err)

	_, err = Read(strings.NewReader("add 1 2 x 3\n"))
	require.Error(t, err)
}

func TestParseOp(t *testing.T) {
	for _, op := range AllOps {
		got, err := ParseOp(string(op))
		require.NoError(t, err)
		require.Equal(t, op, got)
	}
	_, err := ParseOp("div")
	require.Error(t, err)
}
