package math

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxU128(t *testing.T) {
	assert.Equal(t, 128, MaxU128.BitLen())
	assert.Equal(t, "340282366920938463463374607431768211455", MaxU128.Dec())
	assert.True(t, MaxU128.Eq(U128(^uint64(0), ^uint64(0))))
}

func TestCheckU128(t *testing.T) {
	require.NoError(t, CheckU128(MaxU128))

	over := new(uint256.Int).AddUint64(MaxU128, 1)
	require.ErrorIs(t, CheckU128(over), ErrOverflow)
}

func TestSafeAdd128(t *testing.T) {
	sum, err := SafeAdd128(uint256.NewInt(2), uint256.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), sum.Uint64())

	sum, err = SafeAdd128(new(uint256.Int).SubUint64(MaxU128, 1), uint256.NewInt(1))
	require.NoError(t, err)
	assert.True(t, sum.Eq(MaxU128))

	_, err = SafeAdd128(MaxU128, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestSafeSub128(t *testing.T) {
	diff, err := SafeSub128(uint256.NewInt(5), uint256.NewInt(5))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = SafeSub128(uint256.NewInt(4), uint256.NewInt(5))
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestMulDivNearBoundary(t *testing.T) {
	// MaxU128 * MaxU128 needs 256 bits; dividing by MaxU128 gives it back.
	q, err := MulDiv(MaxU128, MaxU128, MaxU128)
	require.NoError(t, err)
	assert.True(t, q.Eq(MaxU128))

	// (2^128-1) * 2^64 / 2^64 must not lose the high bits.
	two64 := new(uint256.Int).Lsh(uint256.NewInt(1), 64)
	q, err = MulDiv(MaxU128, two64, two64)
	require.NoError(t, err)
	assert.True(t, q.Eq(MaxU128))

	// Floor division.
	q, err = MulDiv(uint256.NewInt(10), uint256.NewInt(10), uint256.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(33), q.Uint64())

	// A quotient above 128 bits is an overflow, not a truncation.
	_, err = MulDiv(MaxU128, MaxU128, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = MulDiv(MaxU128, MaxU128, new(uint256.Int))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMul3Div(t *testing.T) {
	scale := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(24))
	rps := new(uint256.Int).Div(scale, uint256.NewInt(2))

	// 10 seconds of emission over a stake of 100 tokens, the way the
	// accumulator computes it: the product 10 * 5e23 * 1e24 needs 160 bits.
	total := new(uint256.Int).Mul(uint256.NewInt(100), scale)
	q, err := Mul3Div(uint256.NewInt(10), rps, scale, total)
	require.NoError(t, err)
	assert.Equal(t, "50000000000000000000000", q.Dec())

	// The a*b step is bounded by 256 bits.
	max256 := new(uint256.Int).SetAllOne()
	_, err = Mul3Div(max256, uint256.NewInt(2), uint256.NewInt(1), uint256.NewInt(1))
	require.ErrorIs(t, err, ErrOverflow)
}
