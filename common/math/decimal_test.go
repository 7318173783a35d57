package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseU128(t *testing.T) {
	x, err := ParseU128("100")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), x.Uint64())

	x, err = ParseU128(MaxU128.Dec())
	require.NoError(t, err)
	assert.True(t, x.Eq(MaxU128))

	_, err = ParseU128("340282366920938463463374607431768211456")
	require.ErrorIs(t, err, ErrOverflow)

	for _, bad := range []string{"", "-1", "1.5", "abc"} {
		_, err := ParseU128(bad)
		assert.ErrorIs(t, err, ErrInvalidDecimal, "input %q", bad)
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.1", "100000000000000000000000"},
		{"1", "1000000000000000000000000"},
		{"2.5", "2500000000000000000000000"},
		{".5", "500000000000000000000000"},
		{"0", "0"},
		{"0.000000000000000000000001", "1"},
	}
	for _, tt := range tests {
		got, err := ParseToken(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Dec(), tt.in)
	}

	for _, bad := range []string{"1.2.3", "x", "-1", "0.0000000000000000000000001"} {
		_, err := ParseToken(bad)
		assert.ErrorIs(t, err, ErrInvalidDecimal, "input %q", bad)
	}
}

func TestFormatToken(t *testing.T) {
	for _, s := range []string{"0", "3", "2.5", "0.1", "0.000000000000000000000001", "123456.789"} {
		x, err := ParseToken(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatToken(x))
	}
}
