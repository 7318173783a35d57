package math

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ErrInvalidDecimal is returned for strings that are not base-10 amounts.
var ErrInvalidDecimal = errors.New("math: invalid decimal amount")

// TokenDecimals is the number of fractional digits of one whole token.
const TokenDecimals = 24

// ParseU128 parses a base-10 integer string into a 128-bit amount.
func ParseU128(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidDecimal)
	}
	x, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDecimal, s, err)
	}
	if err := CheckU128(x); err != nil {
		return nil, err
	}
	return x, nil
}

// MustParseU128 is ParseU128 that panics on error. For constants and tests.
func MustParseU128(s string) *uint256.Int {
	x, err := ParseU128(s)
	if err != nil {
		panic(err)
	}
	return x
}

// ParseToken converts a decimal token string such as "0.1" or "12.5" into
// scaled units (10^24 per whole token).
func ParseToken(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > TokenDecimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidDecimal, s, TokenDecimals)
	}
	frac += strings.Repeat("0", TokenDecimals-len(frac))
	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return new(uint256.Int), nil
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
		}
	}
	return ParseU128(digits)
}

// FormatToken renders scaled units as a decimal token string, trimming
// trailing fractional zeros ("2.5", "0.000001", "3").
func FormatToken(x *uint256.Int) string {
	s := x.Dec()
	if len(s) <= TokenDecimals {
		s = strings.Repeat("0", TokenDecimals-len(s)+1) + s
	}
	whole, frac := s[:len(s)-TokenDecimals], strings.TrimRight(s[len(s)-TokenDecimals:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
