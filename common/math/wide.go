// Package math provides checked 128-bit amount arithmetic on top of 256-bit
// intermediates.
//
// Every amount tracked by the contract (balances, reward accumulator, reserve)
// is stored as an unsigned 128-bit value. Products such as
// elapsed * rewardPerSecond * scale do not fit in 128 bits, so they are
// carried in 256-bit (or, for MulDiv, 512-bit) precision and only narrowed
// after the division. Narrowing never truncates: a result that does not fit
// is reported as ErrOverflow.
package math

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var (
	ErrOverflow       = errors.New("math: arithmetic overflow")
	ErrUnderflow      = errors.New("math: arithmetic underflow")
	ErrDivisionByZero = errors.New("math: division by zero")
)

// MaxU128 is 2^128 - 1, the largest storable amount.
var MaxU128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

// Zero returns a fresh zero value.
func Zero() *uint256.Int { return new(uint256.Int) }

// U128 returns a 128-bit amount built from its high and low words.
func U128(hi, lo uint64) *uint256.Int {
	return &uint256.Int{lo, hi, 0, 0}
}

// CheckU128 returns ErrOverflow if x does not fit in 128 bits.
func CheckU128(x *uint256.Int) error {
	if x.BitLen() > 128 {
		return fmt.Errorf("%w: %s exceeds 128 bits", ErrOverflow, x.Dec())
	}
	return nil
}

// SafeAdd128 returns a+b, failing if the sum leaves the 128-bit range.
func SafeAdd128(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %s + %s", ErrOverflow, a.Dec(), b.Dec())
	}
	if err := CheckU128(sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// SafeSub128 returns a-b, failing if b > a.
func SafeSub128(a, b *uint256.Int) (*uint256.Int, error) {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, fmt.Errorf("%w: %s - %s", ErrUnderflow, a.Dec(), b.Dec())
	}
	return diff, nil
}

// SafeMul256 returns a*b, failing if the product leaves the 256-bit range.
func SafeMul256(a, b *uint256.Int) (*uint256.Int, error) {
	prod, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %s * %s", ErrOverflow, a.Dec(), b.Dec())
	}
	return prod, nil
}

// MulDiv returns floor(a*b/d) narrowed to 128 bits. The product is computed
// at full width, so it never truncates before the division.
func MulDiv(a, b, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	q, overflow := new(uint256.Int).MulDivOverflow(a, b, d)
	if overflow {
		return nil, fmt.Errorf("%w: %s * %s / %s", ErrOverflow, a.Dec(), b.Dec(), d.Dec())
	}
	if err := CheckU128(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Mul3Div returns floor(a*b*c/d) narrowed to 128 bits, with the triple
// product checked against the 256-bit range.
func Mul3Div(a, b, c, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	ab, err := SafeMul256(a, b)
	if err != nil {
		return nil, err
	}
	return MulDiv(ab, c, d)
}
