// Package reserve implements the per-account reserve ledger: balances that
// users top up by transfer and the parent game contract spends on their
// behalf, either by burning or by a taxed transfer to another account.
package reserve

import (
	"errors"

	"github.com/holiman/uint256"
)

var (
	ErrInvalidAmount       = errors.New("reserve: amount must be positive")
	ErrInsufficientReserve = errors.New("reserve: not enough reserve")
	ErrNoReserve           = errors.New("reserve: no reserve to withdraw")
)

// TransferResult describes a completed reserve transfer. Amount is what left
// the sender's reserve; Payout + Tax == Amount.
type TransferResult struct {
	Amount *uint256.Int
	Payout *uint256.Int
	Tax    *uint256.Int
}
