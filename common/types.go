// Package common holds the account identity type shared by every ledger.
package common

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinAccountIDLen = 2
	MaxAccountIDLen = 64

	// BurnAccountPrefix is prepended to the parent identity to form the sink
	// that receives burned reserve.
	BurnAccountPrefix = "burn."
)

var ErrInvalidAccount = errors.New("common: invalid account id")

// AccountID is a named account such as "alice.near" or "ft.zomland.near".
type AccountID string

func (a AccountID) String() string { return string(a) }

// Validate checks the account naming rules: 2..64 characters, lowercase
// alphanumeric parts joined by single '-', '_' or '.' separators.
func (a AccountID) Validate() error {
	s := string(a)
	if len(s) < MinAccountIDLen || len(s) > MaxAccountIDLen {
		return fmt.Errorf("%w: %q length %d", ErrInvalidAccount, s, len(s))
	}
	prevSep := true // no leading separator
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevSep = false
		case c == '-' || c == '_' || c == '.':
			if prevSep {
				return fmt.Errorf("%w: %q has misplaced separator at %d", ErrInvalidAccount, s, i)
			}
			prevSep = true
		default:
			return fmt.Errorf("%w: %q has invalid character %q", ErrInvalidAccount, s, c)
		}
	}
	if prevSep {
		return fmt.Errorf("%w: %q ends with a separator", ErrInvalidAccount, s)
	}
	return nil
}

// ParentOf strips the first label of a sub-account: "ft.game.near" yields
// "game.near". Top-level names have no parent.
func ParentOf(a AccountID) (AccountID, bool) {
	_, parent, ok := strings.Cut(string(a), ".")
	if !ok || parent == "" {
		return "", false
	}
	return AccountID(parent), true
}

// BurnAccount returns the burn sink owned by parent.
func BurnAccount(parent AccountID) AccountID {
	return AccountID(BurnAccountPrefix + string(parent))
}
