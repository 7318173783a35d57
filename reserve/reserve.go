package reserve

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/state"
	"github.com/VlodkoMr/zomland-ft/tokenledger"
)

var bpsBase = uint256.NewInt(params.BPSBase)

// Of returns the reserve balance of account.
func Of(st *state.State, account common.AccountID) *uint256.Int {
	return st.Reserve(account)
}

// TopUp credits amount to the reserve of account.
func TopUp(st *state.State, account common.AccountID, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	bal, err := math.SafeAdd128(st.Reserve(account), amount)
	if err != nil {
		return fmt.Errorf("reserve top-up: %w", err)
	}
	st.SetReserve(account, bal)

	log.Debug("reserve: topped up", "account", account, "amount", amount, "reserve", bal)
	return nil
}

// debit returns the reserve of account after removing amount, without
// storing it. A zero amount always succeeds.
func debit(st *state.State, account common.AccountID, amount *uint256.Int) (*uint256.Int, error) {
	if amount == nil {
		return nil, ErrInvalidAmount
	}
	bal := st.Reserve(account)
	if bal.Lt(amount) {
		return nil, fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientReserve, account, bal.Dec(), amount.Dec())
	}
	return bal.Sub(bal, amount), nil
}

// Burn removes amount from the reserve of account and deposits it to the
// burn sink of parent. Returns the burned amount. Burning zero is a no-op.
func Burn(st *state.State, ledger tokenledger.Ledger, parent, account common.AccountID, amount *uint256.Int) (*uint256.Int, error) {
	// ── Validation phase (no state writes) ───────────────────────────────────
	bal, err := debit(st, account, amount)
	if err != nil {
		return nil, err
	}
	sink := common.BurnAccount(parent)

	// ── Mutation phase ───────────────────────────────────────────────────────
	if !amount.IsZero() {
		st.SetReserve(account, bal)
		tokenledger.Credit(ledger, sink, amount)
	}

	log.Debug("reserve: burned", "account", account, "amount", amount, "sink", sink, "reserve", bal)
	return amount.Clone(), nil
}

// Commission returns floor(amount * commissionBPS / BPSBase).
func Commission(amount *uint256.Int, commissionBPS uint64) (*uint256.Int, error) {
	if commissionBPS > params.BPSBase {
		return nil, fmt.Errorf("%w: commission %d bps", params.ErrInvalidConfig, commissionBPS)
	}
	return math.MulDiv(amount, uint256.NewInt(commissionBPS), bpsBase)
}

// Transfer removes amount from the reserve of sender and pays it to
// receiver, less a commission of commissionBPS basis points that goes to
// parent. Zero-valued legs issue no deposit.
func Transfer(st *state.State, ledger tokenledger.Ledger, parent, sender, receiver common.AccountID, amount *uint256.Int, commissionBPS uint64) (*TransferResult, error) {
	// ── Validation phase (no state writes) ───────────────────────────────────
	bal, err := debit(st, sender, amount)
	if err != nil {
		return nil, err
	}
	tax, err := Commission(amount, commissionBPS)
	if err != nil {
		return nil, fmt.Errorf("reserve transfer: %w", err)
	}
	payout := new(uint256.Int).Sub(amount, tax)

	// ── Mutation phase ───────────────────────────────────────────────────────
	if !amount.IsZero() {
		st.SetReserve(sender, bal)
	}
	if !payout.IsZero() {
		tokenledger.Credit(ledger, receiver, payout)
	}
	if !tax.IsZero() {
		tokenledger.Credit(ledger, parent, tax)
	}

	log.Debug("reserve: transferred", "sender", sender, "receiver", receiver, "amount", amount, "payout", payout, "tax", tax)
	return &TransferResult{Amount: amount.Clone(), Payout: payout, Tax: tax}, nil
}

// Withdraw pays the whole reserve of account back to it.
func Withdraw(st *state.State, ledger tokenledger.Ledger, account common.AccountID) (*uint256.Int, error) {
	bal := st.Reserve(account)
	if bal.IsZero() {
		return nil, ErrNoReserve
	}
	st.SetReserve(account, new(uint256.Int))
	tokenledger.Credit(ledger, account, bal)

	log.Debug("reserve: withdrawn", "account", account, "amount", bal)
	return bal, nil
}
