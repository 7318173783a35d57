package staking

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

// Stake adds amount to the stake of account. The tokens are already in the
// contract's custody (moved there by the inbound transfer). The resulting
// stake must reach rules.MinStake.
func Stake(st *state.State, rules *params.Rules, account common.AccountID, amount *uint256.Int, now uint64) error {
	// ── Validation phase (no state writes) ───────────────────────────────────
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	s, err := computeSettlement(st, rules, account, now)
	if err != nil {
		return fmt.Errorf("stake: %w", err)
	}
	newStake, err := math.SafeAdd128(st.Stake(account), amount)
	if err != nil {
		return fmt.Errorf("stake: %w", err)
	}
	// Every non-zero stake is at least MinStake, so a non-zero total is too.
	if newStake.Lt(rules.MinStake) {
		return fmt.Errorf("%w: stake %s below minimum %s", ErrInvalidAmount, newStake.Dec(), rules.MinStake.Dec())
	}
	newTotal, err := math.SafeAdd128(st.TotalStaked(), amount)
	if err != nil {
		return fmt.Errorf("stake: total: %w", err)
	}

	// ── Mutation phase ───────────────────────────────────────────────────────
	s.commit(st)
	st.SetStake(account, newStake)
	st.SetTotalStaked(newTotal)

	log.Debug("staking: staked", "account", account, "amount", amount, "stake", newStake, "total", newTotal)
	return nil
}

// Unstake removes amount from the stake of account and pays it back through
// the ledger. An amount above the stake, or a nil amount, withdraws the whole
// stake, and so does one that would leave less than rules.MinStake behind.
// Returns the amount actually withdrawn.
func Unstake(st *state.State, rules *params.Rules, ledger tokenledger.Ledger, account common.AccountID, amount *uint256.Int, now uint64) (*uint256.Int, error) {
	// ── Validation phase (no state writes) ───────────────────────────────────
	s, err := computeSettlement(st, rules, account, now)
	if err != nil {
		return nil, fmt.Errorf("unstake: %w", err)
	}
	stake := st.Stake(account)
	remove := stake
	if amount != nil && amount.Lt(stake) {
		remove = amount.Clone()
	}
	newStake := new(uint256.Int).Sub(stake, remove)
	if !newStake.IsZero() && newStake.Lt(rules.MinStake) {
		remove, newStake = stake, new(uint256.Int)
	}
	newTotal, err := math.SafeSub128(st.TotalStaked(), remove)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStakeInvariant, err)
	}

	// ── Mutation phase ───────────────────────────────────────────────────────
	s.commit(st)
	st.SetStake(account, newStake)
	st.SetTotalStaked(newTotal)
	if !remove.IsZero() {
		tokenledger.Credit(ledger, account, remove)
	}

	log.Debug("staking: unstaked", "account", account, "requested", amount, "amount", remove, "stake", newStake, "total", newTotal)
	return remove, nil
}

// SetBonus settles account and then sets its bonus percentage. A zero pct
// clears the bonus.
func SetBonus(st *state.State, rules *params.Rules, account common.AccountID, pct uint8, now uint64) error {
	s, err := computeSettlement(st, rules, account, now)
	if err != nil {
		return fmt.Errorf("set bonus: %w", err)
	}
	s.commit(st)

	cp := st.Checkpoint(account)
	cp.BonusPct = pct
	st.SetCheckpoint(account, cp)

	log.Debug("staking: bonus updated", "account", account, "pct", pct)
	return nil
}

// ClearBonus settles account and then removes its bonus.
func ClearBonus(st *state.State, rules *params.Rules, account common.AccountID, now uint64) error {
	return SetBonus(st, rules, account, 0, now)
}

// HasReward reports whether account has a non-zero reward to withdraw at now.
func HasReward(st *state.State, rules *params.Rules, account common.AccountID, now uint64) (bool, error) {
	earned, err := Earned(st, rules, account, now)
	if err != nil {
		return false, err
	}
	return !earned.IsZero(), nil
}

// WithdrawReward settles account and pays out its whole accrued reward.
func WithdrawReward(st *state.State, rules *params.Rules, ledger tokenledger.Ledger, account common.AccountID, now uint64) (*uint256.Int, error) {
	// ── Validation phase (no state writes) ───────────────────────────────────
	s, err := computeSettlement(st, rules, account, now)
	if err != nil {
		return nil, fmt.Errorf("withdraw reward: %w", err)
	}
	if s.accrued.IsZero() {
		return nil, ErrNoReward
	}
	reward := s.accrued.Clone()

	// ── Mutation phase ───────────────────────────────────────────────────────
	s.commit(st)
	cp := st.Checkpoint(account)
	cp.AccruedReward = new(uint256.Int)
	st.SetCheckpoint(account, cp)
	tokenledger.Credit(ledger, account, reward)

	log.Debug("staking: reward withdrawn", "account", account, "reward", reward)
	return reward, nil
}
