package staking

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/state"
)

var hundred = uint256.NewInt(100)

// elapsedSeconds returns the whole seconds between the last update and now.
// A clock reading behind the last update counts as no time elapsed.
func elapsedSeconds(last, now uint64) uint64 {
	if now <= last {
		return 0
	}
	return params.NanoToSec(now - last)
}

// CurrentRewardPerToken returns the accumulator as of now without storing it:
//
//	stored + elapsed * rewardPerSecond * Token / totalStaked
//
// Nothing accrues while nothing is staked.
func CurrentRewardPerToken(st *state.State, rules *params.Rules, now uint64) (*uint256.Int, error) {
	stored := st.RewardPerTokenStored()
	total := st.TotalStaked()
	if total.IsZero() {
		return stored, nil
	}
	elapsed := elapsedSeconds(st.LastUpdateTime(), now)
	if elapsed == 0 {
		return stored, nil
	}
	delta, err := math.Mul3Div(uint256.NewInt(elapsed), rules.RewardPerSecond, params.Token, total)
	if err != nil {
		return nil, fmt.Errorf("reward per token: %w", err)
	}
	return math.SafeAdd128(stored, delta)
}

// Earned returns the reward owed to account as of now: its accrued reward
// plus what its stake earned since the last settlement.
func Earned(st *state.State, rules *params.Rules, account common.AccountID, now uint64) (*uint256.Int, error) {
	rpt, err := CurrentRewardPerToken(st, rules, now)
	if err != nil {
		return nil, err
	}
	return earnedAt(st, account, rpt)
}

// earnedAt computes the owed reward of account against accumulator value rpt.
// The bonus multiplies newly earned reward only, never the accrued part.
func earnedAt(st *state.State, account common.AccountID, rpt *uint256.Int) (*uint256.Int, error) {
	cp := st.Checkpoint(account)
	if rpt.IsZero() {
		return cp.AccruedReward, nil
	}
	delta, err := math.SafeSub128(rpt, cp.RewardPerTokenPaid)
	if err != nil {
		return nil, fmt.Errorf("earned %s: accumulator behind checkpoint: %w", account, err)
	}
	newly, err := math.MulDiv(st.Stake(account), delta, params.Token)
	if err != nil {
		return nil, fmt.Errorf("earned %s: %w", account, err)
	}
	if cp.BonusPct > 0 {
		bonus := new(uint256.Int).Div(newly, hundred)
		bonus.Mul(bonus, uint256.NewInt(uint64(cp.BonusPct)))
		if newly, err = math.SafeAdd128(newly, bonus); err != nil {
			return nil, fmt.Errorf("earned %s: bonus: %w", account, err)
		}
	}
	total, err := math.SafeAdd128(cp.AccruedReward, newly)
	if err != nil {
		return nil, fmt.Errorf("earned %s: %w", account, err)
	}
	return total, nil
}

// settlement is a computed, not yet stored, reward settlement of one account.
type settlement struct {
	account        common.AccountID
	rewardPerToken *uint256.Int
	accrued        *uint256.Int
	now            uint64
}

// computeSettlement evaluates a settlement of account at now. It does not
// write; every failure surfaces here so that commit cannot fail.
func computeSettlement(st *state.State, rules *params.Rules, account common.AccountID, now uint64) (*settlement, error) {
	rpt, err := CurrentRewardPerToken(st, rules, now)
	if err != nil {
		return nil, err
	}
	accrued, err := earnedAt(st, account, rpt)
	if err != nil {
		return nil, err
	}
	if last := st.LastUpdateTime(); now < last {
		now = last
	}
	return &settlement{account: account, rewardPerToken: rpt, accrued: accrued, now: now}, nil
}

// commit stores the settlement: the global accumulator and its timestamp,
// then the account checkpoint.
func (s *settlement) commit(st *state.State) {
	st.SetRewardPerTokenStored(s.rewardPerToken)
	st.SetLastUpdateTime(s.now)

	cp := st.Checkpoint(s.account)
	cp.AccruedReward = s.accrued
	cp.RewardPerTokenPaid = s.rewardPerToken
	st.SetCheckpoint(s.account, cp)

	log.Trace("staking: settled", "account", s.account, "rewardPerToken", s.rewardPerToken, "accrued", s.accrued)
}

// Settle locks in the reward of account up to now against the stake level
// that was in effect. It must run before any change to the total stake, the
// account stake or the account bonus.
func Settle(st *state.State, rules *params.Rules, account common.AccountID, now uint64) error {
	s, err := computeSettlement(st, rules, account, now)
	if err != nil {
		return err
	}
	s.commit(st)
	return nil
}
