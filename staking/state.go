package staking

import (
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/state"
)

var (
	secondsPerYear = uint256.NewInt(params.SecondsPerYear)
)

// TotalSupply returns the total staked amount.
func TotalSupply(st *state.State) *uint256.Int {
	return st.TotalStaked()
}

// StakeOf returns the staked balance of account.
func StakeOf(st *state.State, account common.AccountID) *uint256.Int {
	return st.Stake(account)
}

// BonusOf returns the bonus percentage of account, 0 if none.
func BonusOf(st *state.State, account common.AccountID) uint8 {
	return st.Checkpoint(account).BonusPct
}

// RewardPerToken returns the accumulator value as of now.
func RewardPerToken(st *state.State, rules *params.Rules, now uint64) (*uint256.Int, error) {
	return CurrentRewardPerToken(st, rules, now)
}

// EarnedOf returns the reward owed to account as of now.
func EarnedOf(st *state.State, rules *params.Rules, account common.AccountID, now uint64) (*uint256.Int, error) {
	return Earned(st, rules, account, now)
}

// APR returns floor(rewardPerSecond * SecondsPerYear * 100 / totalStaked),
// or 0 while nothing is staked.
func APR(st *state.State, rules *params.Rules) (*uint256.Int, error) {
	total := st.TotalStaked()
	if total.IsZero() {
		return new(uint256.Int), nil
	}
	return math.Mul3Div(rules.RewardPerSecond, secondsPerYear, hundred, total)
}

// ReadAccount reads the complete staking position of account as of now.
func ReadAccount(st *state.State, rules *params.Rules, account common.AccountID, now uint64) (AccountRecord, error) {
	earned, err := Earned(st, rules, account, now)
	if err != nil {
		return AccountRecord{}, err
	}
	cp := st.Checkpoint(account)
	return AccountRecord{
		Account:            account,
		Stake:              st.Stake(account),
		Earned:             earned,
		RewardPerTokenPaid: cp.RewardPerTokenPaid,
		BonusPct:           cp.BonusPct,
	}, nil
}

// ReadPool reads the pool-wide staking state as of now.
func ReadPool(st *state.State, rules *params.Rules, now uint64) (PoolRecord, error) {
	rpt, err := CurrentRewardPerToken(st, rules, now)
	if err != nil {
		return PoolRecord{}, err
	}
	apr, err := APR(st, rules)
	if err != nil {
		return PoolRecord{}, err
	}
	return PoolRecord{
		TotalStaked:    st.TotalStaked(),
		RewardPerToken: rpt,
		LastUpdateTime: st.LastUpdateTime(),
		APR:            apr,
	}, nil
}
