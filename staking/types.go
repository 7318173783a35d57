package staking

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
)

// Sentinel errors returned by the stake ledger and its handler.
var (
	ErrInvalidAmount       = errors.New("staking: invalid stake amount")
	ErrNoReward            = errors.New("staking: no reward to withdraw")
	ErrInsufficientDeposit = errors.New("staking: attached deposit below claim minimum")
	ErrStakeInvariant      = errors.New("staking: total staked below account stake")
)

// AccountRecord is the in-memory view of an account's staking position.
type AccountRecord struct {
	Account            common.AccountID
	Stake              *uint256.Int
	Earned             *uint256.Int // accrued plus pending at the read time
	RewardPerTokenPaid *uint256.Int
	BonusPct           uint8
}

// PoolRecord is the in-memory view of the pool-wide staking state.
type PoolRecord struct {
	TotalStaked    *uint256.Int
	RewardPerToken *uint256.Int // as of the read time
	LastUpdateTime uint64
	APR            *uint256.Int
}
