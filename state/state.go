// Package state holds the contract storage: the global reward accumulator,
// per-account reward checkpoints, stake balances and reserve balances.
//
// State is exclusively owned by the contract and is not safe for concurrent
// use. Getters return copies and setters store copies, so callers can never
// alias stored amounts.
package state

import (
	"sort"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
)

// Global is the pool-wide reward state.
type Global struct {
	RewardPerTokenStored *uint256.Int // scaled by params.Token, non-decreasing
	LastUpdateTime       uint64       // nanoseconds
	TotalStaked          *uint256.Int
}

// Checkpoint is the reward settlement snapshot of one account.
type Checkpoint struct {
	RewardPerTokenPaid *uint256.Int
	AccruedReward      *uint256.Int
	BonusPct           uint8
}

func (c Checkpoint) copy() Checkpoint {
	return Checkpoint{
		RewardPerTokenPaid: c.RewardPerTokenPaid.Clone(),
		AccruedReward:      c.AccruedReward.Clone(),
		BonusPct:           c.BonusPct,
	}
}

func emptyCheckpoint() Checkpoint {
	return Checkpoint{RewardPerTokenPaid: new(uint256.Int), AccruedReward: new(uint256.Int)}
}

// State is the contract storage.
type State struct {
	global      Global
	checkpoints map[common.AccountID]Checkpoint
	stakes      map[common.AccountID]*uint256.Int
	reserves    map[common.AccountID]*uint256.Int
}

// New creates empty storage with the accumulator anchored at now (ns).
func New(now uint64) *State {
	return &State{
		global: Global{
			RewardPerTokenStored: new(uint256.Int),
			LastUpdateTime:       now,
			TotalStaked:          new(uint256.Int),
		},
		checkpoints: make(map[common.AccountID]Checkpoint),
		stakes:      make(map[common.AccountID]*uint256.Int),
		reserves:    make(map[common.AccountID]*uint256.Int),
	}
}

// --- global state ---

func (s *State) Global() Global {
	return Global{
		RewardPerTokenStored: s.global.RewardPerTokenStored.Clone(),
		LastUpdateTime:       s.global.LastUpdateTime,
		TotalStaked:          s.global.TotalStaked.Clone(),
	}
}

func (s *State) RewardPerTokenStored() *uint256.Int { return s.global.RewardPerTokenStored.Clone() }

func (s *State) SetRewardPerTokenStored(v *uint256.Int) {
	s.global.RewardPerTokenStored = v.Clone()
}

func (s *State) LastUpdateTime() uint64 { return s.global.LastUpdateTime }

func (s *State) SetLastUpdateTime(now uint64) { s.global.LastUpdateTime = now }

func (s *State) TotalStaked() *uint256.Int { return s.global.TotalStaked.Clone() }

func (s *State) SetTotalStaked(v *uint256.Int) { s.global.TotalStaked = v.Clone() }

// --- per-account state ---

// Checkpoint returns the reward checkpoint of account; zero if never settled.
func (s *State) Checkpoint(account common.AccountID) Checkpoint {
	c, ok := s.checkpoints[account]
	if !ok {
		return emptyCheckpoint()
	}
	return c.copy()
}

func (s *State) SetCheckpoint(account common.AccountID, c Checkpoint) {
	s.checkpoints[account] = c.copy()
}

// Stake returns the staked balance of account; zero before the first stake.
func (s *State) Stake(account common.AccountID) *uint256.Int {
	if v, ok := s.stakes[account]; ok {
		return v.Clone()
	}
	return new(uint256.Int)
}

func (s *State) SetStake(account common.AccountID, v *uint256.Int) {
	s.stakes[account] = v.Clone()
}

// Reserve returns the reserve balance of account; zero if never topped up.
func (s *State) Reserve(account common.AccountID) *uint256.Int {
	if v, ok := s.reserves[account]; ok {
		return v.Clone()
	}
	return new(uint256.Int)
}

func (s *State) SetReserve(account common.AccountID, v *uint256.Int) {
	s.reserves[account] = v.Clone()
}

// Accounts returns every account with stored stake, checkpoint or reserve,
// in ascending order.
func (s *State) Accounts() []common.AccountID {
	seen := make(map[common.AccountID]struct{}, len(s.stakes)+len(s.reserves))
	for a := range s.checkpoints {
		seen[a] = struct{}{}
	}
	for a := range s.stakes {
		seen[a] = struct{}{}
	}
	for a := range s.reserves {
		seen[a] = struct{}{}
	}
	out := make([]common.AccountID, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SumStakes returns the sum of all stake balances. Must equal TotalStaked.
func (s *State) SumStakes() *uint256.Int {
	sum := new(uint256.Int)
	for _, v := range s.stakes {
		sum.Add(sum, v)
	}
	return sum
}

// Copy returns an independent deep copy of the storage.
func (s *State) Copy() *State {
	cpy := &State{
		global:      s.Global(),
		checkpoints: make(map[common.AccountID]Checkpoint, len(s.checkpoints)),
		stakes:      make(map[common.AccountID]*uint256.Int, len(s.stakes)),
		reserves:    make(map[common.AccountID]*uint256.Int, len(s.reserves)),
	}
	for a, c := range s.checkpoints {
		cpy.checkpoints[a] = c.copy()
	}
	for a, v := range s.stakes {
		cpy.stakes[a] = v.Clone()
	}
	for a, v := range s.reserves {
		cpy.reserves[a] = v.Clone()
	}
	return cpy
}
