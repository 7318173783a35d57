package contract

import (
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/reserve"
	"github.com/VlodkoMr/zomland-ft/staking"
	"github.com/VlodkoMr/zomland-ft/state"
)

func (c *Contract) TotalSupply() *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.TotalSupply(c.state)
}

func (c *Contract) StakeOf(account common.AccountID) *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.StakeOf(c.state, account)
}

// EarnedOf returns the reward account could withdraw at now.
func (c *Contract) EarnedOf(account common.AccountID, now uint64) (*uint256.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.EarnedOf(c.state, c.rules, account, now)
}

func (c *Contract) RewardPerToken(now uint64) (*uint256.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.RewardPerToken(c.state, c.rules, now)
}

// APR returns the current annual percentage rate.
func (c *Contract) APR() (*uint256.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.APR(c.state, c.rules)
}

func (c *Contract) BonusOf(account common.AccountID) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.BonusOf(c.state, account)
}

func (c *Contract) ReserveOf(account common.AccountID) *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return reserve.Of(c.state, account)
}

// Account reads the staking position of account at now.
func (c *Contract) Account(account common.AccountID, now uint64) (staking.AccountRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.ReadAccount(c.state, c.rules, account, now)
}

// Pool reads the pool-wide staking state at now.
func (c *Contract) Pool(now uint64) (staking.PoolRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return staking.ReadPool(c.state, c.rules, now)
}

// Snapshot returns a deep copy of the contract storage.
func (c *Contract) Snapshot() *state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Copy()
}
