package state

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VlodkoMr/zomland-ft/common"
)

func TestNewState(t *testing.T) {
	st := New(42)
	g := st.Global()
	assert.True(t, g.RewardPerTokenStored.IsZero())
	assert.True(t, g.TotalStaked.IsZero())
	assert.Equal(t, uint64(42), g.LastUpdateTime)
	assert.Empty(t, st.Accounts())
}

func TestDefaultsForUnknownAccounts(t *testing.T) {
	st := New(0)
	c := st.Checkpoint("alice.near")
	assert.True(t, c.AccruedReward.IsZero())
	assert.True(t, c.RewardPerTokenPaid.IsZero())
	assert.Zero(t, c.BonusPct)
	assert.True(t, st.Stake("alice.near").IsZero())
	assert.True(t, st.Reserve("alice.near").IsZero())
}

func TestGettersDoNotAlias(t *testing.T) {
	st := New(0)
	st.SetStake("alice.near", uint256.NewInt(10))

	got := st.Stake("alice.near")
	got.AddUint64(got, 5)
	assert.Equal(t, uint64(10), st.Stake("alice.near").Uint64())

	v := uint256.NewInt(7)
	st.SetReserve("bob.near", v)
	v.SetUint64(1)
	assert.Equal(t, uint64(7), st.Reserve("bob.near").Uint64())
}

func TestCopyIsIndependent(t *testing.T) {
	st := New(0)
	st.SetStake("alice.near", uint256.NewInt(10))
	st.SetTotalStaked(uint256.NewInt(10))
	st.SetCheckpoint("alice.near", Checkpoint{
		RewardPerTokenPaid: uint256.NewInt(3),
		AccruedReward:      uint256.NewInt(4),
		BonusPct:           10,
	})

	cpy := st.Copy()
	require.Equal(t, st, cpy)

	cpy.SetStake("alice.near", uint256.NewInt(1))
	cpy.SetReserve("carol.near", uint256.NewInt(1))
	assert.Equal(t, uint64(10), st.Stake("alice.near").Uint64())
	assert.NotEqual(t, st, cpy)
}

func TestAccountsAndSum(t *testing.T) {
	st := New(0)
	st.SetStake("b.near", uint256.NewInt(2))
	st.SetStake("a.near", uint256.NewInt(3))
	st.SetReserve("c.near", uint256.NewInt(9))

	assert.Equal(t, []common.AccountID{"a.near", "b.near", "c.near"}, st.Accounts())
	assert.Equal(t, uint64(5), st.SumStakes().Uint64())
}
