package staking

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/parentauth"
	"github.com/VlodkoMr/zomland-ft/state"
	"github.com/VlodkoMr/zomland-ft/sysaction"
	"github.com/VlodkoMr/zomland-ft/tokenledger"
)

func newHandlerContext(t *testing.T, caller common.AccountID, now uint64) *sysaction.Context {
	t.Helper()
	auth, err := parentauth.New("ft.zomland.near")
	require.NoError(t, err)
	return &sysaction.Context{
		Caller:    caller,
		Deposit:   new(uint256.Int),
		Timestamp: now,
		State:     state.New(genesis),
		Ledger:    tokenledger.NewMemoryLedger(),
		Auth:      auth,
		Rules:     rules,
	}
}

func mustAction(t *testing.T, kind sysaction.ActionKind, payload interface{}) []byte {
	t.Helper()
	data, err := sysaction.MakeSysAction(kind, payload)
	require.NoError(t, err)
	return data
}

func TestHandlerStakeWithdraw(t *testing.T) {
	ctx := newHandlerContext(t, "alice.near", at(1))
	require.NoError(t, Stake(ctx.State, rules, "alice.near", tokens(40), at(0)))

	got, err := sysaction.Execute(ctx, mustAction(t, sysaction.ActionStakeWithdraw, sysaction.StakeWithdrawPayload{Amount: tokens(15).Dec()}))
	require.NoError(t, err)
	assert.Equal(t, tokens(15), got)

	// No amount withdraws the rest.
	got, err = sysaction.Execute(ctx, mustAction(t, sysaction.ActionStakeWithdraw, nil))
	require.NoError(t, err)
	assert.Equal(t, tokens(25), got)
	assert.Equal(t, tokens(40), ctx.Ledger.BalanceOf("alice.near"))

	_, err = sysaction.Execute(ctx, mustAction(t, sysaction.ActionStakeWithdraw, sysaction.StakeWithdrawPayload{Amount: "-3"}))
	require.ErrorIs(t, err, sysaction.ErrInvalidSysAction)
}

func TestHandlerRewardWithdrawNeedsDeposit(t *testing.T) {
	ctx := newHandlerContext(t, "alice.near", at(10))
	require.NoError(t, Stake(ctx.State, rules, "alice.near", tokens(10), at(0)))
	before := ctx.State.Copy()

	data := mustAction(t, sysaction.ActionRewardWithdraw, nil)
	_, err := sysaction.Execute(ctx, data)
	require.ErrorIs(t, err, ErrInsufficientDeposit)
	assert.Equal(t, before, ctx.State)

	ctx.Deposit = new(uint256.Int).SubUint64(rules.MinClaimDeposit, 1)
	_, err = sysaction.Execute(ctx, data)
	require.ErrorIs(t, err, ErrInsufficientDeposit)
	assert.Equal(t, before, ctx.State)

	ctx.Deposit = rules.MinClaimDeposit.Clone()
	got, err := sysaction.Execute(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, tokens(5), got)
	assert.Equal(t, tokens(5), ctx.Ledger.BalanceOf("alice.near"))
}

func TestHandlerBonusRequiresParent(t *testing.T) {
	ctx := newHandlerContext(t, "mallory.near", at(0))
	set := mustAction(t, sysaction.ActionBonusSet, sysaction.BonusSetPayload{AccountID: "alice.near", BonusPct: 25})
	unset := mustAction(t, sysaction.ActionBonusClear, sysaction.BonusClearPayload{AccountID: "alice.near"})

	_, err := sysaction.Execute(ctx, set)
	require.ErrorIs(t, err, parentauth.ErrUnauthorized)
	assert.Zero(t, BonusOf(ctx.State, "alice.near"))

	ctx.Caller = "zomland.near"
	_, err = sysaction.Execute(ctx, set)
	require.NoError(t, err)
	assert.Equal(t, uint8(25), BonusOf(ctx.State, "alice.near"))

	_, err = sysaction.Execute(ctx, unset)
	require.NoError(t, err)
	assert.Zero(t, BonusOf(ctx.State, "alice.near"))

	_, err = sysaction.Execute(ctx, mustAction(t, sysaction.ActionBonusSet, sysaction.BonusSetPayload{AccountID: "Bad Name", BonusPct: 1}))
	require.ErrorIs(t, err, common.ErrInvalidAccount)
}
