package staking

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/sysaction"
)

func init() {
	sysaction.DefaultRegistry.Register(&stakingHandler{})
}

// stakingHandler implements sysaction.Handler for the caller-facing staking
// actions. Stakes arrive through inbound transfers, see package receiver.
type stakingHandler struct{}

func (h *stakingHandler) CanHandle(kind sysaction.ActionKind) bool {
	switch kind {
	case sysaction.ActionStakeWithdraw,
		sysaction.ActionRewardWithdraw,
		sysaction.ActionBonusSet,
		sysaction.ActionBonusClear:
		return true
	}
	return false
}

func (h *stakingHandler) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) (*uint256.Int, error) {
	switch sa.Action {
	case sysaction.ActionStakeWithdraw:
		var p sysaction.StakeWithdrawPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return nil, err
		}
		var amount *uint256.Int
		if p.Amount != "" {
			var err error
			if amount, err = sysaction.ParseAmount("amount", p.Amount); err != nil {
				return nil, err
			}
		}
		return Unstake(ctx.State, ctx.Rules, ctx.Ledger, ctx.Caller, amount, ctx.Timestamp)

	case sysaction.ActionRewardWithdraw:
		if ctx.Deposit == nil || ctx.Deposit.Lt(ctx.Rules.MinClaimDeposit) {
			return nil, fmt.Errorf("%w: attached %v, need %s", ErrInsufficientDeposit, ctx.Deposit, ctx.Rules.MinClaimDeposit.Dec())
		}
		return WithdrawReward(ctx.State, ctx.Rules, ctx.Ledger, ctx.Caller, ctx.Timestamp)

	case sysaction.ActionBonusSet:
		var p sysaction.BonusSetPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return nil, err
		}
		account, err := sysaction.ParseAccount("account_id", p.AccountID)
		if err != nil {
			return nil, err
		}
		if _, err := ctx.Auth.Authorize(ctx.Caller); err != nil {
			return nil, err
		}
		return nil, SetBonus(ctx.State, ctx.Rules, account, p.BonusPct, ctx.Timestamp)

	case sysaction.ActionBonusClear:
		var p sysaction.BonusClearPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return nil, err
		}
		account, err := sysaction.ParseAccount("account_id", p.AccountID)
		if err != nil {
			return nil, err
		}
		if _, err := ctx.Auth.Authorize(ctx.Caller); err != nil {
			return nil, err
		}
		return nil, ClearBonus(ctx.State, ctx.Rules, account, ctx.Timestamp)
	}
	return nil, fmt.Errorf("staking handler: unsupported action %q", sa.Action)
}
