package reserve

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/sysaction"
)

func init() {
	sysaction.DefaultRegistry.Register(&reserveHandler{})
}

// reserveHandler implements sysaction.Handler for reserve spending and
// withdrawal. Top-ups arrive through inbound transfers.
type reserveHandler struct{}

func (h *reserveHandler) CanHandle(kind sysaction.ActionKind) bool {
	switch kind {
	case sysaction.ActionReserveBurn,
		sysaction.ActionReserveTransfer,
		sysaction.ActionReserveWithdraw:
		return true
	}
	return false
}

func (h *reserveHandler) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) (*uint256.Int, error) {
	switch sa.Action {
	case sysaction.ActionReserveBurn:
		var p sysaction.ReserveBurnPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return nil, err
		}
		account, err := sysaction.ParseAccount("account_id", p.AccountID)
		if err != nil {
			return nil, err
		}
		amount, err := sysaction.ParseAmount("amount", p.Amount)
		if err != nil {
			return nil, err
		}
		parent, err := ctx.Auth.Authorize(ctx.Caller)
		if err != nil {
			return nil, err
		}
		return Burn(ctx.State, ctx.Ledger, parent, account, amount)

	case sysaction.ActionReserveTransfer:
		var p sysaction.ReserveTransferPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return nil, err
		}
		sender, err := sysaction.ParseAccount("sender_id", p.SenderID)
		if err != nil {
			return nil, err
		}
		receiver, err := sysaction.ParseAccount("receiver_id", p.ReceiverID)
		if err != nil {
			return nil, err
		}
		amount, err := sysaction.ParseAmount("amount", p.Amount)
		if err != nil {
			return nil, err
		}
		parent, err := ctx.Auth.Authorize(ctx.Caller)
		if err != nil {
			return nil, err
		}
		res, err := Transfer(ctx.State, ctx.Ledger, parent, sender, receiver, amount, ctx.Rules.CommissionBPS)
		if err != nil {
			return nil, err
		}
		return res.Amount, nil

	case sysaction.ActionReserveWithdraw:
		return Withdraw(ctx.State, ctx.Ledger, ctx.Caller)
	}
	return nil, fmt.Errorf("reserve handler: unsupported action %q", sa.Action)
}
