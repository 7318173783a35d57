// Package receiver routes inbound token transfers to the stake or reserve
// ledger according to the tag attached to the transfer.
package receiver

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/reserve"
	"github.com/VlodkoMr/zomland-ft/staking"
	"github.com/VlodkoMr/zomland-ft/sysaction"
)

// Transfer tags.
const (
	TagStake        = "stake"
	TagReserveTopUp = "reserve-topup"
	TagClanCreate   = "clan-create"
)

// ErrNotTokenContract is returned when a transfer notification does not come
// from the token contract itself.
var ErrNotTokenContract = errors.New("receiver: transfer notification from foreign contract")

// OnTransfer consumes amount sent by sender according to tag and returns the
// unused part, which the token contract refunds. Recognised tags consume the
// whole amount; any other tag consumes nothing.
func OnTransfer(ctx *sysaction.Context, sender common.AccountID, amount *uint256.Int, tag string) (*uint256.Int, error) {
	switch tag {
	case TagStake:
		if err := staking.Stake(ctx.State, ctx.Rules, sender, amount, ctx.Timestamp); err != nil {
			return nil, err
		}
	case TagReserveTopUp, TagClanCreate:
		if err := reserve.TopUp(ctx.State, sender, amount); err != nil {
			return nil, err
		}
	default:
		log.Warn("receiver: unrecognised transfer tag, refunding", "sender", sender, "amount", amount, "tag", tag)
		return amount.Clone(), nil
	}
	return new(uint256.Int), nil
}

func init() {
	sysaction.DefaultRegistry.Register(&receiverHandler{})
}

type receiverHandler struct{}

func (h *receiverHandler) CanHandle(kind sysaction.ActionKind) bool {
	return kind == sysaction.ActionFtTransfer
}

func (h *receiverHandler) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) (*uint256.Int, error) {
	if ctx.Caller != ctx.Auth.Contract() {
		return nil, fmt.Errorf("%w: %s", ErrNotTokenContract, ctx.Caller)
	}
	var p sysaction.FtTransferPayload
	if err := sysaction.DecodePayload(sa, &p); err != nil {
		return nil, err
	}
	sender, err := sysaction.ParseAccount("sender_id", p.SenderID)
	if err != nil {
		return nil, err
	}
	amount, err := sysaction.ParseAmount("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	return OnTransfer(ctx, sender, amount, p.Msg)
}
