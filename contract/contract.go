// Package contract is the single entry point of the staking and reserve
// token contract. It owns the storage, authorizes callers and dispatches
// every mutating call as a system action.
package contract

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/metrics"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/parentauth"
	"github.com/VlodkoMr/zomland-ft/reserve"
	"github.com/VlodkoMr/zomland-ft/staking"
	"github.com/VlodkoMr/zomland-ft/state"
	"github.com/VlodkoMr/zomland-ft/sysaction"
	"github.com/VlodkoMr/zomland-ft/tokenledger"

	// FT_TRANSFER handler.
	_ "github.com/VlodkoMr/zomland-ft/receiver"
)

// Call describes the environment of one contract invocation.
type Call struct {
	Predecessor common.AccountID
	Deposit     *uint256.Int // attached native deposit, nil for none
	Timestamp   uint64       // block time in nanoseconds
}

// Contract is the staking and reserve contract. It is safe for concurrent
// use; calls are serialized.
type Contract struct {
	mu sync.Mutex

	config   Config
	rules    *params.Rules
	auth     *parentauth.Authorizer
	state    *state.State
	ledger   tokenledger.Ledger
	registry *sysaction.Registry
	metrics  *metrics.Collector
}

// New deploys a contract at genesis (ns). Payouts are deposited to ledger;
// collector may be nil.
func New(cfg Config, ledger tokenledger.Ledger, genesis uint64, collector *metrics.Collector) (*Contract, error) {
	rules, err := cfg.Protocol.Rules()
	if err != nil {
		return nil, err
	}
	auth, err := parentauth.New(cfg.Account)
	if err != nil {
		return nil, err
	}
	c := &Contract{
		config:   cfg,
		rules:    rules,
		auth:     auth,
		state:    state.New(genesis),
		ledger:   ledger,
		registry: sysaction.DefaultRegistry,
		metrics:  collector,
	}
	log.Info("Contract deployed", "account", cfg.Account, "parent", auth.Parent(), "protocol", cfg.Protocol.String())
	return c, nil
}

func (c *Contract) Config() Config { return c.config }

func (c *Contract) Rules() *params.Rules { return c.rules }

func (c *Contract) Ledger() tokenledger.Ledger { return c.ledger }

// ID returns the account the contract is deployed at.
func (c *Contract) ID() common.AccountID { return c.auth.Contract() }

// Parent returns the account authorized for privileged calls.
func (c *Contract) Parent() common.AccountID { return c.auth.Parent() }

// Execute runs raw system-action call data on behalf of call.
func (c *Contract) Execute(call Call, data []byte) (*uint256.Int, error) {
	sa, err := sysaction.Decode(data)
	if err != nil {
		return nil, err
	}
	return c.dispatch(call, sa)
}

func (c *Contract) dispatch(call Call, sa *sysaction.SysAction) (*uint256.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := call.Predecessor.Validate(); err != nil {
		return nil, fmt.Errorf("predecessor: %w", err)
	}
	ctx := &sysaction.Context{
		Caller:    call.Predecessor,
		Deposit:   call.Deposit,
		Timestamp: call.Timestamp,
		State:     c.state,
		Ledger:    c.ledger,
		Auth:      c.auth,
		Rules:     c.rules,
	}
	if ctx.Deposit == nil {
		ctx.Deposit = new(uint256.Int)
	}
	result, err := c.registry.Dispatch(ctx, sa)
	c.metrics.ObserveCall(string(sa.Action), err)
	if err != nil {
		log.Debug("Contract call failed", "action", sa.Action, "caller", call.Predecessor, "err", err)
		return nil, err
	}
	c.record(sa, result, call.Timestamp)
	return result, nil
}

// record updates metrics after a successful call.
func (c *Contract) record(sa *sysaction.SysAction, result *uint256.Int, now uint64) {
	if c.metrics == nil {
		return
	}
	switch sa.Action {
	case sysaction.ActionRewardWithdraw:
		c.metrics.AddRewardPaid(result)
	case sysaction.ActionStakeWithdraw:
		c.metrics.AddStakeWithdrawn(result)
	case sysaction.ActionReserveBurn:
		c.metrics.AddReserveBurned(result)
	case sysaction.ActionReserveTransfer:
		if tax, err := reserve.Commission(result, c.rules.CommissionBPS); err == nil {
			c.metrics.AddReserveTransfer(result, tax)
		}
	}
	apr, err := staking.APR(c.state, c.rules)
	if err != nil {
		log.Warn("Failed to compute APR", "err", err)
		return
	}
	c.metrics.SetPool(c.state.TotalStaked(), c.state.RewardPerTokenStored(), apr)
}

func (c *Contract) call(call Call, kind sysaction.ActionKind, payload interface{}) (*uint256.Int, error) {
	data, err := sysaction.MakeSysAction(kind, payload)
	if err != nil {
		return nil, err
	}
	return c.Execute(call, data)
}

// FtOnTransfer is the inbound transfer notification sent by the token
// contract after sender moved amount into the contract's custody. Returns
// the unused amount to refund.
func (c *Contract) FtOnTransfer(call Call, sender common.AccountID, amount *uint256.Int, msg string) (*uint256.Int, error) {
	return c.call(call, sysaction.ActionFtTransfer, sysaction.FtTransferPayload{
		SenderID: string(sender),
		Amount:   amount.Dec(),
		Msg:      msg,
	})
}

// Unstake withdraws amount of the caller's stake, or all of it if amount is
// nil. Returns the amount withdrawn.
func (c *Contract) Unstake(call Call, amount *uint256.Int) (*uint256.Int, error) {
	var p sysaction.StakeWithdrawPayload
	if amount != nil {
		p.Amount = amount.Dec()
	}
	return c.call(call, sysaction.ActionStakeWithdraw, p)
}

// WithdrawReward pays out the caller's accrued reward.
func (c *Contract) WithdrawReward(call Call) (*uint256.Int, error) {
	return c.call(call, sysaction.ActionRewardWithdraw, nil)
}

// SetBonus sets the bonus percentage of account. Parent only.
func (c *Contract) SetBonus(call Call, account common.AccountID, pct uint8) error {
	_, err := c.call(call, sysaction.ActionBonusSet, sysaction.BonusSetPayload{AccountID: string(account), BonusPct: pct})
	return err
}

// ClearBonus removes the bonus of account. Parent only.
func (c *Contract) ClearBonus(call Call, account common.AccountID) error {
	_, err := c.call(call, sysaction.ActionBonusClear, sysaction.BonusClearPayload{AccountID: string(account)})
	return err
}

// BurnReserve burns amount from the reserve of account. Parent only.
func (c *Contract) BurnReserve(call Call, account common.AccountID, amount *uint256.Int) (*uint256.Int, error) {
	return c.call(call, sysaction.ActionReserveBurn, sysaction.ReserveBurnPayload{
		AccountID: string(account),
		Amount:    amount.Dec(),
	})
}

// TransferReserve moves amount from the reserve of sender to receiver, less
// commission. Parent only.
func (c *Contract) TransferReserve(call Call, sender, receiver common.AccountID, amount *uint256.Int) (*uint256.Int, error) {
	return c.call(call, sysaction.ActionReserveTransfer, sysaction.ReserveTransferPayload{
		SenderID:   string(sender),
		ReceiverID: string(receiver),
		Amount:     amount.Dec(),
	})
}

// WithdrawReserve pays the caller's whole reserve back to it.
func (c *Contract) WithdrawReserve(call Call) (*uint256.Int, error) {
	return c.call(call, sysaction.ActionReserveWithdraw, nil)
}
