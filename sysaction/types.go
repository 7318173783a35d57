// Package sysaction implements the contract call protocol.
//
// A call is a JSON-encoded SysAction envelope naming the action and carrying
// its payload. The contract decodes the envelope and dispatches it to the
// registered handler for that action (staking, reserve or the inbound
// transfer receiver). Amounts in payloads are base-10 strings.
package sysaction

import "encoding/json"

// ActionKind identifies the type of contract call.
type ActionKind string

const (
	// Inbound token transfer notification (ft_on_transfer)
	ActionFtTransfer ActionKind = "FT_TRANSFER"

	// Staking
	ActionStakeWithdraw  ActionKind = "STAKE_WITHDRAW"
	ActionRewardWithdraw ActionKind = "REWARD_WITHDRAW"
	ActionBonusSet       ActionKind = "BONUS_SET"
	ActionBonusClear     ActionKind = "BONUS_CLEAR"

	// Reserve
	ActionReserveBurn     ActionKind = "RESERVE_BURN"
	ActionReserveTransfer ActionKind = "RESERVE_TRANSFER"
	ActionReserveWithdraw ActionKind = "RESERVE_WITHDRAW"
)

// SysAction is the top-level envelope of a contract call.
type SysAction struct {
	Action  ActionKind      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// FtTransferPayload is the payload for FT_TRANSFER. Msg is the routing tag
// attached to the transfer.
type FtTransferPayload struct {
	SenderID string `json:"sender_id"`
	Amount   string `json:"amount"`
	Msg      string `json:"msg"`
}

// StakeWithdrawPayload is the payload for STAKE_WITHDRAW. An empty Amount
// withdraws the whole stake.
type StakeWithdrawPayload struct {
	Amount string `json:"amount,omitempty"`
}

// BonusSetPayload is the payload for BONUS_SET.
type BonusSetPayload struct {
	AccountID string `json:"account_id"`
	BonusPct  uint8  `json:"bonus_pct"`
}

// BonusClearPayload is the payload for BONUS_CLEAR.
type BonusClearPayload struct {
	AccountID string `json:"account_id"`
}

// ReserveBurnPayload is the payload for RESERVE_BURN.
type ReserveBurnPayload struct {
	AccountID string `json:"account_id"`
	Amount    string `json:"amount"`
}

// ReserveTransferPayload is the payload for RESERVE_TRANSFER.
type ReserveTransferPayload struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Amount     string `json:"amount"`
}
