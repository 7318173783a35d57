// Package tokenledger defines the fungible-token ledger the contract pays
// out through, and an in-memory implementation of it.
//
// The contract never awaits a deposit: Deposit is a fire-and-forget
// instruction and the contract's own state is consistent before it is
// issued.
package tokenledger

import (
	"errors"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
)

var (
	ErrNotRegistered       = errors.New("tokenledger: account not registered")
	ErrInsufficientBalance = errors.New("tokenledger: insufficient balance")
)

// Ledger is the token ledger consumed by the staking and reserve cores.
type Ledger interface {
	Deposit(account common.AccountID, amount *uint256.Int)
	BalanceOf(account common.AccountID) *uint256.Int
	IsRegistered(account common.AccountID) bool
	Register(account common.AccountID)
}

// Credit deposits amount to account, registering the account first if the
// ledger does not know it yet.
func Credit(l Ledger, account common.AccountID, amount *uint256.Int) {
	if !l.IsRegistered(account) {
		l.Register(account)
	}
	l.Deposit(account, amount)
}

// MemoryLedger is a Ledger backed by maps. It is safe for concurrent use.
type MemoryLedger struct {
	mu         sync.RWMutex
	registered mapset.Set[common.AccountID]
	balances   map[common.AccountID]*uint256.Int
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		registered: mapset.NewThreadUnsafeSet[common.AccountID](),
		balances:   make(map[common.AccountID]*uint256.Int),
	}
}

func (l *MemoryLedger) Register(account common.AccountID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.registered.Add(account) {
		l.balances[account] = new(uint256.Int)
	}
}

func (l *MemoryLedger) IsRegistered(account common.AccountID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registered.Contains(account)
}

// Deposit credits a registered account. Deposits to unknown accounts are
// dropped and logged; use Credit to register implicitly.
func (l *MemoryLedger) Deposit(account common.AccountID, amount *uint256.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.registered.Contains(account) {
		log.Error("tokenledger: deposit to unregistered account", "account", account, "amount", amount)
		return
	}
	sum, err := math.SafeAdd128(l.balances[account], amount)
	if err != nil {
		log.Error("tokenledger: deposit overflows balance", "account", account, "amount", amount, "err", err)
		return
	}
	l.balances[account] = sum
}

func (l *MemoryLedger) BalanceOf(account common.AccountID) *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if bal, ok := l.balances[account]; ok {
		return bal.Clone()
	}
	return new(uint256.Int)
}

// Transfer moves liquid balance between registered accounts.
func (l *MemoryLedger) Transfer(from, to common.AccountID, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.registered.Contains(from) {
		return fmt.Errorf("%w: %s", ErrNotRegistered, from)
	}
	if !l.registered.Contains(to) {
		return fmt.Errorf("%w: %s", ErrNotRegistered, to)
	}
	if l.balances[from].Lt(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from, l.balances[from].Dec(), amount.Dec())
	}
	sum, err := math.SafeAdd128(l.balances[to], amount)
	if err != nil {
		return err
	}
	l.balances[from] = new(uint256.Int).Sub(l.balances[from], amount)
	l.balances[to] = sum
	return nil
}

// Accounts returns the registered accounts in no particular order.
func (l *MemoryLedger) Accounts() []common.AccountID {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registered.ToSlice()
}
