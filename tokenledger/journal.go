package tokenledger

import (
	"sync"

	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
)

// Receipt records one deposit instruction issued by the contract.
type Receipt struct {
	ID      uuid.UUID
	Seq     uint64
	Account common.AccountID
	Amount  *uint256.Int
}

// Journal wraps a Ledger and keeps a receipt for every deposit passed
// through it.
type Journal struct {
	Ledger

	mu       sync.Mutex
	receipts []Receipt
}

func NewJournal(l Ledger) *Journal {
	return &Journal{Ledger: l}
}

func (j *Journal) Deposit(account common.AccountID, amount *uint256.Int) {
	j.mu.Lock()
	j.receipts = append(j.receipts, Receipt{
		ID:      uuid.New(),
		Seq:     uint64(len(j.receipts)),
		Account: account,
		Amount:  amount.Clone(),
	})
	j.mu.Unlock()
	j.Ledger.Deposit(account, amount)
}

// Receipts returns the recorded receipts in issue order.
func (j *Journal) Receipts() []Receipt {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Receipt, len(j.receipts))
	copy(out, j.receipts)
	return out
}

// Since returns the receipts issued at or after sequence number seq.
func (j *Journal) Since(seq uint64) []Receipt {
	j.mu.Lock()
	defer j.mu.Unlock()
	if seq >= uint64(len(j.receipts)) {
		return nil
	}
	out := make([]Receipt, uint64(len(j.receipts))-seq)
	copy(out, j.receipts[seq:])
	return out
}

// Len returns the number of recorded receipts.
func (j *Journal) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return uint64(len(j.receipts))
}
