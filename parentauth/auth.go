// Package parentauth resolves the parent identity allowed to invoke the
// privileged contract operations.
//
// The contract is deployed as a sub-account of its parent game contract
// ("ft.zomland.near" under "zomland.near"); only calls whose predecessor is
// that parent may set bonuses or spend reserve.
package parentauth

import (
	"errors"
	"fmt"

	"github.com/VlodkoMr/zomland-ft/common"
)

var (
	ErrUnauthorized = errors.New("parentauth: caller is not the parent contract")
	ErrNoParent     = errors.New("parentauth: contract account has no parent")
)

// Authorizer checks callers against the parent of Contract.
type Authorizer struct {
	contract common.AccountID
	parent   common.AccountID
}

// New returns an Authorizer for the contract deployed at contract.
func New(contract common.AccountID) (*Authorizer, error) {
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	parent, ok := common.ParentOf(contract)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoParent, contract)
	}
	return &Authorizer{contract: contract, parent: parent}, nil
}

// Contract returns the account the contract is deployed at.
func (a *Authorizer) Contract() common.AccountID { return a.contract }

// Parent returns the authorized parent identity.
func (a *Authorizer) Parent() common.AccountID { return a.parent }

// Authorize returns the parent identity if predecessor is the parent.
func (a *Authorizer) Authorize(predecessor common.AccountID) (common.AccountID, error) {
	if predecessor != a.parent {
		return "", fmt.Errorf("%w: got %s, want %s", ErrUnauthorized, predecessor, a.parent)
	}
	return a.parent, nil
}
