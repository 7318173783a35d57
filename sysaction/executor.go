package sysaction

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/parentauth"
	"github.com/VlodkoMr/zomland-ft/state"
	"github.com/VlodkoMr/zomland-ft/tokenledger"
)

// Context carries information available to a system-action handler.
type Context struct {
	Caller    common.AccountID // predecessor of the call
	Deposit   *uint256.Int     // attached native deposit
	Timestamp uint64           // nanoseconds
	State     *state.State
	Ledger    tokenledger.Ledger
	Auth      *parentauth.Authorizer
	Rules     *params.Rules
}

// Handler is implemented by the staking, reserve and receiver sub-systems.
// Handle returns the amount the action reports back to the caller.
type Handler interface {
	CanHandle(kind ActionKind) bool
	Handle(ctx *Context, sa *SysAction) (*uint256.Int, error)
}

// Registry holds registered handlers.
type Registry struct{ handlers []Handler }

// DefaultRegistry is the process-wide handler registry.
var DefaultRegistry = &Registry{}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) { r.handlers = append(r.handlers, h) }

// Lookup returns the handler for kind, or nil.
func (r *Registry) Lookup(kind ActionKind) Handler {
	for _, h := range r.handlers {
		if h.CanHandle(kind) {
			return h
		}
	}
	return nil
}

// Execute decodes data and dispatches it to the handler registered in r.
func (r *Registry) Execute(ctx *Context, data []byte) (*uint256.Int, error) {
	sa, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return r.Dispatch(ctx, sa)
}

// Dispatch runs an already decoded action.
func (r *Registry) Dispatch(ctx *Context, sa *SysAction) (*uint256.Int, error) {
	if h := r.Lookup(sa.Action); h != nil {
		return h.Handle(ctx, sa)
	}
	return nil, fmt.Errorf("unknown system action: %q", sa.Action)
}

// Execute dispatches data through DefaultRegistry.
func Execute(ctx *Context, data []byte) (*uint256.Int, error) {
	return DefaultRegistry.Execute(ctx, data)
}
