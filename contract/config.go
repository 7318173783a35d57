package contract

import (
	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/params"
)

// Config is the deployment configuration of a contract instance.
type Config struct {
	// Account the contract is deployed at. Its parent is the only caller
	// allowed to set bonuses or spend reserve.
	Account  common.AccountID
	Protocol params.Config
}

// DefaultConfig is the reference deployment.
var DefaultConfig = Config{
	Account:  "ft.zomland.near",
	Protocol: params.DefaultConfig,
}
