package params

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/VlodkoMr/zomland-ft/common/math"
)

// BPSBase is the denominator of basis-point rates (100% = 10_000 bps).
const BPSBase = 10_000

// Protocol defaults.
var (
	// DefaultRewardPerSecond is the emission of the staking pool: half a token
	// per second, shared by all stakers proportionally to their stake.
	DefaultRewardPerSecond = "0.5"

	// DefaultCommissionBPS is the commission skimmed from reserve transfers
	// and credited to the parent account: 0.5%.
	DefaultCommissionBPS = uint64(50)

	// DefaultMinClaimDeposit is the native deposit a caller must attach to
	// withdraw staking rewards.
	DefaultMinClaimDeposit = "0.1"
)

var ErrInvalidConfig = errors.New("params: invalid protocol config")

// Config is the user-facing protocol configuration. Token amounts are
// decimal strings in whole tokens ("0.5") so config files stay readable.
type Config struct {
	RewardPerSecond string `toml:",omitempty"`
	CommissionBPS   uint64 `toml:",omitempty"`
	MinClaimDeposit string `toml:",omitempty"`
}

// DefaultConfig carries the reference protocol constants.
var DefaultConfig = Config{
	RewardPerSecond: DefaultRewardPerSecond,
	CommissionBPS:   DefaultCommissionBPS,
	MinClaimDeposit: DefaultMinClaimDeposit,
}

// Rules is the resolved form of Config with amounts in yocto units.
type Rules struct {
	RewardPerSecond *uint256.Int
	CommissionBPS   uint64
	MinClaimDeposit *uint256.Int

	// MinStake is the smallest non-zero stake balance. It is never below
	// the package-level MinStake and grows with RewardPerSecond so that
	// StakeHorizon seconds of emission over it fit the accumulator.
	MinStake *uint256.Int
}

// Rules validates the config and resolves its amounts.
func (c *Config) Rules() (*Rules, error) {
	rps, err := math.ParseToken(c.RewardPerSecond)
	if err != nil {
		return nil, fmt.Errorf("%w: RewardPerSecond: %v", ErrInvalidConfig, err)
	}
	if c.CommissionBPS > BPSBase {
		return nil, fmt.Errorf("%w: CommissionBPS %d exceeds %d", ErrInvalidConfig, c.CommissionBPS, BPSBase)
	}
	minDeposit, err := math.ParseToken(c.MinClaimDeposit)
	if err != nil {
		return nil, fmt.Errorf("%w: MinClaimDeposit: %v", ErrInvalidConfig, err)
	}
	minStake, err := stakeFloor(rps)
	if err != nil {
		return nil, fmt.Errorf("%w: RewardPerSecond: %v", ErrInvalidConfig, err)
	}
	return &Rules{
		RewardPerSecond: rps,
		CommissionBPS:   c.CommissionBPS,
		MinClaimDeposit: minDeposit,
		MinStake:        minStake,
	}, nil
}

// stakeFloor returns the smallest stake s for which
// StakeHorizon*rps*Token/s stays within 128 bits, raised to MinStake.
func stakeFloor(rps *uint256.Int) (*uint256.Int, error) {
	q, err := math.Mul3Div(uint256.NewInt(StakeHorizon), rps, Token, math.MaxU128)
	if err != nil {
		return nil, err
	}
	floor := q.AddUint64(q, 1)
	if floor.Lt(MinStake) {
		return MinStake.Clone(), nil
	}
	return floor, nil
}

// DefaultRules returns the resolved reference configuration.
func DefaultRules() *Rules {
	r, err := DefaultConfig.Rules()
	if err != nil {
		panic(err)
	}
	return r
}

func (c *Config) String() string {
	return fmt.Sprintf("{RewardPerSecond: %s CommissionBPS: %d MinClaimDeposit: %s}",
		c.RewardPerSecond, c.CommissionBPS, c.MinClaimDeposit)
}
