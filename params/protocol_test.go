package params

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VlodkoMr/zomland-ft/common/math"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	assert.Equal(t, "500000000000000000000000", r.RewardPerSecond.Dec())
	assert.Equal(t, "100000000000000000000000", r.MinClaimDeposit.Dec())
	assert.Equal(t, uint64(50), r.CommissionBPS)
	assert.Equal(t, "10000000000000000000", r.MinStake.Dec())
}

func TestMinStakeBoundsAccumulator(t *testing.T) {
	for _, rps := range []string{"0.5", "1", "250", "1000000"} {
		cfg := Config{RewardPerSecond: rps, CommissionBPS: 50, MinClaimDeposit: "0.1"}
		r, err := cfg.Rules()
		require.NoError(t, err, rps)
		require.False(t, r.MinStake.Lt(MinStake), rps)

		// A whole horizon of emission over the floor stays in 128 bits.
		_, err = math.Mul3Div(uint256.NewInt(StakeHorizon), r.RewardPerSecond, Token, r.MinStake)
		require.NoError(t, err, rps)
	}
	// Higher emission raises the floor.
	cfg := Config{RewardPerSecond: "1000000", CommissionBPS: 50, MinClaimDeposit: "0.1"}
	r, err := cfg.Rules()
	require.NoError(t, err)
	assert.True(t, MinStake.Lt(r.MinStake))
}

func TestConfigRulesRejectsInvalid(t *testing.T) {
	tests := []Config{
		{RewardPerSecond: "x", CommissionBPS: 50, MinClaimDeposit: "0.1"},
		{RewardPerSecond: "0.5", CommissionBPS: BPSBase + 1, MinClaimDeposit: "0.1"},
		{RewardPerSecond: "0.5", CommissionBPS: 50, MinClaimDeposit: "-1"},
	}
	for _, cfg := range tests {
		_, err := cfg.Rules()
		require.ErrorIs(t, err, ErrInvalidConfig, cfg.String())
	}
}

func TestNanoToSec(t *testing.T) {
	assert.Equal(t, uint64(0), NanoToSec(999_999_999))
	assert.Equal(t, uint64(1), NanoToSec(1_000_000_000))
	assert.Equal(t, uint64(10), NanoToSec(10_500_000_000))
}

func TestTokenScale(t *testing.T) {
	assert.Equal(t, "1000000000000000000000000", Token.Dec())
}
