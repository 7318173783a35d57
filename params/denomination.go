package params

import "github.com/VlodkoMr/zomland-ft/common/math"

// These are the multipliers for token denominations. Both the staked token
// and the native gas currency carry 24 decimals.
// Example: To get the yocto value of 5 whole tokens, use
//
//	new(uint256.Int).Mul(uint256.NewInt(5), params.Token)
const Yocto = 1

// Token is one whole token (10^24 yocto). It is also the fixed-point scale of
// the reward-per-token accumulator.
var Token = math.MustParseU128("1000000000000000000000000")

// MinStake is the smallest non-zero stake balance an account may hold at
// the default emission (10^19 yocto, 0.00001 token). Smaller totals would let
// the reward-per-token accumulator leave 128 bits within seconds.
var MinStake = math.MustParseU128("10000000000000000000")
