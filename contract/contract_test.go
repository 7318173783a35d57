package contract

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/metrics"
	"github.com/VlodkoMr/zomland-ft/params"
	"github.com/VlodkoMr/zomland-ft/parentauth"
	"github.com/VlodkoMr/zomland-ft/receiver"
	"github.com/VlodkoMr/zomland-ft/reserve"
	"github.com/VlodkoMr/zomland-ft/staking"
	"github.com/VlodkoMr/zomland-ft/tokenledger"
)

const (
	genesis = uint64(1_650_000_000) * params.NanosPerSecond
	self    = common.AccountID("ft.zomland.near")
	parent  = common.AccountID("zomland.near")
)

func at(secs uint64) uint64 { return genesis + secs*params.NanosPerSecond }

func tokens(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), params.Token)
}

func newTestContract(t *testing.T) (*Contract, *tokenledger.Journal, *metrics.Collector) {
	t.Helper()
	journal := tokenledger.NewJournal(tokenledger.NewMemoryLedger())
	collector := metrics.NewCollector()
	c, err := New(DefaultConfig, journal, genesis, collector)
	require.NoError(t, err)
	return c, journal, collector
}

// transfer delivers an inbound transfer notification from the token contract.
func transfer(t *testing.T, c *Contract, sender common.AccountID, amount *uint256.Int, tag string, now uint64) *uint256.Int {
	t.Helper()
	unused, err := c.FtOnTransfer(Call{Predecessor: self, Timestamp: now}, sender, amount, tag)
	require.NoError(t, err)
	return unused
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Account: "near", Protocol: params.DefaultConfig}, tokenledger.NewMemoryLedger(), 0, nil)
	require.ErrorIs(t, err, parentauth.ErrNoParent)

	cfg := DefaultConfig
	cfg.Protocol.CommissionBPS = params.BPSBase + 1
	_, err = New(cfg, tokenledger.NewMemoryLedger(), 0, nil)
	require.ErrorIs(t, err, params.ErrInvalidConfig)
}

func TestStakeEarnAndClaim(t *testing.T) {
	c, journal, _ := newTestContract(t)
	assert.Equal(t, self, c.ID())
	assert.Equal(t, parent, c.Parent())

	assert.True(t, transfer(t, c, "alice.near", tokens(100), receiver.TagStake, at(0)).IsZero())
	assert.Equal(t, tokens(100), c.TotalSupply())
	assert.Equal(t, tokens(100), c.StakeOf("alice.near"))

	earned, err := c.EarnedOf("alice.near", at(10))
	require.NoError(t, err)
	assert.Equal(t, tokens(5), earned)

	// Claiming needs the minimum deposit.
	claim := Call{Predecessor: "alice.near", Timestamp: at(10)}
	_, err = c.WithdrawReward(claim)
	require.ErrorIs(t, err, staking.ErrInsufficientDeposit)

	claim.Deposit = c.Rules().MinClaimDeposit
	reward, err := c.WithdrawReward(claim)
	require.NoError(t, err)
	assert.Equal(t, tokens(5), reward)

	receipts := journal.Receipts()
	require.Len(t, receipts, 1)
	assert.Equal(t, common.AccountID("alice.near"), receipts[0].Account)
	assert.Equal(t, tokens(5), receipts[0].Amount)

	got, err := c.Unstake(Call{Predecessor: "alice.near", Timestamp: at(10)}, nil)
	require.NoError(t, err)
	assert.Equal(t, tokens(100), got)
	assert.True(t, c.TotalSupply().IsZero())
	assert.Equal(t, tokens(105), journal.BalanceOf("alice.near"))
}

func TestUnknownTagRefunds(t *testing.T) {
	c, journal, _ := newTestContract(t)
	unused := transfer(t, c, "alice.near", tokens(3), "raffle", at(0))
	assert.Equal(t, tokens(3), unused)
	assert.True(t, c.TotalSupply().IsZero())
	assert.Zero(t, journal.Len())
}

func TestForeignTransferNotification(t *testing.T) {
	c, _, _ := newTestContract(t)
	_, err := c.FtOnTransfer(Call{Predecessor: "alice.near", Timestamp: at(0)}, "alice.near", tokens(3), receiver.TagStake)
	require.ErrorIs(t, err, receiver.ErrNotTokenContract)
	assert.True(t, c.TotalSupply().IsZero())
}

func TestPrivilegedCallsRequireParent(t *testing.T) {
	c, _, _ := newTestContract(t)
	transfer(t, c, "alice.near", tokens(10), receiver.TagReserveTopUp, at(0))
	transfer(t, c, "alice.near", tokens(10), receiver.TagStake, at(0))
	before := c.Snapshot()

	stranger := Call{Predecessor: "alice.near", Timestamp: at(5)}
	require.ErrorIs(t, c.SetBonus(stranger, "alice.near", 10), parentauth.ErrUnauthorized)
	require.ErrorIs(t, c.ClearBonus(stranger, "alice.near"), parentauth.ErrUnauthorized)
	_, err := c.BurnReserve(stranger, "alice.near", tokens(1))
	require.ErrorIs(t, err, parentauth.ErrUnauthorized)
	_, err = c.TransferReserve(stranger, "alice.near", "bob.near", tokens(1))
	require.ErrorIs(t, err, parentauth.ErrUnauthorized)

	assert.Equal(t, before, c.Snapshot())

	owner := Call{Predecessor: parent, Timestamp: at(5)}
	require.NoError(t, c.SetBonus(owner, "alice.near", 10))
	assert.Equal(t, uint8(10), c.BonusOf("alice.near"))
}

func TestReserveTransferAndWithdraw(t *testing.T) {
	c, journal, _ := newTestContract(t)
	transfer(t, c, "c.near", uint256.NewInt(1000), receiver.TagClanCreate, at(0))
	assert.Equal(t, uint64(1000), c.ReserveOf("c.near").Uint64())

	got, err := c.TransferReserve(Call{Predecessor: parent, Timestamp: at(1)}, "c.near", "d.near", uint256.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got.Uint64())
	assert.Equal(t, uint64(995), journal.BalanceOf("d.near").Uint64())
	assert.Equal(t, uint64(5), journal.BalanceOf(parent).Uint64())
	assert.True(t, c.ReserveOf("c.near").IsZero())

	_, err = c.WithdrawReserve(Call{Predecessor: "g.near", Timestamp: at(2)})
	require.ErrorIs(t, err, reserve.ErrNoReserve)
}

func TestInvalidPredecessor(t *testing.T) {
	c, _, _ := newTestContract(t)
	_, err := c.WithdrawReserve(Call{Predecessor: "NOT VALID"})
	require.ErrorIs(t, err, common.ErrInvalidAccount)
}

func TestMetricsFollowCalls(t *testing.T) {
	c, _, collector := newTestContract(t)
	transfer(t, c, "alice.near", tokens(100), receiver.TagStake, at(0))
	_, err := c.WithdrawReward(Call{Predecessor: "alice.near", Deposit: tokens(1), Timestamp: at(4)})
	require.NoError(t, err)
	_, err = c.WithdrawReserve(Call{Predecessor: "alice.near", Timestamp: at(4)})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "zmlstake_total_staked_tokens 100")
	assert.Contains(t, body, "zmlstake_reward_paid_tokens_total 2")
	assert.Contains(t, body, `zmlstake_calls_total{action="FT_TRANSFER",result="ok"} 1`)
	assert.Contains(t, body, `zmlstake_calls_total{action="RESERVE_WITHDRAW",result="error"} 1`)
}

func TestConcurrentCallsConserveStake(t *testing.T) {
	c, _, _ := newTestContract(t)
	accounts := []common.AccountID{"a.near", "b.near", "c.near", "d.near"}

	var g errgroup.Group
	for i := 0; i < 200; i++ {
		i := i
		acc := accounts[i%len(accounts)]
		g.Go(func() error {
			if i%3 == 0 {
				_, err := c.Unstake(Call{Predecessor: acc, Timestamp: at(uint64(i))}, tokens(1))
				return err
			}
			_, err := c.FtOnTransfer(Call{Predecessor: self, Timestamp: at(uint64(i))}, acc, tokens(2), receiver.TagStake)
			return err
		})
	}
	require.NoError(t, g.Wait())

	snap := c.Snapshot()
	assert.Equal(t, snap.SumStakes(), snap.TotalStaked())

	pool, err := c.Pool(at(1000))
	require.NoError(t, err)
	assert.Equal(t, c.TotalSupply(), pool.TotalStaked)
}
