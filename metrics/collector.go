// Package metrics exports the contract's pool and reserve activity as
// Prometheus metrics.
package metrics

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VlodkoMr/zomland-ft/params"
)

const namespace = "zmlstake"

// Call results reported by ObserveCall.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector holds the contract metrics. All methods are no-ops on a nil
// Collector, so a contract can run without metrics.
type Collector struct {
	registry *prometheus.Registry

	totalStaked    prometheus.Gauge
	rewardPerToken prometheus.Gauge
	apr            prometheus.Gauge

	rewardPaid      prometheus.Counter
	stakeWithdrawn  prometheus.Counter
	reserveBurned   prometheus.Counter
	reserveTransfer prometheus.Counter
	reserveTax      prometheus.Counter
	calls           *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		totalStaked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "total_staked_tokens",
			Help: "Total staked supply in whole tokens.",
		}),
		rewardPerToken: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "reward_per_token",
			Help: "Stored reward accumulator in whole tokens per staked token.",
		}),
		apr: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "apr_percent",
			Help: "Current annual percentage rate.",
		}),
		rewardPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reward_paid_tokens_total",
			Help: "Staking reward paid out.",
		}),
		stakeWithdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "stake_withdrawn_tokens_total",
			Help: "Stake returned to stakers.",
		}),
		reserveBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reserve_burned_tokens_total",
			Help: "Reserve burned to the burn sink.",
		}),
		reserveTransfer: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reserve_transferred_tokens_total",
			Help: "Reserve spent through taxed transfers, tax included.",
		}),
		reserveTax: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reserve_tax_tokens_total",
			Help: "Commission collected by the parent on reserve transfers.",
		}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "calls_total",
			Help: "Contract calls by action and result.",
		}, []string{"action", "result"}),
	}
	for _, m := range []prometheus.Collector{
		c.totalStaked, c.rewardPerToken, c.apr,
		c.rewardPaid, c.stakeWithdrawn, c.reserveBurned, c.reserveTransfer, c.reserveTax,
		c.calls,
	} {
		if err := c.registry.Register(m); err != nil {
			log.Warn("unable to register metric", "err", err)
		}
	}
	return c
}

// Handler returns the HTTP handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveCall counts one contract call.
func (c *Collector) ObserveCall(action string, err error) {
	if c == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.calls.WithLabelValues(action, result).Inc()
}

// SetPool records the pool-wide gauges.
func (c *Collector) SetPool(totalStaked, rewardPerToken, apr *uint256.Int) {
	if c == nil {
		return
	}
	c.totalStaked.Set(Tokens(totalStaked))
	c.rewardPerToken.Set(Tokens(rewardPerToken))
	c.apr.Set(toFloat(apr))
}

func (c *Collector) AddRewardPaid(x *uint256.Int) {
	if c == nil {
		return
	}
	c.rewardPaid.Add(Tokens(x))
}

func (c *Collector) AddStakeWithdrawn(x *uint256.Int) {
	if c == nil {
		return
	}
	c.stakeWithdrawn.Add(Tokens(x))
}

func (c *Collector) AddReserveBurned(x *uint256.Int) {
	if c == nil {
		return
	}
	c.reserveBurned.Add(Tokens(x))
}

// AddReserveTransfer records a reserve transfer of amount carrying tax.
func (c *Collector) AddReserveTransfer(amount, tax *uint256.Int) {
	if c == nil {
		return
	}
	c.reserveTransfer.Add(Tokens(amount))
	c.reserveTax.Add(Tokens(tax))
}

var tokenScale = new(big.Float).SetInt(params.Token.ToBig())

// Tokens converts a yocto amount to whole tokens. Precision is that of a
// float64, which is enough for monitoring.
func Tokens(x *uint256.Int) float64 {
	if x == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(x.ToBig()), tokenScale).Float64()
	return f
}

func toFloat(x *uint256.Int) float64 {
	if x == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(x.ToBig()).Float64()
	return f
}
