package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/VlodkoMr/zomland-ft/cmd/utils"
	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/contract"
	"github.com/VlodkoMr/zomland-ft/metrics"
	"github.com/VlodkoMr/zomland-ft/tokenledger"
)

var (
	genesisFlag = &cli.Uint64Flag{
		Name:  "genesis",
		Usage: "Unix time in seconds at which the contract is deployed",
	}
	simulateCommand = &cli.Command{
		Action:    simulate,
		Name:      "simulate",
		Usage:     "Replay a scenario of contract calls and print the resulting state",
		ArgsUsage: "<scenario.jsonl>",
		Flags:     append([]cli.Flag{genesisFlag}, utils.MetricsFlags...),
		Description: `
The scenario is a JSON-lines file, one call per line:

  {"at": 0, "caller": "ft.zomland.near", "action": "FT_TRANSFER",
   "payload": {"sender_id": "alice.near", "amount": "100000000000000000000000000", "msg": "stake"}}
  {"at": 10, "caller": "alice.near", "deposit": "0.1", "action": "REWARD_WITHDRAW"}

"at" is seconds after genesis, "deposit" the attached deposit in whole
tokens. Payload amounts are in the smallest unit. When metrics are enabled
the endpoint keeps serving after the replay until interrupted.`,
	}
)

func simulate(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("need exactly one scenario file")
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()
	steps, err := parseScenario(f)
	if err != nil {
		return fmt.Errorf("%s: %w", ctx.Args().First(), err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		srv, err := metrics.StartServer(cfg.Metrics, collector)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	genesis, err := toNanos(ctx.Uint64(genesisFlag.Name))
	if err != nil {
		return fmt.Errorf("--%s: %w", genesisFlag.Name, err)
	}
	journal := tokenledger.NewJournal(tokenledger.NewMemoryLedger())
	c, err := contract.New(cfg.Contract, journal, genesis, collector)
	if err != nil {
		return err
	}
	results, err := runScenario(c, steps, genesis)
	if err != nil {
		return err
	}
	end := genesis
	if n := len(steps); n > 0 {
		if end, err = timestamp(genesis, steps[n-1].At); err != nil {
			return err
		}
	}
	if err := printReport(os.Stdout, c, journal, results, end); err != nil {
		return err
	}

	if collector != nil {
		log.Info("Replay finished, serving metrics until interrupted")
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
	}
	return nil
}

var heading = color.New(color.Bold)

// printReport renders the call log, the pool, every known account and the
// ledger receipts as of now.
func printReport(w io.Writer, c *contract.Contract, journal *tokenledger.Journal, results []stepResult, now uint64) error {
	heading.Fprintln(w, "Calls")
	calls := tablewriter.NewWriter(w)
	calls.SetHeader([]string{"#", "At", "Caller", "Action", "Result", "Error"})
	calls.SetAutoWrapText(false)
	for i, r := range results {
		result, errText := "", ""
		if r.Result != nil {
			result = r.Result.Dec()
		}
		if r.Err != nil {
			errText = r.Err.Error()
		}
		calls.Append([]string{strconv.Itoa(i + 1), strconv.FormatUint(r.Step.At, 10), r.Step.Caller, string(r.Step.Action), result, errText})
	}
	calls.Render()

	pool, err := c.Pool(now)
	if err != nil {
		return err
	}
	heading.Fprintln(w, "\nPool")
	pt := tablewriter.NewWriter(w)
	pt.SetHeader([]string{"Total staked", "Reward per token", "APR %", "Last update"})
	pt.Append([]string{math.FormatToken(pool.TotalStaked), pool.RewardPerToken.Dec(), pool.APR.Dec(), strconv.FormatUint(pool.LastUpdateTime, 10)})
	pt.Render()

	receipts := journal.Receipts()
	accounts := c.Snapshot().Accounts()
	seen := make(map[common.AccountID]struct{}, len(accounts))
	for _, a := range accounts {
		seen[a] = struct{}{}
	}
	for _, r := range receipts {
		if _, ok := seen[r.Account]; !ok {
			seen[r.Account] = struct{}{}
			accounts = append(accounts, r.Account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	heading.Fprintln(w, "\nAccounts")
	at := tablewriter.NewWriter(w)
	at.SetHeader([]string{"Account", "Stake", "Earned", "Bonus %", "Reserve", "Balance"})
	for _, a := range accounts {
		rec, err := c.Account(a, now)
		if err != nil {
			return err
		}
		at.Append([]string{
			string(a),
			math.FormatToken(rec.Stake),
			math.FormatToken(rec.Earned),
			strconv.Itoa(int(rec.BonusPct)),
			math.FormatToken(c.ReserveOf(a)),
			math.FormatToken(journal.BalanceOf(a)),
		})
	}
	at.Render()

	heading.Fprintln(w, "\nReceipts")
	rt := tablewriter.NewWriter(w)
	rt.SetHeader([]string{"Seq", "ID", "Account", "Amount"})
	for _, r := range receipts {
		rt.Append([]string{strconv.FormatUint(r.Seq, 10), r.ID.String(), string(r.Account), math.FormatToken(r.Amount)})
	}
	rt.Render()
	return nil
}
