package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/VlodkoMr/zomland-ft/common/math"
	"github.com/VlodkoMr/zomland-ft/staking"
	"github.com/VlodkoMr/zomland-ft/state"
)

var (
	totalStakedFlag = &cli.StringFlag{
		Name:     "total",
		Usage:    "Total staked supply in whole tokens",
		Required: true,
	}
	aprCommand = &cli.Command{
		Action: apr,
		Name:   "apr",
		Usage:  "Print the annual percentage rate for a total staked supply",
		Flags:  []cli.Flag{totalStakedFlag},
	}
)

func apr(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	rules, err := cfg.Contract.Protocol.Rules()
	if err != nil {
		return err
	}
	total, err := math.ParseToken(ctx.String(totalStakedFlag.Name))
	if err != nil {
		return err
	}
	st := state.New(0)
	st.SetTotalStaked(total)
	rate, err := staking.APR(st, rules)
	if err != nil {
		return err
	}
	fmt.Printf("APR: %s%%\n", rate.Dec())
	return nil
}
