// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for zmlstake commands.
package utils

import (
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/VlodkoMr/zomland-ft/common"
	"github.com/VlodkoMr/zomland-ft/contract"
	"github.com/VlodkoMr/zomland-ft/internal/flags"
	"github.com/VlodkoMr/zomland-ft/metrics"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// Contract settings
	ContractAccountFlag = &cli.StringFlag{
		Name:     "contract.account",
		Usage:    "Account the contract is deployed at; its parent is the privileged caller",
		Value:    string(contract.DefaultConfig.Account),
		Category: flags.ContractCategory,
	}
	RewardPerSecondFlag = &cli.StringFlag{
		Name:     "protocol.rewardpersecond",
		Usage:    "Pool emission in whole tokens per second",
		Value:    contract.DefaultConfig.Protocol.RewardPerSecond,
		Category: flags.ProtocolCategory,
	}
	CommissionFlag = &cli.Uint64Flag{
		Name:     "protocol.commission",
		Usage:    "Reserve transfer commission in basis points",
		Value:    contract.DefaultConfig.Protocol.CommissionBPS,
		Category: flags.ProtocolCategory,
	}
	MinClaimDepositFlag = &cli.StringFlag{
		Name:     "protocol.minclaimdeposit",
		Usage:    "Native deposit in whole tokens required to withdraw rewards",
		Value:    contract.DefaultConfig.Protocol.MinClaimDeposit,
		Category: flags.ProtocolCategory,
	}

	// Logging
	VerbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    3,
		Category: flags.LoggingCategory,
	}
	VModuleFlag = &cli.StringFlag{
		Name:     "vmodule",
		Usage:    "Per-module verbosity: comma-separated list of <pattern>=<level> (e.g. staking/*=5)",
		Category: flags.LoggingCategory,
	}
	LogJSONFlag = &cli.BoolFlag{
		Name:     "log.json",
		Usage:    "Format logs with JSON",
		Category: flags.LoggingCategory,
	}

	// Metrics flags
	MetricsEnabledFlag = &cli.BoolFlag{
		Name:     "metrics",
		Usage:    "Enable metrics collection and reporting",
		Category: flags.MetricsCategory,
	}
	MetricsHTTPFlag = &cli.StringFlag{
		Name:     "metrics.addr",
		Usage:    "Enable stand-alone metrics HTTP server listening interface",
		Value:    metrics.DefaultConfig.HTTP,
		Category: flags.MetricsCategory,
	}
	MetricsPortFlag = &cli.IntFlag{
		Name:     "metrics.port",
		Usage:    "Metrics HTTP server listening port",
		Value:    metrics.DefaultConfig.Port,
		Category: flags.MetricsCategory,
	}
)

var (
	ContractFlags = []cli.Flag{
		ContractAccountFlag,
		RewardPerSecondFlag,
		CommissionFlag,
		MinClaimDepositFlag,
	}
	LoggingFlags = []cli.Flag{
		VerbosityFlag,
		VModuleFlag,
		LogJSONFlag,
	}
	MetricsFlags = []cli.Flag{
		MetricsEnabledFlag,
		MetricsHTTPFlag,
		MetricsPortFlag,
	}
)

// SetContractConfig applies contract related command line flags to the config.
func SetContractConfig(ctx *cli.Context, cfg *contract.Config) {
	if ctx.IsSet(ContractAccountFlag.Name) {
		cfg.Account = common.AccountID(ctx.String(ContractAccountFlag.Name))
	}
	if ctx.IsSet(RewardPerSecondFlag.Name) {
		cfg.Protocol.RewardPerSecond = ctx.String(RewardPerSecondFlag.Name)
	}
	if ctx.IsSet(CommissionFlag.Name) {
		cfg.Protocol.CommissionBPS = ctx.Uint64(CommissionFlag.Name)
	}
	if ctx.IsSet(MinClaimDepositFlag.Name) {
		cfg.Protocol.MinClaimDeposit = ctx.String(MinClaimDepositFlag.Name)
	}
}

// SetMetricsConfig applies metrics related command line flags to the config.
func SetMetricsConfig(ctx *cli.Context, cfg *metrics.Config) {
	if ctx.IsSet(MetricsEnabledFlag.Name) {
		cfg.Enabled = ctx.Bool(MetricsEnabledFlag.Name)
	}
	if ctx.IsSet(MetricsHTTPFlag.Name) {
		cfg.HTTP = ctx.String(MetricsHTTPFlag.Name)
	}
	if ctx.IsSet(MetricsPortFlag.Name) {
		cfg.Port = ctx.Int(MetricsPortFlag.Name)
	}
}

// SetupLogging installs the root logger according to the logging flags.
// Terminal output is coloured when stderr is a terminal.
func SetupLogging(ctx *cli.Context) error {
	var handler slog.Handler
	if ctx.Bool(LogJSONFlag.Name) {
		handler = log.JSONHandler(os.Stderr)
	} else {
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		output := io.Writer(os.Stderr)
		if useColor {
			output = colorable.NewColorableStderr()
		}
		handler = log.NewTerminalHandler(output, useColor)
	}
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(log.FromLegacyLevel(ctx.Int(VerbosityFlag.Name)))
	if err := glogger.Vmodule(ctx.String(VModuleFlag.Name)); err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
