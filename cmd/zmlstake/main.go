// zmlstake replays contract calls against the staking and reserve contract.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/VlodkoMr/zomland-ft/cmd/utils"
	"github.com/VlodkoMr/zomland-ft/params"
)

const clientIdentifier = "zmlstake"

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

var app = newApp()

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = clientIdentifier
	app.Usage = "the zomland staking and reserve contract simulator"
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Copyright = "Copyright 2022-2026 The zomland-ft Authors"
	app.Flags = append(append([]cli.Flag{utils.ConfigFileFlag}, utils.LoggingFlags...), utils.ContractFlags...)
	app.Commands = []*cli.Command{
		simulateCommand,
		aprCommand,
		dumpConfigCommand,
		versionCommand,
		licenseCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		return utils.SetupLogging(ctx)
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
