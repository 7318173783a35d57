package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/VlodkoMr/zomland-ft/params"
)

var (
	versionCommand = &cli.Command{
		Action:    version,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
	licenseCommand = &cli.Command{
		Action:    license,
		Name:      "license",
		Usage:     "Display license information",
		ArgsUsage: " ",
	}
)

func version(ctx *cli.Context) error {
	fmt.Println(strings.ToUpper(clientIdentifier[:1]) + clientIdentifier[1:])
	fmt.Println("Version:", params.VersionWithMeta)
	if gitCommit != "" {
		fmt.Println("Git Commit:", gitCommit)
	}
	if gitDate != "" {
		fmt.Println("Git Commit Date:", gitDate)
	}
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	fmt.Printf("GOPATH=%s\n", os.Getenv("GOPATH"))
	fmt.Printf("GOROOT=%s\n", runtime.GOROOT())
	return nil
}

const licenseText = `zmlstake licensing summary

- cmd/utils is derived from go-ethereum and is licensed under the GNU
  General Public License, version 3 or later, as stated in its file headers.
- The zmlstake binary links cmd/utils and is therefore distributed under
  the same terms: <http://www.gnu.org/licenses/gpl-3.0.html>.
- go-ethereum library packages are used under the GNU LGPL, version 3 or later.`

func license(_ *cli.Context) error {
	fmt.Println(licenseText)
	return nil
}
