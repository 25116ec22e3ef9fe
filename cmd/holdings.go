package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fergl/sharefolio/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	portfolio string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the recorded holdings of a portfolio" }
func (*holdingsCmd) Usage() string {
	return `spt holdings -p <name>

  Displays the portfolio's holdings as recorded, without fetching any
  market data.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to display")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(p))
	return subcommands.ExitSuccess
}
