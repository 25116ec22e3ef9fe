package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	portfolio string
	ticker    string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove every lot of a ticker from a portfolio" }
func (*removeCmd) Usage() string {
	return `spt remove -p <name> -t <ticker>

  Removes all lots of the ticker from the portfolio.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to remove the holding from")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: missing ticker, use -t <ticker>")
		return subcommands.ExitUsageError
	}
	p, err := LoadPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := p.Remove(strings.ToUpper(c.ticker))
	if removed == 0 {
		fmt.Fprintf(os.Stderr, "No lots of %q in portfolio %q\n", strings.ToUpper(c.ticker), p.Name())
		return subcommands.ExitFailure
	}
	if err := OpenStore().Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d lot(s) of %s from %q\n", removed, strings.ToUpper(c.ticker), p.Name())
	return subcommands.ExitSuccess
}
