package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fergl/sharefolio"
	"github.com/google/subcommands"
)

// quoteCmd implements the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the current GBP quote for one or more tickers" }
func (*quoteCmd) Usage() string {
	return `spt quote <ticker>...

  Fetches and prints the current price for each ticker, converted to GBP
  the same way valuation reports do.
`
}

func (c *quoteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no ticker given")
		return subcommands.ExitUsageError
	}

	tickers := make([]string, 0, f.NArg())
	for _, t := range f.Args() {
		tickers = append(tickers, strings.ToUpper(t))
	}

	quotes, err := sharefolio.NewYahooSource().Fetch(tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, ticker := range tickers {
		quote, ok := quotes.Get(ticker)
		if !ok {
			fmt.Fprintf(os.Stderr, "price unavailable for %s\n", ticker)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%s\n", ticker, quote.Price)
	}
	return status
}
