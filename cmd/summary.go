package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fergl/sharefolio"
	"github.com/fergl/sharefolio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	portfolio string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio valuation at current prices" }
func (*summaryCmd) Usage() string {
	return `spt summary -p <name>

  Fetches current quotes for every held ticker and displays per-lot and
  portfolio market value, cost basis and return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to value")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, name, status := valuate(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.SummaryMarkdown(name, report))
	return subcommands.ExitSuccess
}

// valuate loads the portfolio, fetches its quotes and runs the valuation.
// It is shared by every report command so they all value the same way.
func valuate(portfolio string) (*sharefolio.ValuationReport, string, subcommands.ExitStatus) {
	p, err := LoadPortfolio(portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}

	holdings := p.Holdings()
	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		tickers = append(tickers, h.Ticker)
	}

	quotes, err := sharefolio.NewYahooSource().Fetch(tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}

	report, err := sharefolio.Valuate(holdings, quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating portfolio: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}
	return report, p.Name(), subcommands.ExitSuccess
}
