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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	portfolio   string
	ticker      string
	shares      string
	buyPrice    string
	sector      string
	fetchSector bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to a portfolio" }
func (*addCmd) Usage() string {
	return `spt add -p <name> -t <ticker> -s <shares> -b <buy-price> [-sector <label> | -fetch-sector]

  Records a new lot in the portfolio. The buy price is per share, in GBP.
  With -fetch-sector the sector label is looked up from the ticker's
  Yahoo Finance asset profile.

Usage Examples:
# 100 Tesco shares bought at £2.85
$ spt add -p isa -t TSCO.L -s 100 -b 2.85 -fetch-sector
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to add the holding to")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol")
	f.StringVar(&c.shares, "s", "", "Number of shares bought (decimal)")
	f.StringVar(&c.buyPrice, "b", "", "Buy price per share in GBP (decimal)")
	f.StringVar(&c.sector, "sector", "", "Sector label for the holding")
	f.BoolVar(&c.fetchSector, "fetch-sector", false, "look the sector up from the Yahoo asset profile")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	holding, err := c.holding()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := p.Append(holding); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := OpenStore().Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s %s at %s to %q\n", holding.Shares, holding.Ticker, holding.BuyPrice, p.Name())
	return subcommands.ExitSuccess
}

// holding builds and resolves the holding from the flags.
func (c *addCmd) holding() (sharefolio.Holding, error) {
	if c.ticker == "" {
		return sharefolio.Holding{}, fmt.Errorf("missing ticker, use -t <ticker>")
	}
	shares, err := sharefolio.ParseQuantity(c.shares)
	if err != nil {
		return sharefolio.Holding{}, fmt.Errorf("invalid share count %q: %w", c.shares, err)
	}
	buyPrice, err := sharefolio.ParseMoney(c.buyPrice, sharefolio.GBPCurrency)
	if err != nil {
		return sharefolio.Holding{}, fmt.Errorf("invalid buy price %q: %w", c.buyPrice, err)
	}

	ticker := strings.ToUpper(c.ticker)
	sector := c.sector
	if c.fetchSector {
		sector, err = sharefolio.FetchSector(ticker)
		if err != nil {
			return sharefolio.Holding{}, fmt.Errorf("could not fetch sector for %q: %w", ticker, err)
		}
		if sector == "" {
			fmt.Fprintf(os.Stderr, "Warning: no sector found for %q, it will report as %s\n", ticker, sharefolio.Unclassified)
		}
	}

	return sharefolio.Holding{Ticker: ticker, Shares: shares, BuyPrice: buyPrice, Sector: sector}, nil
}
