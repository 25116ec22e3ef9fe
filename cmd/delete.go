package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	portfolio string
	force     bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a portfolio and all its holdings" }
func (*deleteCmd) Usage() string {
	return `spt delete -p <name> [-f]

  Deletes a portfolio file. Refuses to delete a non-empty or unreadable
  portfolio unless -f is given.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Name of the portfolio to delete")
	f.BoolVar(&c.force, "f", false, "delete even if the portfolio still has holdings")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// With -f the load is only advisory: a portfolio file too corrupt to
	// parse must still be deletable.
	p, err := LoadPortfolio(c.portfolio)
	if err != nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err == nil && len(p.Holdings()) > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Portfolio %q still has %d holdings, use -f to delete anyway\n", p.Name(), len(p.Holdings()))
		return subcommands.ExitFailure
	}
	if err := OpenStore().Delete(c.portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted portfolio %q\n", c.portfolio)
	return subcommands.ExitSuccess
}
