package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// listCmd implements the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all portfolios" }
func (*listCmd) Usage() string {
	return `spt list

  Lists the portfolios in the portfolio directory.
`
}

func (c *listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := OpenStore().List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing portfolios: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(names) == 0 {
		fmt.Printf("No portfolios in %q yet, use 'spt create -p <name>'\n", PortfolioDir())
		return subcommands.ExitSuccess
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
