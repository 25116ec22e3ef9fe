package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	portfolio string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new empty portfolio" }
func (*createCmd) Usage() string {
	return `spt create -p <name>

  Creates a new empty portfolio in the portfolio directory.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Name of the portfolio to create")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Fprintln(os.Stderr, "Error: missing portfolio name, use -p <name>")
		return subcommands.ExitUsageError
	}
	p, err := OpenStore().Create(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created portfolio %q (%s)\n", p.Name(), p.ID())
	return subcommands.ExitSuccess
}
