package cmd

import (
	"context"
	"flag"

	"github.com/fergl/sharefolio/renderer"
	"github.com/google/subcommands"
)

// sectorsCmd holds the flags for the 'sectors' subcommand.
type sectorsCmd struct {
	portfolio string
}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "display the portfolio's sector allocation" }
func (*sectorsCmd) Usage() string {
	return `spt sectors -p <name>

  Displays the market value grouped by sector, with each sector's share
  of the portfolio total.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to analyse")
}

func (c *sectorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, name, status := valuate(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.SectorsMarkdown(name, report))
	return subcommands.ExitSuccess
}
