// Package cmd implements the CLI application to manage share portfolios.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/fergl/sharefolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "portfolios")
	c.Register(&deleteCmd{}, "portfolios")
	c.Register(&listCmd{}, "portfolios")

	c.Register(&addCmd{}, "holdings")
	c.Register(&removeCmd{}, "holdings")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&sectorsCmd{}, "reports")

	c.Register(&quoteCmd{}, "market data")
	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

const portfolioDirEnv = "SHAREFOLIO_DIR"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioDir = flag.String("portfolio-dir", "", "Path to the folder holding portfolio files.\n If missing it will read the environment variable \""+portfolioDirEnv+"\", then default to \"portfolios\".")

// PortfolioDir resolves the portfolio directory from the flag, the
// environment, or the default, in that order.
func PortfolioDir() string {
	if *portfolioDir != "" {
		return *portfolioDir
	}
	if dir := os.Getenv(portfolioDirEnv); dir != "" {
		return dir
	}
	return "portfolios"
}

// OpenStore opens the portfolio store at the resolved directory.
func OpenStore() *sharefolio.Store {
	return sharefolio.NewStore(PortfolioDir())
}

// LoadPortfolio loads the named portfolio, with a helpful error when the
// name is missing.
func LoadPortfolio(name string) (*sharefolio.Portfolio, error) {
	if name == "" {
		return nil, fmt.Errorf("no portfolio selected, use -p <name> (see 'spt list')")
	}
	return OpenStore().Load(name)
}
