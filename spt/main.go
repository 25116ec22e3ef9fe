package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fergl/sharefolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// When invoked by the shell completion machinery this prints candidates
	// and exits, otherwise it is a no-op.
	completion().Complete("spt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// portfolioNames predicts the names of existing portfolios.
type portfolioNames struct{}

func (portfolioNames) Predict(prefix string) []string {
	names, err := cmd.OpenStore().List()
	if err != nil {
		return nil
	}
	return names
}

func completion() *complete.Command {
	p := map[string]complete.Predictor{"p": portfolioNames{}}
	return &complete.Command{
		Flags: map[string]complete.Predictor{"portfolio-dir": predict.Dirs("*")},
		Sub: map[string]*complete.Command{
			"create":   {Flags: map[string]complete.Predictor{"p": predict.Something}},
			"delete":   {Flags: p},
			"list":     {},
			"add":      {Flags: p},
			"remove":   {Flags: p},
			"holdings": {Flags: p},
			"summary":  {Flags: p},
			"sectors":  {Flags: p},
			"quote":    {},
			"assist":   {Flags: p},
			"topic":    {Args: predict.Set{"readme", "portfolios", "valuation", "sectors"}},
		},
	}
}
