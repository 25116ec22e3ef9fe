package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fergl/sharefolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

const assistSystemPrompt = `You are a careful assistant commenting on a personal
share portfolio. You are given a valuation report and a sector allocation in
markdown. Comment on concentration, diversification across sectors, and
notable gains or losses. Be concise. Never give buy or sell instructions.`

// assistCmd implements the 'assist' subcommand.
type assistCmd struct {
	portfolio string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask Gemini for commentary on a portfolio valuation" }
func (*assistCmd) Usage() string {
	return `spt assist -p <name> [question]

  Values the portfolio and sends the report to Gemini for commentary.
  An optional question focuses the commentary.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to comment on")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, name, status := valuate(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}

	question := "Please comment on this portfolio."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	prompt := fmt.Sprintf("%s\n\n%s\n%s",
		question,
		renderer.SummaryMarkdown(name, report),
		renderer.SectorsMarkdown(name, report),
	)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistSystemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "No response from Gemini")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
