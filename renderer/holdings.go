package renderer

import (
	"fmt"
	"strings"

	"github.com/fergl/sharefolio"
)

// HoldingsMarkdown renders the recorded holdings of a portfolio without any
// market data: what the user owns and what it cost.
func HoldingsMarkdown(p *sharefolio.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings of %s\n\n", p.Name())

	if len(p.Holdings()) == 0 {
		fmt.Fprintln(&b, "No holdings recorded. Use `spt add` to record one.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Sector | Shares | Buy Price | Cost Basis |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	total := sharefolio.GBP(0)
	for _, h := range p.Holdings() {
		sector := h.Sector
		if sector == "" {
			sector = sharefolio.Unclassified
		}
		cost := h.CostBasis()
		row(&b, h.Ticker, sector, h.Shares.String(), h.BuyPrice.String(), cost.String())
		total = total.Add(cost)
	}
	fmt.Fprintf(&b, "\nTotal cost basis: **%s**\n", total)
	return b.String()
}
