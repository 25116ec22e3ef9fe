package renderer

import (
	"fmt"
	"strings"

	"github.com/fergl/sharefolio"
)

// SummaryMarkdown renders the full valuation of a portfolio: one line per
// lot, then the portfolio totals and overall return.
func SummaryMarkdown(name string, r *sharefolio.ValuationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio %s\n\n", name)

	fmt.Fprintln(&b, "| Ticker | Sector | Shares | Buy Price | Price | Cost Basis | Value | Return | P/E | Yield | Rating |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|:---|")
	for _, h := range r.Holdings {
		sector := h.Sector
		if sector == "" {
			sector = sharefolio.Unclassified
		}
		row(&b,
			h.Ticker,
			sector,
			h.Shares.String(),
			h.BuyPrice.String(),
			h.Price.String(),
			h.CostBasis.String(),
			h.MarketValue.String(),
			returnCell(h.Return, h.HasReturn),
			peCell(h.PE),
			yieldCell(h.DividendYield),
			ratingCell(h.Rating),
		)
	}

	fmt.Fprintf(&b, "\nTotal market value: **%s**\n\n", r.TotalValue)
	fmt.Fprintf(&b, "Total cost basis: **%s**\n\n", r.TotalCost)
	fmt.Fprintf(&b, "Overall return: **%s**\n", returnCell(r.Return, r.HasReturn))
	return b.String()
}
