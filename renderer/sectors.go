package renderer

import (
	"fmt"
	"strings"

	"github.com/fergl/sharefolio"
)

// SectorsMarkdown renders the sector allocation of a valuation, largest
// sector first.
func SectorsMarkdown(name string, r *sharefolio.ValuationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sector Allocation for %s\n\n", name)

	fmt.Fprintln(&b, "| Sector | Value | % of Total |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, sector := range sharefolio.SectorNames(r.Sectors) {
		w := r.Sectors[sector]
		row(&b, sector, w.Value.String(), w.PercentOfTotal.String())
	}

	fmt.Fprintf(&b, "\nTotal market value: **%s**\n", r.TotalValue)
	return b.String()
}
