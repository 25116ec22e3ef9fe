// Package renderer turns reports into markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fergl/sharefolio"
)

// returnCell renders a possibly-undefined return percentage.
// An undefined return (zero cost basis) renders as "n/a".
func returnCell(p sharefolio.Percent, defined bool) string {
	if !defined {
		return "n/a"
	}
	return p.SignedString()
}

// peCell renders a trailing P/E ratio, "n/a" when Yahoo has none.
func peCell(pe float64) string {
	if pe == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", pe)
}

// yieldCell renders a dividend yield, "n/a" for a ticker that pays none.
func yieldCell(y sharefolio.Percent) string {
	if y == 0 {
		return "n/a"
	}
	return y.String()
}

// ratingCell renders an analyst consensus label.
func ratingCell(rating string) string {
	if rating == "" {
		return "n/a"
	}
	return rating
}

// row writes one markdown table row from its cells.
func row(b *strings.Builder, cells ...string) {
	fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
}
