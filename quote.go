package sharefolio

import "fmt"

// PriceQuote is the current market price for a ticker, already resolved into
// the reporting currency, together with the fundamentals Yahoo publishes
// alongside it. The fundamentals are informational: their zero values mean the
// figure is not available for the ticker (funds and FX pairs have none).
type PriceQuote struct {
	Ticker string
	Price  Money

	PE            float64 // trailing price/earnings ratio, 0 when unavailable
	DividendYield Percent // trailing annual dividend yield, 0 when none
	Rating        string  // analyst consensus ("Buy", "Hold", ...), "" when unknown
}

// Quotes maps a ticker to its current quote for one valuation request.
type Quotes map[string]PriceQuote

// Get returns the quote for ticker and whether one is present.
func (q Quotes) Get(ticker string) (PriceQuote, bool) {
	quote, ok := q[ticker]
	return quote, ok
}

// Add records a quote, replacing any previous quote for the same ticker.
func (q Quotes) Add(quote PriceQuote) { q[quote.Ticker] = quote }

// MissingPriceError reports a held ticker that has no corresponding quote.
// Valuation aborts on it rather than corrupting totals with a silent zero.
type MissingPriceError struct {
	Ticker string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("no price available for %q", e.Ticker)
}

// QuoteSource resolves current market prices for a set of tickers.
//
// A source returns what it can resolve: a ticker it does not know is simply
// absent from the result, it is the valuation engine's job to report it.
type QuoteSource interface {
	Fetch(tickers []string) (Quotes, error)
}
