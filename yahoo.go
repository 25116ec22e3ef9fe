package sharefolio

import (
	"fmt"
	"log"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/forex"
	"github.com/shopspring/decimal"
)

// YahooSource resolves quotes from Yahoo Finance and converts them to the
// reporting currency. It is the live counterpart of the Quotes the valuation
// engine consumes.
type YahooSource struct {
	// rates caches FX rates to GBP for the lifetime of the source, one
	// resolution per foreign currency per fetch session.
	rates map[string]decimal.Decimal
}

func NewYahooSource() *YahooSource {
	return &YahooSource{rates: make(map[string]decimal.Decimal)}
}

// Fetch resolves as many tickers as Yahoo knows about. A ticker without a
// quote is logged and left out, the valuation engine reports it if it is
// actually held.
func (y *YahooSource) Fetch(tickers []string) (Quotes, error) {
	quotes := make(Quotes, len(tickers))
	for _, ticker := range tickers {
		if _, ok := quotes.Get(ticker); ok {
			continue
		}
		q, err := equity.Get(ticker)
		if err != nil {
			log.Printf("no quote for %q: %v", ticker, err)
			continue
		}
		if q == nil {
			log.Printf("no quote for %q", ticker)
			continue
		}

		price, currency := normalizeQuote(&q.Quote)
		if currency != GBPCurrency {
			price = price.Mul(y.rateToGBP(currency))
		}

		rating, err := FetchRating(ticker)
		if err != nil {
			// the quote alone is enough for a valuation
			log.Printf("no analyst rating for %q: %v", ticker, err)
		}
		quotes.Add(PriceQuote{
			Ticker:        ticker,
			Price:         M(price, GBPCurrency),
			PE:            q.TrailingPE,
			DividendYield: Percent(q.TrailingAnnualDividendYield * 100),
			Rating:        rating,
		})
	}
	return quotes, nil
}

// normalizeQuote extracts the market price in major currency units. Yahoo
// quotes LSE listings in pence (currency "GBp"/"GBX"), those are scaled down
// to pounds.
func normalizeQuote(q *finance.Quote) (decimal.Decimal, string) {
	price := decimal.NewFromFloat(q.RegularMarketPrice)
	switch q.CurrencyID {
	case "GBp", "GBX":
		return price.Shift(-2), GBPCurrency
	}
	if q.ExchangeID == "LSE" {
		return price.Shift(-2), GBPCurrency
	}
	if q.CurrencyID == "" {
		return price, GBPCurrency
	}
	return price, q.CurrencyID
}

// rateToGBP resolves the conversion rate from a currency into GBP using the
// Yahoo forex pair. When the pair cannot be fetched the rate falls back to 1
// so the report still comes out, with a warning.
func (y *YahooSource) rateToGBP(currency string) decimal.Decimal {
	if rate, ok := y.rates[currency]; ok {
		return rate
	}
	rate := decimal.NewFromInt(1)
	pair := fmt.Sprintf("%s%s=X", currency, GBPCurrency)
	fx, err := forex.Get(pair)
	if err != nil || fx == nil || fx.RegularMarketPrice == 0 {
		log.Printf("warning: no FX rate for %q, assuming 1 %s = 1 GBP", pair, currency)
	} else {
		rate = decimal.NewFromFloat(fx.RegularMarketPrice)
	}
	y.rates[currency] = rate
	return rate
}
