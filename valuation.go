package sharefolio

import "time"

// ValuationReport is the derived view of a portfolio against current prices.
// It is recomputed on demand and never persisted.
type ValuationReport struct {
	Time              time.Time // Generation time
	ReportingCurrency string

	TotalValue Money
	TotalCost  Money
	// Return is (TotalValue-TotalCost)/TotalCost, as a percentage. It is only
	// meaningful when HasReturn is true; a zero cost basis leaves it undefined.
	Return    Percent
	HasReturn bool

	// Holdings holds one line per lot, in portfolio order.
	Holdings []HoldingValuation
	// PerTicker sums the market value of every lot of a ticker.
	PerTicker map[string]Money
	// Sectors is the market value grouped by sector label.
	Sectors map[string]SectorWeight
}

// HoldingValuation is the valuation of a single lot.
type HoldingValuation struct {
	Ticker      string
	Sector      string
	Shares      Quantity
	BuyPrice    Money
	Price       Money // current price, in reporting currency
	CostBasis   Money
	MarketValue Money
	// Return is the lot's own return; undefined when its cost basis is zero.
	Return    Percent
	HasReturn bool

	// Fundamentals carried over from the quote, zero when unavailable.
	PE            float64
	DividendYield Percent
	Rating        string
}

// Valuate computes the full valuation of the given holdings against the given
// quotes. It is a pure function: same holdings and quotes, same report.
//
// Every holding must be valid (see Holding.Validate) and every held ticker
// must have a quote; a missing quote aborts with a MissingPriceError rather
// than skewing the totals.
func Valuate(holdings []Holding, quotes Quotes) (*ValuationReport, error) {
	report := &ValuationReport{
		Time:              time.Now(),
		ReportingCurrency: GBPCurrency,
		TotalValue:        GBP(0),
		TotalCost:         GBP(0),
		PerTicker:         make(map[string]Money),
	}

	for _, h := range holdings {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		quote, ok := quotes.Get(h.Ticker)
		if !ok {
			return nil, &MissingPriceError{Ticker: h.Ticker}
		}

		value := quote.Price.Mul(h.Shares)
		cost := h.CostBasis()

		line := HoldingValuation{
			Ticker:      h.Ticker,
			Sector:      h.Sector,
			Shares:      h.Shares,
			BuyPrice:    h.BuyPrice,
			Price:       quote.Price,
			CostBasis:   cost,
			MarketValue: value,

			PE:            quote.PE,
			DividendYield: quote.DividendYield,
			Rating:        quote.Rating,
		}
		line.Return, line.HasReturn = returnPct(value, cost)
		report.Holdings = append(report.Holdings, line)

		if prev, ok := report.PerTicker[h.Ticker]; ok {
			report.PerTicker[h.Ticker] = prev.Add(value)
		} else {
			report.PerTicker[h.Ticker] = value
		}

		report.TotalValue = report.TotalValue.Add(value)
		report.TotalCost = report.TotalCost.Add(cost)
	}

	report.Return, report.HasReturn = returnPct(report.TotalValue, report.TotalCost)
	report.Sectors = AggregateBySector(holdings, report.PerTicker)
	return report, nil
}

// returnPct computes (value-cost)/cost as a percentage. The second return is
// false when the cost basis is zero and the ratio is undefined.
func returnPct(value, cost Money) (Percent, bool) {
	if !cost.IsPositive() {
		return 0, false
	}
	return Percent(value.Sub(cost).Ratio(cost).InexactFloat64() * 100), true
}
