package sharefolio

// GBPs is a helper for tests to create pound money from const
func GBPs(v float64) Money { return M(v, "GBP") }

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// lot is a helper for tests to build a holding from consts.
func lot(ticker string, shares, buyPrice float64, sector string) Holding {
	return Holding{Ticker: ticker, Shares: Q(shares), BuyPrice: GBPs(buyPrice), Sector: sector}
}

// quoted is a helper for tests to build a Quotes set from ticker/price pairs.
func quoted(pairs ...any) Quotes {
	q := make(Quotes, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ticker := pairs[i].(string)
		price := pairs[i+1].(float64)
		q.Add(PriceQuote{Ticker: ticker, Price: GBPs(price)})
	}
	return q
}
