// Package sharefolio tracks personal share portfolios.
//
// A portfolio is an ordered collection of holdings (ticker, share count, buy
// price, sector). The package computes, for a set of holdings and current
// market prices, the portfolio's total market value, total cost basis,
// overall return, and the allocation of market value across sectors.
//
// The valuation engine is a pure function: it performs no I/O and depends
// only on the holdings and quotes it is given. Collaborators around it supply
// the inputs: a Store persists portfolios as JSONL files, and a QuoteSource
// resolves current prices (see YahooSource) in the reporting currency.
//
// All monetary values are exact decimals denominated in GBP by default.
package sharefolio
