package sharefolio

import (
	"fmt"
	"log"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "quoteSummary": {
	        "result": [
	            {
	                "assetProfile": {
	                    "sector": "Technology",
	                    "industry": "Consumer Electronics",
	                    ...
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/

// quoteSummaryURL is the base of the Yahoo quoteSummary endpoint. It is a
// variable so tests can point it at a local server.
var quoteSummaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary"

// ratingNames maps Yahoo's recommendationKey to a display label. Keys outside
// the map (and the absence of a key) read as unknown.
var ratingNames = map[string]string{
	"buy":         "Buy",
	"hold":        "Hold",
	"sell":        "Sell",
	"strong_buy":  "Strong Buy",
	"strong_sell": "Strong Sell",
}

// FetchSector looks up the industry sector of a ticker from the Yahoo asset
// profile. Tickers without a profile (funds, FX pairs) return the empty
// sector, which the aggregator files under Unclassified; only transport
// failures are errors.
func FetchSector(ticker string) (string, error) {
	return fetchSummaryField(ticker, "assetProfile", "sector")
}

// FetchRating looks up the analyst consensus for a ticker and returns its
// display label. Tickers without coverage return "".
func FetchRating(ticker string) (string, error) {
	key, err := fetchSummaryField(ticker, "financialData", "recommendationKey")
	if err != nil {
		return "", err
	}
	return ratingNames[key], nil
}

// fetchSummaryField retrieves one string field from one module of the Yahoo
// quoteSummary payload. A missing module or field is "" and not an error.
func fetchSummaryField(ticker, module, field string) (string, error) {
	addr := fmt.Sprintf("%s/%s?modules=%s", quoteSummaryURL, url.PathEscape(ticker), module)

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return "", fmt.Errorf("error retrieving %s for %q: %w", module, ticker, err)
	}

	path := fmt.Sprintf("$.quoteSummary.result[0].%s.%s", module, field)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// no such node at all, not an error for our purposes
		log.Printf("no %s.%s in profile for %q: %v", module, field, ticker, err)
		return "", nil
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(string)
	if !ok {
		return "", nil
	}
	return val, nil
}
