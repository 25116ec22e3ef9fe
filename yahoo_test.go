package sharefolio

import (
	"testing"

	finance "github.com/piquette/finance-go"
)

func TestNormalizeQuote_Pence(t *testing.T) {
	// LSE listings come back in pence under the "GBp" pseudo-currency
	q := &finance.Quote{Symbol: "TSCO.L", RegularMarketPrice: 285.4, CurrencyID: "GBp", ExchangeID: "LSE"}
	price, currency := normalizeQuote(q)
	if currency != "GBP" {
		t.Errorf("currency = %q, want GBP", currency)
	}
	if !M(price, currency).Equal(GBPs(2.854)) {
		t.Errorf("price = %s, want 2.854", price)
	}
}

func TestNormalizeQuote_LSEWithoutPenceCurrency(t *testing.T) {
	q := &finance.Quote{Symbol: "TSCO.L", RegularMarketPrice: 285.4, ExchangeID: "LSE"}
	price, currency := normalizeQuote(q)
	if currency != "GBP" || !M(price, currency).Equal(GBPs(2.854)) {
		t.Errorf("got %s %s, want 2.854 GBP", price, currency)
	}
}

func TestNormalizeQuote_ForeignCurrency(t *testing.T) {
	q := &finance.Quote{Symbol: "AAPL", RegularMarketPrice: 150, CurrencyID: "USD", ExchangeID: "NMS"}
	price, currency := normalizeQuote(q)
	if currency != "USD" {
		t.Errorf("currency = %q, want USD", currency)
	}
	if !M(price, currency).Equal(USD(150)) {
		t.Errorf("price = %s, want 150", price)
	}
}

func TestNormalizeQuote_MissingCurrencyDefaultsToGBP(t *testing.T) {
	q := &finance.Quote{Symbol: "X", RegularMarketPrice: 10}
	_, currency := normalizeQuote(q)
	if currency != "GBP" {
		t.Errorf("currency = %q, want GBP", currency)
	}
}
