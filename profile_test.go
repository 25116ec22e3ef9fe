package sharefolio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// summaryServer serves canned quoteSummary payloads per ticker and redirects
// the package-level endpoint to itself for the duration of the test.
func summaryServer(t *testing.T, payloads map[string]string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := strings.TrimPrefix(r.URL.Path, "/")
		payload, ok := payloads[ticker]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)

	prev := quoteSummaryURL
	quoteSummaryURL = srv.URL
	t.Cleanup(func() { quoteSummaryURL = prev })
}

func TestFetchSector(t *testing.T) {
	summaryServer(t, map[string]string{
		"AAPL": `{"quoteSummary":{"result":[{"assetProfile":{"sector":"Technology","industry":"Consumer Electronics"}}],"error":null}}`,
	})

	sector, err := FetchSector("AAPL")
	if err != nil {
		t.Fatalf("FetchSector(AAPL) error: %v", err)
	}
	if sector != "Technology" {
		t.Errorf("sector = %q, want Technology", sector)
	}
}

func TestFetchSector_NoProfile(t *testing.T) {
	// funds and FX pairs have no assetProfile module, that is not an error
	summaryServer(t, map[string]string{
		"VWRL.L": `{"quoteSummary":{"result":[{}],"error":null}}`,
		"EMPTY":  `{"quoteSummary":{"result":[],"error":null}}`,
	})

	for _, ticker := range []string{"VWRL.L", "EMPTY"} {
		sector, err := FetchSector(ticker)
		if err != nil {
			t.Fatalf("FetchSector(%s) error: %v", ticker, err)
		}
		if sector != "" {
			t.Errorf("FetchSector(%s) = %q, want empty", ticker, sector)
		}
	}
}

func TestFetchSector_TransportError(t *testing.T) {
	summaryServer(t, nil) // every ticker is a 404

	if _, err := FetchSector("AAPL"); err == nil {
		t.Fatal("expected an error on HTTP failure")
	}
}

func TestFetchRating(t *testing.T) {
	summaryServer(t, map[string]string{
		"AAPL": `{"quoteSummary":{"result":[{"financialData":{"recommendationKey":"strong_buy"}}],"error":null}}`,
		"TSCO": `{"quoteSummary":{"result":[{"financialData":{"recommendationKey":"underperform"}}],"error":null}}`,
		"FUND": `{"quoteSummary":{"result":[{}],"error":null}}`,
	})

	tests := []struct {
		ticker string
		want   string
	}{
		{"AAPL", "Strong Buy"},
		{"TSCO", ""}, // key outside the known set reads as unknown
		{"FUND", ""},
	}
	for _, tt := range tests {
		rating, err := FetchRating(tt.ticker)
		if err != nil {
			t.Fatalf("FetchRating(%s) error: %v", tt.ticker, err)
		}
		if rating != tt.want {
			t.Errorf("FetchRating(%s) = %q, want %q", tt.ticker, rating, tt.want)
		}
	}
}
