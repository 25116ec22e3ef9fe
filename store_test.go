package sharefolio

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_CreateListDelete(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolios"))

	if names, err := store.List(); err != nil || len(names) != 0 {
		t.Fatalf("List() on empty store = %v, %v", names, err)
	}

	if _, err := store.Create("isa"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create("sipp"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create("isa"); err == nil {
		t.Fatal("Create() accepted a duplicate portfolio name")
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 || names[0] != "isa" || names[1] != "sipp" {
		t.Errorf("List() = %v, want [isa sipp]", names)
	}

	if err := store.Delete("isa"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	names, _ = store.List()
	if len(names) != 1 || names[0] != "sipp" {
		t.Errorf("List() after delete = %v, want [sipp]", names)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	p, err := store.Create("isa")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := p.Append(
		lot("AAPL", 10, 100, "Tech"),
		lot("TSCO", 5, 2.85, ""),
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Save(p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load("isa")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID() != p.ID() {
		t.Errorf("ID() = %s, want %s", got.ID(), p.ID())
	}
	if got.Name() != "isa" {
		t.Errorf("Name() = %q, want %q", got.Name(), "isa")
	}
	if got.Currency() != "GBP" {
		t.Errorf("Currency() = %q, want GBP", got.Currency())
	}
	if len(got.Holdings()) != 2 {
		t.Fatalf("len(Holdings()) = %d, want 2", len(got.Holdings()))
	}
	h := got.Holdings()[0]
	if h.Ticker != "AAPL" || !h.Shares.Equal(Q(10)) || !h.BuyPrice.Equal(GBPs(100)) || h.Sector != "Tech" {
		t.Errorf("Holdings()[0] = %+v, want the AAPL lot back", h)
	}
	if got.Holdings()[1].Sector != "" {
		t.Errorf("Holdings()[1].Sector = %q, want empty", got.Holdings()[1].Sector)
	}
}

func TestStore_InvalidNames(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"", "..", "a/b", `a\b`} {
		if _, err := store.Create(name); err == nil {
			t.Errorf("Create(%q) accepted an invalid name", name)
		}
	}
}

func TestDecodePortfolio_RejectsInvalidHolding(t *testing.T) {
	input := `{"name":"isa","id":"6d2b1b3a-9c7e-4a93-b0b9-15c7de2c3f40","currency":"GBP"}
{"ticker":"AAPL","shares":0,"buyPrice":{"currency":"GBP","amount":100},"sector":"Tech"}
`
	_, err := DecodePortfolio(strings.NewReader(input))
	var invalid *InvalidHoldingError
	if !errors.As(err, &invalid) {
		t.Fatalf("DecodePortfolio() error = %v, want InvalidHoldingError", err)
	}
}

func TestDecodePortfolio_UppercasesTickers(t *testing.T) {
	input := `{"name":"isa","id":"6d2b1b3a-9c7e-4a93-b0b9-15c7de2c3f40","currency":"GBP"}
{"ticker":"tsco.l","shares":5,"buyPrice":{"currency":"GBP","amount":2.85}}
`
	p, err := DecodePortfolio(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePortfolio() error = %v", err)
	}
	if got := p.Holdings()[0].Ticker; got != "TSCO.L" {
		t.Errorf("Ticker = %q, want %q", got, "TSCO.L")
	}
}

func TestEncodePortfolio_StableOrder(t *testing.T) {
	p := NewPortfolio("isa")
	if err := p.Append(lot("AAPL", 10, 100, "Tech")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var b strings.Builder
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("encoded %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], `{"name":"isa","id":`) {
		t.Errorf("header line = %s, want name first then id", lines[0])
	}
	want := `{"ticker":"AAPL","shares":"10","buyPrice":{"currency":"GBP","amount":"100"},"sector":"Tech"}`
	if lines[1] != want {
		t.Errorf("holding line = %s, want %s", lines[1], want)
	}
}
