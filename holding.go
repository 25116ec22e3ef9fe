package sharefolio

import (
	"fmt"

	"github.com/google/uuid"
)

// Holding is a single position within a portfolio: a ticker, the number of
// shares held, the price paid per share, and an industry sector label.
// The same ticker may appear in several holdings, each one is a distinct lot.
type Holding struct {
	Ticker   string
	Shares   Quantity
	BuyPrice Money
	Sector   string
}

// InvalidHoldingError reports a holding rejected at the store boundary,
// before it can reach any computation.
type InvalidHoldingError struct {
	Ticker string
	Reason string
}

func (e *InvalidHoldingError) Error() string {
	return fmt.Sprintf("invalid holding %q: %s", e.Ticker, e.Reason)
}

// Validate checks the holding's invariants: a non-empty ticker, a strictly
// positive share count and a non-negative buy price.
func (h Holding) Validate() error {
	if h.Ticker == "" {
		return &InvalidHoldingError{Ticker: h.Ticker, Reason: "ticker is empty"}
	}
	if !h.Shares.IsPositive() {
		return &InvalidHoldingError{Ticker: h.Ticker, Reason: fmt.Sprintf("shares must be positive, got %s", h.Shares)}
	}
	if h.BuyPrice.IsNegative() {
		return &InvalidHoldingError{Ticker: h.Ticker, Reason: fmt.Sprintf("buy price must not be negative, got %s", h.BuyPrice)}
	}
	return nil
}

// CostBasis returns the capital committed to this holding: shares x buy price.
func (h Holding) CostBasis() Money { return h.BuyPrice.Mul(h.Shares) }

// Portfolio is a named, ordered collection of holdings.
type Portfolio struct {
	id       uuid.UUID
	name     string
	currency string
	holdings []Holding
}

// NewPortfolio creates an empty portfolio with a fresh random identifier,
// reporting in GBP.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{id: uuid.New(), name: name, currency: GBPCurrency}
}

func (p *Portfolio) ID() uuid.UUID    { return p.id }
func (p *Portfolio) Name() string     { return p.name }
func (p *Portfolio) Currency() string { return p.currency }

// Holdings returns the portfolio's holdings in insertion order.
// The returned slice is the portfolio's own, callers must not mutate it.
func (p *Portfolio) Holdings() []Holding { return p.holdings }

// Append validates and adds holdings to the portfolio, preserving order.
func (p *Portfolio) Append(holdings ...Holding) error {
	for _, h := range holdings {
		if err := h.Validate(); err != nil {
			return err
		}
		p.holdings = append(p.holdings, h)
	}
	return nil
}

// Remove deletes every lot of the given ticker and reports how many were removed.
func (p *Portfolio) Remove(ticker string) int {
	kept := p.holdings[:0]
	removed := 0
	for _, h := range p.holdings {
		if h.Ticker == ticker {
			removed++
			continue
		}
		kept = append(kept, h)
	}
	p.holdings = kept
	return removed
}
