package sharefolio

import "sort"

// Unclassified is the reserved sector bucket for holdings carrying no sector
// label.
const Unclassified = "Unclassified"

// SectorWeight is one sector's slice of the portfolio: its market value and
// its share of the total.
type SectorWeight struct {
	Value Money
	// PercentOfTotal is the sector's value over the portfolio total. It is 0
	// for every sector when the total market value is zero.
	PercentOfTotal Percent
}

// AggregateBySector groups market value by sector label (case-sensitive).
//
// perTicker is the per-ticker market value already computed by the valuation
// engine, so aggregation can never drift from the totals. A ticker's sector
// is the one on its first lot; an empty label lands in Unclassified.
func AggregateBySector(holdings []Holding, perTicker map[string]Money) map[string]SectorWeight {
	values := make(map[string]Money)
	total := GBP(0)

	seen := make(map[string]bool)
	for _, h := range holdings {
		if seen[h.Ticker] {
			continue
		}
		seen[h.Ticker] = true

		value, ok := perTicker[h.Ticker]
		if !ok {
			continue
		}
		sector := h.Sector
		if sector == "" {
			sector = Unclassified
		}
		if prev, ok := values[sector]; ok {
			values[sector] = prev.Add(value)
		} else {
			values[sector] = value
		}
		total = total.Add(value)
	}

	breakdown := make(map[string]SectorWeight, len(values))
	for sector, value := range values {
		weight := SectorWeight{Value: value}
		if total.IsPositive() {
			weight.PercentOfTotal = Percent(value.Ratio(total).InexactFloat64() * 100)
		}
		breakdown[sector] = weight
	}
	return breakdown
}

// SectorNames returns the breakdown's sector labels sorted by descending
// value, ties broken alphabetically, for stable rendering.
func SectorNames(breakdown map[string]SectorWeight) []string {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := breakdown[names[i]], breakdown[names[j]]
		if !a.Value.Equal(b.Value) {
			return b.Value.LessThan(a.Value)
		}
		return names[i] < names[j]
	})
	return names
}
