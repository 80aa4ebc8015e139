package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one raw ledger row as supplied by the storage layer: an income,
// expense, asset, investment or liability record. The amount is kept as the
// raw string so that lenient parsing stays an explicit, testable step
// rather than something that happens silently on the way in.
type Entry struct {
	Category string    `json:"category"`
	Amount   string    `json:"amount"`
	Date     time.Time `json:"date,omitempty"`
}

// CategoryTotal is a derived grouping row. A slice of these, rather than a
// map, preserves first-occurrence ordering so chart legends stay stable
// between refreshes.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Distribution pairs grouped category totals with palette colors for the
// presentation layer. Colors wrap when categories outnumber the palette.
type Distribution struct {
	Labels []string          `json:"labels"`
	Totals []decimal.Decimal `json:"totals"`
	Colors []string          `json:"colors"`
}

// Chart palettes carried over from the dashboards. The navy shades are used
// for the investment breakdown, the default palette everywhere else.
var (
	DefaultPalette = []string{
		"#36A2EB", "#FFCE56", "#FF6384", "#8E44AD", "#3498DB",
		"#2ECC71", "#E67E22", "#E74C3C", "#1ABC9C", "#9B59B6",
	}
	NavyPalette = []string{
		"#001f3f", "#003366", "#004080", "#00509e", "#003d73",
		"#002244", "#001a33", "#33475b", "#3a506b", "#2c3e50",
	}
)

// ParseAmount parses the longest leading numeric prefix of s, the same
// lenient behaviour the ledger has always had for user-entered amounts.
// The boolean reports whether anything numeric was found; a malformed
// amount comes back as (zero, false) so the coercion is visible to callers
// instead of being folded into a silent zero.
func ParseAmount(s string) (decimal.Decimal, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s[start:i])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SumAmounts totals every entry, coercing malformed amounts to zero.
func SumAmounts(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		amount, _ := ParseAmount(entry.Amount)
		total = total.Add(amount)
	}
	return total
}

// GroupByCategory totals entries per category in a single pass. Categories
// appear in the order they are first seen; no sorting is applied.
func GroupByCategory(entries []Entry) []CategoryTotal {
	index := make(map[string]int)
	totals := []CategoryTotal{}
	for _, entry := range entries {
		amount, _ := ParseAmount(entry.Amount)
		if pos, ok := index[entry.Category]; ok {
			totals[pos].Total = totals[pos].Total.Add(amount)
			continue
		}
		index[entry.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: entry.Category, Total: amount})
	}
	return totals
}

// BuildDistribution groups the entries and assigns each category a palette
// color by index, wrapping when the palette runs out.
func BuildDistribution(entries []Entry, palette []string) Distribution {
	grouped := GroupByCategory(entries)
	distribution := Distribution{
		Labels: make([]string, 0, len(grouped)),
		Totals: make([]decimal.Decimal, 0, len(grouped)),
		Colors: make([]string, 0, len(grouped)),
	}
	for i, categoryTotal := range grouped {
		distribution.Labels = append(distribution.Labels, categoryTotal.Category)
		distribution.Totals = append(distribution.Totals, categoryTotal.Total)
		if len(palette) > 0 {
			distribution.Colors = append(distribution.Colors, palette[i%len(palette)])
		} else {
			distribution.Colors = append(distribution.Colors, "")
		}
	}
	return distribution
}
