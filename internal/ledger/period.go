package ledger

import (
	"fmt"
	"time"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// CurrentMonth returns the month containing today.
func CurrentMonth() Month {
	now := time.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// MonthsSince returns the number of whole months from other to m,
// inclusive of both endpoints when m is not before other.
func (m Month) MonthsSince(other Month) int {
	return (m.Year-other.Year)*12 + int(m.Month-other.Month) + 1
}

// Before reports whether m precedes other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Short Italian month names, January first.
var monthAbbrev = [...]string{
	"Gen", "Feb", "Mar", "Apr", "Mag", "Giu",
	"Lug", "Ago", "Set", "Ott", "Nov", "Dic",
}

// Label returns the month's short human-readable label ("Gen 24").
func (m Month) Label() string {
	return fmt.Sprintf("%s %02d", monthAbbrev[m.Month-1], m.Year%100)
}

// FilterMonth returns the transactions whose date falls in the given
// calendar month, comparing month index and year only.
func FilterMonth(txns []Transaction, m Month) []Transaction {
	var out []Transaction
	for _, t := range txns {
		if t.Date.In(m) {
			out = append(out, t)
		}
	}
	return out
}
