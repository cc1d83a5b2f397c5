package ledger

import "sort"

// CategoryTotal is one category's spending total within a period.
type CategoryTotal struct {
	Label string
	Total float64
}

// CategoryTotals sums amounts by category label across the non-income,
// non-transfer kinds, sorted descending by total. The sort is stable, so
// ties keep first-encountered order and truncation is reproducible.
func CategoryTotals(txns []Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txns {
		if t.Kind == KindIncome || t.Kind == KindTransfer {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, label := range order {
		out = append(out, CategoryTotal{Label: label, Total: totals[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// TopCategories returns at most n category totals; n <= 0 means no limit.
// Display economy: pie-style views use 8, bar and list views use 10.
func TopCategories(txns []Transaction, n int) []CategoryTotal {
	totals := CategoryTotals(txns)
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}
