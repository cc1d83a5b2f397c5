package ledger

// Stats aggregates one set of transactions, typically a single month's.
// Transfers are excluded entirely: they are balance-neutral at the
// portfolio level and only affect per-account balances.
type Stats struct {
	Income        float64
	Necessity     float64
	Extra         float64
	Withdrawals   float64
	TotalExpenses float64
	Net           float64
}

// CalculateStats computes the period statistics for a transaction set.
// The result depends only on the set's contents, not on order; the empty
// set yields all zeros.
func CalculateStats(txns []Transaction) Stats {
	var s Stats
	for _, t := range txns {
		switch t.Kind {
		case KindIncome:
			s.Income += t.Amount
		case KindNecessity:
			s.Necessity += t.Amount
		case KindExtra:
			s.Extra += t.Amount
		case KindWithdrawal:
			s.Withdrawals += t.Amount
		}
	}
	s.TotalExpenses = s.Necessity + s.Extra + s.Withdrawals
	s.Net = s.Income - s.TotalExpenses
	return s
}

// SavingsRate returns net income as a percentage of income, or 0 when
// there is no income.
func (s Stats) SavingsRate() float64 {
	if s.Income <= 0 {
		return 0
	}
	return s.Net / s.Income * 100
}
