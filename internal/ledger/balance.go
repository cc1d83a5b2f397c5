package ledger

// Balance returns the current balance of an account: its initial balance
// plus every credit and minus every debit across the full transaction
// list. Transfers debit the source and credit the destination, so a
// self-transfer nets to zero. An unknown account id starts from zero.
// Iteration order never affects the result.
func (l *Ledger) Balance(accountID int64) float64 {
	var balance float64
	if acc := l.Account(accountID); acc != nil {
		balance = acc.InitialBalance
	}
	return balance + netMovement(l.Transactions, accountID)
}

// TotalBalance returns the sum of all account balances.
func (l *Ledger) TotalBalance() float64 {
	var total float64
	for _, acc := range l.Accounts {
		total += l.Balance(acc.ID)
	}
	return total
}

// netMovement sums the signed effect of the given transactions on one
// account, without the initial balance. Shared by the balance calculator
// and the per-bucket account series.
func netMovement(txns []Transaction, accountID int64) float64 {
	var net float64
	for _, t := range txns {
		switch {
		case t.Kind == KindTransfer:
			if t.FromAccount == accountID {
				net -= t.Amount
			}
			if t.ToAccount == accountID {
				net += t.Amount
			}
		case t.AccountID == accountID:
			if t.Kind == KindIncome {
				net += t.Amount
			} else {
				net -= t.Amount
			}
		}
	}
	return net
}
