package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger() *Ledger {
	return &Ledger{
		Accounts: []Account{
			{ID: 1, Name: "Checking", Type: AccountCurrent, InitialBalance: 1000},
			{ID: 2, Name: "Savings", Type: AccountSavings, InitialBalance: 0},
		},
		Categories: DefaultTaxonomy(),
	}
}

func TestBalance_IncomeAndTransfer(t *testing.T) {
	l := testLedger()

	_, err := l.AddTransaction(NewDate(2024, time.March, 5), KindIncome, "Salary", 1, 500, "")
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, l.Balance(1), 1e-9)

	_, err = l.AddTransfer(NewDate(2024, time.March, 10), "Giroconto", 1, 2, 200, "")
	require.NoError(t, err)

	assert.InDelta(t, 1300.0, l.Balance(1), 1e-9)
	assert.InDelta(t, 200.0, l.Balance(2), 1e-9)
	assert.InDelta(t, 1500.0, l.TotalBalance(), 1e-9)

	// Transfers stay out of the period statistics entirely.
	stats := CalculateStats(FilterMonth(l.Transactions, Month{2024, time.March}))
	assert.InDelta(t, 500.0, stats.Income, 1e-9)
	assert.InDelta(t, 0.0, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, 500.0, stats.Net, 1e-9)
}

func TestBalance_OrderIndependent(t *testing.T) {
	l := testLedger()
	txns := []Transaction{
		{ID: 10, Date: NewDate(2024, time.January, 1), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 100},
		{ID: 11, Date: NewDate(2024, time.January, 2), Kind: KindNecessity, Category: "Spesa/Cibo", AccountID: 1, Amount: 40},
		{ID: 12, Date: NewDate(2024, time.January, 3), Kind: KindTransfer, FromAccount: 1, ToAccount: 2, Amount: 25},
		{ID: 13, Date: NewDate(2024, time.January, 4), Kind: KindWithdrawal, Category: "Prelievo", AccountID: 1, Amount: 10},
	}

	l.Transactions = txns
	want := l.Balance(1)

	reversed := make([]Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}
	l.Transactions = reversed
	assert.InDelta(t, want, l.Balance(1), 1e-9)
	assert.InDelta(t, 1000+100-40-25-10, want, 1e-9)
}

func TestBalance_UnknownAccountStartsFromZero(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 10, Date: NewDate(2024, time.May, 1), Kind: KindIncome, Category: "Altro", AccountID: 999, Amount: 75},
	}
	assert.InDelta(t, 75.0, l.Balance(999), 1e-9)
}

func TestBalance_SelfTransferNetsToZero(t *testing.T) {
	// Legacy data may contain self-transfers; both adjustments apply.
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 10, Date: NewDate(2024, time.May, 1), Kind: KindTransfer, FromAccount: 1, ToAccount: 1, Amount: 300},
	}
	assert.InDelta(t, 1000.0, l.Balance(1), 1e-9)
}

func TestBalance_AllKindsDebitExceptIncome(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want float64
	}{
		{"income credits", KindIncome, 1050},
		{"necessity debits", KindNecessity, 950},
		{"extra debits", KindExtra, 950},
		{"withdrawal debits", KindWithdrawal, 950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLedger()
			l.Transactions = []Transaction{
				{ID: 10, Date: NewDate(2024, time.May, 1), Kind: tt.kind, Category: "x", AccountID: 1, Amount: 50},
			}
			assert.InDelta(t, tt.want, l.Balance(1), 1e-9)
		})
	}
}
