// Package ledger implements the in-memory financial ledger: accounts,
// transactions, the category taxonomy, and the pure aggregation functions
// that turn them into balances, statistics, and chart series.
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the closed set of transaction kinds.
type Kind string

const (
	// KindIncome credits the associated account.
	KindIncome Kind = "income"
	// KindNecessity is an essential expense (rent, groceries, bills).
	KindNecessity Kind = "expense-necessity"
	// KindExtra is a discretionary expense.
	KindExtra Kind = "expense-extra"
	// KindWithdrawal is a cash withdrawal or investment outflow.
	KindWithdrawal Kind = "withdrawal"
	// KindTransfer moves money between two accounts; it is balance-neutral
	// at the portfolio level and excluded from every statistic.
	KindTransfer Kind = "transfer"
)

// Valid reports whether k is a known transaction kind.
func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindNecessity, KindExtra, KindWithdrawal, KindTransfer:
		return true
	}
	return false
}

// IsExpense reports whether k counts toward total expenses.
func (k Kind) IsExpense() bool {
	return k == KindNecessity || k == KindExtra || k == KindWithdrawal
}

// dateLayout is the single stored date format. Dates carry no time
// component and no timezone.
const dateLayout = "2006-01-02"

// Date is a calendar date stored as an ISO date string.
type Date struct {
	time.Time
}

// NewDate builds a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the ISO form of the date.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as an ISO date string, matching the
// persisted snapshot format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes an ISO date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// In reports whether the date falls in the given calendar month.
func (d Date) In(m Month) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// Transaction is a single ledger entry. Simple kinds reference one account
// via AccountID; transfers reference a source and destination pair instead,
// with OperationType as a free label for the movement (not a spending
// category). Amount is always positive; the sign is implied by Kind.
type Transaction struct {
	ID            int64   `json:"id"`
	Date          Date    `json:"date"`
	Kind          Kind    `json:"type"`
	Category      string  `json:"category,omitempty"`
	AccountID     int64   `json:"account,omitempty"`
	FromAccount   int64   `json:"fromAccount,omitempty"`
	ToAccount     int64   `json:"toAccount,omitempty"`
	OperationType string  `json:"operationType,omitempty"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description,omitempty"`
}

// References reports whether the transaction touches the given account,
// either directly or as a transfer endpoint.
func (t Transaction) References(accountID int64) bool {
	if t.Kind == KindTransfer {
		return t.FromAccount == accountID || t.ToAccount == accountID
	}
	return t.AccountID == accountID
}
