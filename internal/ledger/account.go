package ledger

// AccountType distinguishes the kinds of accounts a user can hold.
type AccountType string

const (
	// AccountCurrent is a checking/current account.
	AccountCurrent AccountType = "current"
	// AccountSavings is a savings account.
	AccountSavings AccountType = "savings"
	// AccountInvestment is an investment account.
	AccountInvestment AccountType = "investment"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountCurrent, AccountSavings, AccountInvestment:
		return true
	}
	return false
}

// Account is a user account holding money. The identifier is unique among
// currently-live accounts and stable for the account's lifetime.
type Account struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	InitialBalance float64     `json:"initialBalance"`
}
