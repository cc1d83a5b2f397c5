package ledger

import "errors"

// Validation errors surfaced to the user when a mutation is rejected.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrMissingCategory  = errors.New("category is required")
	ErrMissingName      = errors.New("name cannot be empty")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidType      = errors.New("invalid account type")
	ErrSameAccount      = errors.New("transfer source and destination must differ")
	ErrTransactionGone  = errors.New("transaction not found")
	ErrChartNotFound    = errors.New("chart not found")
	ErrGroupExists      = errors.New("group already exists")
	ErrGroupNotFound    = errors.New("group not found")
	ErrCategoryNotFound = errors.New("category not found")
)
