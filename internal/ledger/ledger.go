package ledger

import (
	"slices"
	"strings"
	"time"
)

// Ledger is the in-memory source of truth for one user's financial record.
// The caller owns the instance and is responsible for persisting it after
// every mutation; the ledger itself never performs I/O.
type Ledger struct {
	Accounts     []Account
	Transactions []Transaction
	Categories   Taxonomy
	Charts       []ChartConfig
}

// New returns a ledger seeded with the built-in defaults.
func New() *Ledger {
	return &Ledger{
		Accounts:   DefaultAccounts(),
		Categories: DefaultTaxonomy(),
	}
}

// NextID returns a fresh identifier, unique among currently-live accounts,
// transactions, and charts. Identifiers are time-based (unix milliseconds)
// and bumped forward on collision.
func (l *Ledger) NextID() int64 {
	id := time.Now().UnixMilli()
	for l.idTaken(id) {
		id++
	}
	return id
}

func (l *Ledger) idTaken(id int64) bool {
	for _, a := range l.Accounts {
		if a.ID == id {
			return true
		}
	}
	for _, t := range l.Transactions {
		if t.ID == id {
			return true
		}
	}
	for _, c := range l.Charts {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Account returns the account with the given id, or nil.
func (l *Ledger) Account(id int64) *Account {
	for i := range l.Accounts {
		if l.Accounts[i].ID == id {
			return &l.Accounts[i]
		}
	}
	return nil
}

// AddAccount creates a new account with a fresh identifier.
func (l *Ledger) AddAccount(name string, accType AccountType, initialBalance float64) (Account, error) {
	if strings.TrimSpace(name) == "" {
		return Account{}, ErrMissingName
	}
	if !accType.Valid() {
		return Account{}, ErrInvalidType
	}
	acc := Account{
		ID:             l.NextID(),
		Name:           strings.TrimSpace(name),
		Type:           accType,
		InitialBalance: initialBalance,
	}
	l.Accounts = append(l.Accounts, acc)
	return acc, nil
}

// DeleteAccount removes an account and cascades to every transaction that
// references it, directly or as a transfer endpoint.
func (l *Ledger) DeleteAccount(id int64) error {
	if l.Account(id) == nil {
		return ErrAccountNotFound
	}
	l.Accounts = slices.DeleteFunc(l.Accounts, func(a Account) bool {
		return a.ID == id
	})
	l.Transactions = slices.DeleteFunc(l.Transactions, func(t Transaction) bool {
		return t.References(id)
	})
	return nil
}

// AddTransaction records an income, expense, or withdrawal entry.
func (l *Ledger) AddTransaction(date Date, kind Kind, category string, accountID int64, amount float64, description string) (Transaction, error) {
	if !kind.Valid() || kind == KindTransfer {
		return Transaction{}, ErrInvalidKind
	}
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if strings.TrimSpace(category) == "" {
		return Transaction{}, ErrMissingCategory
	}
	if l.Account(accountID) == nil {
		return Transaction{}, ErrAccountNotFound
	}
	tx := Transaction{
		ID:          l.NextID(),
		Date:        date,
		Kind:        kind,
		Category:    category,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
	}
	l.Transactions = append(l.Transactions, tx)
	return tx, nil
}

// AddTransfer records a movement between two accounts. Self-transfers are
// rejected at entry; the balance calculator still nets legacy ones to zero.
func (l *Ledger) AddTransfer(date Date, operationType string, from, to int64, amount float64, description string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if from == to {
		return Transaction{}, ErrSameAccount
	}
	if l.Account(from) == nil || l.Account(to) == nil {
		return Transaction{}, ErrAccountNotFound
	}
	tx := Transaction{
		ID:            l.NextID(),
		Date:          date,
		Kind:          KindTransfer,
		OperationType: operationType,
		FromAccount:   from,
		ToAccount:     to,
		Amount:        amount,
		Description:   description,
	}
	l.Transactions = append(l.Transactions, tx)
	return tx, nil
}

// DeleteTransaction removes a single transaction by id.
func (l *Ledger) DeleteTransaction(id int64) error {
	before := len(l.Transactions)
	l.Transactions = slices.DeleteFunc(l.Transactions, func(t Transaction) bool {
		return t.ID == id
	})
	if len(l.Transactions) == before {
		return ErrTransactionGone
	}
	return nil
}

// AddCategory appends a leaf label to a flat category set.
func (l *Ledger) AddCategory(kind Kind, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrMissingName
	}
	set, ok := l.Categories[kind]
	if !ok || !set.Flat() {
		return ErrInvalidKind
	}
	set.Labels = append(set.Labels, label)
	l.Categories[kind] = set
	return nil
}

// RemoveCategory deletes a leaf label from a flat category set.
func (l *Ledger) RemoveCategory(kind Kind, label string) error {
	set, ok := l.Categories[kind]
	if !ok || !set.Flat() {
		return ErrInvalidKind
	}
	i := slices.Index(set.Labels, label)
	if i < 0 {
		return ErrCategoryNotFound
	}
	set.Labels = slices.Delete(set.Labels, i, i+1)
	l.Categories[kind] = set
	return nil
}

// AddGroup creates a new empty group in a grouped category set.
func (l *Ledger) AddGroup(kind Kind, group string) error {
	group = strings.TrimSpace(group)
	if group == "" {
		return ErrMissingName
	}
	set, ok := l.Categories[kind]
	if !ok || set.Flat() {
		return ErrInvalidKind
	}
	if _, exists := set.Groups[group]; exists {
		return ErrGroupExists
	}
	set.Groups[group] = []string{}
	return nil
}

// RemoveGroup deletes a group and all its subcategories.
func (l *Ledger) RemoveGroup(kind Kind, group string) error {
	set, ok := l.Categories[kind]
	if !ok || set.Flat() {
		return ErrInvalidKind
	}
	if _, exists := set.Groups[group]; !exists {
		return ErrGroupNotFound
	}
	delete(set.Groups, group)
	return nil
}

// AddGroupCategory appends a subcategory label to a group.
func (l *Ledger) AddGroupCategory(kind Kind, group, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrMissingName
	}
	set, ok := l.Categories[kind]
	if !ok || set.Flat() {
		return ErrInvalidKind
	}
	labels, exists := set.Groups[group]
	if !exists {
		return ErrGroupNotFound
	}
	set.Groups[group] = append(labels, label)
	return nil
}

// RemoveGroupCategory deletes a subcategory label from a group.
func (l *Ledger) RemoveGroupCategory(kind Kind, group, label string) error {
	set, ok := l.Categories[kind]
	if !ok || set.Flat() {
		return ErrInvalidKind
	}
	labels, exists := set.Groups[group]
	if !exists {
		return ErrGroupNotFound
	}
	i := slices.Index(labels, label)
	if i < 0 {
		return ErrCategoryNotFound
	}
	set.Groups[group] = slices.Delete(labels, i, i+1)
	return nil
}

// ResetCategories restores the built-in default taxonomy.
func (l *Ledger) ResetCategories() {
	l.Categories = DefaultTaxonomy()
}

// Chart returns the chart config with the given id, or nil.
func (l *Ledger) Chart(id int64) *ChartConfig {
	for i := range l.Charts {
		if l.Charts[i].ID == id {
			return &l.Charts[i]
		}
	}
	return nil
}

// UpsertChart saves a chart config, replacing any existing config with the
// same id. A zero id is assigned a fresh one.
func (l *Ledger) UpsertChart(cfg ChartConfig) ChartConfig {
	if cfg.ID == 0 {
		cfg.ID = l.NextID()
	}
	for i := range l.Charts {
		if l.Charts[i].ID == cfg.ID {
			l.Charts[i] = cfg
			return cfg
		}
	}
	l.Charts = append(l.Charts, cfg)
	return cfg
}

// DeleteChart removes a chart config by id.
func (l *Ledger) DeleteChart(id int64) error {
	before := len(l.Charts)
	l.Charts = slices.DeleteFunc(l.Charts, func(c ChartConfig) bool {
		return c.ID == id
	})
	if len(l.Charts) == before {
		return ErrChartNotFound
	}
	return nil
}
