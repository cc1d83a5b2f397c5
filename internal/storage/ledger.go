package storage

import (
	"context"
	"fmt"

	"github.com/bilancio-app/bilancio/internal/ledger"
)

// LoadLedger reads all four collection snapshots into a fresh ledger,
// seeding the built-in defaults for any collection that is absent or
// malformed.
func (s *Store) LoadLedger(ctx context.Context) (*ledger.Ledger, error) {
	l := &ledger.Ledger{}

	ok, err := s.Load(ctx, KeyAccounts, &l.Accounts)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.Accounts = ledger.DefaultAccounts()
	}

	ok, err = s.Load(ctx, KeyTransactions, &l.Transactions)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.Transactions = nil
	}

	ok, err = s.Load(ctx, KeyCategories, &l.Categories)
	if err != nil {
		return nil, err
	}
	if !ok || l.Categories == nil {
		l.Categories = ledger.DefaultTaxonomy()
	}

	ok, err = s.Load(ctx, KeyCharts, &l.Charts)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.Charts = nil
	}

	return l, nil
}

// SaveLedger persists every collection snapshot wholesale.
func (s *Store) SaveLedger(ctx context.Context, l *ledger.Ledger) error {
	for _, c := range []struct {
		value any
		key   string
	}{
		{l.Accounts, KeyAccounts},
		{l.Transactions, KeyTransactions},
		{l.Categories, KeyCategories},
		{l.Charts, KeyCharts},
	} {
		if err := s.Save(ctx, c.key, c.value); err != nil {
			return fmt.Errorf("failed to persist %s: %w", c.key, err)
		}
	}
	return nil
}
