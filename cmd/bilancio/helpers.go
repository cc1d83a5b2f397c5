package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/bilancio-app/bilancio/internal/config"
	"github.com/bilancio-app/bilancio/internal/ledger"
	"github.com/bilancio-app/bilancio/internal/storage"
)

// openStore opens the snapshot store with proper path expansion.
func openStore(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

// withLedger loads the ledger, runs fn, and persists the result when fn
// reports a mutation.
func withLedger(ctx context.Context, fn func(l *ledger.Ledger) (changed bool, err error)) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	l, err := store.LoadLedger(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(l)
	if err != nil {
		return err
	}
	if changed {
		if err := store.SaveLedger(ctx, l); err != nil {
			return fmt.Errorf("failed to save ledger: %w", err)
		}
	}
	return nil
}

// parseID parses a numeric identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseDateFlag parses a --date flag value, defaulting to today when empty.
func parseDateFlag(value string) (ledger.Date, error) {
	if value == "" {
		return ledger.Today(), nil
	}
	return ledger.ParseDate(value)
}

// parseMonthFlag parses a --month flag value (YYYY-MM), defaulting to the
// current month when empty.
func parseMonthFlag(value string) (ledger.Month, error) {
	if value == "" {
		return ledger.CurrentMonth(), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return ledger.Month{}, fmt.Errorf("invalid month %q (want YYYY-MM)", value)
	}
	return ledger.Month{Year: t.Year(), Month: t.Month()}, nil
}

// parseKindFlag maps a flag value to a transaction kind.
func parseKindFlag(value string) (ledger.Kind, error) {
	switch value {
	case "income":
		return ledger.KindIncome, nil
	case "necessity":
		return ledger.KindNecessity, nil
	case "extra":
		return ledger.KindExtra, nil
	case "withdrawal":
		return ledger.KindWithdrawal, nil
	}
	return "", fmt.Errorf("invalid kind %q (want income, necessity, extra, or withdrawal)", value)
}
