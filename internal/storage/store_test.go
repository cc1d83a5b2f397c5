package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bilancio-app/bilancio/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "bilancio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	accounts := []ledger.Account{
		{ID: 1, Name: "N26", Type: ledger.AccountCurrent, InitialBalance: 120.50},
	}
	require.NoError(t, s.Save(ctx, KeyAccounts, accounts))

	var got []ledger.Account
	ok, err := s.Load(ctx, KeyAccounts, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, accounts, got)
}

func TestStore_LoadMissingKey(t *testing.T) {
	s := testStore(t)

	var got []ledger.Account
	ok, err := s.Load(context.Background(), KeyAccounts, &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestStore_MalformedSnapshotFallsBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)`, KeyCategories, `{not json`)
	require.NoError(t, err)

	var got ledger.Taxonomy
	ok, err := s.Load(ctx, KeyCategories, &got)
	require.NoError(t, err, "parse errors must not propagate")
	assert.False(t, ok)
}

func TestStore_PartiallyValidSnapshotLeavesDstUntouched(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// The first element decodes fine, the second fails on its date. The
	// decoder must not leak the valid prefix into dst.
	snapshot := `[
		{"id":10,"date":"2024-03-05","type":"income","category":"Stipendio","account":1,"amount":500},
		{"id":11,"date":"not-a-date","type":"income","category":"Stipendio","account":1,"amount":25}
	]`
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)`, KeyTransactions, snapshot)
	require.NoError(t, err)

	var got []ledger.Transaction
	ok, err := s.Load(ctx, KeyTransactions, &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestLoadLedger_MalformedTransactionsFallBackEmpty(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	snapshot := `[
		{"id":10,"date":"2024-03-05","type":"income","category":"Stipendio","account":1,"amount":500},
		{"id":11,"date":"not-a-date","type":"income","category":"Stipendio","account":1,"amount":25}
	]`
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)`, KeyTransactions, snapshot)
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)`, KeyCharts, `[{"id":`)
	require.NoError(t, err)

	l, err := s.LoadLedger(ctx)
	require.NoError(t, err)
	assert.Empty(t, l.Transactions, "a half-valid snapshot must not surface a truncated decode")
	assert.Empty(t, l.Charts)
	assert.Equal(t, ledger.DefaultAccounts(), l.Accounts)
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyTransactions, []ledger.Transaction{{ID: 1, Amount: 5, Kind: ledger.KindExtra, Date: ledger.NewDate(2024, time.May, 1)}}))
	require.NoError(t, s.Save(ctx, KeyTransactions, []ledger.Transaction{}))

	var got []ledger.Transaction
	ok, err := s.Load(ctx, KeyTransactions, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestLoadLedger_FirstRunSeedsDefaults(t *testing.T) {
	s := testStore(t)

	l, err := s.LoadLedger(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ledger.DefaultAccounts(), l.Accounts)
	assert.Equal(t, ledger.DefaultTaxonomy(), l.Categories)
	assert.Empty(t, l.Transactions)
	assert.Empty(t, l.Charts)
}

func TestLoadLedger_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	l := ledger.New()
	acc, err := l.AddAccount("Fineco", ledger.AccountInvestment, 1000)
	require.NoError(t, err)
	_, err = l.AddTransaction(ledger.NewDate(2024, time.May, 3), ledger.KindIncome, "Altro", acc.ID, 250, "dividendi")
	require.NoError(t, err)
	l.UpsertChart(ledger.ChartConfig{Title: "Trend", Type: ledger.ChartLine, Period: ledger.PeriodLast6, DataSource: ledger.DataOverview})

	require.NoError(t, s.SaveLedger(ctx, l))

	back, err := s.LoadLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, l.Accounts, back.Accounts)
	assert.Equal(t, l.Transactions, back.Transactions)
	assert.Equal(t, l.Categories, back.Categories)
	assert.Equal(t, l.Charts, back.Charts)
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bilancio.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, KeyAccounts, ledger.DefaultAccounts()))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	var got []ledger.Account
	ok, err := s2.Load(ctx, KeyAccounts, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got, 4)
}
