package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilancio-app/bilancio/internal/ledger"
)

func testModel(t *testing.T) Model {
	t.Helper()
	l := &ledger.Ledger{
		Accounts:   []ledger.Account{{ID: 1, Name: "Checking", Type: ledger.AccountCurrent, InitialBalance: 1000}},
		Categories: ledger.DefaultTaxonomy(),
	}
	_, err := l.AddTransaction(ledger.NewDate(2024, time.March, 10), ledger.KindIncome, "Stipendio", 1, 1500, "")
	require.NoError(t, err)
	_, err = l.AddTransaction(ledger.NewDate(2024, time.March, 12), ledger.KindNecessity, "Spesa Alimentare", 1, 80, "")
	require.NoError(t, err)
	return newModel(l, ledger.Month{Year: 2024, Month: time.March})
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMonthNavigation(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyPress('l'))
	m = updated.(Model)
	assert.Equal(t, ledger.Month{Year: 2024, Month: time.April}, m.month)

	updated, _ = m.Update(keyPress('h'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress('h'))
	m = updated.(Model)
	assert.Equal(t, ledger.Month{Year: 2024, Month: time.February}, m.month)
}

func TestViewCycling(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, ViewDashboard, m.view)

	for _, want := range []View{ViewTransactions, ViewAccounts, ViewDashboard} {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		assert.Equal(t, want, m.view)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.View())
}

func TestDashboardView(t *testing.T) {
	m := testModel(t)
	out := m.View()
	assert.Contains(t, out, "Riepilogo")
	assert.Contains(t, out, "Mar 24")
	assert.Contains(t, out, "Spesa Alimentare")
}

func TestTransactionsView(t *testing.T) {
	m := testModel(t)
	m.view = ViewTransactions
	out := m.View()
	assert.Contains(t, out, "2024-03-10")
	assert.Contains(t, out, "Entrata")

	m.month = ledger.Month{Year: 2023, Month: time.January}
	assert.Contains(t, m.View(), "Nessun movimento nel mese")
}

func TestAccountsView(t *testing.T) {
	m := testModel(t)
	m.view = ViewAccounts
	out := m.View()
	assert.Contains(t, out, "Checking")
	assert.Contains(t, out, "€2420.00")
}
