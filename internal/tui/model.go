// Package tui provides an interactive terminal dashboard for browsing
// the ledger month by month.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

// View represents the current view mode.
type View int

const (
	ViewDashboard View = iota
	ViewTransactions
	ViewAccounts
)

var viewNames = map[View]string{
	ViewDashboard:    "Riepilogo",
	ViewTransactions: "Movimenti",
	ViewAccounts:     "Conti",
}

// Model holds the dashboard state.
type Model struct {
	ledger   *ledger.Ledger
	month    ledger.Month
	keymap   KeyMap
	help     help.Model
	view     View
	width    int
	height   int
	quitting bool
}

// newModel creates a dashboard model positioned at the given month.
func newModel(l *ledger.Ledger, month ledger.Month) Model {
	return Model{
		ledger: l,
		month:  month,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		view:   ViewDashboard,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.PrevMonth):
			m.month = m.month.AddMonths(-1)
		case key.Matches(msg, m.keymap.NextMonth):
			m.month = m.month.AddMonths(1)
		case key.Matches(msg, m.keymap.ToggleView):
			m.view = (m.view + 1) % 3
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("Bilancio · %s · %s", viewNames[m.view], m.month.Label())
	b.WriteString(cli.TitleStyle.Render(title))
	b.WriteString("\n\n")

	monthTxns := ledger.FilterMonth(m.ledger.Transactions, m.month)
	stats := ledger.CalculateStats(monthTxns)

	switch m.view {
	case ViewDashboard:
		b.WriteString(cli.RenderKPIs(m.ledger.TotalBalance(), stats))
		b.WriteString("\n\n")
		b.WriteString(cli.RenderCategoryBars(ledger.TopCategories(monthTxns, 8)))
	case ViewTransactions:
		b.WriteString(m.renderTransactions(monthTxns))
	case ViewAccounts:
		b.WriteString(cli.RenderAccounts(m.accountBalances()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) renderTransactions(txns []ledger.Transaction) string {
	if len(txns) == 0 {
		return cli.SubtleStyle.Render("Nessun movimento nel mese")
	}

	var b strings.Builder
	for _, tx := range txns {
		desc := tx.Description
		if desc == "" {
			desc = tx.Category
		}
		amount := cli.FormatAmount(tx.Amount)
		switch {
		case tx.Kind == ledger.KindIncome:
			amount = cli.IncomeStyle.Render("+" + amount)
		case tx.Kind == ledger.KindTransfer:
			amount = cli.SubtleStyle.Render(amount)
		default:
			amount = cli.ExpenseStyle.Render("-" + amount)
		}
		line := fmt.Sprintf("%s  %-12s %-32s %s",
			tx.Date.Format("2006-01-02"),
			cli.KindLabel(tx.Kind),
			truncate(desc, 32),
			amount,
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) accountBalances() []cli.AccountBalance {
	balances := make([]cli.AccountBalance, 0, len(m.ledger.Accounts))
	for _, acct := range m.ledger.Accounts {
		balances = append(balances, cli.AccountBalance{
			Name:    acct.Name,
			Type:    acct.Type,
			Balance: m.ledger.Balance(acct.ID),
		})
	}
	return balances
}

func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
