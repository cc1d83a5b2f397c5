package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bilancio-app/bilancio/internal/ledger"
	"github.com/charmbracelet/lipgloss"
)

// barWidth is the widest bar drawn for the largest value in a chart.
const barWidth = 36

// AccountBalance is the renderer's view of one account and its computed
// balance.
type AccountBalance struct {
	Name    string
	Type    ledger.AccountType
	Balance float64
}

// FormatAmount renders a money amount with the currency symbol and two
// decimals. All currency formatting happens here, never in the engine.
func FormatAmount(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

// FormatNet renders a net amount colored by sign.
func FormatNet(v float64) string {
	if v < 0 {
		return ExpenseStyle.Render(FormatAmount(v))
	}
	return IncomeStyle.Render(FormatAmount(v))
}

// AccountTypeLabel returns the display label for an account type.
func AccountTypeLabel(t ledger.AccountType) string {
	switch t {
	case ledger.AccountCurrent:
		return "Corrente"
	case ledger.AccountSavings:
		return "Risparmio"
	case ledger.AccountInvestment:
		return "Investimento"
	}
	return string(t)
}

// KindLabel returns the display label for a transaction kind.
func KindLabel(k ledger.Kind) string {
	switch k {
	case ledger.KindIncome:
		return "Entrata"
	case ledger.KindNecessity:
		return "Necessità"
	case ledger.KindExtra:
		return "Extra"
	case ledger.KindWithdrawal:
		return "Prelievo"
	case ledger.KindTransfer:
		return "Giroconto"
	}
	return string(k)
}

// RenderKPIs draws the dashboard KPI row: total balance plus the selected
// month's income, expenses, and net.
func RenderKPIs(totalBalance float64, s ledger.Stats) string {
	box := func(label, value string) string {
		return KPIBoxStyle.Render(SubtleStyle.Render(label) + "\n" + value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Patrimonio Totale", FormatNet(totalBalance)),
		box("Entrate", IncomeStyle.Render(FormatAmount(s.Income))),
		box("Uscite Totali", ExpenseStyle.Render(FormatAmount(s.TotalExpenses))),
		box("Netto Mensile", FormatNet(s.Net)),
	)
}

// RenderAccounts draws the per-account balance table.
func RenderAccounts(accounts []AccountBalance) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		HeaderStyle.Render("Conto"),
		HeaderStyle.Render("Tipo"),
		HeaderStyle.Render("Saldo"))
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", acc.Name, AccountTypeLabel(acc.Type), FormatNet(acc.Balance))
	}
	_ = w.Flush()
	return sb.String()
}

// RenderStats draws the statistics breakdown for one period.
func RenderStats(s ledger.Stats) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Entrate\t%s\n", IncomeStyle.Render(FormatAmount(s.Income)))
	fmt.Fprintf(w, "Spese di Necessità\t%s\n", FormatAmount(s.Necessity))
	fmt.Fprintf(w, "Spese Extra\t%s\n", FormatAmount(s.Extra))
	fmt.Fprintf(w, "Prelievi\t%s\n", FormatAmount(s.Withdrawals))
	fmt.Fprintf(w, "Uscite Totali\t%s\n", ExpenseStyle.Render(FormatAmount(s.TotalExpenses)))
	fmt.Fprintf(w, "Netto\t%s\n", FormatNet(s.Net))
	_ = w.Flush()
	return sb.String()
}

// RenderCategoryBars draws labeled horizontal bars, scaled so the largest
// total fills the full width.
func RenderCategoryBars(totals []ledger.CategoryTotal) string {
	if len(totals) == 0 {
		return SubtleStyle.Render("Nessuna spesa nel periodo")
	}

	max := totals[0].Total
	for _, ct := range totals {
		if ct.Total > max {
			max = ct.Total
		}
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, ct := range totals {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ct.Label, FormatAmount(ct.Total), BarStyle.Render(bar(ct.Total, max)))
	}
	_ = w.Flush()
	return sb.String()
}

// RenderShares draws a pie-style breakdown as percentage shares of the
// first series.
func RenderShares(data ledger.ChartData) string {
	if len(data.Series) == 0 || len(data.Series[0].Values) == 0 {
		return SubtleStyle.Render("Nessun dato nel periodo")
	}

	values := data.Series[0].Values
	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return SubtleStyle.Render("Nessun dato nel periodo")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for i, label := range data.Labels {
		share := values[i] / total * 100
		fmt.Fprintf(w, "%s\t%s\t%5.1f%%\t%s\n",
			label, FormatAmount(values[i]), share, BarStyle.Render(bar(values[i], total)))
	}
	_ = w.Flush()
	return sb.String()
}

// RenderSeriesTable draws a multi-series chart as a table with one row per
// bucket and one column per series.
func RenderSeriesTable(data ledger.ChartData) string {
	if len(data.Series) == 0 {
		return SubtleStyle.Render("Nessuna serie selezionata")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, HeaderStyle.Render("Mese"))
	for _, s := range data.Series {
		fmt.Fprintf(w, "\t%s", HeaderStyle.Render(s.Name))
	}
	fmt.Fprintln(w)

	for i, label := range data.Labels {
		fmt.Fprint(w, label)
		for _, s := range data.Series {
			fmt.Fprintf(w, "\t%s", FormatAmount(s.Values[i]))
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
	return sb.String()
}

// RenderChart draws chart data according to the configured chart type:
// pie and doughnut as percentage shares, line and bar as a series table
// (with bars when there is a single series).
func RenderChart(t ledger.ChartType, data ledger.ChartData) string {
	switch t {
	case ledger.ChartPie, ledger.ChartDoughnut:
		return RenderShares(data)
	default:
		if len(data.Series) == 1 {
			return renderSingleSeriesBars(data)
		}
		return RenderSeriesTable(data)
	}
}

// RenderComparison draws the month-over-month comparison table.
func RenderComparison(deltas []ledger.MonthDelta) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Mese"),
		HeaderStyle.Render("Entrate"),
		HeaderStyle.Render("Uscite"),
		HeaderStyle.Render("Netto"),
		HeaderStyle.Render("Var. vs Precedente"))
	for _, d := range deltas {
		variation := "-"
		if d.HasPrev {
			arrow := "▲"
			style := IncomeStyle
			if d.Diff < 0 {
				arrow = "▼"
				style = ExpenseStyle
			}
			variation = style.Render(fmt.Sprintf("%s %s (%.1f%%)", arrow, FormatAmount(abs(d.Diff)), d.Percent))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			d.Label,
			FormatAmount(d.Stats.Income),
			FormatAmount(d.Stats.TotalExpenses),
			FormatNet(d.Stats.Net),
			variation)
	}
	_ = w.Flush()
	return sb.String()
}

// RenderAverages draws the trailing-window averages and the savings rate.
func RenderAverages(avg ledger.TrendAverages, savingsRate float64) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Media Entrate (6 mesi)\t%s\n", FormatAmount(avg.Income))
	fmt.Fprintf(w, "Media Uscite (6 mesi)\t%s\n", FormatAmount(avg.Expenses))
	fmt.Fprintf(w, "Media Netto (6 mesi)\t%s\n", FormatNet(avg.Net))
	fmt.Fprintf(w, "Tasso Risparmio\t%.1f%%\n", savingsRate)
	_ = w.Flush()
	return sb.String()
}

func renderSingleSeriesBars(data ledger.ChartData) string {
	values := data.Series[0].Values
	var max float64
	for _, v := range values {
		if abs(v) > max {
			max = abs(v)
		}
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for i, label := range data.Labels {
		style := BarStyle
		if values[i] < 0 {
			style = ExpenseStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", label, FormatAmount(values[i]), style.Render(bar(abs(values[i]), max)))
	}
	_ = w.Flush()
	return sb.String()
}

// bar returns a block-glyph bar proportional to value/max.
func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 1 && value > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
