package ledger

import "time"

// Bucket is one month's slice of transactions within a time-series.
type Bucket struct {
	Month        Month
	Label        string
	Transactions []Transaction
}

// Series is one named line or bar group of per-bucket values.
type Series struct {
	Name   string
	Values []float64
}

// ChartData is a chart-ready view model: ordered bucket labels plus one or
// more data series. The renderer owns all formatting and color choices.
type ChartData struct {
	Labels []string
	Series []Series
}

// fallbackMonths is the window used when a custom range is missing or
// inverted. Inherited behavior; flagged in DESIGN.md as a deliberate keep.
const fallbackMonths = 6

// ResolveSpan turns a chart period selector into a starting month and a
// month count, relative to the reference month.
func ResolveSpan(period string, opts ChartOptions, ref Month) (Month, int) {
	switch period {
	case PeriodLast3:
		return ref.AddMonths(-2), 3
	case PeriodLast12:
		return ref.AddMonths(-11), 12
	case PeriodCurrentYear:
		return Month{Year: ref.Year, Month: time.January}, 12
	case PeriodCustom:
		start, okStart := parseMonth(opts.StartDate)
		end, okEnd := parseMonth(opts.EndDate)
		if okStart && okEnd && !end.Before(start) {
			return start, end.MonthsSince(start)
		}
		return ref.AddMonths(-(fallbackMonths - 1)), fallbackMonths
	default: // PeriodLast6 and anything unknown
		return ref.AddMonths(-(fallbackMonths - 1)), fallbackMonths
	}
}

// parseMonth parses a YYYY-MM month selector value.
func parseMonth(s string) (Month, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, false
	}
	return Month{Year: t.Year(), Month: t.Month()}, true
}

// Buckets slices the ledger's transactions into n consecutive monthly
// buckets starting at start, labels in chronological order.
func (l *Ledger) Buckets(start Month, n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	for i := 0; i < n; i++ {
		m := start.AddMonths(i)
		buckets = append(buckets, Bucket{
			Month:        m,
			Label:        m.Label(),
			Transactions: FilterMonth(l.Transactions, m),
		})
	}
	return buckets
}

// OverviewSeries computes the selected portfolio-level series, one value
// per bucket via the statistics aggregator.
func OverviewSeries(buckets []Bucket, opts ChartOptions) ChartData {
	data := ChartData{Labels: bucketLabels(buckets)}

	stats := make([]Stats, len(buckets))
	for i, b := range buckets {
		stats[i] = CalculateStats(b.Transactions)
	}

	add := func(name string, pick func(Stats) float64) {
		values := make([]float64, len(stats))
		for i, s := range stats {
			values[i] = pick(s)
		}
		data.Series = append(data.Series, Series{Name: name, Values: values})
	}

	if opts.ShowIncome {
		add("Income", func(s Stats) float64 { return s.Income })
	}
	if opts.ShowExpenses {
		add("Expenses", func(s Stats) float64 { return s.TotalExpenses })
	}
	if opts.ShowNecessity {
		add("Necessity", func(s Stats) float64 { return s.Necessity })
	}
	if opts.ShowExtra {
		add("Extra", func(s Stats) float64 { return s.Extra })
	}
	if opts.ShowNet {
		add("Net", func(s Stats) float64 { return s.Net })
	}
	return data
}

// AccountSeries computes, for each selected account, that month's net
// movement per bucket. This is the bucket-scoped movement, not the running
// cumulative balance. Unknown account ids are skipped.
func (l *Ledger) AccountSeries(buckets []Bucket, selected []int64) ChartData {
	if selected == nil {
		for _, acc := range l.Accounts {
			selected = append(selected, acc.ID)
		}
	}
	data := ChartData{Labels: bucketLabels(buckets)}
	for _, id := range selected {
		acc := l.Account(id)
		if acc == nil {
			continue
		}
		values := make([]float64, len(buckets))
		for i, b := range buckets {
			values[i] = netMovement(b.Transactions, id)
		}
		data.Series = append(data.Series, Series{Name: acc.Name, Values: values})
	}
	return data
}

// CategoryDetailSeries computes the per-bucket spending of one category.
// A dangling category label yields an all-zero series.
func CategoryDetailSeries(buckets []Bucket, category string) ChartData {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		for _, t := range b.Transactions {
			if t.Category == category {
				values[i] += t.Amount
			}
		}
	}
	return ChartData{
		Labels: bucketLabels(buckets),
		Series: []Series{{Name: category, Values: values}},
	}
}

// TopCategoriesData aggregates spending across the whole period (not per
// bucket), sorted descending and truncated to the top 10.
func TopCategoriesData(buckets []Bucket) ChartData {
	var all []Transaction
	for _, b := range buckets {
		all = append(all, b.Transactions...)
	}
	totals := TopCategories(all, 10)

	data := ChartData{Series: []Series{{Name: "Total"}}}
	for _, ct := range totals {
		data.Labels = append(data.Labels, ct.Label)
		data.Series[0].Values = append(data.Series[0].Values, ct.Total)
	}
	return data
}

// ChartData computes the chart-ready series for a saved chart config,
// relative to the reference month. Unknown data sources yield empty data.
func (l *Ledger) ChartData(cfg ChartConfig, ref Month) ChartData {
	start, n := ResolveSpan(cfg.Period, cfg.Options, ref)
	buckets := l.Buckets(start, n)

	switch cfg.DataSource {
	case DataOverview:
		return OverviewSeries(buckets, cfg.Options)
	case DataCategories:
		return TopCategoriesData(buckets)
	case DataAccounts:
		return l.AccountSeries(buckets, cfg.Options.SelectedAccounts)
	case DataCategoryDetail:
		return CategoryDetailSeries(buckets, cfg.Options.Category)
	}
	return ChartData{}
}

func bucketLabels(buckets []Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}
