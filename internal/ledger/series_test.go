package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSpan(t *testing.T) {
	ref := Month{2024, time.July}

	tests := []struct {
		name      string
		period    string
		opts      ChartOptions
		wantStart Month
		wantN     int
	}{
		{"last3", PeriodLast3, ChartOptions{}, Month{2024, time.May}, 3},
		{"last6", PeriodLast6, ChartOptions{}, Month{2024, time.February}, 6},
		{"last12", PeriodLast12, ChartOptions{}, Month{2023, time.August}, 12},
		{"current year", PeriodCurrentYear, ChartOptions{}, Month{2024, time.January}, 12},
		{"custom", PeriodCustom, ChartOptions{StartDate: "2023-10", EndDate: "2024-01"}, Month{2023, time.October}, 4},
		{"custom single month", PeriodCustom, ChartOptions{StartDate: "2024-03", EndDate: "2024-03"}, Month{2024, time.March}, 1},
		{"custom missing end falls back", PeriodCustom, ChartOptions{StartDate: "2023-10"}, Month{2024, time.February}, 6},
		{"custom inverted falls back", PeriodCustom, ChartOptions{StartDate: "2024-05", EndDate: "2024-01"}, Month{2024, time.February}, 6},
		{"unknown falls back", "whatever", ChartOptions{}, Month{2024, time.February}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, n := ResolveSpan(tt.period, tt.opts, ref)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestBuckets_CountAndOrder(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.February, 10), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 5},
		{ID: 2, Date: NewDate(2024, time.April, 1), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 100},
	}

	for _, n := range []int{3, 6, 12} {
		buckets := l.Buckets(Month{2024, time.April}.AddMonths(-(n - 1)), n)
		require.Len(t, buckets, n)
		for i := 1; i < len(buckets); i++ {
			assert.True(t, buckets[i-1].Month.Before(buckets[i].Month),
				"labels must be chronologically ascending")
		}
	}

	buckets := l.Buckets(Month{2024, time.February}, 3)
	assert.Equal(t, []string{"Feb 24", "Mar 24", "Apr 24"}, bucketLabels(buckets))
	assert.Len(t, buckets[0].Transactions, 1)
	assert.Empty(t, buckets[1].Transactions)
	assert.Len(t, buckets[2].Transactions, 1)
}

func TestOverviewSeries_SelectsSeries(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.March, 1), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 100},
		{ID: 2, Date: NewDate(2024, time.March, 2), Kind: KindNecessity, Category: "Gas", AccountID: 1, Amount: 30},
		{ID: 3, Date: NewDate(2024, time.April, 2), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 10},
	}
	buckets := l.Buckets(Month{2024, time.March}, 2)

	data := OverviewSeries(buckets, ChartOptions{ShowIncome: true, ShowExpenses: true, ShowNet: true})
	require.Len(t, data.Series, 3)
	assert.Equal(t, "Income", data.Series[0].Name)
	assert.Equal(t, []float64{100, 0}, data.Series[0].Values)
	assert.Equal(t, []float64{30, 10}, data.Series[1].Values)
	assert.Equal(t, []float64{70, -10}, data.Series[2].Values)

	only := OverviewSeries(buckets, ChartOptions{ShowNecessity: true})
	require.Len(t, only.Series, 1)
	assert.Equal(t, "Necessity", only.Series[0].Name)
	assert.Equal(t, []float64{30, 0}, only.Series[0].Values)
}

func TestAccountSeries_BucketScopedMovement(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.March, 1), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 100},
		{ID: 2, Date: NewDate(2024, time.April, 1), Kind: KindNecessity, Category: "Gas", AccountID: 1, Amount: 40},
		{ID: 3, Date: NewDate(2024, time.April, 2), Kind: KindTransfer, FromAccount: 1, ToAccount: 2, Amount: 25},
	}
	buckets := l.Buckets(Month{2024, time.March}, 2)

	data := l.AccountSeries(buckets, []int64{1, 2})
	require.Len(t, data.Series, 2)
	// Per-bucket net movement, not the running balance.
	assert.Equal(t, []float64{100, -65}, data.Series[0].Values)
	assert.Equal(t, []float64{0, 25}, data.Series[1].Values)
}

func TestAccountSeries_DefaultsToAllAccountsAndSkipsUnknown(t *testing.T) {
	l := testLedger()
	buckets := l.Buckets(Month{2024, time.March}, 1)

	all := l.AccountSeries(buckets, nil)
	assert.Len(t, all.Series, len(l.Accounts))

	// A since-deleted account in a saved chart yields no series, not an error.
	dangling := l.AccountSeries(buckets, []int64{12345})
	assert.Empty(t, dangling.Series)
}

func TestCategoryDetailSeries(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.March, 3), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 8},
		{ID: 2, Date: NewDate(2024, time.March, 9), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 4},
		{ID: 3, Date: NewDate(2024, time.April, 3), Kind: KindExtra, Category: "Viaggi", AccountID: 1, Amount: 300},
	}
	buckets := l.Buckets(Month{2024, time.March}, 2)

	data := CategoryDetailSeries(buckets, "Bar")
	require.Len(t, data.Series, 1)
	assert.Equal(t, []float64{12, 0}, data.Series[0].Values)

	// Dangling category computes an all-zero series.
	gone := CategoryDetailSeries(buckets, "Nonexistent")
	assert.Equal(t, []float64{0, 0}, gone.Series[0].Values)
}

func TestTopCategoriesData_WholePeriod(t *testing.T) {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.March, 3), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 10},
		{ID: 2, Date: NewDate(2024, time.April, 3), Kind: KindExtra, Category: "Bar", AccountID: 1, Amount: 15},
		{ID: 3, Date: NewDate(2024, time.April, 4), Kind: KindNecessity, Category: "Gas", AccountID: 1, Amount: 60},
	}
	buckets := l.Buckets(Month{2024, time.March}, 2)

	data := TopCategoriesData(buckets)
	assert.Equal(t, []string{"Gas", "Bar"}, data.Labels)
	assert.Equal(t, []float64{60, 25}, data.Series[0].Values)
}

func TestChartData_Dispatch(t *testing.T) {
	l := testLedger()
	ref := Month{2024, time.June}

	overview := l.ChartData(ChartConfig{
		Period:     PeriodLast3,
		DataSource: DataOverview,
		Options:    ChartOptions{ShowIncome: true},
	}, ref)
	assert.Len(t, overview.Labels, 3)
	assert.Len(t, overview.Series, 1)

	unknown := l.ChartData(ChartConfig{Period: PeriodLast3, DataSource: "bogus"}, ref)
	assert.Empty(t, unknown.Series)
}
