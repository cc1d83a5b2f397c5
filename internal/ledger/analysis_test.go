package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendFixture() *Ledger {
	l := testLedger()
	l.Transactions = []Transaction{
		{ID: 1, Date: NewDate(2024, time.May, 5), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 1000},
		{ID: 2, Date: NewDate(2024, time.May, 6), Kind: KindNecessity, Category: "Gas", AccountID: 1, Amount: 400},
		{ID: 3, Date: NewDate(2024, time.June, 5), Kind: KindIncome, Category: "Altro", AccountID: 1, Amount: 1000},
		{ID: 4, Date: NewDate(2024, time.June, 6), Kind: KindNecessity, Category: "Gas", AccountID: 1, Amount: 700},
	}
	return l
}

func TestTrend(t *testing.T) {
	l := trendFixture()
	points := l.Trend(Month{2024, time.June}, 6)

	require.Len(t, points, 6)
	assert.Equal(t, "Gen 24", points[0].Label)
	assert.Equal(t, "Giu 24", points[5].Label)
	assert.InDelta(t, 600.0, points[4].Stats.Net, 1e-9)
	assert.InDelta(t, 300.0, points[5].Stats.Net, 1e-9)
}

func TestAverages(t *testing.T) {
	l := trendFixture()
	avg := Averages(l.Trend(Month{2024, time.June}, 6))

	assert.InDelta(t, 2000.0/6, avg.Income, 1e-9)
	assert.InDelta(t, 1100.0/6, avg.Expenses, 1e-9)
	assert.InDelta(t, 900.0/6, avg.Net, 1e-9)

	assert.Equal(t, TrendAverages{}, Averages(nil))
}

func TestComparison(t *testing.T) {
	points := []TrendPoint{
		{Label: "Apr 24", Stats: Stats{Net: 200}},
		{Label: "Mag 24", Stats: Stats{Net: 600}},
		{Label: "Giu 24", Stats: Stats{Net: 300}},
	}

	deltas := Comparison(points)
	require.Len(t, deltas, 3)

	assert.False(t, deltas[0].HasPrev)

	assert.True(t, deltas[1].HasPrev)
	assert.InDelta(t, 400.0, deltas[1].Diff, 1e-9)
	assert.InDelta(t, 200.0, deltas[1].Percent, 1e-9)

	assert.InDelta(t, -300.0, deltas[2].Diff, 1e-9)
	assert.InDelta(t, -50.0, deltas[2].Percent, 1e-9)
}

func TestComparison_ZeroPreviousNet(t *testing.T) {
	points := []TrendPoint{
		{Label: "Mag 24", Stats: Stats{Net: 0}},
		{Label: "Giu 24", Stats: Stats{Net: 150}},
	}

	deltas := Comparison(points)
	assert.InDelta(t, 150.0, deltas[1].Diff, 1e-9)
	assert.Zero(t, deltas[1].Percent)
}
