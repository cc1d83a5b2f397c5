package ledger

// TrendPoint is one month of the trend view: the bucket label plus its
// computed statistics.
type TrendPoint struct {
	Label string
	Stats Stats
}

// Trend computes the statistics for the n months ending at ref, oldest
// first. Feeds the trend chart, the averages grid, and the comparison
// table.
func (l *Ledger) Trend(ref Month, n int) []TrendPoint {
	buckets := l.Buckets(ref.AddMonths(-(n-1)), n)
	points := make([]TrendPoint, len(buckets))
	for i, b := range buckets {
		points[i] = TrendPoint{Label: b.Label, Stats: CalculateStats(b.Transactions)}
	}
	return points
}

// TrendAverages holds the mean income, expenses, and net over a trend
// window.
type TrendAverages struct {
	Income   float64
	Expenses float64
	Net      float64
}

// Averages computes the per-month means over a trend window. An empty
// window yields zeros.
func Averages(points []TrendPoint) TrendAverages {
	if len(points) == 0 {
		return TrendAverages{}
	}
	var avg TrendAverages
	for _, p := range points {
		avg.Income += p.Stats.Income
		avg.Expenses += p.Stats.TotalExpenses
		avg.Net += p.Stats.Net
	}
	n := float64(len(points))
	avg.Income /= n
	avg.Expenses /= n
	avg.Net /= n
	return avg
}

// MonthDelta is one row of the month-over-month comparison table.
type MonthDelta struct {
	Label   string
	Stats   Stats
	Diff    float64 // net change vs the previous month
	Percent float64 // percent change; 0 when the previous net is 0
	HasPrev bool
}

// Comparison pairs each trend point with its change versus the previous
// month. The first point has no predecessor.
func Comparison(points []TrendPoint) []MonthDelta {
	deltas := make([]MonthDelta, len(points))
	for i, p := range points {
		d := MonthDelta{Label: p.Label, Stats: p.Stats}
		if i > 0 {
			prev := points[i-1].Stats.Net
			d.Diff = p.Stats.Net - prev
			if prev != 0 {
				d.Percent = d.Diff / abs(prev) * 100
			}
			d.HasPrev = true
		}
		deltas[i] = d
	}
	return deltas
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
