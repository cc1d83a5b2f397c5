package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func analysisCmd() *cobra.Command {
	var (
		monthFlag string
		months    int
	)

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show spending trends over recent months",
		Long: `Show month-over-month deltas and period averages for income,
expenses, and net savings over a trailing window of months.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}
			if months < 2 {
				return fmt.Errorf("need at least 2 months to compare, got %d", months)
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				points := l.Trend(ref, months)

				fmt.Println(cli.FormatTitle(fmt.Sprintf("Andamento · ultimi %d mesi", months)))
				fmt.Println(cli.RenderComparison(ledger.Comparison(points)))
				fmt.Println()
				fmt.Println(cli.RenderAverages(ledger.Averages(points), refSavingsRate(points)))
				return false, nil
			})
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "last month of the window (YYYY-MM, default current)")
	cmd.Flags().IntVarP(&months, "months", "n", 6, "window size in months")

	return cmd
}

// refSavingsRate returns the savings rate of the window's reference month,
// its last point.
func refSavingsRate(points []ledger.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].Stats.SavingsRate()
}
