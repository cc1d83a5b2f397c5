package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func dashboardCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the monthly dashboard",
		Long:  `Show total balance, the month's key figures, and the top expense categories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				monthTxns := ledger.FilterMonth(l.Transactions, month)
				stats := ledger.CalculateStats(monthTxns)

				fmt.Println(cli.FormatTitle("Riepilogo · " + month.Label()))
				fmt.Println(cli.RenderKPIs(l.TotalBalance(), stats))
				fmt.Println()
				balances := make([]cli.AccountBalance, 0, len(l.Accounts))
				for _, acc := range l.Accounts {
					balances = append(balances, cli.AccountBalance{
						Name:    acc.Name,
						Type:    acc.Type,
						Balance: l.Balance(acc.ID),
					})
				}
				fmt.Println(cli.RenderAccounts(balances))
				fmt.Println()
				fmt.Println(cli.RenderStats(stats))
				fmt.Println()
				fmt.Println(cli.FormatTitle("Spese per categoria"))
				fmt.Println(cli.RenderCategoryBars(ledger.TopCategories(monthTxns, 8)))
				return false, nil
			})
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month to show (YYYY-MM, default current)")

	return cmd
}
