package main

import (
	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/ledger"
	"github.com/bilancio-app/bilancio/internal/tui"
)

func tuiCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the ledger interactively",
		Long: `Open an interactive dashboard. Use the arrow keys to move between
months and Tab to cycle between the summary, transaction, and account views.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				return false, tui.Run(l, month)
			})
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month to open at (YYYY-MM, default current)")

	return cmd
}
