package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func transferCmd() *cobra.Command {
	var (
		from          int64
		to            int64
		dateFlag      string
		operationType string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "transfer <amount>",
		Short: "Move money between two accounts",
		Long: `Record a transfer between two accounts. Transfers are balance-neutral
at the portfolio level and never count toward income or expenses.

Example:
  bilancio transfer 200 --from 1 --to 2 --operation "Risparmio mensile"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				tx, err := l.AddTransfer(date, operationType, from, to, amount, description)
				if err != nil {
					return false, fmt.Errorf("failed to add transfer: %w", err)
				}
				fromName := l.Account(tx.FromAccount).Name
				toName := l.Account(tx.ToAccount).Name
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transferred %s from %q to %q (id %d)",
					cli.FormatAmount(tx.Amount), fromName, toName, tx.ID)))
				return true, nil
			})
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "source account id")
	cmd.Flags().Int64Var(&to, "to", 0, "destination account id")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&operationType, "operation", "o", "", "operation label (e.g. Risparmio)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
