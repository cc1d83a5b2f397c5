package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Record and inspect income, expense, and withdrawal entries.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		kindFlag    string
		category    string
		accountID   int64
		dateFlag    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Record an income, expense, or withdrawal entry.

Examples:
  bilancio tx add 1500 --kind income --category Stipendio --account 1
  bilancio tx add 42.50 --kind necessity --category "Spesa Alimentare" --account 1 --date 2026-08-12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				tx, err := l.AddTransaction(date, kind, category, accountID, amount, description)
				if err != nil {
					return false, fmt.Errorf("failed to add transaction: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s on %s (id %d)",
					cli.KindLabel(tx.Kind), cli.FormatAmount(tx.Amount), tx.Date, tx.ID)))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "transaction kind (income, necessity, extra, withdrawal)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label")
	cmd.Flags().Int64VarP(&accountID, "account", "a", 0, "account id")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		monthFlag string
		year      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a month or a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				var txns []ledger.Transaction
				scope := month.Label()
				if year > 0 {
					scope = fmt.Sprintf("%d", year)
					for _, tx := range l.Transactions {
						if tx.Date.Year() == year {
							txns = append(txns, tx)
						}
					}
				} else {
					txns = ledger.FilterMonth(l.Transactions, month)
				}
				if len(txns) == 0 {
					fmt.Println(cli.InfoStyle.Render("No transactions in " + scope))
					return false, nil
				}

				// Newest first
				sort.SliceStable(txns, func(i, j int) bool {
					return txns[j].Date.Before(txns[i].Date.Time)
				})

				fmt.Println(cli.FormatTitle("Movimenti · " + scope))

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("ID"),
					cli.HeaderStyle.Render("Data"),
					cli.HeaderStyle.Render("Tipo"),
					cli.HeaderStyle.Render("Categoria"),
					cli.HeaderStyle.Render("Conto"),
					cli.HeaderStyle.Render("Importo"))
				for _, tx := range txns {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
						tx.ID, tx.Date, cli.KindLabel(tx.Kind),
						txCategory(tx), txAccount(l, tx), txAmount(tx))
				}
				return false, w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month to list (YYYY-MM, default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "list a whole year instead")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if err := l.DeleteTransaction(id); err != nil {
					return false, err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
				return true, nil
			})
		},
	}
}

func txCategory(tx ledger.Transaction) string {
	if tx.Kind == ledger.KindTransfer {
		if tx.OperationType != "" {
			return tx.OperationType
		}
		return "Giroconto"
	}
	return tx.Category
}

func txAccount(l *ledger.Ledger, tx ledger.Transaction) string {
	name := func(id int64) string {
		if acc := l.Account(id); acc != nil {
			return acc.Name
		}
		return fmt.Sprintf("#%d", id)
	}
	if tx.Kind == ledger.KindTransfer {
		return name(tx.FromAccount) + " → " + name(tx.ToAccount)
	}
	return name(tx.AccountID)
}

func txAmount(tx ledger.Transaction) string {
	amount := cli.FormatAmount(tx.Amount)
	switch tx.Kind {
	case ledger.KindIncome:
		return cli.IncomeStyle.Render("+" + amount)
	case ledger.KindTransfer:
		return cli.SubtleStyle.Render(amount)
	default:
		return cli.ExpenseStyle.Render("-" + amount)
	}
}

func parseAmount(arg string) (float64, error) {
	// Accept the Italian decimal comma too
	amount, err := strconv.ParseFloat(strings.ReplaceAll(arg, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	return amount, nil
}
