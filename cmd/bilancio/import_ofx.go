package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
	"github.com/bilancio-app/bilancio/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		accountID       int64
		incomeCategory  string
		expenseKindFlag string
		expenseCategory string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX bank statements",
		Long: `Import transactions from OFX or QFX files exported from your bank.

Credits are recorded as income, debits as expenses. Every imported entry
lands in the given account with the given categories; recategorize
afterwards with 'bilancio tx' as needed.

Examples:
  bilancio import-ofx --account 1 ~/Downloads/estratto_conto.ofx
  bilancio import-ofx --account 1 --expense-kind extra ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseKind, err := parseKindFlag(expenseKindFlag)
			if err != nil {
				return err
			}
			if !expenseKind.IsExpense() {
				return fmt.Errorf("expense kind must be necessity, extra, or withdrawal")
			}

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			// Parse every file, deduplicating across them
			parser := ofx.NewParser()
			seen := make(map[string]bool)
			var entries []ofx.Entry
			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("Failed to open file", "file", filePath, "error", err)
					continue
				}
				parsed, err := parser.ParseFile(cmd.Context(), f)
				f.Close()
				if err != nil {
					slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
					continue
				}

				added := 0
				for _, e := range parsed {
					if seen[e.Hash()] {
						continue
					}
					seen[e.Hash()] = true
					entries = append(entries, e)
					added++
				}
				slog.Info("Processed file",
					"file", filepath.Base(filePath),
					"entries", len(parsed),
					"added", added,
					"duplicates", len(parsed)-added)
			}
			if len(entries) == 0 {
				slog.Warn("No transactions found in any file")
				return nil
			}

			if dryRun {
				fmt.Println(cli.FormatTitle("Anteprima import"))
				for _, e := range entries {
					sign := "-"
					if e.Credit {
						sign = "+"
					}
					fmt.Printf("  %s  %s%s  %s\n", e.Date, sign, cli.FormatAmount(e.Amount), e.Description)
				}
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%d entries, nothing saved (dry run)", len(entries))))
				return nil
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if l.Account(accountID) == nil {
					return false, ledger.ErrAccountNotFound
				}

				bar := progressbar.NewOptions(len(entries),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40),
					progressbar.OptionSetDescription("Importing transactions..."),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(os.Stderr)
					}),
				)

				imported := 0
				skipped := 0
				for _, e := range entries {
					_ = bar.Add(1)
					if alreadyRecorded(l, e, accountID) {
						skipped++
						continue
					}
					kind := expenseKind
					category := expenseCategory
					if e.Credit {
						kind = ledger.KindIncome
						category = incomeCategory
					}
					if _, err := l.AddTransaction(e.Date, kind, category, accountID, e.Amount, e.Description); err != nil {
						return false, fmt.Errorf("failed to import entry dated %s: %w", e.Date, err)
					}
					imported++
				}

				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d already recorded)", imported, skipped)))
				return imported > 0, nil
			})
		},
	}

	cmd.Flags().Int64VarP(&accountID, "account", "a", 0, "account id to import into")
	cmd.Flags().StringVar(&incomeCategory, "income-category", "Altro", "category for credits")
	cmd.Flags().StringVar(&expenseKindFlag, "expense-kind", "extra", "kind for debits (necessity, extra, withdrawal)")
	cmd.Flags().StringVar(&expenseCategory, "expense-category", "Altro", "category for debits")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

// alreadyRecorded reports whether an equivalent entry is already in the
// ledger, making re-imports of the same statement idempotent.
func alreadyRecorded(l *ledger.Ledger, e ofx.Entry, accountID int64) bool {
	for _, tx := range l.Transactions {
		if tx.AccountID != accountID || tx.Kind == ledger.KindTransfer {
			continue
		}
		if tx.Date.Equal(e.Date.Time) && tx.Amount == e.Amount &&
			tx.Description == e.Description && (tx.Kind == ledger.KindIncome) == e.Credit {
			return true
		}
	}
	return false
}
