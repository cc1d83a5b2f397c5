package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func chartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Manage and render custom charts",
		Long: `Save chart configurations and render them in the terminal.

A chart pairs a data source (overview, categories, accounts, or
categoryDetail) with a period and a drawing style.`,
	}

	cmd.AddCommand(listChartsCmd())
	cmd.AddCommand(addChartCmd())
	cmd.AddCommand(editChartCmd())
	cmd.AddCommand(deleteChartCmd())
	cmd.AddCommand(renderChartCmd())

	return cmd
}

func listChartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved charts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if len(l.Charts) == 0 {
					fmt.Println(cli.InfoStyle.Render("No saved charts. Use 'bilancio charts add' to create one."))
					return false, nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("ID"),
					cli.HeaderStyle.Render("Titolo"),
					cli.HeaderStyle.Render("Tipo"),
					cli.HeaderStyle.Render("Periodo"),
					cli.HeaderStyle.Render("Sorgente"))
				for _, c := range l.Charts {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Title, c.Type, c.Period, c.DataSource)
				}
				return false, w.Flush()
			})
		},
	}
}

// chartFlags registers the flags shared by add and edit.
func chartFlags(cmd *cobra.Command, cfg *ledger.ChartConfig, series *[]string) {
	cmd.Flags().StringVarP(&cfg.Title, "title", "t", "", "chart title")
	cmd.Flags().StringVar((*string)(&cfg.Type), "type", string(ledger.ChartLine), "chart type (line, bar, pie, doughnut)")
	cmd.Flags().StringVarP(&cfg.Period, "period", "p", ledger.PeriodLast6, "period (last3, last6, last12, currentYear, custom)")
	cmd.Flags().StringVarP(&cfg.DataSource, "source", "s", ledger.DataOverview, "data source (overview, categories, accounts, categoryDetail)")
	cmd.Flags().StringVar(&cfg.Options.StartDate, "start", "", "custom period start (YYYY-MM)")
	cmd.Flags().StringVar(&cfg.Options.EndDate, "end", "", "custom period end (YYYY-MM)")
	cmd.Flags().StringSliceVar(series, "series", []string{"income", "expenses", "net"}, "overview series to include (income, expenses, net, necessity, extra)")
	cmd.Flags().Int64SliceVar(&cfg.Options.SelectedAccounts, "accounts", nil, "account ids for the accounts source (default all)")
	cmd.Flags().StringVarP(&cfg.Options.Category, "category", "c", "", "category for the categoryDetail source")
}

func applySeries(cfg *ledger.ChartConfig, series []string) error {
	cfg.Options.ShowIncome = slices.Contains(series, "income")
	cfg.Options.ShowExpenses = slices.Contains(series, "expenses")
	cfg.Options.ShowNet = slices.Contains(series, "net")
	cfg.Options.ShowNecessity = slices.Contains(series, "necessity")
	cfg.Options.ShowExtra = slices.Contains(series, "extra")
	for _, s := range series {
		switch s {
		case "income", "expenses", "net", "necessity", "extra":
		default:
			return fmt.Errorf("unknown series %q", s)
		}
	}
	return nil
}

func validateChart(cfg ledger.ChartConfig) error {
	if cfg.Title == "" {
		return ledger.ErrMissingName
	}
	if !cfg.Type.Valid() {
		return fmt.Errorf("invalid chart type %q", cfg.Type)
	}
	switch cfg.Period {
	case ledger.PeriodLast3, ledger.PeriodLast6, ledger.PeriodLast12, ledger.PeriodCurrentYear, ledger.PeriodCustom:
	default:
		return fmt.Errorf("invalid period %q", cfg.Period)
	}
	switch cfg.DataSource {
	case ledger.DataOverview, ledger.DataCategories, ledger.DataAccounts, ledger.DataCategoryDetail:
	default:
		return fmt.Errorf("invalid data source %q", cfg.DataSource)
	}
	if cfg.DataSource == ledger.DataCategoryDetail && cfg.Options.Category == "" {
		return fmt.Errorf("categoryDetail charts need --category")
	}
	return nil
}

func addChartCmd() *cobra.Command {
	var (
		cfg    ledger.ChartConfig
		series []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new chart",
		Long: `Save a new chart configuration.

Examples:
  bilancio charts add --title "Entrate vs Uscite" --type line --period last6
  bilancio charts add --title "Torta spese" --type pie --source categories
  bilancio charts add --title "Benzina" --type bar --source categoryDetail --category Benzina`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applySeries(&cfg, series); err != nil {
				return err
			}
			if err := validateChart(cfg); err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				saved := l.UpsertChart(cfg)
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved chart %q (id %d)", saved.Title, saved.ID)))
				return true, nil
			})
		},
	}

	chartFlags(cmd, &cfg, &series)
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func editChartCmd() *cobra.Command {
	var (
		cfg    ledger.ChartConfig
		series []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a saved chart's configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := applySeries(&cfg, series); err != nil {
				return err
			}
			if err := validateChart(cfg); err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if l.Chart(id) == nil {
					return false, ledger.ErrChartNotFound
				}
				cfg.ID = id
				l.UpsertChart(cfg)
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated chart %d", id)))
				return true, nil
			})
		},
	}

	chartFlags(cmd, &cfg, &series)
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func deleteChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if err := l.DeleteChart(id); err != nil {
					return false, err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted chart %d", id)))
				return true, nil
			})
		},
	}
}

func renderChartCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Render a saved chart in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ref, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				cfg := l.Chart(id)
				if cfg == nil {
					return false, ledger.ErrChartNotFound
				}

				data := l.ChartData(*cfg, ref)
				fmt.Println(cli.FormatTitle(cfg.Title))
				fmt.Println(cli.RenderChart(cfg.Type, data))
				return false, nil
			})
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "reference month (YYYY-MM, default current)")

	return cmd
}
