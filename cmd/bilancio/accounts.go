package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, add, and delete the bank accounts tracked by the ledger.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				balances := make([]cli.AccountBalance, 0, len(l.Accounts))
				for _, acc := range l.Accounts {
					balances = append(balances, cli.AccountBalance{
						Name:    acc.Name,
						Type:    acc.Type,
						Balance: l.Balance(acc.ID),
					})
				}

				fmt.Println(cli.FormatTitle("Conti"))
				fmt.Println(cli.RenderAccounts(balances))
				fmt.Printf("\nPatrimonio totale: %s\n", cli.FormatNet(l.TotalBalance()))

				// IDs are needed for tx add and delete, print them plainly
				fmt.Println()
				for _, acc := range l.Accounts {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  id %d · %s", acc.ID, acc.Name)))
				}
				return false, nil
			})
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accType        string
		initialBalance float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				acc, err := l.AddAccount(args[0], ledger.AccountType(accType), initialBalance)
				if err != nil {
					return false, fmt.Errorf("failed to add account: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added account %q (id %d)", acc.Name, acc.ID)))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&accType, "type", "t", "current", "account type (current, savings, investment)")
	cmd.Flags().Float64VarP(&initialBalance, "balance", "b", 0, "initial balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account and all its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				acc := l.Account(id)
				if acc == nil {
					return false, ledger.ErrAccountNotFound
				}
				name := acc.Name

				if !force {
					confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
					prompt := fmt.Sprintf("Delete account %q and every transaction touching it?", name)
					ok, err := confirmer.Confirm(cmd.Context(), prompt)
					if err != nil {
						return false, err
					}
					if !ok {
						fmt.Println(cli.InfoStyle.Render("Aborted."))
						return false, nil
					}
				}

				if err := l.DeleteAccount(id); err != nil {
					return false, err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted account %q", name)))
				return true, nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
