package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilancio-app/bilancio/internal/cli"
	"github.com/bilancio-app/bilancio/internal/ledger"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category taxonomy",
		Long: `List and edit the categories available for each transaction kind.

Income and withdrawal categories are flat lists; necessity and extra
expense categories are organized into groups of subcategories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())
	cmd.AddCommand(addGroupCmd())
	cmd.AddCommand(removeGroupCmd())
	cmd.AddCommand(resetCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				for _, kind := range l.Categories.Kinds() {
					set := l.Categories[kind]
					fmt.Println(cli.FormatTitle(cli.KindLabel(kind)))
					if set.Flat() {
						for _, label := range set.Labels {
							fmt.Printf("  %s\n", label)
						}
					} else {
						for _, group := range set.GroupNames() {
							fmt.Printf("  %s\n", cli.HeaderStyle.Render(group))
							for _, label := range set.Groups[group] {
								fmt.Printf("    %s\n", label)
							}
						}
					}
					fmt.Println()
				}
				return false, nil
			})
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		kindFlag string
		group    string
	)

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a category",
		Long: `Add a category label. Income and withdrawal kinds take a bare label;
necessity and extra kinds require --group naming the group to add to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if group == "" {
					err = l.AddCategory(kind, args[0])
				} else {
					err = l.AddGroupCategory(kind, group, args[0])
				}
				if err != nil {
					return false, fmt.Errorf("failed to add category: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", args[0])))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "transaction kind (income, necessity, extra, withdrawal)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "group to add to (grouped kinds only)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func removeCategoryCmd() *cobra.Command {
	var (
		kindFlag string
		group    string
	)

	cmd := &cobra.Command{
		Use:   "remove <label>",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if group == "" {
					err = l.RemoveCategory(kind, args[0])
				} else {
					err = l.RemoveGroupCategory(kind, group, args[0])
				}
				if err != nil {
					return false, fmt.Errorf("failed to remove category: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", args[0])))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "transaction kind (income, necessity, extra, withdrawal)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "group to remove from (grouped kinds only)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func addGroupCmd() *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "add-group <name>",
		Short: "Add a category group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if err := l.AddGroup(kind, args[0]); err != nil {
					return false, fmt.Errorf("failed to add group: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added group %q", args[0])))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "transaction kind (necessity or extra)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func removeGroupCmd() *cobra.Command {
	var (
		kindFlag string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "remove-group <name>",
		Short: "Remove a category group and all its subcategories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}

			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if !force {
					confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
					ok, err := confirmer.Confirm(cmd.Context(), fmt.Sprintf("Remove group %q and all its subcategories?", args[0]))
					if err != nil {
						return false, err
					}
					if !ok {
						fmt.Println(cli.InfoStyle.Render("Aborted."))
						return false, nil
					}
				}

				if err := l.RemoveGroup(kind, args[0]); err != nil {
					return false, fmt.Errorf("failed to remove group: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed group %q", args[0])))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "transaction kind (necessity or extra)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func resetCategoriesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default taxonomy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), func(l *ledger.Ledger) (bool, error) {
				if !force {
					confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
					ok, err := confirmer.Confirm(cmd.Context(), "Discard all category customizations and restore defaults?")
					if err != nil {
						return false, err
					}
					if !ok {
						fmt.Println(cli.InfoStyle.Render("Aborted."))
						return false, nil
					}
				}

				l.ResetCategories()
				fmt.Println(cli.FormatSuccess("Restored default categories"))
				return true, nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
