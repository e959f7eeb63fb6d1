package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	var (
		storeID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "categories [category]",
		Short: "List debtag categories",
		Long: `List the categories derived from package category tags, with per
category package counts. Store definitions may attach labels, descriptions
and icons to category ids; otherwise a label is derived from the id.

With a category id argument, the packages in that category are listed
instead. Use --limit to bound that listing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runCategoryPackages(cmd, storeID, args[0], limit)
			}
			return runCategories(cmd, storeID)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "Scope the listing to one store id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of packages to list (0 means no limit)")

	return cmd
}

func runCategories(cmd *cobra.Command, storeID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	categories, err := svc.Categories(cmd.Context(), storeID)
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return printJSON(categories)
	}

	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	fmt.Printf("%-20s %-*s %s\n", "ID", NameColumnWidth, "LABEL", "PACKAGES")
	fmt.Println(strings.Repeat("-", SeparatorWidth))
	for _, category := range categories {
		fmt.Printf("%-20s %-*s %d\n", category.ID, NameColumnWidth, category.Label, category.Count)
	}

	return nil
}

func runCategoryPackages(cmd *cobra.Command, storeID, categoryID string, limit int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	packages, err := svc.CategoryPackages(cmd.Context(), storeID, categoryID, limit)
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return printJSON(packages)
	}

	printPackages(packages)

	return nil
}
