package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for packages",
		Long: `Search the package catalog by name and summary.

Name matches rank above summary matches; within a band, results are
ordered by closeness to the query. The query must meet the configured
minimum length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0])
		},
	}

	return cmd
}

func runSearch(cmd *cobra.Command, query string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	packages, err := svc.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if useJSON(cfg) {
		return printJSON(packages)
	}

	if len(packages) == 0 {
		fmt.Printf("No packages found matching '%s'\n", query)
		return nil
	}

	printPackages(packages)
	fmt.Printf("\nFound %d package(s) matching '%s'\n", len(packages), query)

	return nil
}
