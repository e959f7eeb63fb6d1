package cli

import (
	"fmt"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/spf13/cobra"
)

// NewFilterCmd creates the filter command.
func NewFilterCmd() *cobra.Command {
	var (
		storeID      string
		repositoryID string
		tab          string
		search       string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the package catalog",
		Long: `Apply the filter cascade to the package catalog: store scope, then
repository, then tab, then search, then result limiting.

Criteria that resolve to nothing (an unknown store or repository id)
narrow the result to empty and are reported as diagnostics; they are not
errors. A search query shorter than the configured minimum is ignored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := model.FilterState{
				StoreID:      storeID,
				RepositoryID: repositoryID,
				Tab:          model.Tab(tab),
				SearchQuery:  search,
				Limit:        limit,
			}
			return runFilter(cmd, state)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "Restrict to packages matching this store id")
	cmd.Flags().StringVar(&repositoryID, "repository", "", "Restrict to packages from this repository id")
	cmd.Flags().StringVar(&tab, "tab", "", "Tab to apply (browse, installed, upgradable, search)")
	cmd.Flags().StringVar(&search, "search", "", "Substring to match against name and summary")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (0 uses the configured limit)")

	return cmd
}

func runFilter(cmd *cobra.Command, state model.FilterState) error {
	if !state.Tab.Valid() {
		return errors.Wrapf(errors.ErrConfigValidation, "unknown tab: %q", state.Tab)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	result, err := svc.FilterPackages(cmd.Context(), state)
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	if useJSON(cfg) {
		return printJSON(result)
	}

	for _, diag := range result.Diagnostics {
		fmt.Printf("note: %s\n", diag)
	}

	printPackages(result.Packages)
	if result.Limited {
		fmt.Printf("\nShowing %d of %d matching package(s)\n", len(result.Packages), result.TotalCount)
	} else if len(result.Packages) > 0 {
		fmt.Printf("\nFound %d package(s)\n", result.TotalCount)
	}

	return nil
}
