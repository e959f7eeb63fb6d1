package cli

import (
	"fmt"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/spf13/cobra"
)

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	var (
		storeID      string
		repositoryID string
		tab          string
		search       string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Compute a full catalog view",
		Long: `Compute everything one catalog refresh needs in a single call: the
loaded stores, the repositories under the active store scope, and the
filtered package set. Store filter matching runs once for all three.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := model.FilterState{
				StoreID:      storeID,
				RepositoryID: repositoryID,
				Tab:          model.Tab(tab),
				SearchQuery:  search,
				Limit:        limit,
			}
			return runView(cmd, state)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "Restrict to packages matching this store id")
	cmd.Flags().StringVar(&repositoryID, "repository", "", "Restrict to packages from this repository id")
	cmd.Flags().StringVar(&tab, "tab", "", "Tab to apply (browse, installed, upgradable, search)")
	cmd.Flags().StringVar(&search, "search", "", "Substring to match against name and summary")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (0 uses the configured limit)")

	return cmd
}

func runView(cmd *cobra.Command, state model.FilterState) error {
	if !state.Tab.Valid() {
		return errors.Wrapf(errors.ErrConfigValidation, "unknown tab: %q", state.Tab)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	view, err := svc.Refresh(cmd.Context(), state)
	if err != nil {
		return fmt.Errorf("view failed: %w", err)
	}
	logWarnings(view.Warnings)

	if useJSON(cfg) {
		return printJSON(view)
	}

	fmt.Printf("Stores: %d, repositories: %d\n\n", len(view.Stores), len(view.Repositories))
	for _, diag := range view.Result.Diagnostics {
		fmt.Printf("note: %s\n", diag)
	}
	printPackages(view.Result.Packages)
	if view.Result.Limited {
		fmt.Printf("\nShowing %d of %d matching package(s)\n",
			len(view.Result.Packages), view.Result.TotalCount)
	}

	return nil
}
