package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewStoresCmd creates the stores command.
func NewStoresCmd() *cobra.Command {
	var reload bool

	cmd := &cobra.Command{
		Use:   "stores",
		Short: "List configured stores",
		Long: `List the store definitions loaded from the store directory.

Broken definition files are skipped with a warning; they never block the
listing. Use --reload to bypass the definition cache and rescan the
directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStores(cmd, reload)
		},
	}

	cmd.Flags().BoolVar(&reload, "reload", false, "Rescan the store directory instead of using the cache")

	return cmd
}

func runStores(cmd *cobra.Command, reload bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	ctx := cmd.Context()
	stores, warnings := svc.ListStores(ctx)
	if reload {
		stores, warnings = svc.ReloadStores(ctx)
	}
	logWarnings(warnings)

	if useJSON(cfg) {
		return printJSON(stores)
	}

	if len(stores) == 0 {
		fmt.Println("No stores configured")
		return nil
	}

	fmt.Printf("%-20s %-*s %s\n", "ID", NameColumnWidth, "NAME", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", SeparatorWidth))
	for _, st := range stores {
		fmt.Printf("%-20s %-*s %s\n",
			st.ID, NameColumnWidth, st.Name, truncate(st.Description, MaxSummaryLength))
	}

	return nil
}
