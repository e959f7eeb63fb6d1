package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRepositoriesCmd creates the repositories command.
func NewRepositoriesCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "repositories",
		Short: "List package repositories",
		Long: `List the repositories derived from the package catalog, with per
repository package counts.

With --store, only repositories contributing packages to that store are
listed, and counts reflect the store scope.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepositories(cmd, storeID)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "Scope the listing to one store id")

	return cmd
}

func runRepositories(cmd *cobra.Command, storeID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	repositories, err := svc.ListRepositories(cmd.Context(), storeID)
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return printJSON(repositories)
	}

	if len(repositories) == 0 {
		fmt.Println("No repositories found")
		return nil
	}

	fmt.Printf("%-25s %-*s %s\n", "ID", NameColumnWidth, "NAME", "PACKAGES")
	fmt.Println(strings.Repeat("-", SeparatorWidth))
	for _, repo := range repositories {
		fmt.Printf("%-25s %-*s %d\n", repo.ID, NameColumnWidth, repo.Name, repo.PackageCount)
	}

	return nil
}
