package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSectionsCmd creates the sections command.
func NewSectionsCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "sections [section]",
		Short: "List package sections",
		Long: `List the sections present in the package catalog with per section
package counts. Packages without a section are grouped under "unknown".

With a section name argument, the packages in that section are listed
instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runSectionPackages(cmd, storeID, args[0])
			}
			return runSections(cmd, storeID)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "Scope the listing to one store id")

	return cmd
}

func runSections(cmd *cobra.Command, storeID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	sections, err := svc.Sections(cmd.Context(), storeID)
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return printJSON(sections)
	}

	if len(sections) == 0 {
		fmt.Println("No sections found")
		return nil
	}

	fmt.Printf("%-*s %s\n", NameColumnWidth, "SECTION", "PACKAGES")
	fmt.Println(strings.Repeat("-", SeparatorWidth))
	for _, section := range sections {
		fmt.Printf("%-*s %d\n", NameColumnWidth, section.Name, section.Count)
	}

	return nil
}

func runSectionPackages(cmd *cobra.Command, storeID, section string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := newService(cfg)

	packages, err := svc.SectionPackages(cmd.Context(), storeID, section)
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return printJSON(packages)
	}

	printPackages(packages)

	return nil
}
