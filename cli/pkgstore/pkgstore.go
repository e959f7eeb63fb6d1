package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hatlabs/pkgstore/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pkgstore",
		Short: "Package catalog filtering for curated stores",
		Long: `pkgstore resolves curated store definitions against a package catalog:
- stores: load and validate store definition files
- filter: apply the store/repository/tab/search cascade
- browse: repositories, sections and categories with package counts`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (json, table)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewStoresCmd(),
		cli.NewRepositoriesCmd(),
		cli.NewFilterCmd(),
		cli.NewViewCmd(),
		cli.NewSearchCmd(),
		cli.NewSectionsCmd(),
		cli.NewCategoriesCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
