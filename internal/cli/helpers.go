package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hatlabs/pkgstore/internal/logger"
	"github.com/hatlabs/pkgstore/pkg/catalog"
	"github.com/hatlabs/pkgstore/pkg/config"
	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/service"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// loadConfig loads the application configuration, applying CLI flag
// overrides, and initializes the logger from the resolved log level.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", pathErr)
		}
		cfg, err = config.LoadConfig(defaultPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel)

	return cfg, nil
}

// newService wires the catalog source and store loader into a service
// configured from the loaded settings.
func newService(cfg *config.Config) *service.Service {
	source := catalog.NewFileSource(cfg.Settings.CatalogPath)
	svc := service.New(source, store.NewLoader(), cfg.Settings.StoreDir)
	svc.Engine = filter.NewEngineWithOptions(cfg.Settings.ResultLimit, cfg.Settings.MinQueryLength)
	svc.MinQueryLength = cfg.Settings.MinQueryLength
	svc.MaxSearchResults = cfg.Settings.MaxSearchResults
	return svc
}

// useJSON reports whether command output should be machine-readable.
func useJSON(cfg *config.Config) bool {
	return cfg.Settings.OutputFormat != config.OutputFormatTable
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// logWarnings reports store definition load warnings without failing the
// command. A broken store file never blocks the rest of the listing.
func logWarnings(warnings []store.LoadWarning) {
	for _, w := range warnings {
		logger.Warn("skipping store definition", logger.Fields{
			"file":   w.File,
			"reason": w.Reason,
		})
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func packageStatus(pkg *model.Package) string {
	switch {
	case pkg.Upgradable:
		return "upgradable"
	case pkg.Installed:
		return "installed"
	default:
		return ""
	}
}

// printPackages renders a package table shared by the filter, search,
// section and category commands.
func printPackages(packages []*model.Package) {
	if len(packages) == 0 {
		fmt.Println("No packages found")
		return
	}

	fmt.Printf("%-*s %-*s %-12s %s\n",
		NameColumnWidth, "PACKAGE NAME",
		VersionColumnWidth, "VERSION",
		"STATUS", "SUMMARY")
	fmt.Println(strings.Repeat("-", SeparatorWidth))

	for _, pkg := range packages {
		fmt.Printf("%-*s %-*s %-12s %s\n",
			NameColumnWidth, pkg.Name,
			VersionColumnWidth, pkg.Version,
			packageStatus(pkg),
			truncate(pkg.Summary, MaxSummaryLength))
	}
}
