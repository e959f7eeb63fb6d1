// Package store loads and validates store definitions: named, filterable
// views over the package catalog selected by declarative YAML configuration.
package store

import (
	"regexp"

	"github.com/hatlabs/pkgstore/pkg/errors"
)

// idPattern is the accepted store identifier syntax.
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Filter holds the four optional include sets of a store. Membership tests
// are case-sensitive exact matches; tags match on the full "facet::value"
// string. A filter with all four sets empty matches no package (fail-closed).
type Filter struct {
	IncludeOrigins  []string `yaml:"include_origins" json:"include_origins"`
	IncludeSections []string `yaml:"include_sections" json:"include_sections"`
	IncludeTags     []string `yaml:"include_tags" json:"include_tags"`
	IncludePackages []string `yaml:"include_packages" json:"include_packages"`
}

// Empty reports whether all four include sets are empty.
func (f *Filter) Empty() bool {
	return len(f.IncludeOrigins) == 0 &&
		len(f.IncludeSections) == 0 &&
		len(f.IncludeTags) == 0 &&
		len(f.IncludePackages) == 0
}

// CustomSection overrides or adds a section label within a store.
type CustomSection struct {
	Section     string `yaml:"section" json:"section"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// CategoryMetadata supplies display metadata for one "category::" tag value,
// forming an alternate grouping taxonomy next to section browsing.
type CategoryMetadata struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Config is one store definition. Configs are immutable after construction
// and rebuilt wholesale on the next load cycle.
type Config struct {
	ID               string             `yaml:"id" json:"id"`
	Name             string             `yaml:"name" json:"name"`
	Description      string             `yaml:"description,omitempty" json:"description,omitempty"`
	Icon             string             `yaml:"icon,omitempty" json:"icon,omitempty"`
	Banner           string             `yaml:"banner,omitempty" json:"banner,omitempty"`
	Filters          Filter             `yaml:"filters" json:"filters"`
	CustomSections   []CustomSection    `yaml:"custom_sections,omitempty" json:"custom_sections,omitempty"`
	CategoryMetadata []CategoryMetadata `yaml:"category_metadata,omitempty" json:"category_metadata,omitempty"`
}

// Validate checks the invariants a store definition must satisfy before it
// enters the loaded set. A config whose filter would never match anything
// is rejected here so a misconfigured store is skipped with a warning
// instead of silently contributing nothing.
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.Wrap(errors.ErrConfigValidation, "missing required field: id")
	}
	if !idPattern.MatchString(c.ID) {
		return errors.Wrapf(errors.ErrConfigValidation, "invalid store id: %q", c.ID)
	}
	if c.Name == "" {
		return errors.Wrap(errors.ErrConfigValidation, "missing required field: name")
	}
	if c.Filters.Empty() {
		return errors.Wrap(errors.ErrConfigValidation, "at least one filter type must be specified")
	}
	return nil
}

// Find returns the store with the given id, or nil if no such store exists.
func Find(stores []*Config, id string) *Config {
	for _, s := range stores {
		if s.ID == id {
			return s
		}
	}
	return nil
}
