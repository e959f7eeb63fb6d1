// Package filter evaluates store filter predicates over catalog packages
// and runs the multi-stage filter cascade that narrows a catalog to a
// bounded result set.
package filter

import (
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// Matches reports whether pkg satisfies the store's filter predicate.
//
// Each non-empty filter category contributes one boolean: whether the
// package satisfies any element of that category (OR within a category).
// The result is the AND of the contributed booleans. Empty categories
// contribute nothing, and a filter with zero non-empty categories matches
// no package at all: an unconfigured store selects nothing rather than
// everything (fail-closed).
//
// Pure function, safe to call concurrently.
func Matches(pkg *model.Package, cfg *store.Config) bool {
	f := &cfg.Filters
	if f.Empty() {
		return false
	}

	if len(f.IncludeOrigins) > 0 && !containsString(f.IncludeOrigins, pkg.Origin) {
		return false
	}
	if len(f.IncludeSections) > 0 && !containsString(f.IncludeSections, pkg.Section) {
		return false
	}
	if len(f.IncludeTags) > 0 && !anyTag(pkg.Tags, f.IncludeTags) {
		return false
	}
	if len(f.IncludePackages) > 0 && !containsString(f.IncludePackages, pkg.Name) {
		return false
	}
	return true
}

// MatchAll returns the packages that satisfy the store's filter, preserving
// input order. A nil store config keeps every package.
func MatchAll(packages []*model.Package, cfg *store.Config) []*model.Package {
	if cfg == nil {
		return packages
	}
	matched := make([]*model.Package, 0, len(packages))
	for _, pkg := range packages {
		if Matches(pkg, cfg) {
			matched = append(matched, pkg)
		}
	}
	return matched
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func anyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}
