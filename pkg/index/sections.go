package index

import (
	"sort"

	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// unknownSection is the bucket for packages whose record has no section.
const unknownSection = "unknown"

// Sections counts packages per section, sorted by section name. Packages
// with an empty section are counted under "unknown". When scope is non-nil,
// only packages matching the store's filter contribute; a store's custom
// section metadata does not affect counting, only presentation.
func Sections(packages []*model.Package, scope *store.Config) []*model.Section {
	counts := make(map[string]int)
	for _, pkg := range packages {
		if scope != nil && !filter.Matches(pkg, scope) {
			continue
		}
		section := pkg.Section
		if section == "" {
			section = unknownSection
		}
		counts[section]++
	}

	sections := make([]*model.Section, 0, len(counts))
	for name, count := range counts {
		sections = append(sections, &model.Section{Name: name, Count: count})
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Name < sections[j].Name
	})
	return sections
}

// SectionPackages returns the packages belonging to one section, preserving
// catalog order. The empty section is addressed by its "unknown" alias.
func SectionPackages(packages []*model.Package, scope *store.Config, section string) []*model.Package {
	matched := make([]*model.Package, 0)
	for _, pkg := range packages {
		if scope != nil && !filter.Matches(pkg, scope) {
			continue
		}
		name := pkg.Section
		if name == "" {
			name = unknownSection
		}
		if name == section {
			matched = append(matched, pkg)
		}
	}
	return matched
}
