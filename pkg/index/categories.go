package index

import (
	"sort"
	"strings"

	"github.com/hatlabs/pkgstore/pkg/debtag"
	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// CategoryFacet is the tag facet that carries the category taxonomy.
const CategoryFacet = "category"

// Categories aggregates "category::" tag values over the catalog with
// per-category package counts. Display metadata comes from the store's
// category metadata when present; otherwise the label is auto-derived from
// the category id. Output is sorted by label (case-insensitive, ties broken
// by id).
func Categories(packages []*model.Package, scope *store.Config) []*model.Category {
	var metadata map[string]store.CategoryMetadata
	if scope != nil {
		metadata = make(map[string]store.CategoryMetadata, len(scope.CategoryMetadata))
		for _, meta := range scope.CategoryMetadata {
			metadata[meta.ID] = meta
		}
	}

	counts := make(map[string]int)
	for _, pkg := range packages {
		if scope != nil && !filter.Matches(pkg, scope) {
			continue
		}
		for _, id := range debtag.TagsByFacet(pkg.Tags, CategoryFacet) {
			counts[id]++
		}
	}

	categories := make([]*model.Category, 0, len(counts))
	for id, count := range counts {
		category := &model.Category{ID: id, Count: count}
		if meta, ok := metadata[id]; ok {
			category.Label = meta.Label
			category.Description = meta.Description
			category.Icon = meta.Icon
		} else {
			category.Label = deriveCategoryLabel(id)
		}
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		li, lj := strings.ToLower(categories[i].Label), strings.ToLower(categories[j].Label)
		if li != lj {
			return li < lj
		}
		return categories[i].ID < categories[j].ID
	})
	return categories
}

// CategoryPackages returns the packages carrying the "category::<id>" tag,
// preserving catalog order.
func CategoryPackages(packages []*model.Package, scope *store.Config, categoryID string) []*model.Package {
	tag := CategoryFacet + debtag.FacetSeparator + categoryID
	matched := make([]*model.Package, 0)
	for _, pkg := range packages {
		if scope != nil && !filter.Matches(pkg, scope) {
			continue
		}
		if pkg.HasTag(tag) {
			matched = append(matched, pkg)
		}
	}
	return matched
}

// deriveCategoryLabel turns a category id like "ais-radar" into a display
// label ("Ais Radar") when the store supplies no metadata for it.
func deriveCategoryLabel(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
