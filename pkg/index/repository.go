// Package index derives catalog-level views from package metadata: the
// deduplicated repository catalog, section counts, and the category
// taxonomy. All functions are pure over their inputs; callers are expected
// to cache the source catalog, not these derived views.
package index

import (
	"sort"
	"strings"

	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// Repositories groups packages by (origin, suite) and returns the derived
// repository catalog. Packages without an origin are grouped under the
// "unknown" sentinel origin rather than dropped.
//
// When scope is non-nil, only packages matching the store's filter
// contribute to repository presence and package counts; repositories with
// zero matching packages are excluded from the result entirely. The output
// is sorted by display name (case-insensitive, ties broken by id) for
// stable presentation.
func Repositories(packages []*model.Package, scope *store.Config) []*model.Repository {
	byID := make(map[string]*model.Repository)

	for _, pkg := range packages {
		if scope != nil && !filter.Matches(pkg, scope) {
			continue
		}

		id := pkg.RepositoryID()
		repo, ok := byID[id]
		if !ok {
			origin := pkg.Origin
			if origin == "" {
				origin = model.UnknownOrigin
			}
			repo = &model.Repository{
				ID:     id,
				Name:   repositoryName(pkg.Label, pkg.Origin),
				Origin: origin,
				Label:  pkg.Label,
				Suite:  pkg.Suite,
			}
			byID[id] = repo
		}
		repo.PackageCount++
	}

	repos := make([]*model.Repository, 0, len(byID))
	for _, repo := range byID {
		repos = append(repos, repo)
	}
	sort.Slice(repos, func(i, j int) bool {
		ni, nj := strings.ToLower(repos[i].Name), strings.ToLower(repos[j].Name)
		if ni != nj {
			return ni < nj
		}
		return repos[i].ID < repos[j].ID
	})
	return repos
}

// repositoryName resolves the display name: label if present, else origin,
// else the "unknown" sentinel.
func repositoryName(label, origin string) string {
	if label != "" {
		return label
	}
	if origin != "" {
		return origin
	}
	return model.UnknownOrigin
}
