package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/hatlabs/pkgstore/pkg/model"
)

// Relevance bands for search results.
const (
	bandName    = 0 // query found in the package name
	bandSummary = 1 // query found only in the summary
)

type searchMatch struct {
	pkg      *model.Package
	band     int
	distance int
}

// rankMatches collects the packages matching the query and orders them by
// relevance: name matches before summary-only matches, then by edit
// distance of the name to the query, then by name for a stable tie-break.
func rankMatches(packages []*model.Package, query string, limit int) []*model.Package {
	lower := strings.ToLower(query)

	matches := make([]searchMatch, 0)
	for _, pkg := range packages {
		name := strings.ToLower(pkg.Name)
		inName := strings.Contains(name, lower)
		inSummary := strings.Contains(strings.ToLower(pkg.Summary), lower)
		if !inName && !inSummary {
			continue
		}

		band := bandSummary
		if inName {
			band = bandName
		}
		matches = append(matches, searchMatch{
			pkg:      pkg,
			band:     band,
			distance: levenshtein.ComputeDistance(name, lower),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].band != matches[j].band {
			return matches[i].band < matches[j].band
		}
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].pkg.Name < matches[j].pkg.Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]*model.Package, len(matches))
	for i, m := range matches {
		result[i] = m.pkg
	}
	return result
}
