package filter

import (
	"fmt"
	"strings"

	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// Default engine parameters.
const (
	// DefaultLimit bounds the result set when the caller does not supply a
	// limit of its own.
	DefaultLimit = 1000
	// DefaultMinQueryLength is the shortest search query the cascade will
	// act on; shorter queries pass through as "no search filter".
	DefaultMinQueryLength = 2
)

// Engine applies the ordered filter cascade: store, repository, tab,
// search, then result limiting. Each stage operates only on the survivors
// of the prior stage and no stage re-sorts, so result ordering matches the
// catalog's input order.
type Engine struct {
	limit          int
	minQueryLength int
}

// NewEngine creates an Engine with the default limit and minimum query
// length.
func NewEngine() *Engine {
	return &Engine{limit: DefaultLimit, minQueryLength: DefaultMinQueryLength}
}

// NewEngineWithOptions creates an Engine with explicit parameters.
// Non-positive values fall back to the defaults.
func NewEngineWithOptions(limit, minQueryLength int) *Engine {
	e := NewEngine()
	if limit > 0 {
		e.limit = limit
	}
	if minQueryLength > 0 {
		e.minQueryLength = minQueryLength
	}
	return e
}

// Filter evaluates the cascade over the catalog. It is a total function:
// unresolvable criteria narrow the result to empty and are reported through
// the advisory Diagnostics field, never as an error.
func (e *Engine) Filter(catalog []*model.Package, state model.FilterState, stores []*store.Config) model.FilterResult {
	survivors := catalog
	applied := make([]string, 0, 4)
	var diagnostics []string

	// Stage 1: store filter.
	if state.StoreID != "" {
		applied = append(applied, "store="+state.StoreID)
		if cfg := store.Find(stores, state.StoreID); cfg != nil {
			survivors = MatchAll(survivors, cfg)
		} else {
			survivors = nil
			diagnostics = append(diagnostics, fmt.Sprintf("store not found: %s", state.StoreID))
		}
	}

	// Stage 2: repository filter.
	if state.RepositoryID != "" {
		applied = append(applied, "repository="+state.RepositoryID)
		kept := make([]*model.Package, 0, len(survivors))
		for _, pkg := range survivors {
			if pkg.RepositoryID() == state.RepositoryID {
				kept = append(kept, pkg)
			}
		}
		survivors = kept
	}

	// Stage 3: tab filter. Browse and search pass through; the search tab
	// narrows in the next stage.
	switch state.Tab {
	case model.TabInstalled:
		applied = append(applied, "tab=installed")
		survivors = keepIf(survivors, func(p *model.Package) bool { return p.Installed })
	case model.TabUpgradable:
		applied = append(applied, "tab=upgradable")
		survivors = keepIf(survivors, func(p *model.Package) bool { return p.Upgradable })
	}

	// Stage 4: search filter. Sub-minimum queries are pass-through, not
	// match-everything and not match-nothing.
	if query := state.SearchQuery; len(query) >= e.minQueryLength {
		applied = append(applied, "search="+query)
		lower := strings.ToLower(query)
		survivors = keepIf(survivors, func(p *model.Package) bool {
			return strings.Contains(strings.ToLower(p.Name), lower) ||
				strings.Contains(strings.ToLower(p.Summary), lower)
		})
	}

	// Stage 5: result limiting, applied exactly once.
	limit := state.Limit
	if limit <= 0 {
		limit = e.limit
	}
	total := len(survivors)
	limited := total > limit
	if limited {
		survivors = survivors[:limit]
	}

	packages := make([]*model.Package, len(survivors))
	copy(packages, survivors)

	return model.FilterResult{
		Packages:       packages,
		TotalCount:     total,
		Limit:          limit,
		Limited:        limited,
		AppliedFilters: applied,
		Diagnostics:    diagnostics,
	}
}

func keepIf(packages []*model.Package, keep func(*model.Package) bool) []*model.Package {
	kept := make([]*model.Package, 0, len(packages))
	for _, pkg := range packages {
		if keep(pkg) {
			kept = append(kept, pkg)
		}
	}
	return kept
}
