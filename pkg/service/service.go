package service

import (
	"context"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/index"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// ListStores returns all loaded store configurations together with any
// per-file load warnings. A store that failed to load contributes a warning
// and is absent from the list; it never fails the call.
func (s *Service) ListStores(_ context.Context) ([]*store.Config, []store.LoadWarning) {
	return s.Stores.Load(s.StoreDir)
}

// ReloadStores forces a rescan of the store configuration directory.
func (s *Service) ReloadStores(_ context.Context) ([]*store.Config, []store.LoadWarning) {
	return s.Stores.Reload(s.StoreDir)
}

// ListRepositories derives the repository catalog, optionally scoped to one
// store. With a scope, package counts cover only packages matching the
// store's filter and repositories without matches are omitted. An unknown
// store id is a hard error here, unlike inside the filter cascade, because
// the caller asked for store-shaped data.
func (s *Service) ListRepositories(ctx context.Context, storeID string) ([]*model.Repository, error) {
	scope, err := s.resolveStore(storeID)
	if err != nil {
		return nil, err
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return index.Repositories(packages, scope), nil
}

// FilterPackages runs the filter cascade over the catalog. Unresolvable
// criteria (unknown store or repository ids) narrow the result to empty
// rather than failing; only catalog unavailability is an error.
func (s *Service) FilterPackages(ctx context.Context, state model.FilterState) (model.FilterResult, error) {
	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return model.FilterResult{}, err
	}

	stores, _ := s.Stores.Load(s.StoreDir)
	return s.Engine.Filter(packages, state, stores), nil
}

// Refresh serves one logical UI refresh: stores, scoped repositories and
// filtered packages in a single call. The store filter runs once over the
// catalog; the repository listing and the cascade both reuse its survivors
// instead of re-matching.
func (s *Service) Refresh(ctx context.Context, state model.FilterState) (*RefreshView, error) {
	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	stores, warnings := s.Stores.Load(s.StoreDir)

	survivors := packages
	var diagnostics []string
	if state.StoreID != "" {
		if cfg := store.Find(stores, state.StoreID); cfg != nil {
			survivors = filter.MatchAll(packages, cfg)
		} else {
			survivors = nil
			diagnostics = append(diagnostics, "store not found: "+state.StoreID)
		}
	}

	// The store stage already ran; clear it so the engine does not match
	// twice.
	remainder := state
	remainder.StoreID = ""
	result := s.Engine.Filter(survivors, remainder, stores)
	if state.StoreID != "" {
		result.AppliedFilters = append([]string{"store=" + state.StoreID}, result.AppliedFilters...)
	}
	result.Diagnostics = append(diagnostics, result.Diagnostics...)

	return &RefreshView{
		Stores:       stores,
		Repositories: index.Repositories(survivors, nil),
		Result:       result,
		Warnings:     warnings,
	}, nil
}

// Search finds packages whose name or summary contains the query,
// case-insensitively. Name matches rank before summary-only matches; within
// each band results are ordered by edit distance of the package name to the
// query. The result is capped at MaxSearchResults.
func (s *Service) Search(ctx context.Context, query string) ([]*model.Package, error) {
	minLen := s.MinQueryLength
	if minLen <= 0 {
		minLen = DefaultMinQueryLength
	}
	if len(query) < minLen {
		return nil, errors.Wrapf(errors.ErrQueryTooShort, "need at least %d characters", minLen)
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return rankMatches(packages, query, s.maxSearchResults()), nil
}

// Sections counts packages per section, optionally scoped to one store.
func (s *Service) Sections(ctx context.Context, storeID string) ([]*model.Section, error) {
	scope, err := s.resolveStore(storeID)
	if err != nil {
		return nil, err
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return index.Sections(packages, scope), nil
}

// SectionPackages lists the packages of one section, optionally scoped to
// one store.
func (s *Service) SectionPackages(ctx context.Context, storeID, section string) ([]*model.Package, error) {
	scope, err := s.resolveStore(storeID)
	if err != nil {
		return nil, err
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return index.SectionPackages(packages, scope, section), nil
}

// Categories aggregates the category taxonomy, optionally scoped to one
// store whose metadata then supplies labels and icons.
func (s *Service) Categories(ctx context.Context, storeID string) ([]*model.Category, error) {
	scope, err := s.resolveStore(storeID)
	if err != nil {
		return nil, err
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}
	return index.Categories(packages, scope), nil
}

// CategoryPackages lists the packages in one category, optionally scoped to
// one store. A non-positive limit means no truncation.
func (s *Service) CategoryPackages(ctx context.Context, storeID, categoryID string, limit int) ([]*model.Package, error) {
	scope, err := s.resolveStore(storeID)
	if err != nil {
		return nil, err
	}

	packages, err := s.Catalog.Packages(ctx)
	if err != nil {
		return nil, err
	}

	matched := index.CategoryPackages(packages, scope, categoryID)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// resolveStore maps a store id to its configuration. The empty id means no
// scope; an unknown id is ErrStoreNotFound.
func (s *Service) resolveStore(storeID string) (*store.Config, error) {
	if storeID == "" {
		return nil, nil
	}
	stores, _ := s.Stores.Load(s.StoreDir)
	cfg := store.Find(stores, storeID)
	if cfg == nil {
		return nil, errors.StoreNotFound(storeID)
	}
	return cfg, nil
}

func (s *Service) maxSearchResults() int {
	if s.MaxSearchResults > 0 {
		return s.MaxSearchResults
	}
	return DefaultMaxSearchResults
}
