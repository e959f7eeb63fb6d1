package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

func testCatalog() []*model.Package {
	return []*model.Package{
		{Name: "signalk-server", Summary: "Marine data server", Origin: "Hat Labs", Label: "hatlabs", Suite: "stable", Section: "net", Tags: []string{"field::marine"}, Installed: true, Upgradable: true},
		{Name: "opencpn", Summary: "Chart plotter", Origin: "Hat Labs", Label: "hatlabs", Suite: "stable", Section: "graphics", Tags: []string{"field::marine"}, Installed: true},
		{Name: "nginx", Summary: "HTTP server", Origin: "Debian", Label: "Debian", Suite: "bookworm", Section: "web"},
		{Name: "curl", Summary: "Command line tool for transferring data", Origin: "Debian", Label: "Debian", Suite: "bookworm", Section: "net", Installed: true, Upgradable: true},
		{Name: "htop", Summary: "Interactive process viewer", Origin: "Debian", Label: "Debian", Suite: "bookworm", Section: "admin", Installed: true},
	}
}

func marineStores() []*store.Config {
	return []*store.Config{
		{
			ID:   "marine",
			Name: "Marine",
			Filters: store.Filter{
				IncludeTags: []string{"field::marine"},
			},
		},
	}
}

func names(packages []*model.Package) []string {
	out := make([]string, len(packages))
	for i, p := range packages {
		out[i] = p.Name
	}
	return out
}

func TestFilterNoCriteria(t *testing.T) {
	result := NewEngine().Filter(testCatalog(), model.FilterState{}, nil)

	assert.Equal(t, 5, result.TotalCount)
	assert.False(t, result.Limited)
	assert.Empty(t, result.AppliedFilters)
	assert.Empty(t, result.Diagnostics)
	// Input order is preserved.
	assert.Equal(t, []string{"signalk-server", "opencpn", "nginx", "curl", "htop"}, names(result.Packages))
}

func TestFilterStoreStage(t *testing.T) {
	state := model.FilterState{StoreID: "marine"}
	result := NewEngine().Filter(testCatalog(), state, marineStores())

	assert.Equal(t, []string{"signalk-server", "opencpn"}, names(result.Packages))
	assert.Equal(t, []string{"store=marine"}, result.AppliedFilters)
}

func TestFilterUnknownStoreFailsClosed(t *testing.T) {
	state := model.FilterState{StoreID: "missing"}
	result := NewEngine().Filter(testCatalog(), state, marineStores())

	assert.Empty(t, result.Packages)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.Limited)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0], "store not found: missing")
}

func TestFilterRepositoryStage(t *testing.T) {
	state := model.FilterState{RepositoryID: "Debian:bookworm"}
	result := NewEngine().Filter(testCatalog(), state, nil)

	assert.Equal(t, []string{"nginx", "curl", "htop"}, names(result.Packages))
}

func TestFilterUnknownRepositoryNarrowsToEmpty(t *testing.T) {
	state := model.FilterState{RepositoryID: "Nowhere:void"}
	result := NewEngine().Filter(testCatalog(), state, nil)

	assert.Empty(t, result.Packages)
	assert.Equal(t, 0, result.TotalCount)
}

func TestFilterTabStage(t *testing.T) {
	t.Run("installed", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Tab: model.TabInstalled}, nil)
		assert.Equal(t, []string{"signalk-server", "opencpn", "curl", "htop"}, names(result.Packages))
	})

	t.Run("upgradable", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Tab: model.TabUpgradable}, nil)
		assert.Equal(t, []string{"signalk-server", "curl"}, names(result.Packages))
	})

	t.Run("browse passes through", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Tab: model.TabBrowse}, nil)
		assert.Len(t, result.Packages, 5)
	})

	t.Run("search tab passes through structurally", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Tab: model.TabSearch}, nil)
		assert.Len(t, result.Packages, 5)
	})
}

func TestFilterSearchStage(t *testing.T) {
	t.Run("matches name case-insensitively", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{SearchQuery: "NGINX"}, nil)
		assert.Equal(t, []string{"nginx"}, names(result.Packages))
	})

	t.Run("matches summary", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{SearchQuery: "server"}, nil)
		assert.Equal(t, []string{"signalk-server", "nginx"}, names(result.Packages))
	})

	t.Run("short query is pass-through", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{SearchQuery: "n"}, nil)
		assert.Len(t, result.Packages, 5)
		assert.Empty(t, result.AppliedFilters)
	})

	t.Run("no matches", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{SearchQuery: "nonexistent"}, nil)
		assert.Empty(t, result.Packages)
		assert.Equal(t, 0, result.TotalCount)
	})
}

func TestFilterLimiting(t *testing.T) {
	t.Run("truncates and reports pre-truncation count", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Limit: 1, Tab: model.TabInstalled}, nil)
		assert.Len(t, result.Packages, 1)
		assert.Equal(t, 4, result.TotalCount)
		assert.True(t, result.Limited)
		assert.Equal(t, 1, result.Limit)
	})

	t.Run("default limit applies when unset", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{}, nil)
		assert.Equal(t, DefaultLimit, result.Limit)
		assert.False(t, result.Limited)
	})

	t.Run("exact fit is not limited", func(t *testing.T) {
		result := NewEngine().Filter(testCatalog(), model.FilterState{Limit: 5}, nil)
		assert.Len(t, result.Packages, 5)
		assert.False(t, result.Limited)
	})
}

func TestFilterCascadeComposition(t *testing.T) {
	// Applying all stages at once must yield the same survivor set as the
	// intersection of the individual stage predicates.
	state := model.FilterState{
		StoreID:      "marine",
		RepositoryID: "Hat Labs:stable",
		Tab:          model.TabUpgradable,
		SearchQuery:  "marine",
	}
	result := NewEngine().Filter(testCatalog(), state, marineStores())

	assert.Equal(t, []string{"signalk-server"}, names(result.Packages))
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t,
		[]string{"store=marine", "repository=Hat Labs:stable", "tab=upgradable", "search=marine"},
		result.AppliedFilters)
}

func TestFilterEmptyCatalog(t *testing.T) {
	result := NewEngine().Filter(nil, model.FilterState{StoreID: "marine"}, marineStores())

	assert.Empty(t, result.Packages)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.Limited)
}
