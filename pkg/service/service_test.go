package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/model"
	svcmocks "github.com/hatlabs/pkgstore/pkg/service/mocks"
	"github.com/hatlabs/pkgstore/pkg/store"
)

func serviceCatalog() []*model.Package {
	return []*model.Package{
		{Name: "signalk-server", Summary: "Marine data server", Origin: "Hat Labs", Label: "hatlabs", Suite: "stable", Section: "net", Tags: []string{"field::marine", "category::monitoring"}, Installed: true, Upgradable: true},
		{Name: "opencpn", Summary: "Chart plotter", Origin: "Hat Labs", Label: "hatlabs", Suite: "stable", Section: "graphics", Tags: []string{"field::marine", "category::navigation"}},
		{Name: "nginx", Summary: "HTTP and reverse proxy server", Origin: "Debian", Label: "Debian", Suite: "bookworm", Section: "web"},
		{Name: "nginx-light", Summary: "Smaller nginx web server build", Origin: "Debian", Label: "Debian", Suite: "bookworm", Section: "web"},
	}
}

func marineStore() *store.Config {
	return &store.Config{
		ID:      "marine",
		Name:    "Marine",
		Filters: store.Filter{IncludeTags: []string{"field::marine"}},
	}
}

func newTestService(t *testing.T, packages []*model.Package, stores []*store.Config) *Service {
	t.Helper()
	ctrl := gomock.NewController(t)

	cat := svcmocks.NewMockSource(ctrl)
	cat.EXPECT().Packages(gomock.Any()).Return(packages, nil).AnyTimes()

	loader := svcmocks.NewMockStoreLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(stores, nil).AnyTimes()

	return New(cat, loader, "/etc/pkgstore/stores")
}

func TestListStores(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	stores, warnings := svc.ListStores(context.Background())
	require.Len(t, stores, 1)
	assert.Equal(t, "marine", stores[0].ID)
	assert.Empty(t, warnings)
}

func TestListRepositories(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	repos, err := svc.ListRepositories(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "Debian:bookworm", repos[0].ID)
	assert.Equal(t, 2, repos[0].PackageCount)
	assert.Equal(t, "Hat Labs:stable", repos[1].ID)
	assert.Equal(t, 2, repos[1].PackageCount)
}

func TestListRepositoriesWithStoreScope(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	repos, err := svc.ListRepositories(context.Background(), "marine")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "Hat Labs:stable", repos[0].ID)
	assert.Equal(t, 2, repos[0].PackageCount)
}

func TestListRepositoriesUnknownStore(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	_, err := svc.ListRepositories(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.ErrStoreNotFound)
}

func TestFilterPackages(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	result, err := svc.FilterPackages(context.Background(), model.FilterState{StoreID: "marine"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	assert.False(t, result.Limited)
}

func TestFilterPackagesLimit(t *testing.T) {
	catalog := make([]*model.Package, 0, 5)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		catalog = append(catalog, &model.Package{Name: name, Section: "net"})
	}
	svc := newTestService(t, catalog, nil)

	result, err := svc.FilterPackages(context.Background(), model.FilterState{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, result.Packages, 1)
	assert.Equal(t, 5, result.TotalCount)
	assert.True(t, result.Limited)
}

func TestFilterPackagesCatalogUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	cat := svcmocks.NewMockSource(ctrl)
	cat.EXPECT().Packages(gomock.Any()).Return(nil, errors.ErrCatalogUnavailable)
	loader := svcmocks.NewMockStoreLoader(ctrl)

	svc := New(cat, loader, "/etc/pkgstore/stores")

	_, err := svc.FilterPackages(context.Background(), model.FilterState{})
	assert.ErrorIs(t, err, errors.ErrCatalogUnavailable)
}

func TestRefreshMatchesStoreOnce(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	view, err := svc.Refresh(context.Background(), model.FilterState{StoreID: "marine", Tab: model.TabInstalled})
	require.NoError(t, err)

	// Repositories reflect the store scope.
	require.Len(t, view.Repositories, 1)
	assert.Equal(t, "Hat Labs:stable", view.Repositories[0].ID)
	assert.Equal(t, 2, view.Repositories[0].PackageCount)

	// The result is additionally narrowed by the tab stage.
	require.Len(t, view.Result.Packages, 1)
	assert.Equal(t, "signalk-server", view.Result.Packages[0].Name)
	assert.Equal(t, []string{"store=marine", "tab=installed"}, view.Result.AppliedFilters)
}

func TestRefreshUnknownStoreFailsClosed(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	view, err := svc.Refresh(context.Background(), model.FilterState{StoreID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, view.Repositories)
	assert.Empty(t, view.Result.Packages)
	require.Len(t, view.Result.Diagnostics, 1)
	assert.Contains(t, view.Result.Diagnostics[0], "store not found: missing")
}

func TestSearchRanking(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), nil)

	results, err := svc.Search(context.Background(), "server")
	require.NoError(t, err)
	require.Len(t, results, 3)
	// The name match ranks first; the two summary-only matches follow,
	// ordered by edit distance of their names to the query.
	assert.Equal(t, "signalk-server", results[0].Name)
	assert.Equal(t, "nginx", results[1].Name)
	assert.Equal(t, "nginx-light", results[2].Name)
}

func TestSearchMatchesSummaries(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), nil)

	results, err := svc.Search(context.Background(), "chart")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "opencpn", results[0].Name)
}

func TestSearchQueryTooShort(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), nil)

	_, err := svc.Search(context.Background(), "n")
	assert.ErrorIs(t, err, errors.ErrQueryTooShort)
}

func TestSearchResultCap(t *testing.T) {
	catalog := make([]*model.Package, 0, 10)
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		catalog = append(catalog, &model.Package{Name: "tool-" + suffix})
	}
	svc := newTestService(t, catalog, nil)
	svc.MaxSearchResults = 3

	results, err := svc.Search(context.Background(), "tool")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSections(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	sections, err := svc.Sections(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, &model.Section{Name: "graphics", Count: 1}, sections[0])
	assert.Equal(t, &model.Section{Name: "net", Count: 1}, sections[1])
	assert.Equal(t, &model.Section{Name: "web", Count: 2}, sections[2])
}

func TestSectionsUnknownStore(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), nil)

	_, err := svc.Sections(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.ErrStoreNotFound)
}

func TestCategories(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	categories, err := svc.Categories(context.Background(), "marine")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "monitoring", categories[0].ID)
	assert.Equal(t, "navigation", categories[1].ID)
}

func TestCategoryPackages(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), []*store.Config{marineStore()})

	packages, err := svc.CategoryPackages(context.Background(), "marine", "navigation", 0)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "opencpn", packages[0].Name)
}

func TestSectionPackages(t *testing.T) {
	svc := newTestService(t, serviceCatalog(), nil)

	packages, err := svc.SectionPackages(context.Background(), "", "web")
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "nginx", packages[0].Name)
	assert.Equal(t, "nginx-light", packages[1].Name)
}
