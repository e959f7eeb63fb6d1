package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

func sectionCatalog() []*model.Package {
	return []*model.Package{
		{Name: "nginx", Section: "web"},
		{Name: "curl", Section: "net"},
		{Name: "wget", Section: "net"},
		{Name: "mystery"},
		{Name: "signalk-server", Section: "net", Tags: []string{"field::marine"}},
	}
}

func TestSections(t *testing.T) {
	sections := Sections(sectionCatalog(), nil)

	require.Len(t, sections, 3)
	// Sorted by name.
	assert.Equal(t, &model.Section{Name: "net", Count: 3}, sections[0])
	assert.Equal(t, &model.Section{Name: "unknown", Count: 1}, sections[1])
	assert.Equal(t, &model.Section{Name: "web", Count: 1}, sections[2])
}

func TestSectionsWithScope(t *testing.T) {
	scope := &store.Config{
		ID:      "marine",
		Name:    "Marine",
		Filters: store.Filter{IncludeTags: []string{"field::marine"}},
	}

	sections := Sections(sectionCatalog(), scope)

	require.Len(t, sections, 1)
	assert.Equal(t, &model.Section{Name: "net", Count: 1}, sections[0])
}

func TestSectionsEmptyCatalog(t *testing.T) {
	assert.Empty(t, Sections(nil, nil))
}

func TestSectionPackages(t *testing.T) {
	packages := SectionPackages(sectionCatalog(), nil, "net")

	require.Len(t, packages, 3)
	assert.Equal(t, "curl", packages[0].Name)
	assert.Equal(t, "wget", packages[1].Name)
	assert.Equal(t, "signalk-server", packages[2].Name)
}

func TestSectionPackagesUnknownAlias(t *testing.T) {
	packages := SectionPackages(sectionCatalog(), nil, "unknown")

	require.Len(t, packages, 1)
	assert.Equal(t, "mystery", packages[0].Name)
}

func TestSectionPackagesNoMatch(t *testing.T) {
	assert.Empty(t, SectionPackages(sectionCatalog(), nil, "games"))
}
