package model

// Repository represents a package repository derived from catalog origin
// metadata. Repositories are never configured directly; they are recomputed
// from the catalog on every listing.
type Repository struct {
	// ID is the stable composite key "origin:suite".
	ID     string `json:"id"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
	Label  string `json:"label"`
	Suite  string `json:"suite"`
	// PackageCount is contextual: computed against the full catalog, or
	// against a store-filtered subset when a store scope was applied.
	PackageCount int `json:"package_count"`
}

// Section is one package section together with the number of packages in it.
type Section struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Category is one "category::" tag value aggregated over the catalog, with
// display metadata resolved from the store configuration when available.
type Category struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Count       int    `json:"count"`
}
