//go:generate mockgen -destination=./mocks/service.go -package=mocks . Source,StoreLoader

// Package service ties the store loader, catalog source, repository indexer
// and filter cascade together behind the call contract exposed to
// collaborators: list stores, list repositories, filter packages, plus the
// search, section and category listings. All calls are synchronous and
// side-effect free beyond the store configuration cache.
package service

import (
	"context"

	"github.com/hatlabs/pkgstore/pkg/filter"
	"github.com/hatlabs/pkgstore/pkg/model"
	"github.com/hatlabs/pkgstore/pkg/store"
)

// Source is the subset of the catalog collaborator used by the service.
type Source interface {
	Packages(ctx context.Context) ([]*model.Package, error)
}

// StoreLoader is the subset of the store configuration loader used by the
// service.
type StoreLoader interface {
	Load(configDir string) ([]*store.Config, []store.LoadWarning)
	Reload(configDir string) ([]*store.Config, []store.LoadWarning)
}

// Service implements the filtering core's call contract.
type Service struct {
	Catalog  Source
	Stores   StoreLoader
	StoreDir string
	Engine   *filter.Engine

	// MinQueryLength and MaxSearchResults govern the standalone search
	// operation; zero values fall back to the defaults.
	MinQueryLength   int
	MaxSearchResults int
}

// Default search parameters.
const (
	DefaultMinQueryLength   = 2
	DefaultMaxSearchResults = 100
)

// New creates a Service with default engine and search parameters.
func New(cat Source, loader StoreLoader, storeDir string) *Service {
	return &Service{
		Catalog:          cat,
		Stores:           loader,
		StoreDir:         storeDir,
		Engine:           filter.NewEngine(),
		MinQueryLength:   DefaultMinQueryLength,
		MaxSearchResults: DefaultMaxSearchResults,
	}
}

// RefreshView bundles everything one UI refresh needs: the loaded stores,
// the repository catalog under the active store scope, and the filtered
// package set. Store filter matching runs once for all three.
type RefreshView struct {
	Stores       []*store.Config     `json:"stores"`
	Repositories []*model.Repository `json:"repositories"`
	Result       model.FilterResult  `json:"result"`
	Warnings     []store.LoadWarning `json:"warnings,omitempty"`
}
