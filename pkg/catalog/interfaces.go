//go:generate mockgen -destination=./mocks/catalog.go -package=mocks . Source
// Package catalog supplies package records to the filtering core. The core
// consumes any Source read-only; the file-backed implementation reads an
// exported catalog snapshot, optionally compressed.
package catalog

import (
	"context"

	"github.com/hatlabs/pkgstore/pkg/model"
)

// Source is the read-only package catalog collaborator. Implementations
// must return the complete catalog for one filtering session; total
// unavailability is the only hard failure the filtering core propagates.
type Source interface {
	// Packages returns all catalog records. The returned slice is borrowed:
	// callers must not mutate it or retain it across filter evaluations.
	Packages(ctx context.Context) ([]*model.Package, error)
}
