// Package model provides data structures and types for representing catalog
// packages, derived repositories, and filter requests in the pkgstore
// filtering core.
package model

// UnknownOrigin is the sentinel origin used to group packages whose catalog
// record carries no origin information.
const UnknownOrigin = "unknown"

// Package is a read-only view of one catalog record. The filtering core
// never mutates packages; it only borrows them for the duration of one
// filter evaluation.
type Package struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Summary    string   `json:"summary"`
	Section    string   `json:"section"`
	Origin     string   `json:"origin,omitempty"`
	Label      string   `json:"label,omitempty"`
	Suite      string   `json:"suite,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Installed  bool     `json:"installed"`
	Upgradable bool     `json:"upgradable"`
}

// RepositoryID returns the stable composite key of the repository this
// package belongs to. Packages without an origin map to the "unknown"
// sentinel origin rather than being dropped.
func (p *Package) RepositoryID() string {
	origin := p.Origin
	if origin == "" {
		origin = UnknownOrigin
	}
	return origin + ":" + p.Suite
}

// HasTag reports whether the package carries the given full "facet::value"
// tag string.
func (p *Package) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
