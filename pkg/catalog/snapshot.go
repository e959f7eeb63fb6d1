package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	version "github.com/hashicorp/go-version"

	"github.com/hatlabs/pkgstore/pkg/debtag"
	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/model"
)

// Snapshot is one exported catalog state: a format version plus the raw
// package records.
type Snapshot struct {
	FormatVersion string    `json:"format_version"`
	Packages      []*Record `json:"packages"`
}

// Record is one package entry as it appears in a snapshot file. The tag
// field is the raw comma-separated string from the packaging system; it is
// parsed into individual tags when the record is converted to a model
// package.
type Record struct {
	Name             string `json:"name"`
	Version          string `json:"version"`
	Summary          string `json:"summary,omitempty"`
	Section          string `json:"section,omitempty"`
	Origin           string `json:"origin,omitempty"`
	Label            string `json:"label,omitempty"`
	Suite            string `json:"suite,omitempty"`
	Tag              string `json:"tag,omitempty"`
	Installed        bool   `json:"installed,omitempty"`
	InstalledVersion string `json:"installed_version,omitempty"`
	Upgradable       *bool  `json:"upgradable,omitempty"`
}

// ParseSnapshot parses a snapshot from JSON data.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog snapshot")
	}
	if snapshot.FormatVersion == "" {
		return nil, fmt.Errorf("missing format version in catalog snapshot")
	}
	return &snapshot, nil
}

// ParseSnapshotFromReader parses a snapshot from an io.Reader.
func ParseSnapshotFromReader(reader io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog data")
	}
	return ParseSnapshot(data)
}

// ToPackages converts the snapshot's records into model packages, parsing
// tags and deriving the upgradable flag where the record does not carry one.
func (s *Snapshot) ToPackages() []*model.Package {
	packages := make([]*model.Package, 0, len(s.Packages))
	for _, rec := range s.Packages {
		packages = append(packages, rec.ToPackage())
	}
	return packages
}

// ToPackage converts one record into a model package.
func (r *Record) ToPackage() *model.Package {
	return &model.Package{
		Name:       r.Name,
		Version:    r.Version,
		Summary:    r.Summary,
		Section:    r.Section,
		Origin:     r.Origin,
		Label:      r.Label,
		Suite:      r.Suite,
		Tags:       debtag.ParseTags(r.Tag),
		Installed:  r.Installed,
		Upgradable: r.upgradable(),
	}
}

// upgradable prefers the record's explicit flag; absent that, a package is
// upgradable when it is installed and the candidate version is newer than
// the installed version. Unparseable versions never count as upgradable.
func (r *Record) upgradable() bool {
	if r.Upgradable != nil {
		return *r.Upgradable
	}
	if !r.Installed || r.InstalledVersion == "" || r.Version == "" {
		return false
	}
	installed, err := version.NewVersion(r.InstalledVersion)
	if err != nil {
		return false
	}
	candidate, err := version.NewVersion(r.Version)
	if err != nil {
		return false
	}
	return candidate.GreaterThan(installed)
}
