package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Store definition files are YAML documents in a flat configuration
// directory; subdirectories are not scanned.
var configExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// LoadWarning records one store definition that could not be loaded, or a
// duplicate id collision. Warnings never abort a load.
type LoadWarning struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// loadResult is the immutable outcome of one directory scan. The cache
// replaces it wholesale, never mutates it, so concurrent readers always see
// either the old complete set or the new complete set.
type loadResult struct {
	fingerprint string
	stores      []*Config
	warnings    []LoadWarning
}

// Loader reads store definitions from a configuration directory and caches
// the result keyed by a fingerprint of the directory path and mtime. Safe
// for concurrent use.
type Loader struct {
	cached atomic.Pointer[loadResult]
}

// NewLoader creates a Loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the store definitions found in configDir together with any
// per-file warnings. A missing or unreadable directory yields an empty set.
// The result is cached until the directory mtime changes; use Reload to
// force a fresh scan.
func (l *Loader) Load(configDir string) ([]*Config, []LoadWarning) {
	fp := fingerprint(configDir)
	if cached := l.cached.Load(); cached != nil && cached.fingerprint == fp && fp != "" {
		return cached.stores, cached.warnings
	}

	stores, warnings := scanDir(configDir)
	l.cached.Store(&loadResult{fingerprint: fp, stores: stores, warnings: warnings})
	return stores, warnings
}

// Reload discards the cached set and rescans configDir.
func (l *Loader) Reload(configDir string) ([]*Config, []LoadWarning) {
	l.Invalidate()
	return l.Load(configDir)
}

// Invalidate drops the cached set. The next Load rescans the directory.
func (l *Loader) Invalidate() {
	l.cached.Store(nil)
}

// fingerprint identifies one state of the configuration directory. An empty
// fingerprint means the directory could not be statted and disables caching.
func fingerprint(configDir string) string {
	abs, err := filepath.Abs(configDir)
	if err != nil {
		return ""
	}
	stat, err := os.Stat(abs)
	if err != nil || !stat.IsDir() {
		return ""
	}
	return fmt.Sprintf("%s|%d", abs, stat.ModTime().UnixNano())
}

func scanDir(configDir string) ([]*Config, []LoadWarning) {
	stores := make([]*Config, 0, 4)
	warnings := make([]LoadWarning, 0)

	entries, err := os.ReadDir(configDir)
	if err != nil {
		// Missing directory means no stores are configured (vanilla mode).
		return stores, warnings
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !configExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	// Lexicographic scan order makes the duplicate-id tie-break
	// deterministic: the later file wins.
	sort.Strings(names)

	byID := make(map[string]int, len(names))
	for _, name := range names {
		path := filepath.Join(configDir, name)
		cfg, err := parseFile(path)
		if err != nil {
			warnings = append(warnings, LoadWarning{File: path, Reason: err.Error()})
			continue
		}

		if prev, ok := byID[cfg.ID]; ok {
			warnings = append(warnings, LoadWarning{
				File:   path,
				Reason: fmt.Sprintf("duplicate store id %q, overriding earlier definition", cfg.ID),
			})
			stores[prev] = cfg
			continue
		}
		byID[cfg.ID] = len(stores)
		stores = append(stores, cfg)
	}

	return stores, warnings
}

func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
