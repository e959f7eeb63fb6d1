package model

// Tab identifies which view tab a filter request originates from.
type Tab string

// View tabs understood by the filter cascade.
const (
	TabBrowse     Tab = "browse"
	TabInstalled  Tab = "installed"
	TabUpgradable Tab = "upgradable"
	TabSearch     Tab = "search"
)

// Valid reports whether t is one of the known tabs. The empty tab is
// accepted and treated as browse.
func (t Tab) Valid() bool {
	switch t {
	case "", TabBrowse, TabInstalled, TabUpgradable, TabSearch:
		return true
	}
	return false
}

// FilterState carries the criteria for one filter evaluation. It is
// transient: constructed per request and never retained by the core.
type FilterState struct {
	StoreID      string `json:"store_id,omitempty"`
	RepositoryID string `json:"repository_id,omitempty"`
	Tab          Tab    `json:"tab,omitempty"`
	SearchQuery  string `json:"search_query,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// FilterResult is the bounded outcome of one cascade evaluation.
type FilterResult struct {
	Packages []*Package `json:"packages"`
	// TotalCount is the number of packages that survived all filter stages
	// before result limiting, so callers can tell "no matches" apart from
	// "more matches than shown".
	TotalCount int  `json:"total_count"`
	Limit      int  `json:"limit"`
	Limited    bool `json:"limited"`
	// AppliedFilters describes the active criteria, for display purposes.
	AppliedFilters []string `json:"applied_filters"`
	// Diagnostics carries advisory notes about criteria that resolved to
	// nothing (for example an unknown store id). It is informational only;
	// an unresolvable criterion narrows the result to empty, it never fails.
	Diagnostics []string `json:"diagnostics,omitempty"`
}
