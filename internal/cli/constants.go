package cli

// Formatting constants for tabular output.
const (
	// NameColumnWidth is the width of the package/store name column.
	NameColumnWidth = 30
	// VersionColumnWidth is the width of the version column.
	VersionColumnWidth = 15
	// MaxSummaryLength is the maximum length of a package summary to display.
	MaxSummaryLength = 50
	// SeparatorWidth is the width of table separator lines.
	SeparatorWidth = 80
)
