package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")

	// Catalog errors. ErrCatalogUnavailable is the only hard failure the
	// filtering core propagates; everything else degrades to empty results.
	ErrCatalogUnavailable = fmt.Errorf("package catalog unavailable")

	// Lookup errors.
	ErrStoreNotFound = fmt.Errorf("store not found")

	// Query errors.
	ErrQueryTooShort = fmt.Errorf("search query too short")
)

// StoreNotFound returns an ErrStoreNotFound annotated with the store id.
func StoreNotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrStoreNotFound, id)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
