package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction and snapshot handling.
var (
	// ErrNoRoutes is returned when a router is constructed without route
	// definitions.
	ErrNoRoutes = errors.New("router: no route definitions")

	// ErrNotFoundUnresolvable is returned when the configured not-found
	// path does not itself match any route definition.
	ErrNotFoundUnresolvable = errors.New("router: not-found path does not match any route definition")

	// ErrSnapshotVersion is returned when a serialized stack snapshot has
	// an unsupported format version.
	ErrSnapshotVersion = errors.New("router: unsupported snapshot version")
)

// ConfigError wraps a construction failure with the offending config field.
// It signals a programming mistake, not a runtime condition; the router is
// unusable until the configuration is fixed.
type ConfigError struct {
	Field string
	Err   error
}

// Error returns the error message with config context.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("router: config %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
