package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrTileNotFound  = errors.New("tile not found")
)

// ConfigError rejects board parameters before anything is built.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

// [*ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %d: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// TileNotFoundError reports a lookup outside the grid. Index is the linear
// index that was requested, or -1 when the lookup was by coordinate.
type TileNotFoundError struct {
	Coordinate Coordinate
	Index      int
}

// [*TileNotFoundError] implements [error]
func (e *TileNotFoundError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("failed to get tile at index %d", e.Index)
	}
	return fmt.Sprintf("failed to get tile at coordinate %s", e.Coordinate)
}

func (e *TileNotFoundError) Unwrap() error {
	return ErrTileNotFound
}

// AssertionError is panicked when the board's bookkeeping contradicts itself.
// It always points at a bug in this package, never at caller input.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(AssertionError{fmt.Sprintf(format, args...)})
	}
}
