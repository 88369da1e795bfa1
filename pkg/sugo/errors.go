package sugo

import (
	"errors"
	"fmt"
)

// ThemeError represents a configuration-level failure: a token set that
// fails the resolver's invariant checks or an override file that cannot be
// applied. These are always surfaced before the first frame; a bad theme
// is rejected, never silently degraded.
type ThemeError struct {
	Op  string // Operation that failed (e.g., "resolve", "load_overrides")
	Err error  // Underlying error
}

func (e *ThemeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sugo: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sugo: %s", e.Op)
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

// NewThemeError creates a new theme configuration error.
func NewThemeError(op string, err error) *ThemeError {
	return &ThemeError{Op: op, Err: err}
}

// IsThemeError checks if an error is a theme configuration error.
func IsThemeError(err error) bool {
	var themeErr *ThemeError
	return errors.As(err, &themeErr)
}
