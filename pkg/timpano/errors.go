package timpano

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized indicates Init was not called before running a stage.
	ErrNotInitialized = errors.New("timpano not initialized; call Init first")
)

// InfrastructureError represents a framework-level error indicating
// something is wrong with timpano itself or its host environment
// (options file unreadable, SDL resource failure, etc.), as opposed to
// the structural no-op results the Navigator reports through booleans.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_options")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timpano: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("timpano: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
