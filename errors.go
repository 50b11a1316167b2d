package di

import (
	"strings"

	"github.com/sectrean/di-cradle/internal/errors"
)

var (
	// ErrNotRegistered is reported by a [ResolutionError] when a name has no registration
	// in the Container or any of its parents.
	ErrNotRegistered = errors.New("service not registered")

	// ErrDependencyCycle is reported by a [ResolutionError] when resolving a name would
	// resolve a name that is already being resolved.
	ErrDependencyCycle = errors.New("dependency cycle detected")

	// ErrContainerClosed is returned when using a Container after it has been closed.
	ErrContainerClosed = errors.New("container closed")
)

// ResolutionError is returned when the dependency graph cannot be resolved:
// a name is not registered, or there is a dependency cycle.
//
// Errors returned by factory functions and initializers are never wrapped in a
// ResolutionError.
//
// Use [errors.Is] with [ErrNotRegistered] or [ErrDependencyCycle] to check the cause.
type ResolutionError struct {
	// Name is the name that could not be resolved.
	Name string
	// Chain is the resolution path, from the name originally requested to Name.
	// For a cycle, Name appears twice.
	Chain []string
	// Err is ErrNotRegistered or ErrDependencyCycle.
	Err error
}

func newResolutionError(chain []string, name string, err error) *ResolutionError {
	path := make([]string, len(chain), len(chain)+1)
	copy(path, chain)

	return &ResolutionError{
		Name:  name,
		Chain: append(path, name),
		Err:   err,
	}
}

func (e *ResolutionError) Error() string {
	return strings.Join(e.Chain, " -> ") + ": " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
