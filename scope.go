package di

import (
	"context"
)

// Scope allows you to resolve services by name.
//
// Scope is implemented by *Container.
type Scope interface {
	// Has returns true if the Scope, or one of its parents, has a registration for name.
	Has(name string) bool

	// Resolve returns the instance registered with name.
	Resolve(ctx context.Context, name string) (any, error)

	// Build creates an instance from a registration without registering it.
	// Dependencies are resolved from the Scope.
	Build(ctx context.Context, r Registration) (any, error)
}

// Resolve the instance registered with name from the [Scope] as type T.
func Resolve[T any](ctx context.Context, s Scope, name string) (T, error) {
	var val T

	anyVal, err := s.Resolve(ctx, name)
	if err != nil {
		return val, err
	}

	return convert[T](name, anyVal)
}

// MustResolve resolves the instance registered with name from the [Scope] as type T.
//
// If the instance cannot be resolved, this function will panic.
func MustResolve[T any](ctx context.Context, s Scope, name string) T {
	val, err := Resolve[T](ctx, s, name)
	if err != nil {
		panic(err)
	}
	return val
}
