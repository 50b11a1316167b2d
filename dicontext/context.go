package dicontext

import (
	"context"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/internal/errors"
)

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided [di.Scope].
func WithScope(ctx context.Context, s di.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// Scope returns the [di.Scope] stored on the [context.Context], if present.
func Scope(ctx context.Context) di.Scope {
	if s, ok := ctx.Value(scopeContextKey{}).(di.Scope); ok {
		return s
	}
	return nil
}

// Resolve the instance registered with name from the [di.Scope] stored on the
// [context.Context].
func Resolve[T any](ctx context.Context, name string) (T, error) {
	var val T

	s := Scope(ctx)
	if s == nil {
		return val, errors.Errorf("resolve %q from context: scope not found on context", name)
	}

	val, err := di.Resolve[T](ctx, s, name)
	return val, errors.Wrap(err, "resolve from context")
}

// MustResolve resolves the instance registered with name from the [di.Scope] stored on the
// [context.Context].
//
// If the instance cannot be resolved, this function will panic.
func MustResolve[T any](ctx context.Context, name string) T {
	val, err := Resolve[T](ctx, name)
	if err != nil {
		panic(err)
	}
	return val
}
