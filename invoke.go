package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Invoke calls fn with dependencies resolved from the provided [Scope].
//
// fn follows the rules of [AsFunction] for the given options. It is resolved in [Proxy]
// mode unless [Classic] is passed:
//
//	err := di.Invoke(ctx, c, func(ctx context.Context, c di.Cradle) error {
//		return di.MustGet[*Server](c, "server").ListenAndServe()
//	})
//
//	err := di.Invoke(ctx, c, RunMigrations, di.Classic, di.WithInject("db"))
//
// fn may return nothing, an error, a value, or a value and an error. Returned values are
// ignored. A returned error is passed along unchanged.
func Invoke(ctx context.Context, s Scope, fn any, opts ...RegistrationOption) error {
	r := AsFunction(fn, Proxy).With(opts...)
	r.invoke = true

	_, err := s.Build(ctx, r)
	return err
}

// InvokeWith is the same as [Invoke] but the returned value is converted to T and returned.
//
// fn must return T or (T, error).
func InvokeWith[T any](ctx context.Context, s Scope, fn any, opts ...RegistrationOption) (T, error) {
	var val T

	anyVal, err := s.Build(ctx, AsFunction(fn, Proxy).With(opts...))
	if err != nil {
		return val, err
	}

	if anyVal == nil {
		return val, nil
	}

	val, ok := anyVal.(T)
	if !ok {
		return val, errors.Errorf("invoke: type %T is not assignable to %s", anyVal, reflect.TypeFor[T]())
	}

	return val, nil
}
