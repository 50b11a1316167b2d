package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Closer is used to close an instance when closing the Container.
//
// If an instance created by a function or class registration implements Closer, or one of
// the other compatible method signatures, it is closed when the Container that cached or
// created it is closed.
//
// Any of these Close method signatures are supported:
//
//	Close(context.Context) error
//	Close(context.Context)
//	Close() error
//	Close()
//
// See related options:
//   - [IgnoreCloser]
//   - [WithCloser]
//   - [WithCloseFunc]
type Closer interface {
	Close(ctx context.Context) error
}

// WithCloser closes the instance with the Container if it implements [Closer] or one of
// the other compatible Close method signatures.
//
// This is the default for function and class registrations. Values are not closed by
// default; use this option to close a value.
func WithCloser() RegistrationOption {
	return registrationOption(func(r *Registration) error {
		r.closer = getCloser
		r.closerSet = true
		return nil
	})
}

// IgnoreCloser is used when an instance should not be closed with the Container.
//
// This is useful when the lifecycle of the instance is managed elsewhere.
func IgnoreCloser() RegistrationOption {
	return registrationOption(func(r *Registration) error {
		r.closer = nil
		r.closerSet = true
		return nil
	})
}

type closerFactory func(val any) Closer

// WithCloseFunc sets a custom function to close the instance when the Container is closed.
//
// This is useful if an instance has a method called Shutdown or Stop instead of Close.
//
// Example:
//
//	di.AsFunction(NewServer, di.WithCloseFunc(func(ctx context.Context, s *http.Server) error {
//		return s.Shutdown(ctx)
//	}))
//
// This can also be used to close a value registration.
// Resolving an instance that is not assignable to T fails with an error.
func WithCloseFunc[T any](f func(context.Context, T) error) RegistrationOption {
	return registrationOption(func(r *Registration) error {
		if f == nil {
			return errors.New("with close func: f is nil")
		}

		closerType := reflect.TypeFor[T]()
		if r.kind == KindValue && r.val != nil && !reflect.TypeOf(r.val).AssignableTo(closerType) {
			return errors.Errorf("with close func: type %T is not assignable to %s", r.val, closerType)
		}

		r.closer = func(val any) Closer {
			t, ok := val.(T)
			if !ok {
				return closeFunc(func(context.Context) error {
					return errors.Errorf("close func: type %T is not assignable to %s", val, closerType)
				})
			}

			return closeFunc(func(ctx context.Context) error {
				return f(ctx, t)
			})
		}
		r.closerSet = true
		return nil
	})
}

// closerFor returns the Closer for an instance produced by the registration, if any.
func (r Registration) closerFor(val any) Closer {
	if isNil(val) {
		return nil
	}

	if r.closerSet {
		if r.closer == nil {
			return nil
		}
		return r.closer(val)
	}

	// Values are managed by the caller unless asked otherwise
	if r.kind == KindValue {
		return nil
	}

	return getCloser(val)
}

// getCloser returns the Closer interface if the given value implements it,
// or any of the compatible Close function signatures.
func getCloser(val any) Closer {
	switch c := val.(type) {
	case Closer:
		return c
	case closerWithContextNoError:
		return closerWithContextNoErrorWrapper{c}
	case closerNoContextWithError:
		return closerNoContextWithErrorWrapper{c}
	case closerNoContextNoError:
		return closerNoContextNoErrorWrapper{c}

	default:
		return nil
	}
}

type closerWithContextNoError interface {
	Close(ctx context.Context)
}

type closerNoContextWithError interface {
	Close() error
}

type closerNoContextNoError interface {
	Close()
}

type closerNoContextNoErrorWrapper struct {
	c closerNoContextNoError
}

func (w closerNoContextNoErrorWrapper) Close(context.Context) error {
	w.c.Close()
	return nil
}

type closerWithContextNoErrorWrapper struct {
	c closerWithContextNoError
}

func (w closerWithContextNoErrorWrapper) Close(ctx context.Context) error {
	w.c.Close(ctx)
	return nil
}

type closerNoContextWithErrorWrapper struct {
	c closerNoContextWithError
}

func (w closerNoContextWithErrorWrapper) Close(context.Context) error {
	return w.c.Close()
}

type closeFunc func(context.Context) error

func (f closeFunc) Close(ctx context.Context) error {
	return f(ctx)
}
