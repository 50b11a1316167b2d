package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-cradle/internal/errors"
)

// These are commonly used types.
var (
	typeError       = reflect.TypeFor[error]()
	typeContext     = reflect.TypeFor[context.Context]()
	typeCradle      = reflect.TypeFor[Cradle]()
	typeInitializer = reflect.TypeFor[Initializer]()
)

// assignableValue converts a resolved value into a reflect.Value for a parameter or field of type t.
func assignableValue(t reflect.Type, val any) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, errors.Errorf("nil is not assignable to %s", t)
		}
	}

	v := reflect.ValueOf(val)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, errors.Errorf("type %s is not assignable to %s", v.Type(), t)
	}

	return v, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Apply functional options and join any errors together.
func applyOptions[O any](opts []O, f func(O) error) error {
	var errs errors.MultiError

	for _, o := range opts {
		errs = errs.Append(f(o))
	}

	return errs.Join()
}
