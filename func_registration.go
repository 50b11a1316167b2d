package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-cradle/internal/errors"
)

type paramKind uint8

const (
	paramName paramKind = iota
	paramContext
	paramCradle
)

type funcParam struct {
	kind paramKind
	name string
	t    reflect.Type
}

// funcBuilder calls a factory function registered with AsFunction.
type funcBuilder struct {
	fn     reflect.Value
	params []funcParam
	deps   []string
	// invoke allows functions that return nothing, or only an error.
	invoke bool
}

func newFuncBuilder(r Registration, mode ResolutionMode) (*funcBuilder, error) {
	fn := r.fn
	if !fn.IsValid() {
		return nil, errors.New("function is nil")
	}

	fnType := fn.Type()
	if fnType.Kind() != reflect.Func {
		return nil, errors.Errorf("%s is not a function", fnType)
	}
	if fn.IsNil() {
		return nil, errors.New("function is nil")
	}
	if fnType.IsVariadic() {
		return nil, errors.Errorf("variadic function %s is not supported", fnType)
	}

	if err := validateReturns(fnType, r.invoke); err != nil {
		return nil, err
	}

	if mode == Proxy && len(r.inject) > 0 {
		return nil, errors.Errorf("inject %q: injected names require Classic resolution mode", r.inject)
	}

	// Get the dependencies
	params := make([]funcParam, fnType.NumIn())
	var deps []string

	for i := range fnType.NumIn() {
		t := fnType.In(i)

		switch {
		case t == typeContext:
			params[i] = funcParam{kind: paramContext, t: t}
		case t == typeCradle:
			params[i] = funcParam{kind: paramCradle, t: t}
		case mode == Proxy:
			return nil, errors.Errorf(
				"parameter %d of type %s: Proxy functions only accept context.Context and di.Cradle", i, t)
		default:
			if len(deps) == len(r.inject) {
				return nil, errors.Errorf(
					"parameter %d of type %s: no name injected", i, t)
			}

			name := r.inject[len(deps)]
			if name == "" {
				return nil, errors.Errorf("parameter %d of type %s: injected name is empty", i, t)
			}

			params[i] = funcParam{kind: paramName, name: name, t: t}
			deps = append(deps, name)
		}
	}

	if len(deps) < len(r.inject) {
		return nil, errors.Errorf("inject %q: function takes %d dependencies", r.inject, len(deps))
	}

	return &funcBuilder{
		fn:     fn,
		params: params,
		deps:   deps,
		invoke: r.invoke,
	}, nil
}

func validateReturns(fnType reflect.Type, invoke bool) error {
	if invoke {
		switch {
		case fnType.NumOut() <= 1:
			return nil
		case fnType.NumOut() == 2 && fnType.Out(1) == typeError:
			return nil
		}

		return errors.New("function must return nothing, error, T, or (T, error)")
	}

	switch {
	case fnType.NumOut() == 1 && fnType.Out(0) != typeError:
		return nil
	case fnType.NumOut() == 2 && fnType.Out(0) != typeError && fnType.Out(1) == typeError:
		return nil
	}

	return errors.New("function must return T or (T, error)")
}

func (b *funcBuilder) Dependencies() []string {
	return b.deps
}

func (b *funcBuilder) build(rc *resolveContext, scope *Container) (any, error) {
	var cradle *resolveCradle
	var ctx context.Context

	in := make([]reflect.Value, len(b.params))
	for i, p := range b.params {
		switch p.kind {
		case paramContext:
			if ctx == nil {
				var chain *factoryChain
				ctx, chain = rc.factoryContext()
				defer chain.release()
			}
			in[i] = reflect.ValueOf(&ctx).Elem()

		case paramCradle:
			if cradle == nil {
				cradle = newResolveCradle(rc, scope)
				defer cradle.release()
			}
			in[i] = reflect.ValueOf(cradle)

		default:
			// Recursive call
			val, err := rc.resolve(scope, p.name)
			if err != nil {
				// Stop at the first error
				return nil, err
			}

			v, err := assignableValue(p.t, val)
			if err != nil {
				return nil, errors.Wrapf(err, "inject %q", p.name)
			}
			in[i] = v
		}
	}

	out := b.fn.Call(in)

	// Extract the return value and error, if any
	var val any
	var err error

	for _, o := range out {
		if o.Type() == typeError {
			err, _ = o.Interface().(error)
		} else {
			val = o.Interface()
		}
	}

	if err != nil {
		return nil, err
	}

	return val, nil
}
