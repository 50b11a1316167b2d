package di

import (
	"fmt"
	"reflect"
	"slices"
)

// RegistrationKind identifies how a [Registration] produces its instance.
type RegistrationKind uint8

const (
	// KindValue returns a stored value. See [AsValue].
	KindValue RegistrationKind = iota + 1
	// KindFunction calls a factory function. See [AsFunction].
	KindFunction
	// KindClass allocates and initializes a struct. See [AsClass].
	KindClass
)

func (k RegistrationKind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	default:
		return fmt.Sprintf("Unknown RegistrationKind %d", k)
	}
}

// Registration describes how to produce the instance for a name: a value, a function
// or a class, with a [Lifetime] and a [ResolutionMode].
//
// A Registration is immutable. The builder methods return a modified copy, so the same
// Registration can be shared and customized without affecting other copies:
//
//	base := di.AsFunction(NewClient)
//	c.Register("client", base.Singleton())
//	c.Register("requestClient", base.Scoped())
//
// Registrations are checked when they are registered with a [Container].
type Registration struct {
	kind      RegistrationKind
	val       any
	fn        reflect.Value
	class     reflect.Type
	lifetime  Lifetime
	mode      ResolutionMode
	inject    []string
	closer    closerFactory
	closerSet bool
	invoke    bool
	errs      []error
}

// RegistrationOption configures a [Registration].
//
// Available options:
//   - [Lifetime] or [WithLifetime] sets how instances are cached.
//   - [ResolutionMode] or [WithResolutionMode] sets how dependencies are passed.
//   - [WithInject] declares the dependency names of a Classic function.
//   - [WithCloser], [IgnoreCloser] and [WithCloseFunc] control closing with the [Container].
type RegistrationOption interface {
	applyRegistration(*Registration) error
}

type registrationOption func(*Registration) error

func (o registrationOption) applyRegistration(r *Registration) error {
	return o(r)
}

// AsValue creates a registration that always resolves to val.
//
// The lifetime of a value registration is ignored: the same value is returned every time.
// Values are not closed with the [Container] unless [WithCloser] or [WithCloseFunc] is used.
func AsValue(val any, opts ...RegistrationOption) Registration {
	r := Registration{
		kind: KindValue,
		val:  val,
	}

	return r.With(opts...)
}

// AsFunction creates a registration that calls fn to create the instance.
//
// fn must return T or (T, error). Its parameters depend on the [ResolutionMode]:
//   - [Proxy]: fn may take a [context.Context] and a [Cradle], in any order.
//     Dependencies are resolved with [Cradle.Get] when needed.
//   - [Classic]: every parameter other than [context.Context] and [Cradle] is resolved
//     from the name at the same position in [Registration.Inject].
//
// Errors returned by fn are passed to the caller of [Container.Resolve] unchanged.
//
// Example:
//
//	di.AsFunction(func(c di.Cradle) (*Store, error) {
//		db, err := di.Get[*sql.DB](c, "db")
//		if err != nil {
//			return nil, err
//		}
//		return NewStore(db), nil
//	}).Singleton()
//
//	di.AsFunction(NewStore).Classic().Inject("db").Singleton()
func AsFunction(fn any, opts ...RegistrationOption) Registration {
	r := Registration{
		kind: KindFunction,
		fn:   reflect.ValueOf(fn),
	}

	return r.With(opts...)
}

// AsClass creates a registration that allocates a new struct of the prototype's type
// and resolves to a pointer to it.
//
// The prototype can be a struct value or a pointer to a struct, including a nil pointer:
//
//	di.AsClass((*Handler)(nil))
//
// In [Classic] mode every field tagged `di:"name"` is injected with the named dependency
// before initialization. An empty tag value uses the field name in lower camel case and
// `di:"-"` skips the field. [Proxy] mode ignores the tags.
//
// In both modes, if the pointer type implements [Initializer], Init is called last with
// a [Cradle].
func AsClass(prototype any, opts ...RegistrationOption) Registration {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	r := Registration{
		kind:  KindClass,
		class: t,
	}

	return r.With(opts...)
}

// AsClassOf is the same as [AsClass] with the struct type given as a type parameter.
func AsClassOf[T any](opts ...RegistrationOption) Registration {
	var prototype *T
	return AsClass(prototype, opts...)
}

// Initializer is the initialization contract for class registrations.
// See [AsClass].
type Initializer interface {
	Init(cradle Cradle) error
}

// WithInject declares the names resolved for the parameters of a [Classic] function.
//
// See [Registration.Inject].
func WithInject(names ...string) RegistrationOption {
	return registrationOption(func(r *Registration) error {
		r.inject = slices.Clone(names)
		return nil
	})
}

// With returns a copy of the registration with the options applied.
func (r Registration) With(opts ...RegistrationOption) Registration {
	r.inject = slices.Clone(r.inject)
	r.errs = slices.Clone(r.errs)

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt.applyRegistration(&r)
		if err != nil {
			r.errs = append(r.errs, err)
		}
	}

	return r
}

// Singleton returns a copy of the registration with the [Singleton] lifetime.
func (r Registration) Singleton() Registration {
	return r.With(Singleton)
}

// Scoped returns a copy of the registration with the [Scoped] lifetime.
func (r Registration) Scoped() Registration {
	return r.With(Scoped)
}

// Transient returns a copy of the registration with the [Transient] lifetime.
func (r Registration) Transient() Registration {
	return r.With(Transient)
}

// Proxy returns a copy of the registration with the [Proxy] resolution mode.
func (r Registration) Proxy() Registration {
	return r.With(Proxy)
}

// Classic returns a copy of the registration with the [Classic] resolution mode.
func (r Registration) Classic() Registration {
	return r.With(Classic)
}

// Inject returns a copy of the registration that resolves names, in order, for the
// parameters of a [Classic] function. [context.Context] and [Cradle] parameters are
// skipped when matching names to parameters.
//
//	// func NewService(ctx context.Context, db *sql.DB, logger *slog.Logger) *Service
//	di.AsFunction(NewService).Classic().Inject("db", "logger")
func (r Registration) Inject(names ...string) Registration {
	return r.With(WithInject(names...))
}

// Kind returns how the registration produces its instance.
func (r Registration) Kind() RegistrationKind {
	return r.kind
}

// Lifetime returns the lifetime of the registration.
// Value registrations always report [Transient] since they are never cached.
func (r Registration) Lifetime() Lifetime {
	if r.kind == KindValue {
		return Transient
	}
	return r.lifetime
}

// ResolutionMode returns the resolution mode set on the registration.
// Zero means the default mode of the [Container] is used.
func (r Registration) ResolutionMode() ResolutionMode {
	return r.mode
}

// Dependencies returns the names declared with [Registration.Inject].
func (r Registration) Dependencies() []string {
	return slices.Clone(r.inject)
}

func (r Registration) String() string {
	switch r.kind {
	case KindValue:
		return fmt.Sprintf("Value %T", r.val)
	case KindFunction:
		if !r.fn.IsValid() {
			return "Function <nil>"
		}
		return fmt.Sprintf("Function %s", r.fn.Type())
	case KindClass:
		if r.class == nil {
			return "Class <nil>"
		}
		return fmt.Sprintf("Class %s", r.class)
	default:
		return r.kind.String()
	}
}
