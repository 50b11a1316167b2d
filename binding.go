package di

import (
	"github.com/sectrean/di-cradle/internal/errors"
)

// binding is a Registration bound to a name in a Container.
// A new binding is created every time a name is registered, so cached
// instances belong to the binding rather than the name.
type binding struct {
	name    string
	reg     Registration
	owner   *Container
	mode    ResolutionMode
	builder builder
}

// builder creates instances for a binding.
type builder interface {
	build(rc *resolveContext, scope *Container) (any, error)

	// Dependencies returns the names resolved before the instance is created.
	// Names resolved through a Cradle are not known in advance.
	Dependencies() []string
}

func newBinding(name string, r Registration, owner *Container) (*binding, error) {
	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}

	// Use the container default unless the registration sets a mode
	mode := r.mode
	if mode == 0 {
		mode = owner.mode
	}

	var bldr builder
	var err error

	switch r.kind {
	case KindValue:
		bldr = valueBuilder{val: r.val}
	case KindFunction:
		bldr, err = newFuncBuilder(r, mode)
	case KindClass:
		bldr, err = newClassBuilder(r, mode)
	default:
		err = errors.New("empty registration")
	}

	if err != nil {
		return nil, err
	}

	return &binding{
		name:    name,
		reg:     r,
		owner:   owner,
		mode:    mode,
		builder: bldr,
	}, nil
}

func (b *binding) Lifetime() Lifetime {
	return b.reg.Lifetime()
}

func (b *binding) Dependencies() []string {
	return b.builder.Dependencies()
}

type valueBuilder struct {
	val any
}

func (v valueBuilder) build(*resolveContext, *Container) (any, error) {
	return v.val, nil
}

func (valueBuilder) Dependencies() []string {
	return nil
}
