package di

import (
	"fmt"

	"github.com/sectrean/di-cradle/internal/errors"
)

// ResolutionMode controls how a function or class registration receives its dependencies.
//
// Available modes:
//   - [Proxy] passes a [Cradle] that resolves any name lazily. This is the default.
//   - [Classic] resolves a declared list of names eagerly, before construction.
//
// The zero value means the registration uses the default mode of the [Container] it is
// registered with.
type ResolutionMode uint8

const (
	// Proxy passes a [Cradle] to the factory. Each call to [Cradle.Get] resolves the name
	// when it is made.
	//
	// Proxy functions may only take a [context.Context] and a [Cradle] as parameters.
	Proxy ResolutionMode = iota + 1

	// Classic resolves the names declared with [Registration.Inject] (functions) or the
	// `di` struct tags (classes) before the instance is constructed.
	Classic
)

// WithResolutionMode sets the resolution mode of a registration, or the default
// resolution mode of a [Container].
//
// A ResolutionMode can also be used directly as an option:
//
//	c, err := di.NewContainer(di.Classic)
//	reg := di.AsFunction(NewStore, di.Proxy)
func WithResolutionMode(m ResolutionMode) ResolutionModeOption {
	return m
}

// ResolutionModeOption can be used with [NewContainer], [Container.NewScope], and when
// creating a [Registration].
type ResolutionModeOption interface {
	RegistrationOption
	ContainerOption
}

var _ ResolutionModeOption = Proxy

func (m ResolutionMode) valid() bool {
	return m == Proxy || m == Classic
}

func (m ResolutionMode) applyRegistration(r *Registration) error {
	if !m.valid() {
		return errors.Errorf("with resolution mode: %s", m)
	}

	r.mode = m
	return nil
}

func (ResolutionMode) order() optionOrder {
	return orderSettings
}

func (m ResolutionMode) applyContainer(c *Container) error {
	if !m.valid() {
		return errors.Errorf("with resolution mode: %s", m)
	}

	c.mode = m
	return nil
}

func (m ResolutionMode) String() string {
	switch m {
	case 0:
		return "Default"
	case Proxy:
		return "Proxy"
	case Classic:
		return "Classic"
	default:
		return fmt.Sprintf("Unknown ResolutionMode %d", m)
	}
}
