package di

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/sectrean/di-cradle/internal/errors"
)

// ContainerOption is used to configure a new [Container] when calling [NewContainer]
// or [Container.NewScope].
type ContainerOption interface {
	order() optionOrder
	applyContainer(*Container) error
}

// optionOrder controls the order options are applied in, regardless of the order
// they were passed.
type optionOrder int8

const (
	orderSettings optionOrder = iota
	orderRegistration
	orderValidation
)

func newContainerOption(order optionOrder, fn func(*Container) error) ContainerOption {
	return containerOption{fn: fn, ord: order}
}

type containerOption struct {
	fn  func(*Container) error
	ord optionOrder
}

func (o containerOption) order() optionOrder {
	return o.ord
}

func (o containerOption) applyContainer(c *Container) error {
	return o.fn(c)
}

// WithLogger sets the logger used by the [Container] and its scopes.
func WithLogger(logger *slog.Logger) ContainerOption {
	return newContainerOption(orderSettings, func(c *Container) error {
		if logger == nil {
			return errors.New("with logger: logger is nil")
		}

		c.logger = logger
		return nil
	})
}

// WithRegistration registers name with the [Container].
//
// Unlike [Container.Register], an invalid registration is returned as an error.
func WithRegistration(name string, r Registration) ContainerOption {
	return newContainerOption(orderRegistration, func(c *Container) error {
		return errors.Wrap(c.register(name, r), "with registration")
	})
}

// WithRegistrations registers every name in the map with the [Container].
// Names are registered in sorted order.
func WithRegistrations(regs map[string]Registration) ContainerOption {
	return newContainerOption(orderRegistration, func(c *Container) error {
		var errs errors.MultiError
		for _, name := range slices.Sorted(maps.Keys(regs)) {
			errs = errs.Append(c.register(name, regs[name]))
		}

		return errs.Wrap("with registrations")
	})
}

// WithValidation validates the registrations visible from the [Container] after all
// other options have been applied.
//
// See [Container.Validate].
func WithValidation() ContainerOption {
	return newContainerOption(orderValidation, func(c *Container) error {
		return errors.Wrap(c.Validate(), "with validation")
	})
}
