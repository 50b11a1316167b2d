package di

import (
	"maps"
	"slices"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Validate checks the registrations visible from the [Container].
//
// Every name declared with [Registration.Inject] or a `di` struct tag must be registered,
// and these declared dependencies must not form a cycle. Problems are reported as
// [*ResolutionError] values joined together.
//
// Dependencies resolved through a [Cradle] are only known when the factory runs, so
// [Proxy] registrations are only checked as dependencies of Classic registrations.
//
// A [Scoped] registration may depend on a name that is only registered with a child scope.
// Validate the child scope to check it.
func (c *Container) Validate() error {
	v := &validator{
		checked: make(map[*binding]struct{}),
	}

	var errs errors.MultiError
	for _, name := range slices.Sorted(maps.Keys(c.Registrations())) {
		errs = errs.Append(v.validate(c, name, nil))
	}

	return errs.Join()
}

type validator struct {
	// checked bindings are skipped. Failed bindings have been reported already.
	checked map[*binding]struct{}
}

func (v *validator) validate(scope *Container, name string, chain []string) error {
	b := scope.lookup(name)
	if b == nil {
		return newResolutionError(chain, name, ErrNotRegistered)
	}
	if slices.Contains(chain, name) {
		return newResolutionError(chain, name, ErrDependencyCycle)
	}
	if _, ok := v.checked[b]; ok {
		return nil
	}
	defer func() {
		v.checked[b] = struct{}{}
	}()

	// Singletons get their dependencies from the container they were registered with
	if b.Lifetime() == Singleton {
		scope = b.owner
	}

	chain = append(slices.Clip(chain), name)
	for _, dep := range b.Dependencies() {
		if err := v.validate(scope, dep, chain); err != nil {
			return err
		}
	}

	return nil
}
