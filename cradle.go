package di

import (
	"context"
	"reflect"
	"sync/atomic"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Cradle resolves dependencies by name when they are needed.
//
// A Cradle is passed to [Proxy] functions and to [Initializer.Init]. While the factory is
// running, names are resolved as part of the current resolution, so dependency cycles
// are reported as a [ResolutionError]. A Cradle can also be stored and used after the
// factory returns; each call then resolves from the same scope like [Container.Resolve].
//
// During construction, a Cradle must only be used on the goroutine running the factory.
type Cradle interface {
	// Get resolves the instance registered with name.
	Get(name string) (any, error)

	// Has returns true if name is registered.
	Has(name string) bool
}

// Get resolves the instance registered with name from the [Cradle] as type T.
func Get[T any](c Cradle, name string) (T, error) {
	var val T

	anyVal, err := c.Get(name)
	if err != nil {
		return val, err
	}

	return convert[T](name, anyVal)
}

// MustGet resolves the instance registered with name from the [Cradle] as type T.
//
// If the instance cannot be resolved, this function will panic.
func MustGet[T any](c Cradle, name string) T {
	val, err := Get[T](c, name)
	if err != nil {
		panic(err)
	}
	return val
}

func convert[T any](name string, anyVal any) (T, error) {
	var val T
	if anyVal == nil {
		return val, nil
	}

	val, ok := anyVal.(T)
	if !ok {
		return val, errors.Errorf("resolve %q: type %T is not assignable to %s",
			name, anyVal, reflect.TypeFor[T]())
	}

	return val, nil
}

// resolveCradle is passed to factories while an instance is being created.
type resolveCradle struct {
	rc       *resolveContext
	scope    *Container
	released atomic.Bool
}

func newResolveCradle(rc *resolveContext, scope *Container) *resolveCradle {
	return &resolveCradle{
		rc:    rc,
		scope: scope,
	}
}

// release is called when the factory returns.
// After that the cradle resolves names with a new resolution.
func (c *resolveCradle) release() {
	c.released.Store(true)
}

func (c *resolveCradle) Get(name string) (any, error) {
	if c.released.Load() {
		return c.scope.Resolve(context.WithoutCancel(c.rc.ctx), name)
	}

	return c.rc.resolve(c.scope, name)
}

func (c *resolveCradle) Has(name string) bool {
	return c.scope.Has(name)
}

var _ Cradle = (*resolveCradle)(nil)

// containerCradle resolves every name with a new resolution.
type containerCradle struct {
	ctx context.Context
	c   *Container
}

func (c containerCradle) Get(name string) (any, error) {
	return c.c.Resolve(c.ctx, name)
}

func (c containerCradle) Has(name string) bool {
	return c.c.Has(name)
}

var _ Cradle = containerCradle{}
