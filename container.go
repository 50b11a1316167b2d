package di

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Container is a dependency injection container.
// Instances are registered by name and resolved by first resolving their dependencies.
type Container struct {
	id       uuid.UUID
	parent   *Container
	root     *Container
	mode     ResolutionMode
	require  RequireFunc
	logger   *slog.Logger
	bindings *xsync.MapOf[string, *binding]
	resolved *xsync.MapOf[*binding, *resolveFuture]

	closers   []Closer
	closersMu sync.Mutex
	closedMu  sync.RWMutex
	closed    atomic.Bool
}

var _ Scope = (*Container)(nil)

// NewContainer creates a new root [Container] with the provided options.
//
// Available options:
//   - [WithRegistration] and [WithRegistrations] register names.
//   - [WithModule] applies a group of options.
//   - [ResolutionMode] or [WithResolutionMode] sets the default resolution mode.
//     The default is [Proxy].
//   - [WithRequire] sets the function used by [Container.LoadModules].
//   - [WithLogger] sets the logger. The default is [slog.Default].
//   - [WithValidation] validates registrations.
func NewContainer(opts ...ContainerOption) (*Container, error) {
	c := newContainer(nil)

	err := c.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "di.NewContainer")
	}

	c.logger.Debug("container created", "container", c.id)
	return c, nil
}

func newContainer(parent *Container) *Container {
	c := &Container{
		id:       uuid.New(),
		parent:   parent,
		mode:     Proxy,
		logger:   slog.Default(),
		bindings: xsync.NewMapOf[string, *binding](),
		resolved: xsync.NewMapOf[*binding, *resolveFuture](),
	}

	if parent == nil {
		c.root = c
	} else {
		c.root = parent.root
		c.mode = parent.mode
		c.require = parent.require
		c.logger = parent.logger
	}

	return c
}

func (c *Container) applyOptions(opts []ContainerOption) error {
	// Flatten any modules before sorting and applying options
	opts = flattenModules(opts)

	// Settings are applied before registrations so bindings see the default mode.
	// Use stable sort because the registration order of names matters.
	slices.SortStableFunc(opts, func(a, b ContainerOption) int {
		return int(a.order()) - int(b.order())
	})

	return applyOptions(opts, func(o ContainerOption) error {
		return o.applyContainer(c)
	})
}

// NewScope creates a new [Container] with a child scope.
//
// Names registered with the parent [Container] are inherited by the child.
// Registering a name with the child shadows the parent registration without affecting
// the parent or sibling scopes. [Scoped] instances are cached separately in each scope.
//
// The scope inherits the resolution mode, require function and logger of the parent.
// It accepts the same options as [NewContainer].
func (c *Container) NewScope(opts ...ContainerOption) (*Container, error) {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed.Load() {
		return nil, errors.Wrap(ErrContainerClosed, "di.Container.NewScope")
	}

	scope := newContainer(c)

	err := scope.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "di.Container.NewScope")
	}

	c.logger.Debug("scope created", "container", c.id, "scope", scope.id)
	return scope, nil
}

// ID returns a unique identifier for the [Container]. It is used in log records.
func (c *Container) ID() string {
	return c.id.String()
}

// Register binds the registration to name and returns the [Container] so calls can be chained.
//
// Registering a name again replaces the previous registration. Instances cached for the
// previous registration are dropped, but not closed until the Container is closed.
//
// Register panics if name is empty, the registration is invalid, or the Container is closed.
// Use [WithRegistration] with [NewContainer] to get an error instead.
//
// Example:
//
//	c.Register("db", di.AsFunction(OpenDB).Singleton()).
//		Register("store", di.AsFunction(NewStore).Classic().Inject("db"))
func (c *Container) Register(name string, r Registration) *Container {
	if err := c.register(name, r); err != nil {
		panic(errors.Wrap(err, "di.Container.Register"))
	}
	return c
}

// RegisterAll registers every name in the map. Names are registered in sorted order.
//
// RegisterAll panics under the same conditions as [Container.Register].
func (c *Container) RegisterAll(regs map[string]Registration) *Container {
	for _, name := range slices.Sorted(maps.Keys(regs)) {
		c.Register(name, regs[name])
	}
	return c
}

// RegisterValue is shorthand for Register(name, AsValue(val, opts...)).
func (c *Container) RegisterValue(name string, val any, opts ...RegistrationOption) *Container {
	return c.Register(name, AsValue(val, opts...))
}

// RegisterFunction is shorthand for Register(name, AsFunction(fn, opts...)).
func (c *Container) RegisterFunction(name string, fn any, opts ...RegistrationOption) *Container {
	return c.Register(name, AsFunction(fn, opts...))
}

// RegisterClass is shorthand for Register(name, AsClass(prototype, opts...)).
func (c *Container) RegisterClass(name string, prototype any, opts ...RegistrationOption) *Container {
	return c.Register(name, AsClass(prototype, opts...))
}

func (c *Container) register(name string, r Registration) error {
	if name == "" {
		return errors.New("name is empty")
	}

	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed.Load() {
		return ErrContainerClosed
	}

	b, err := newBinding(name, r, c)
	if err != nil {
		return errors.Wrapf(err, "register %q: %s", name, r)
	}

	old, replaced := c.bindings.LoadAndStore(name, b)
	if replaced {
		c.resolved.Delete(old)
		c.root.resolved.Delete(old)
	}

	// Values are created at registration, so their closers are added now
	if r.kind == KindValue {
		if closer := r.closerFor(r.val); closer != nil {
			c.addCloser(closer)
		}
	}

	c.logger.Debug("registered",
		"container", c.id,
		"name", name,
		"registration", r.String(),
		"lifetime", r.Lifetime(),
		"mode", b.mode,
		"replaced", replaced,
	)

	return nil
}

// lookup returns the nearest binding for name, starting with c and walking up the parents.
func (c *Container) lookup(name string) *binding {
	for scope := c; scope != nil; scope = scope.parent {
		if b, ok := scope.bindings.Load(name); ok {
			return b
		}
	}

	return nil
}

// Has returns true if the [Container], or one of its parents, has a registration for name.
func (c *Container) Has(name string) bool {
	return c.lookup(name) != nil
}

// Registrations returns the registrations visible from the [Container].
// A name registered with both a scope and a parent maps to the scope's registration.
func (c *Container) Registrations() map[string]Registration {
	regs := make(map[string]Registration)

	for scope := c; scope != nil; scope = scope.parent {
		scope.bindings.Range(func(name string, b *binding) bool {
			if _, ok := regs[name]; !ok {
				regs[name] = b.reg
			}
			return true
		})
	}

	return regs
}

// Resolve returns the instance registered with name.
//
// The name must be registered with the [Container] or one of its parents. Otherwise a
// [*ResolutionError] wrapping [ErrNotRegistered] is returned. A dependency cycle returns a
// [*ResolutionError] wrapping [ErrDependencyCycle].
//
// Errors returned by factory functions and initializers are returned unchanged.
// This will return an error if the [Container] has been closed.
//
// A factory can call Resolve with the [context.Context] it was passed. The call joins the
// resolution that is running the factory, so resolving a name that is still being
// created returns a dependency cycle error instead of waiting for itself.
func (c *Container) Resolve(ctx context.Context, name string) (any, error) {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed.Load() {
		return nil, errors.Wrapf(ErrContainerClosed, "di.Container.Resolve %q", name)
	}

	val, err := newResolveContext(ctx).resolve(c, name)
	if err != nil {
		c.logger.DebugContext(ctx, "resolve failed",
			"container", c.id,
			"name", name,
			"error", err,
		)
		return nil, err
	}

	return val, nil
}

// Build creates an instance from a registration that is not registered.
//
// Dependencies are resolved from the [Container]. The registration is treated as
// [Transient]; the instance is closed with the Container if it has a Close method.
func (c *Container) Build(ctx context.Context, r Registration) (any, error) {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed.Load() {
		return nil, errors.Wrap(ErrContainerClosed, "di.Container.Build")
	}

	b, err := newBinding("", r, c)
	if err != nil {
		return nil, errors.Wrapf(err, "di.Container.Build %s", r)
	}

	return newResolveContext(ctx).create(c, c, b)
}

// Cradle returns a [Cradle] for the [Container].
// Each call to [Cradle.Get] resolves the name like [Container.Resolve] with ctx.
// When ctx is the context passed to a factory, cycles are detected the same way.
func (c *Container) Cradle(ctx context.Context) Cradle {
	return containerCradle{ctx: ctx, c: c}
}

func (c *Container) addCloser(closer Closer) {
	c.closersMu.Lock()
	c.closers = append(c.closers, closer)
	c.closersMu.Unlock()
}

// Close the [Container] and the instances it created.
//
// Instances are closed in the reverse order they were created. Values registered with
// [WithCloser] or [WithCloseFunc] are closed too. Errors returned from closing instances
// are joined together.
//
// Closing a Container does not close its child scopes.
// Close will return an error if called more than once.
func (c *Container) Close(ctx context.Context) error {
	c.closedMu.Lock()
	defer c.closedMu.Unlock()

	if c.closed.Load() {
		return errors.Wrap(ErrContainerClosed, "di.Container.Close: closed already")
	}
	c.closed.Store(true)

	c.closersMu.Lock()
	closers := c.closers
	c.closers = nil
	c.closersMu.Unlock()

	// Close instances in LIFO order
	// This is important because of dependencies
	var errs errors.MultiError
	for i := len(closers) - 1; i >= 0; i-- {
		errs = errs.Append(closers[i].Close(ctx))
	}

	c.logger.DebugContext(ctx, "container closed",
		"container", c.id,
		"closers", len(closers),
	)

	if err := errs.Join(); err != nil {
		return errors.Wrap(err, "di.Container.Close")
	}

	return nil
}
