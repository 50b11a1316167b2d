package di

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/sectrean/di-cradle/internal/errors"
)

// resolveContext is created for each top-level call to [Container.Resolve].
// It tracks the chain of names being resolved to detect cycles.
//
// A resolveContext is not safe for concurrent use. Resolution happens on the
// goroutine that called Resolve.
type resolveContext struct {
	ctx   context.Context
	chain []string
}

// newResolveContext starts a resolution. If ctx was passed to a factory that is still
// running, the new resolution continues that factory's chain.
func newResolveContext(ctx context.Context) *resolveContext {
	rc := &resolveContext{ctx: ctx}

	if fc, ok := ctx.Value(factoryChainKey{}).(*factoryChain); ok && !fc.released.Load() {
		rc.chain = slices.Clone(fc.names)
	}

	return rc
}

type factoryChainKey struct{}

// factoryChain is a snapshot of the chain stored on the context passed to a factory.
type factoryChain struct {
	names    []string
	released atomic.Bool
}

// release is called when the factory returns.
func (fc *factoryChain) release() {
	fc.released.Store(true)
}

// factoryContext returns the context passed to a factory.
// The returned chain must be released when the factory returns.
func (rc *resolveContext) factoryContext() (context.Context, *factoryChain) {
	fc := &factoryChain{names: slices.Clone(rc.chain)}
	return context.WithValue(rc.ctx, factoryChainKey{}, fc), fc
}

// Enter returns false if the name is already being resolved.
func (rc *resolveContext) Enter(name string) bool {
	if slices.Contains(rc.chain, name) {
		return false
	}

	rc.chain = append(rc.chain, name)
	return true
}

func (rc *resolveContext) Leave() {
	rc.chain = rc.chain[:len(rc.chain)-1]
}

// resolve looks up name starting at scope and creates or reuses the instance
// according to the binding's lifetime.
func (rc *resolveContext) resolve(scope *Container, name string) (any, error) {
	// Check context for errors
	if err := rc.ctx.Err(); err != nil {
		return nil, err
	}

	b := scope.lookup(name)
	if b == nil {
		return nil, newResolutionError(rc.chain, name, ErrNotRegistered)
	}

	// Throw an error if we're already resolving this name
	if !rc.Enter(name) {
		return nil, newResolutionError(rc.chain, name, ErrDependencyCycle)
	}
	defer rc.Leave()

	switch b.Lifetime() {
	case Singleton:
		// Singletons are cached at the root and get their dependencies
		// from the container they were registered with.
		return rc.resolveCached(b.owner.root, b.owner, b)
	case Scoped:
		return rc.resolveCached(scope, scope, b)
	default:
		return rc.create(scope, scope, b)
	}
}

// resolveCached returns the instance cached on the cache container, creating it if needed.
//
// The first caller creates the instance. Concurrent callers wait for that result.
// Errors are not cached, so the next call will try again.
func (rc *resolveContext) resolveCached(cache, scope *Container, b *binding) (any, error) {
	// A scope can outlive the root its singletons are cached in
	if cache.closed.Load() {
		return nil, errors.Wrapf(ErrContainerClosed, "resolve %q", b.name)
	}

	future, loaded := cache.resolved.LoadOrCompute(b, newResolveFuture)
	if loaded {
		return future.Wait(rc.ctx)
	}

	completed := false
	defer func() {
		if !completed {
			// The factory panicked. Release anyone waiting before the panic continues.
			cache.resolved.Delete(b)
			future.setResult(nil, errors.Errorf("resolve %q: factory panicked", b.name))
		}
	}()

	val, err := rc.create(scope, cache, b)
	if err != nil {
		cache.resolved.Delete(b)
	}

	completed = true
	future.setResult(val, err)

	return val, err
}

// create builds a new instance of the binding, resolving dependencies from scope.
// Closers are added to the owner container.
func (rc *resolveContext) create(scope, owner *Container, b *binding) (any, error) {
	val, err := b.builder.build(rc, scope)
	if err != nil {
		return nil, err
	}

	// Value closers are added when the value is registered.
	if b.reg.kind != KindValue {
		if closer := b.reg.closerFor(val); closer != nil {
			owner.addCloser(closer)
		}
	}

	return val, nil
}
