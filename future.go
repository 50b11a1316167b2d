package di

import (
	"context"
)

// resolveFuture holds the result of a singleton or scoped instance
// while it is being created.
type resolveFuture struct {
	val  any
	err  error
	done chan struct{}
}

func newResolveFuture() *resolveFuture {
	return &resolveFuture{
		done: make(chan struct{}),
	}
}

func (f *resolveFuture) setResult(val any, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Wait blocks until the result is set or ctx is done.
func (f *resolveFuture) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
