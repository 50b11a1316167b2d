package dihttp

import (
	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/internal/errors"
)

// RequestScopeMiddlewareOption is used to configure the middleware when calling [NewRequestScopeMiddleware].
type RequestScopeMiddlewareOption interface {
	applyRequestScopeMiddleware(*middlewareConfig) error
}

type middlewareOption func(*middlewareConfig) error

func (o middlewareOption) applyRequestScopeMiddleware(cfg *middlewareConfig) error {
	return o(cfg)
}

// WithContainerOptions sets the options to use when calling [di.Container.NewScope] for each request.
func WithContainerOptions(opts ...di.ContainerOption) RequestScopeMiddlewareOption {
	return middlewareOption(func(cfg *middlewareConfig) error {
		cfg.opts = append(cfg.opts, opts...)
		return nil
	})
}

// WithRequestName sets the name the [*http.Request] is registered with in each request scope.
// The default is [DefaultRequestName].
func WithRequestName(name string) RequestScopeMiddlewareOption {
	return middlewareOption(func(cfg *middlewareConfig) error {
		if name == "" {
			return errors.New("WithRequestName: name is empty")
		}

		cfg.requestName = name
		return nil
	})
}

// WithNewScopeErrorHandler sets the error handler for when there is an error creating a new scope.
func WithNewScopeErrorHandler(h NewScopeErrorHandler) RequestScopeMiddlewareOption {
	return middlewareOption(func(cfg *middlewareConfig) error {
		if h == nil {
			return errors.New("WithNewScopeErrorHandler: h is nil")
		}

		cfg.newScopeHandler = h
		return nil
	})
}

// WithScopeCloseErrorHandler sets the error handler for when there is an error closing the scope.
func WithScopeCloseErrorHandler(h ScopeCloseErrorHandler) RequestScopeMiddlewareOption {
	return middlewareOption(func(cfg *middlewareConfig) error {
		if h == nil {
			return errors.New("WithScopeCloseErrorHandler: h is nil")
		}

		cfg.closeHandler = h
		return nil
	})
}
