package dihttp

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/dicontext"
	"github.com/sectrean/di-cradle/internal/errors"
)

// DefaultRequestName is the name the current [*http.Request] is registered with in each request scope.
const DefaultRequestName = "request"

// NewRequestScopeMiddleware creates a new child container scope for each request.
// The scope is closed after the request has been processed.
//
// The current [*http.Request] is registered with the scope as a value named "request".
// It can be used as a dependency for scoped registrations.
//
// The scope is stored on the request context and can be accessed using [dicontext.Scope],
// [dicontext.Resolve], or [dicontext.MustResolve].
//
// Available options:
//   - [WithContainerOptions] sets the [di.ContainerOption]s used when creating each request scope.
//   - [WithRequestName] changes the name the request is registered with.
//   - [WithNewScopeErrorHandler] sets the error handler for when there is an error creating a new scope.
//   - [WithScopeCloseErrorHandler] sets the error handler for when there is an error closing the scope.
func NewRequestScopeMiddleware(
	parent *di.Container,
	opts ...RequestScopeMiddlewareOption,
) (func(http.Handler) http.Handler, error) {
	if parent == nil {
		return nil, errors.New("dihttp.NewRequestScopeMiddleware: parent is nil")
	}

	cfg := middlewareConfig{
		parent:          parent,
		requestName:     DefaultRequestName,
		newScopeHandler: defaultNewScopeErrorHandler,
		closeHandler:    defaultScopeCloseErrorHandler,
	}

	var errs errors.MultiError
	for _, opt := range opts {
		errs = errs.Append(opt.applyRequestScopeMiddleware(&cfg))
	}
	if err := errs.Join(); err != nil {
		return nil, errors.Wrap(err, "dihttp.NewRequestScopeMiddleware")
	}

	return func(next http.Handler) http.Handler {
		return &requestScopeMiddleware{
			cfg:  cfg,
			next: next,
		}
	}, nil
}

// NewScopeErrorHandler is a function that writes an error response to the client.
// This is called by the scope middleware when there is an error creating the [di.Container].
//
// The default handler logs the error to [slog.Default()] and writes a 500 Internal Server Error response.
type NewScopeErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultNewScopeErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error creating new HTTP request scope", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ScopeCloseErrorHandler is a function that handles errors when closing the [di.Container]
// after the request has completed.
//
// The default handler logs the error to [slog.Default()].
type ScopeCloseErrorHandler = func(r *http.Request, err error)

func defaultScopeCloseErrorHandler(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error closing HTTP request scope", "error", err)
}

type middlewareConfig struct {
	parent          *di.Container
	opts            []di.ContainerOption
	requestName     string
	newScopeHandler NewScopeErrorHandler
	closeHandler    ScopeCloseErrorHandler
}

type requestScopeMiddleware struct {
	cfg  middlewareConfig
	next http.Handler
}

func (m *requestScopeMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := slices.Concat(m.cfg.opts, []di.ContainerOption{
		// Register the *http.Request with the new scope
		di.WithRegistration(m.cfg.requestName, di.AsValue(r)),
	})

	scope, err := m.cfg.parent.NewScope(opts...)
	if err != nil {
		m.cfg.newScopeHandler(w, r, err)
		return
	}

	ctx := dicontext.WithScope(r.Context(), scope)
	m.next.ServeHTTP(w, r.WithContext(ctx))

	err = scope.Close(ctx)
	if err != nil {
		m.cfg.closeHandler(r, err)
	}
}
