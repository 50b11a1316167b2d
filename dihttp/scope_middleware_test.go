package dihttp_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/dicontext"
	"github.com/sectrean/di-cradle/dihttp"
	"github.com/sectrean/di-cradle/internal/errors"
	"github.com/sectrean/di-cradle/internal/mocks"
	"github.com/sectrean/di-cradle/internal/testtypes"
	"github.com/sectrean/di-cradle/internal/testutils"
)

func Test_NewRequestScopeMiddleware(t *testing.T) {
	t.Run("nil parent", func(t *testing.T) {
		mw, err := dihttp.NewRequestScopeMiddleware(nil)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "dihttp.NewRequestScopeMiddleware: parent is nil")
	})

	t.Run("with new scope error handler nil", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithNewScopeErrorHandler(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "dihttp.NewRequestScopeMiddleware: WithNewScopeErrorHandler: h is nil")
	})

	t.Run("with scope close error handler nil", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithScopeCloseErrorHandler(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "dihttp.NewRequestScopeMiddleware: WithScopeCloseErrorHandler: h is nil")
	})

	t.Run("with request name empty", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithRequestName(""),
			dihttp.WithNewScopeErrorHandler(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "dihttp.NewRequestScopeMiddleware: WithRequestName: name is empty\n"+
			"WithNewScopeErrorHandler: h is nil")
	})

	t.Run("multiple middleware calls", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handlerA := mw(http.NotFoundHandler())
		handlerB := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(500)
		}))

		gotA := RunRequest(t, handlerA, "/")
		assert.Equal(t, http.StatusNotFound, gotA)

		gotB := RunRequest(t, handlerB, "/")
		assert.Equal(t, http.StatusInternalServerError, gotB)
	})
}

func Test_Middleware(t *testing.T) {
	t.Run("scoped service", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Classic,
			di.WithRegistration("a", di.AsFunction(testtypes.NewInterfaceA)),
			di.WithRegistration("b", di.AsFunction(testtypes.NewInterfaceB, di.Scoped).Inject("a")),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			b1, resolveErr := dicontext.Resolve[testtypes.InterfaceB](ctx, "b")
			assert.NotNil(t, b1)
			assert.NoError(t, resolveErr)

			b2 := dicontext.MustResolve[testtypes.InterfaceB](ctx, "b")
			assert.Same(t, b1, b2)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("request value", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			req, resolveErr := dicontext.Resolve[*http.Request](ctx, dihttp.DefaultRequestName)

			assert.Equal(t, r, req.WithContext(ctx))
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)

		// The request is only registered with the request scope
		assert.False(t, c.Has(dihttp.DefaultRequestName))
	})

	t.Run("with request name", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithRequestName("httpRequest"),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := dicontext.Scope(r.Context())
			assert.True(t, scope.Has("httpRequest"))
			assert.False(t, scope.Has(dihttp.DefaultRequestName))

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("with container options", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsFunction(testtypes.NewInterfaceA)),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithContainerOptions(
				di.Classic,
				di.WithRegistration("b", di.AsFunction(testtypes.NewInterfaceB).Inject("a")),
			),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			b, resolveErr := dicontext.Resolve[testtypes.InterfaceB](ctx, "b")

			assert.NotNil(t, b)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
		assert.False(t, c.Has("b"))
	})

	t.Run("concurrent requests", func(t *testing.T) {
		// Run a number of concurrent requests and inject the *http.Request into
		// a scoped service. Resolve the service and check that the injected request
		// matches the request passed to the handler.
		const concurrency = 1000

		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsFunction(func(c di.Cradle) (*testtypes.StructA, error) {
				r, err := di.Get[*http.Request](c, dihttp.DefaultRequestName)
				if err != nil {
					return nil, err
				}

				return &testtypes.StructA{
					Tag: r.URL.Path,
				}, nil
			}, di.Scoped)),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		tags := make(chan any, concurrency)
		expectedTags := make(chan any, concurrency)

		var handler http.Handler
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, resolveErr := dicontext.Resolve[*testtypes.StructA](r.Context(), "a")
			assert.NotNil(t, a)
			assert.NoError(t, resolveErr)

			assert.Equal(t, r.URL.Path, a.Tag)
			tags <- a.Tag
		})
		handler = mw(handler)

		testutils.RunParallel(concurrency, func(i int) {
			path := fmt.Sprintf("/%d", i)
			expectedTags <- path

			RunRequest(t, handler, path)
		})

		close(tags)
		close(expectedTags)

		assert.ElementsMatch(t, testutils.CollectChannel(expectedTags), testutils.CollectChannel(tags))
	})

	t.Run("new scope error", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		called := false

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithContainerOptions(
				di.WithRegistration("a", di.AsFunction(nil)),
			),
			dihttp.WithNewScopeErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				assert.NotNil(t, w)
				assert.NotNil(t, r)
				assert.EqualError(t, err,
					`di.Container.NewScope: with registration: register "a": Function <nil>: function is nil`)
				called = true

				w.WriteHeader(599)
			}),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			assert.Fail(t, "handler should not get called")
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, 599, code)

		assert.True(t, called)
	})

	t.Run("close error", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsFunction(func() testtypes.InterfaceA {
				a := mocks.NewInterfaceAMock(t)
				a.EXPECT().
					Close(mock.Anything).
					Return(errors.New("close error"))

				return a
			})),
		)
		require.NoError(t, err)

		called := false

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithScopeCloseErrorHandler(func(r *http.Request, err error) {
				assert.NotNil(t, r)
				assert.EqualError(t, err, "di.Container.Close: close error")
				called = true
			}),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, resolveErr := dicontext.Resolve[testtypes.InterfaceA](r.Context(), "a")
			assert.NotNil(t, a)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)

		assert.True(t, called)
	})
}

func Test_Middleware_Chi(t *testing.T) {
	c, err := di.NewContainer(
		di.WithRegistration("path", di.AsFunction(func(c di.Cradle) (string, error) {
			r, err := di.Get[*http.Request](c, dihttp.DefaultRequestName)
			if err != nil {
				return "", err
			}
			return r.URL.Path, nil
		}, di.Scoped)),
	)
	require.NoError(t, err)

	mw, err := dihttp.NewRequestScopeMiddleware(c)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(mw)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		path := dicontext.MustResolve[string](r.Context(), "path")
		assert.Equal(t, "/items/"+chi.URLParam(r, "id"), path)

		w.WriteHeader(http.StatusAccepted)
	})

	assert.Equal(t, http.StatusAccepted, RunRequest(t, router, "/items/42"))
	assert.Equal(t, http.StatusNotFound, RunRequest(t, router, "/other"))
}

func RunRequest(t *testing.T, h http.Handler, path string) int {
	res := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, http.NoBody)
	require.NoError(t, err)

	h.ServeHTTP(res, req)
	return res.Code
}
