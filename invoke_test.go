package di_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/internal/testtypes"
	"github.com/sectrean/di-cradle/internal/testutils"
)

func Test_Invoke(t *testing.T) {
	t.Run("not func", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, 1234)
		testutils.LogError(t, err)

		assert.EqualError(t, err, "di.Container.Build Function int: int is not a function")
	})

	t.Run("proxy", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsFunction(testtypes.NewInterfaceA)),
		)
		require.NoError(t, err)

		ctx := context.Background()
		called := false

		err = di.Invoke(ctx, c, func(c di.Cradle) {
			a := di.MustGet[testtypes.InterfaceA](c, "a")
			assert.NotNil(t, a)
			called = true
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("classic", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsFunction(testtypes.NewInterfaceA)),
		)
		require.NoError(t, err)

		ctx := testutils.ContextWithTestValue(context.Background(), "value")
		called := false

		err = di.Invoke(ctx, c, func(gotCtx context.Context, a testtypes.InterfaceA) {
			assert.Equal(t, "value", testutils.TestValue(gotCtx))
			assert.NotNil(t, a)
			called = true
		}, di.Classic, di.WithInject("a"))

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("container default ignored", func(t *testing.T) {
		c, err := di.NewContainer(di.Classic)
		require.NoError(t, err)

		err = di.Invoke(context.Background(), c, func(c di.Cradle) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("return error", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		invokeErr := stderrors.New("test invoke error")

		ctx := context.Background()
		err = di.Invoke(ctx, c, func() error {
			return invokeErr
		})

		assert.Same(t, invokeErr, err)
	})

	t.Run("return value and error", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func() (int, error) {
			return 1, stderrors.New("test invoke error")
		})

		assert.EqualError(t, err, "test invoke error")
	})

	t.Run("too many returns", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func() (int, int, error) {
			return 0, 0, nil
		})
		testutils.LogError(t, err)

		assert.EqualError(t, err,
			"di.Container.Build Function func() (int, int, error): function must return nothing, error, T, or (T, error)")
	})

	t.Run("dependency not registered", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(testtypes.InterfaceA) {
			assert.Fail(t, "should not be called")
		}, di.Classic, di.WithInject("a"))
		testutils.LogError(t, err)

		assert.EqualError(t, err, "a: service not registered")
		assert.ErrorIs(t, err, di.ErrNotRegistered)
	})

	t.Run("scope closed", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, c.Close(ctx))

		err = di.Invoke(ctx, c, func() {})
		assert.ErrorIs(t, err, di.ErrContainerClosed)
	})
}

func Test_InvokeWith(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		a := &testtypes.StructA{}

		c, err := di.NewContainer(
			di.WithRegistration("a", di.AsValue(a)),
		)
		require.NoError(t, err)

		got, err := di.InvokeWith[*testtypes.StructB](context.Background(), c,
			func(gotA *testtypes.StructA) *testtypes.StructB {
				assert.Same(t, a, gotA)
				return &testtypes.StructB{}
			},
			di.Classic, di.WithInject("a"),
		)
		assert.Equal(t, &testtypes.StructB{}, got)
		assert.NoError(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		got, err := di.InvokeWith[string](context.Background(), c, func() int {
			return 1
		})
		testutils.LogError(t, err)

		assert.Empty(t, got)
		assert.EqualError(t, err, "invoke: type int is not assignable to string")
	})
}
