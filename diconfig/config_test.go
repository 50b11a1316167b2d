package diconfig_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/diconfig"
	"github.com/sectrean/di-cradle/internal/testutils"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func Test_RequireYAML(t *testing.T) {
	dir := t.TempDir()

	t.Run("mapping", func(t *testing.T) {
		path := writeFile(t, dir, "server.yaml", "host: localhost\nport: 8080\n")

		got, err := diconfig.RequireYAML(path)
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"host": "localhost", "port": 8080}, got)
	})

	t.Run("scalar", func(t *testing.T) {
		path := writeFile(t, dir, "name.yaml", "my-app\n")

		got, err := diconfig.RequireYAML(path)
		assert.NoError(t, err)
		assert.Equal(t, "my-app", got)
	})

	t.Run("empty", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "")

		got, err := diconfig.RequireYAML(path)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("missing file", func(t *testing.T) {
		got, err := diconfig.RequireYAML(filepath.Join(dir, "missing.yaml"))
		testutils.LogError(t, err)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeFile(t, dir, "invalid.yaml", "a: [b\n")

		got, err := diconfig.RequireYAML(path)
		testutils.LogError(t, err)

		assert.Nil(t, got)
		assert.ErrorContains(t, err, "diconfig.RequireYAML "+path)
	})

	t.Run("load modules", func(t *testing.T) {
		modDir := t.TempDir()
		writeFile(t, modDir, "config/server.yaml", "host: localhost\n")
		writeFile(t, modDir, "config/app-name.yaml", "my-app\n")
		writeFile(t, modDir, "config/empty.yaml", "")

		c, err := di.NewContainer(di.WithRequire(diconfig.RequireYAML))
		require.NoError(t, err)

		mods, err := c.LoadModules(
			di.Globs("config/*.yaml"),
			di.WithCwd(modDir),
			di.WithFormatName(di.CamelCase),
		)
		assert.NoError(t, err)
		assert.Len(t, mods, 2)

		ctx := context.Background()
		assert.Equal(t, "my-app", di.MustResolve[string](ctx, c, "appName"))
		assert.Equal(t, map[string]any{"host": "localhost"}, di.MustResolve[map[string]any](ctx, c, "server"))
		assert.False(t, c.Has("empty"))
	})
}

func Test_LoadYAML(t *testing.T) {
	dir := t.TempDir()

	t.Run("load", func(t *testing.T) {
		path := writeFile(t, dir, "config.yaml", "databaseUrl: postgres://localhost/db\n"+
			"timeouts:\n  read: 5\n  write: 10\n"+
			"features:\n  - a\n  - b\n")

		regs, err := diconfig.LoadYAML(path)
		require.NoError(t, err)
		assert.Len(t, regs, 3)

		c, err := di.NewContainer(di.WithRegistrations(regs))
		require.NoError(t, err)

		ctx := context.Background()
		assert.Equal(t, "postgres://localhost/db", di.MustResolve[string](ctx, c, "databaseUrl"))
		assert.Equal(t, map[string]any{"read": 5, "write": 10}, di.MustResolve[map[string]any](ctx, c, "timeouts"))
		assert.Equal(t, []any{"a", "b"}, di.MustResolve[[]any](ctx, c, "features"))
	})

	t.Run("with options", func(t *testing.T) {
		path := writeFile(t, dir, "closer.yaml", "name: value\n")

		var closed []string
		regs, err := diconfig.LoadYAML(path, di.WithCloseFunc(func(_ context.Context, s string) error {
			closed = append(closed, s)
			return nil
		}))
		require.NoError(t, err)
		assert.Equal(t, di.KindValue, regs["name"].Kind())

		c, err := di.NewContainer(di.WithRegistrations(regs))
		require.NoError(t, err)

		assert.NoError(t, c.Close(context.Background()))
		assert.Equal(t, []string{"value"}, closed)
	})

	t.Run("empty", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "")

		regs, err := diconfig.LoadYAML(path)
		assert.NoError(t, err)
		assert.Empty(t, regs)
	})

	t.Run("not a mapping", func(t *testing.T) {
		path := writeFile(t, dir, "list.yaml", "- a\n- b\n")

		regs, err := diconfig.LoadYAML(path)
		testutils.LogError(t, err)

		assert.Nil(t, regs)
		assert.ErrorContains(t, err, "diconfig.LoadYAML "+path)
	})

	t.Run("missing file", func(t *testing.T) {
		regs, err := diconfig.LoadYAML(filepath.Join(dir, "missing.yaml"))
		testutils.LogError(t, err)

		assert.Nil(t, regs)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func Test_LoadEnv(t *testing.T) {
	dir := t.TempDir()

	base := writeFile(t, dir, ".env", "DATABASE_URL=postgres://localhost/db\nLOG_LEVEL=info\n")
	local := writeFile(t, dir, ".env.local", "# local overrides\nLOG_LEVEL=debug\n")

	t.Run("load", func(t *testing.T) {
		regs, err := diconfig.LoadEnv(base)
		require.NoError(t, err)

		c, err := di.NewContainer(di.WithRegistrations(regs))
		require.NoError(t, err)

		ctx := context.Background()
		assert.Equal(t, "postgres://localhost/db", di.MustResolve[string](ctx, c, "databaseUrl"))
		assert.Equal(t, "info", di.MustResolve[string](ctx, c, "logLevel"))
	})

	t.Run("later files override", func(t *testing.T) {
		regs, err := diconfig.LoadEnv(base, local)
		require.NoError(t, err)
		assert.Len(t, regs, 2)

		c, err := di.NewContainer(di.WithRegistrations(regs))
		require.NoError(t, err)

		assert.Equal(t, "debug", di.MustResolve[string](context.Background(), c, "logLevel"))
	})

	t.Run("default path", func(t *testing.T) {
		t.Chdir(dir)

		regs, err := diconfig.LoadEnv()
		require.NoError(t, err)

		assert.Contains(t, regs, "databaseUrl")
		assert.Contains(t, regs, "logLevel")
	})

	t.Run("missing file", func(t *testing.T) {
		regs, err := diconfig.LoadEnv(filepath.Join(dir, "missing.env"))
		testutils.LogError(t, err)

		assert.Nil(t, regs)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func Test_EnvName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "DATABASE_URL", want: "databaseUrl"},
		{key: "PORT", want: "port"},
		{key: "log_level", want: "logLevel"},
		{key: "API_V2_TOKEN", want: "apiV2Token"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, diconfig.EnvName(tt.key))
		})
	}
}
