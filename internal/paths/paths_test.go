package paths

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoHome = errors.New("no home")

// fakeHome points the home and config lookups at fixed directories.
func fakeHome(t *testing.T, home string) {
	t.Helper()
	origHome, origConfig := userHomeDir, userConfigDir
	userHomeDir = func() (string, error) { return home, nil }
	userConfigDir = func() (string, error) { return filepath.Join(home, ".config"), nil }
	t.Cleanup(func() { userHomeDir, userConfigDir = origHome, origConfig })
}

func TestDefaultConfigDir(t *testing.T) {
	fakeHome(t, "/home/ana")
	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/ana/.config/reditus", got)
}

func TestDefaultDataDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG data layout is linux-only")
	}
	fakeHome(t, "/home/ana")

	t.Run("XDG_DATA_HOME wins", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/srv/data")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/srv/data/reditus", got)
	})

	t.Run("falls back to ~/.local/share", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/ana/.local/share/reditus", got)
	})

	t.Run("home lookup fails", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		userHomeDir = func() (string, error) { return "", errNoHome }
		_, err := DefaultDataDir()
		assert.ErrorIs(t, err, errNoHome)
	})
}

func TestResolveConfigDir(t *testing.T) {
	fakeHome(t, "/home/ana")

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins over env", "/flag/cfg", "/env/cfg", "/flag/cfg"},
		{"env when no flag", "", "/env/cfg", "/env/cfg"},
		{"user config dir by default", "", "", "/home/ana/.config/reditus"},
		{"tilde in env", "", "~/cfg", "/home/ana/cfg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	fakeHome(t, "/home/ana")
	t.Setenv("XDG_DATA_HOME", "")
	platformDefault, err := DefaultDataDir()
	require.NoError(t, err)

	tests := []struct {
		name        string
		flag        string
		configValue string
		env         string
		want        string
	}{
		{"flag wins over all", "/flag/data", "/config/data", "/env/data", "/flag/data"},
		{"config.yaml data_dir wins over env", "", "/config/data", "/env/data", "/config/data"},
		{"config.yaml data_dir with tilde", "", "~/programs", "", "/home/ana/programs"},
		{"env when flag and config empty", "", "", "/env/data", "/env/data"},
		{"user data dir by default", "", "", "", platformDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)
			got, err := ResolveDataDir(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMakesRelativePathsAbsolute(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvDataDir, "")

	cfg, err := ResolveConfigDir("relative/cfg")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg), "got %s", cfg)

	data, err := ResolveDataDir("", "relative/data")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(data), "got %s", data)
}

func TestExpandHome(t *testing.T) {
	fakeHome(t, "/home/ana")

	for in, want := range map[string]string{
		"~":        "/home/ana",
		"~/x/y":    "/home/ana/x/y",
		"/abs/~/x": "/abs/~/x",
		"~other/x": "~other/x",
		"rel/path": "rel/path",
	} {
		got, err := expandHome(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
