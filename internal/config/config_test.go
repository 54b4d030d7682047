package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		data := "theme: latte\nalt_screen: false\ndebug_log: /tmp/fb.log\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Config{Theme: "latte", AltScreen: false, DebugLog: "/tmp/fb.log"}, cfg)
	})

	t.Run("keeps unset keys at default", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dev_mode: true\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "mocha", cfg.Theme)
		assert.True(t, cfg.AltScreen)
		assert.True(t, cfg.DevMode)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unknown theme", func(t *testing.T) {
		path := filepath.Join(dir, "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: solarized\n"), 0644))

		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrUnknownTheme))
	})
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	p, err := Path(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(AppID, "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))

	dev, err := Path(true)
	require.NoError(t, err)
	assert.Equal(t, AppID+"-dev", filepath.Base(filepath.Dir(dev)))
}
