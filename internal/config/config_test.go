package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded default when nothing is found")

	writeFile(t, filepath.Join(work, "configs", FileName), "log:\n  level: warn\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	writeFile(t, filepath.Join(home, ".slide", "config.yaml"), "log:\n  level: debug\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level, "user config wins over ./configs")

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "log:\n  level: error\nstorage:\n  path: /tmp/x.db\n")
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.Path)
	assert.Equal(t, ":2222", cfg.SSH.Address, "missing fields keep defaults")
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".slide", "config.yaml"), "log: [broken")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "theme:\n  piece_colors: [red]\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "not a hex color")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"short hex", func(c *Config) { c.Theme.ExtraColor = "#777" }, false},
		{"bad piece color", func(c *Config) { c.Theme.PieceColors = []string{"#ffffff", "blue"} }, true},
		{"bad extra color", func(c *Config) { c.Theme.ExtraColor = "gray" }, true},
		{"no piece colors", func(c *Config) { c.Theme.PieceColors = nil }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := Default()
	cfg.ApplyFlags(Overrides{})
	assert.Equal(t, Default(), cfg)

	cfg.ApplyFlags(Overrides{DBPath: "/data/slide.db", LogLevel: "debug"})
	assert.Equal(t, "/data/slide.db", cfg.Storage.Path)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestIdleTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Minute, Default().SSH.IdleTimeout())
}
