package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilupskalvis/ps1/internal/core"
	"github.com/kilupskalvis/ps1/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), "", false)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Discover)
	assert.False(t, cfg.Strict)
	assert.Equal(t, core.DefaultPlaceholder, cfg.Placeholder)
	assert.Equal(t, style.DefaultTheme(), cfg.Theme())
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(NewViper(), path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := Load(NewViper(), path, true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
strict = true
placeholder = "nobody"

[styles.branch]
color = "yellow"
`)

	cfg, err := Load(NewViper(), path, true)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, "nobody", cfg.Placeholder)
	assert.Equal(t, "yellow", cfg.Styles.Branch.Color)
	assert.True(t, cfg.Styles.Branch.Bold, "unset keys keep their defaults")
	assert.Equal(t, "green", cfg.Styles.Name.Color)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "strict = = true")

	_, err := Load(NewViper(), path, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_UnknownColor(t *testing.T) {
	path := writeConfig(t, "[styles.dirty]\ncolor = \"mauve\"\n")

	_, err := Load(NewViper(), path, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")
}

func TestLoad_UnknownColorNamesRole(t *testing.T) {
	t.Setenv("PS1_STYLES_BRANCH_COLOR", "teal")

	_, err := Load(NewViper(), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style branch")
	assert.Contains(t, err.Error(), "teal")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "discover = true\n[styles.name]\ncolor = \"cyan\"\n")
	t.Setenv("PS1_DISCOVER", "false")
	t.Setenv("PS1_STYLES_NAME_COLOR", "magenta")
	t.Setenv("PS1_STYLES_NAME_BOLD", "false")

	cfg, err := Load(NewViper(), path, true)
	require.NoError(t, err)

	assert.False(t, cfg.Discover)
	assert.Equal(t, StyleConfig{Color: "magenta", Bold: false}, cfg.Styles.Name)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFile)
	cfg := Default()
	cfg.NoColor = true
	cfg.Styles.Clean.Color = "hi-green"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(NewViper(), path, true)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppDir, ConfigFile), path)
}

func TestDefaultPath_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/alice")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/.config/ps1/config.toml", path)
}

func TestPolicy(t *testing.T) {
	cfg := Default()
	cfg.Strict = true

	assert.Equal(t, core.Policy{Strict: true, Placeholder: core.DefaultPlaceholder}, cfg.Policy())
}
