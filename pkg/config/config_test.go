// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp directories
// PURPOSE: Test configuration layering: defaults, user file, environment

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/folderize/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.False(t, cfg.Headless, "headless should default to off")
	assert.True(t, cfg.Workspace.Require, "workspace check should default to on")
	assert.Empty(t, cfg.Workspace.Root, "workspace root should default to empty (cwd)")
	assert.True(t, cfg.Trash.Enabled, "trash should default to on")
}

func TestLoad_DefaultsOnly(t *testing.T) {
	// Point the loader at an empty dir so no user file is found
	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UserTomlOverrides(t *testing.T) {
	configDir := t.TempDir()
	userConfig := "[trash]\nenabled = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(userConfig), 0644))

	cfg, err := config.Load(configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Trash.Enabled, "user file should override trash default")
	assert.True(t, cfg.Workspace.Require, "untouched keys keep their defaults")
}

func TestLoad_UserYamlOverrides(t *testing.T) {
	configDir := t.TempDir()
	userConfig := "workspace:\n  require: false\n  root: /work\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(userConfig), 0644))

	cfg, err := config.Load(configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Workspace.Require)
	assert.Equal(t, "/work", cfg.Workspace.Root)
}

func TestLoad_TomlWinsOverYaml(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("headless = true\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("headless: false\n"), 0644))

	cfg, err := config.Load(configDir)

	require.NoError(t, err)
	assert.True(t, cfg.Headless, "config.toml should take precedence over config.yaml")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FOLDERIZE_HEADLESS", "true")
	t.Setenv("FOLDERIZE_WORKSPACE_REQUIRE", "false")

	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.True(t, cfg.Headless, "FOLDERIZE_HEADLESS should flip headless on")
	assert.False(t, cfg.Workspace.Require, "FOLDERIZE_WORKSPACE_REQUIRE should override the file layer")
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[trash]\nenabled = true\n"), 0644))
	t.Setenv("FOLDERIZE_TRASH_ENABLED", "false")

	cfg, err := config.Load(configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Trash.Enabled)
}

func TestLoad_BadUserFile(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("not = [valid"), 0644))

	_, err := config.Load(configDir)

	assert.Error(t, err)
}

func TestRenderDefault(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		out, err := config.RenderDefault("toml")
		require.NoError(t, err)
		assert.Contains(t, out, "[workspace]")
		assert.Contains(t, out, "[trash]")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := config.RenderDefault("yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "workspace:")
		assert.Contains(t, out, "trash:")
	})

	t.Run("empty format defaults to toml", func(t *testing.T) {
		out, err := config.RenderDefault("")
		require.NoError(t, err)
		assert.True(t, strings.Contains(out, "[workspace]"))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := config.RenderDefault("json")
		assert.Error(t, err)
	})
}
