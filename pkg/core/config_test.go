package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.False(t, cfg.Settings.SortFields)
	assert.Contains(t, cfg.Settings.Exclude, "**/migrations/**")
	assert.Equal(t, "raise", cfg.Settings.OnUnresolved)
}

func TestConfigShouldExclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.Exclude = []string{"vendor/*", "*.generated.py"}

	assert.True(t, cfg.ShouldExclude("vendor/models.py"))
	assert.True(t, cfg.ShouldExclude("file.generated.py"))
	assert.False(t, cfg.ShouldExclude("models/sale.py"))
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".osort.yaml")

	configContent := `version: 1
settings:
  sort_fields: true
  exclude:
    - "legacy/**"
  on_unresolved: ignore
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.True(t, cfg.Settings.SortFields)
	assert.Contains(t, cfg.Settings.Exclude, "legacy/**")
	assert.Equal(t, "ignore", cfg.Settings.OnUnresolved)
}

func TestFindConfig(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "addons", "sale")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	configPath := filepath.Join(tmpDir, ".osort.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1"), 0644))

	found, err := FindConfig(subDir)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFindConfig_None(t *testing.T) {
	tmpDir := t.TempDir()

	found, err := FindConfig(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMergeConfigs(t *testing.T) {
	base := DefaultConfig()

	override := &Config{
		Version: 1,
		Settings: SettingsConfig{
			SortFields: true,
			Exclude:    []string{"custom/**"},
		},
	}

	result := MergeConfigs(base, override)

	assert.True(t, result.Settings.SortFields)
	assert.Equal(t, []string{"custom/**"}, result.Settings.Exclude)
	// Policy fields left unset by override fall back to base's.
	assert.Equal(t, "raise", result.Settings.OnUnresolved)
}

func TestLoadConfigWithDefaults_NoFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfigWithDefaults(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Settings.Exclude, cfg.Settings.Exclude)
}

func TestLoadConfigWithDefaults_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".osort.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("settings:\n  sort_fields: true\n"), 0644))

	cfg, err := LoadConfigWithDefaults(tmpDir)
	require.NoError(t, err)
	assert.True(t, cfg.Settings.SortFields)
}
