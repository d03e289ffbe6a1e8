package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.AutoReload)
	require.Equal(t, "doom-one", cfg.Theme.Preset)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.Equal(t, "auto", cfg.UI.Tier)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, 1.0, cfg.Tracing.SampleRate)

	require.NoError(t, cfg.Validate())
}

func TestDefaultConfigTemplate_LoadsAndValidates(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	require.True(t, cfg.AutoReload)
	require.Equal(t, "doom-one", cfg.Theme.Preset)
	require.True(t, cfg.UI.ShowFaceSamples)
	require.NoError(t, cfg.Validate())
}

func TestWriteDefaultConfig_CreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	_, err := os.Stat(configPath)
	require.NoError(t, err)
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{}))
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "light", Tier: "256"}))

	err := ValidateUI(UIConfig{MarkdownStyle: "sepia"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.markdown_style")

	err = ValidateUI(UIConfig{Tier: "plaid"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.tier")
}

func TestValidateTracing(t *testing.T) {
	require.NoError(t, ValidateTracing(TracingConfig{SampleRate: 0.5, Exporter: "stdout"}))
	require.NoError(t, ValidateTracing(TracingConfig{}))

	err := ValidateTracing(TracingConfig{SampleRate: 1.5})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")

	err = ValidateTracing(TracingConfig{Exporter: "carrier-pigeon"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exporter")

	err = ValidateTracing(TracingConfig{Enabled: true, Exporter: "file"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")

	err = ValidateTracing(TracingConfig{Enabled: true, Exporter: "otlp"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "otlp_endpoint")
}

func TestConfig_Validate_SurfacesThemeErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Preset = "doom-nonexistent"
	require.Error(t, cfg.Validate())
}
