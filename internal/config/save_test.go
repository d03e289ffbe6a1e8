package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func loadThemeSection(t *testing.T, configPath string) ThemeConfig {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg.Theme
}

func TestSaveTheme_NewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveTheme(configPath, ThemeConfig{
		Preset: "doom-nord",
		Colors: map[string]string{"highlight": "#88c0d0"},
	})
	require.NoError(t, err)

	got := loadThemeSection(t, configPath)
	require.Equal(t, "doom-nord", got.Preset)
	require.Equal(t, "#88c0d0", got.Colors["highlight"])
}

func TestSaveTheme_PreservesOtherSections(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my config
auto_reload: false

# ui tweaks
ui:
  markdown_style: light

theme:
  preset: doom-one
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0644))

	require.NoError(t, SaveTheme(configPath, ThemeConfig{Preset: "doom-dracula"}))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	// Comments and unrelated sections survive the rewrite.
	require.Contains(t, content, "# my config")
	require.Contains(t, content, "# ui tweaks")
	require.Contains(t, content, "markdown_style: light")
	require.Contains(t, content, "doom-dracula")
	require.NotContains(t, content, "preset: doom-one")

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.False(t, cfg.AutoReload)
	require.Equal(t, "doom-dracula", cfg.Theme.Preset)
}

func TestSaveTheme_AppendsWhenSectionMissing(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("auto_reload: true\n"), 0644))

	require.NoError(t, SaveTheme(configPath, ThemeConfig{Preset: "doom-one"}))

	got := loadThemeSection(t, configPath)
	require.Equal(t, "doom-one", got.Preset)
}

func TestSaveTheme_AttributeFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	off := false

	require.NoError(t, SaveTheme(configPath, ThemeConfig{
		Preset:     "doom-one",
		EnableBold: &off,
	}))

	got := loadThemeSection(t, configPath)
	require.NotNil(t, got.EnableBold)
	require.False(t, *got.EnableBold)
	require.Nil(t, got.EnableItalic)
}

func TestSavePreset(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	current := ThemeConfig{
		Preset: "doom-one",
		Colors: map[string]string{"region": "#3e4451"},
	}

	require.NoError(t, SavePreset(configPath, "doom-nord", current))

	got := loadThemeSection(t, configPath)
	require.Equal(t, "doom-nord", got.Preset)
	require.Equal(t, "#3e4451", got.Colors["region"], "overrides survive a preset switch")
}

func TestSaveColorOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveColorOverride(configPath, "highlight", "#ff79c6", ThemeConfig{Preset: "doom-one"}))

	got := loadThemeSection(t, configPath)
	require.Equal(t, "#ff79c6", got.Colors["highlight"])
}

func TestSaveTheme_NoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveTheme(configPath, ThemeConfig{Preset: "doom-one"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the config file should remain")
}
