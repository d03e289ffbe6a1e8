// Package config provides configuration types and defaults for doomtheme.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/WhatDothLife/emacs-doom-themes/internal/blend"
	"github.com/WhatDothLife/emacs-doom-themes/internal/log"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
)

// Config holds all configuration options for doomtheme.
type Config struct {
	AutoReload bool            `mapstructure:"auto_reload"` // Re-apply theme when the config file changes
	UI         UIConfig        `mapstructure:"ui"`
	Theme      ThemeConfig     `mapstructure:"theme"`
	Tracing    TracingConfig   `mapstructure:"tracing"`
	Flags      map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle   string `mapstructure:"markdown_style"`    // "dark" (default) or "light"
	ShowFaceSamples bool   `mapstructure:"show_face_samples"` // Render face samples in the preview
	Tier            string `mapstructure:"tier"`              // auto (default), truecolor, 256, 16, mono
}

// ThemeConfig holds theme selection and customization options.
type ThemeConfig struct {
	// Preset names the built-in theme to load. Empty selects doom-one.
	Preset string `mapstructure:"preset"`

	// EnableBold and EnableItalic override the preset's attribute flags.
	// nil keeps the preset default.
	EnableBold   *bool `mapstructure:"enable_bold"`
	EnableItalic *bool `mapstructure:"enable_italic"`

	// Colors overrides individual palette entries with hex literals.
	// Example:
	//   colors:
	//     highlight: "#ff79c6"
	Colors map[string]string `mapstructure:"colors"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/doomtheme/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultPreset is the theme loaded when the config names none.
const DefaultPreset = "doom-one"

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "doomtheme", "traces", "traces.jsonl")
}

// Resolve materializes the configured theme: the preset with color
// overrides and attribute flags applied. Unknown presets and unknown or
// malformed override colors are errors.
func (t ThemeConfig) Resolve() (theme.Theme, error) {
	name := t.Preset
	if name == "" {
		name = DefaultPreset
	}
	preset, ok := theme.Presets[name]
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme preset %q (available: %v)", name, theme.PresetNames())
	}

	result := preset
	if len(t.Colors) > 0 {
		defined := make(map[string]int, len(preset.Colors))
		result.Colors = make([]theme.Def, len(preset.Colors))
		copy(result.Colors, preset.Colors)
		for i, def := range result.Colors {
			defined[def.Name] = i
		}

		// Apply overrides in name order so errors are deterministic.
		names := make([]string, 0, len(t.Colors))
		for n := range t.Colors {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			c := t.Colors[n]
			if !blend.Valid(c) {
				return theme.Theme{}, fmt.Errorf("theme.colors.%s: unrecognized color %q", n, c)
			}
			i, ok := defined[n]
			if !ok {
				return theme.Theme{}, fmt.Errorf("theme.colors.%s: preset %q defines no such color", n, name)
			}
			result.Colors[i] = theme.Def{Name: n, Expr: theme.Hex(c)}
		}
	}

	if t.EnableBold != nil {
		result.EnableBold = *t.EnableBold
	}
	if t.EnableItalic != nil {
		result.EnableItalic = *t.EnableItalic
	}
	return result, nil
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	switch ui.Tier {
	case "", "auto", "truecolor", "gui", "256", "16", "mono":
	default:
		return fmt.Errorf("ui.tier must be \"auto\", \"truecolor\", \"256\", \"16\", or \"mono\", got %q", ui.Tier)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			MarkdownStyle:   "dark",
			ShowFaceSamples: true,
			Tier:            "auto",
		},
		Theme: ThemeConfig{
			Preset: DefaultPreset,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# doomtheme Configuration

# Re-apply the theme automatically when this file changes
auto_reload: true

# UI settings
ui:
  # markdown_style: dark   # Markdown rendering style: "dark" (default) or "light"
  show_face_samples: true  # Render face samples in the preview
  # tier: auto             # Display tier: auto (default), truecolor, 256, 16, mono

# Theme configuration
theme:
  # Pick a preset (run 'doomtheme themes' to see all of them):
  preset: doom-one
  #
  # Available presets:
  #   doom-one      - Flagship dark theme, ported from Atom One Dark
  #   doom-dracula  - Classic Dracula palette
  #   doom-nord     - Arctic, north-bluish palette
  #
  # Attribute rendering (defaults come from the preset):
  # enable_bold: true
  # enable_italic: true
  #
  # Override individual palette colors with hex literals:
  # colors:
  #   highlight: "#ff79c6"
  #   region: "#3e4451"

# Tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/doomtheme/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
