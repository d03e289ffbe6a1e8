package faces

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
)

func newTestMapper(t *testing.T, th theme.Theme) (*Mapper, *theme.Registry) {
	t.Helper()
	registry := theme.NewRegistry()
	require.NoError(t, registry.Activate(th))
	return NewMapper(registry, DefaultSpecs()), registry
}

func TestMapper_ResolveDefaultFace(t *testing.T) {
	m, _ := newTestMapper(t, theme.DoomOne)

	face, ok := m.Resolve(context.Background(), "default", 256)
	require.True(t, ok)
	require.Equal(t, "#bbc2cf", face.Foreground)
	require.Equal(t, "#282c34", face.Background)
	require.False(t, face.Bold)
}

func TestMapper_UnknownFace(t *testing.T) {
	m, _ := newTestMapper(t, theme.DoomOne)

	_, ok := m.Resolve(context.Background(), "no-such-face", 256)
	require.False(t, ok)
}

func TestMapper_AbsentColorLeavesChannelUnstyled(t *testing.T) {
	m, _ := newTestMapper(t, theme.DoomOne)

	// doom-one declares no basic-terminal background, so at tier 16 the
	// default face keeps its foreground but drops the background.
	face, ok := m.Resolve(context.Background(), "default", 16)
	require.True(t, ok)
	require.Equal(t, "white", face.Foreground)
	require.Empty(t, face.Background)
}

func TestMapper_AttributeFlags(t *testing.T) {
	m, _ := newTestMapper(t, theme.DoomOne)

	face, ok := m.Resolve(context.Background(), "error", 256)
	require.True(t, ok)
	require.True(t, face.Bold)
	require.Equal(t, "#ff6c6b", face.Foreground)

	face, ok = m.Resolve(context.Background(), "doc-comment", 256)
	require.True(t, ok)
	require.True(t, face.Italic)

	face, ok = m.Resolve(context.Background(), "link", 256)
	require.True(t, ok)
	require.True(t, face.Underline)
}

func TestMapper_BoldSuppression(t *testing.T) {
	muted := theme.DoomOne
	muted.EnableBold = false
	muted.EnableItalic = false
	m, _ := newTestMapper(t, muted)

	face, ok := m.Resolve(context.Background(), "error", 256)
	require.True(t, ok)
	require.False(t, face.Bold, "theme disables bold rendering")

	face, ok = m.Resolve(context.Background(), "doc-comment", 256)
	require.True(t, ok)
	require.False(t, face.Italic, "theme disables italic rendering")

	// Underline is not subject to suppression.
	face, ok = m.Resolve(context.Background(), "link", 256)
	require.True(t, ok)
	require.True(t, face.Underline)
}

func TestMapper_ReactivationInvalidatesCachedStyles(t *testing.T) {
	m, registry := newTestMapper(t, theme.DoomOne)

	face, ok := m.Resolve(context.Background(), "default", 256)
	require.True(t, ok)
	require.Equal(t, "#bbc2cf", face.Foreground)

	require.NoError(t, registry.Activate(theme.DoomDracula))

	face, ok = m.Resolve(context.Background(), "default", 256)
	require.True(t, ok)
	require.Equal(t, "#f8f8f2", face.Foreground, "new activation must not serve stale styles")
}

func TestMapper_ResolveAll(t *testing.T) {
	m, _ := newTestMapper(t, theme.DoomNord)

	all := m.ResolveAll(context.Background(), 256)
	require.Len(t, all, len(DefaultSpecs()))
	require.Equal(t, "default", all[0].Name)

	for _, face := range all {
		if face.Name == "region" {
			require.NotEmpty(t, face.Background)
			continue
		}
		require.NotEmpty(t, face.Foreground, "face %q", face.Name)
	}
}

func TestDefaultSpecs_PaletteNamesExistInAllPresets(t *testing.T) {
	for name, preset := range theme.Presets {
		t.Run(name, func(t *testing.T) {
			registry := theme.NewRegistry()
			require.NoError(t, registry.Activate(preset))

			defined := make(map[string]bool)
			for _, n := range registry.Names() {
				defined[n] = true
			}
			for _, spec := range DefaultSpecs() {
				if spec.Foreground != "" {
					require.True(t, defined[spec.Foreground], "face %q foreground %q", spec.Name, spec.Foreground)
				}
				if spec.Background != "" {
					require.True(t, defined[spec.Background], "face %q background %q", spec.Name, spec.Background)
				}
			}
		})
	}
}

func TestFace_Style(t *testing.T) {
	face := Face{
		Name:       "error",
		Foreground: "#ff6c6b",
		Bold:       true,
	}
	style := face.Style()
	require.Equal(t, lipgloss.Color("#ff6c6b"), style.GetForeground())
	require.True(t, style.GetBold())
	require.False(t, style.GetItalic())
}

func TestNewUncachedMapper_ResolvesWithoutMemoization(t *testing.T) {
	registry := theme.NewRegistry()
	require.NoError(t, registry.Activate(theme.DoomOne))
	m := NewUncachedMapper(registry, DefaultSpecs())

	face, ok := m.Resolve(context.Background(), "default", 256)
	require.True(t, ok)
	require.Equal(t, "#bbc2cf", face.Foreground)

	// Repeated lookups recompute and stay consistent.
	again, ok := m.Resolve(context.Background(), "default", 256)
	require.True(t, ok)
	require.Equal(t, face, again)
}
