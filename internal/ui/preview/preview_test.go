package preview

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/WhatDothLife/emacs-doom-themes/internal/capability"
	"github.com/WhatDothLife/emacs-doom-themes/internal/faces"
	"github.com/WhatDothLife/emacs-doom-themes/internal/pubsub"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	registry := theme.NewRegistry()
	require.NoError(t, registry.Activate(theme.Presets["doom-one"]))
	mapper := faces.NewMapper(registry, faces.DefaultSpecs())
	return New(registry, mapper, Options{Tier: capability.TierTrueColor})
}

// updateModel is a helper to update the model and return the typed Model.
func updateModel(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := m.Update(msg)
	typed, ok := result.(Model)
	require.True(t, ok)
	return typed
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_ShowsThemeAndSwatches(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	require.Contains(t, view, "doom-one")
	require.Contains(t, view, "truecolor")
	require.Contains(t, view, "#282c34") // bg
	require.Contains(t, view, "#ff6c6b") // red
}

func TestUpdate_NextThemeActivates(t *testing.T) {
	m := newTestModel(t)

	// Presets are sorted, so doom-one wraps around to doom-dracula.
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Contains(t, m.View(), "doom-dracula")
	require.Contains(t, m.View(), "#282a36")

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Contains(t, m.View(), "doom-nord")
	require.Contains(t, m.View(), "#2e3440")

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Contains(t, m.View(), "doom-dracula")
}

func TestUpdate_ThemeCyclesWrapAround(t *testing.T) {
	m := newTestModel(t)

	for range theme.PresetNames() {
		m = updateModel(t, m, keyMsg('l'))
	}
	require.Contains(t, m.View(), "doom-one")
}

func TestUpdate_TierCycle(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, capability.TierTrueColor, m.Tier())

	m = updateModel(t, m, keyMsg('t'))
	require.Equal(t, capability.Tier256, m.Tier())
	require.Contains(t, m.View(), "tier: 256")

	m = updateModel(t, m, keyMsg('t'))
	m = updateModel(t, m, keyMsg('t'))
	require.Equal(t, capability.TierMono, m.Tier())

	m = updateModel(t, m, keyMsg('t'))
	require.Equal(t, capability.TierTrueColor, m.Tier())
}

func TestView_AbsentTierElementRendered(t *testing.T) {
	m := newTestModel(t)

	// doom-one's bg has no 16-color value.
	m = updateModel(t, m, keyMsg('t'))
	m = updateModel(t, m, keyMsg('t'))
	require.Equal(t, capability.Tier16, m.Tier())
	require.Contains(t, m.View(), "(absent)")
}

func TestUpdate_ToggleFaces(t *testing.T) {
	m := newTestModel(t)
	require.NotContains(t, m.View(), "Faces")

	m = updateModel(t, m, keyMsg('f'))
	view := m.View()
	require.Contains(t, view, "Faces")
	require.Contains(t, view, "The quick brown fox")

	m = updateModel(t, m, keyMsg('f'))
	require.NotContains(t, m.View(), "Faces")
}

func TestUpdate_ThemeChangeEventSnapsPreset(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := theme.NewRegistry()
	require.NoError(t, registry.Activate(theme.Presets["doom-one"]))
	mapper := faces.NewMapper(registry, faces.DefaultSpecs())

	broker := pubsub.NewBroker[pubsub.ThemeChange]()
	defer broker.Close()
	listener := pubsub.NewContinuousListener(ctx, broker)

	m := New(registry, mapper, Options{
		Tier:    capability.TierTrueColor,
		Changes: listener,
	})

	// Simulate a config reload activating another preset externally.
	require.NoError(t, registry.Activate(theme.Presets["doom-dracula"]))
	event := pubsub.Event[pubsub.ThemeChange]{
		Type:    pubsub.ReloadedEvent,
		Payload: pubsub.ThemeChange{Theme: "doom-dracula", ActivationID: registry.ActivationID()},
	}

	result, cmd := m.Update(event)
	m = result.(Model)
	require.NotNil(t, cmd, "listener must be re-armed")
	require.Contains(t, m.View(), "doom-dracula")
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))
	tm.Send(keyMsg('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
