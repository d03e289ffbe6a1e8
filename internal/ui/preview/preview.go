// Package preview provides the interactive theme preview TUI: palette
// swatches and face samples for the active theme, with live switching.
package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/WhatDothLife/emacs-doom-themes/internal/capability"
	"github.com/WhatDothLife/emacs-doom-themes/internal/faces"
	"github.com/WhatDothLife/emacs-doom-themes/internal/log"
	"github.com/WhatDothLife/emacs-doom-themes/internal/pubsub"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
	"github.com/WhatDothLife/emacs-doom-themes/internal/ui/styles"
)

// tierCycle is the order the tier toggle walks through.
var tierCycle = []int{
	capability.TierTrueColor,
	capability.Tier256,
	capability.Tier16,
	capability.TierMono,
}

func tierLabel(tier int) string {
	switch tier {
	case capability.TierTrueColor:
		return "truecolor"
	case capability.Tier256:
		return "256"
	case capability.Tier16:
		return "16"
	case capability.TierMono:
		return "mono"
	default:
		return fmt.Sprintf("%d", tier)
	}
}

// keyMap defines the preview key bindings.
type keyMap struct {
	NextTheme key.Binding
	PrevTheme key.Binding
	NextTier  key.Binding
	Faces     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev theme"),
		),
		NextTier: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle tier"),
		),
		Faces: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle faces"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.NextTier, k.Faces, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.PrevTheme},
		{k.NextTier, k.Faces},
		{k.Help, k.Quit},
	}
}

// Model is the preview TUI state.
type Model struct {
	registry  *theme.Registry
	mapper    *faces.Mapper
	presets   []string
	presetIdx int
	tierIdx   int
	showFaces bool
	width     int
	height    int
	keys      keyMap
	help      help.Model
	listener  *pubsub.ContinuousListener[pubsub.ThemeChange]
	errMsg    string
}

// Options configures a preview model.
type Options struct {
	Tier      int
	ShowFaces bool
	// Changes carries externally triggered theme changes (config reload).
	// May be nil.
	Changes *pubsub.ContinuousListener[pubsub.ThemeChange]
}

// New creates a preview over the given registry and face mapper. The
// registry is expected to have a theme active already.
func New(registry *theme.Registry, mapper *faces.Mapper, opts Options) Model {
	presets := theme.PresetNames()
	presetIdx := 0
	for i, name := range presets {
		if name == registry.ThemeName() {
			presetIdx = i
		}
	}
	tierIdx := 0
	for i, tier := range tierCycle {
		if tier == opts.Tier {
			tierIdx = i
		}
	}
	return Model{
		registry:  registry,
		mapper:    mapper,
		presets:   presets,
		presetIdx: presetIdx,
		tierIdx:   tierIdx,
		showFaces: opts.ShowFaces,
		keys:      defaultKeyMap(),
		help:      help.New(),
		listener:  opts.Changes,
	}
}

// Tier returns the currently displayed tier.
func (m Model) Tier() int {
	return tierCycle[m.tierIdx]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.listener != nil {
		return m.listener.Listen()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pubsub.Event[pubsub.ThemeChange]:
		// Theme changed behind our back (config reload). Snap to it.
		for i, name := range m.presets {
			if name == msg.Payload.Theme {
				m.presetIdx = i
			}
		}
		log.Debug(log.CatUI, "Preview picked up theme change", "theme", msg.Payload.Theme)
		if m.listener != nil {
			return m, m.listener.Listen()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTheme):
			return m.switchTheme(1), nil
		case key.Matches(msg, m.keys.PrevTheme):
			return m.switchTheme(-1), nil
		case key.Matches(msg, m.keys.NextTier):
			m.tierIdx = (m.tierIdx + 1) % len(tierCycle)
			return m, nil
		case key.Matches(msg, m.keys.Faces):
			m.showFaces = !m.showFaces
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m Model) switchTheme(delta int) Model {
	m.presetIdx = (m.presetIdx + delta + len(m.presets)) % len(m.presets)
	name := m.presets[m.presetIdx]
	if err := m.registry.Activate(theme.Presets[name]); err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.errMsg = ""
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	tier := m.Tier()

	title := styles.TitleStyle.
		Render(fmt.Sprintf("%s  (tier: %s)", m.registry.ThemeName(), tierLabel(tier)))

	sections := []string{title, "", m.renderSwatches(tier)}
	if m.showFaces {
		sections = append(sections, "", m.renderFaces(tier))
	}
	if m.errMsg != "" {
		sections = append(sections, "", styles.ErrorStyle.Render(m.errMsg))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

const swatchColumns = 3

// renderSwatches draws the palette as name/swatch/hex cells in a grid.
func (m Model) renderSwatches(tier int) string {
	names := m.registry.Names()
	nameWidth := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > nameWidth {
			nameWidth = w
		}
	}

	cells := make([]string, 0, len(names))
	for _, name := range names {
		padded := runewidth.FillRight(name, nameWidth)
		color, ok := m.registry.Resolve(name, tier)
		if !ok {
			cells = append(cells, fmt.Sprintf("%s %s", padded, styles.AbsentStyle.Render("(absent)")))
			continue
		}
		cells = append(cells, fmt.Sprintf("%s %s %s", padded, styles.Swatch(color), color))
	}

	var rows []string
	for i := 0; i < len(cells); i += swatchColumns {
		end := i + swatchColumns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, strings.Join(cells[i:end], "   "))
	}
	return strings.Join(rows, "\n")
}

// renderFaces draws one sample line per face, in its resolved style.
func (m Model) renderFaces(tier int) string {
	resolved := m.mapper.ResolveAll(context.Background(), tier)
	lines := make([]string, 0, len(resolved)+1)
	lines = append(lines, styles.HeaderStyle.Render("Faces"))
	for _, face := range resolved {
		sample := face.Style().Render("The quick brown fox")
		lines = append(lines, fmt.Sprintf("%s %s", runewidth.FillRight(face.Name, 20), sample))
	}
	return strings.Join(lines, "\n")
}
