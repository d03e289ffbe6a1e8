// Package styles contains Lip Gloss style definitions for the preview UI
// chrome. These style the frame around the theme being previewed, not the
// theme content itself, which always renders with its own resolved colors.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title line: active theme name and tier.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// Section headers inside the preview body.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// Palette entries the theme does not define at the shown tier.
	AbsentStyle = lipgloss.NewStyle().Faint(true)

	// Activation failures and other inline errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// Diff output markers.
	DiffAddedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Swatch renders a block of background color for the given hex value.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
