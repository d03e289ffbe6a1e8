package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/WhatDothLife/emacs-doom-themes/internal/capability"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
	"github.com/WhatDothLife/emacs-doom-themes/internal/ui/markdown"
)

const themesOutputWidth = 80

var themesPlain bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	Long: `List the built-in theme presets with their key colors.

The configured preset is marked as active. Use --plain for output without
markdown styling, suitable for piping.

Examples:
  doomtheme themes
  doomtheme themes --plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := themesDocument()

		if themesPlain {
			fmt.Fprint(cmd.OutOrStdout(), wordwrap.String(doc, themesOutputWidth))
			return nil
		}

		renderer, err := markdown.New(themesOutputWidth, cfg.UI.MarkdownStyle)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := renderer.Render(doc)
		if err != nil {
			return fmt.Errorf("rendering theme list: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	themesCmd.Flags().BoolVar(&themesPlain, "plain", false, "plain text output without markdown styling")
	rootCmd.AddCommand(themesCmd)
}

// themesDocument builds a markdown listing of every preset.
func themesDocument() string {
	var b strings.Builder
	b.WriteString("# Themes\n\n")

	for _, name := range theme.PresetNames() {
		preset := theme.Presets[name]

		marker := ""
		if name == cfg.Theme.Preset {
			marker = " (active)"
		}
		fmt.Fprintf(&b, "## %s%s\n\n", name, marker)
		fmt.Fprintf(&b, "%d colors", len(preset.Colors))

		registry := theme.NewRegistry()
		if err := registry.Activate(preset); err != nil {
			fmt.Fprintf(&b, " (failed to activate: %v)\n\n", err)
			continue
		}
		b.WriteString("\n\n")

		for _, key := range []string{"bg", "fg", "highlight", "red", "green", "blue"} {
			if hex, ok := registry.Resolve(key, capability.TierTrueColor); ok {
				fmt.Fprintf(&b, "- `%s` %s\n", key, hex)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
