package cmd

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
	"github.com/WhatDothLife/emacs-doom-themes/internal/ui/styles"
)

var diffCmd = &cobra.Command{
	Use:   "diff <theme-a> <theme-b>",
	Short: "Compare the resolved palettes of two presets",
	Long: `Compare two presets by resolving their full palettes at a display tier
and diffing the results line by line.

Examples:
  doomtheme diff doom-one doom-nord
  doomtheme diff doom-one doom-dracula --tier 16`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	tier, err := displayTier()
	if err != nil {
		return err
	}

	left, err := paletteDump(args[0], tier)
	if err != nil {
		return err
	}
	right, err := paletteDump(args[1], tier)
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "--- %s\n+++ %s\n", args[0], args[1])
	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(out, styles.DiffAddedStyle.Render("+ "+line))
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(out, styles.DiffRemovedStyle.Render("- "+line))
			case diffmatchpatch.DiffEqual:
				fmt.Fprintln(out, "  "+line)
			}
		}
	}
	return nil
}

// paletteDump renders a preset's resolved palette as one "name value" line
// per color, in declaration order.
func paletteDump(name string, tier int) (string, error) {
	preset, ok := theme.Presets[name]
	if !ok {
		return "", fmt.Errorf("unknown theme %q (run 'doomtheme themes' to list presets)", name)
	}
	registry := theme.NewRegistry()
	if err := registry.Activate(preset); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, colorName := range registry.Names() {
		hex, ok := registry.Resolve(colorName, tier)
		if !ok {
			hex = "(absent)"
		}
		fmt.Fprintf(&b, "%-24s %s\n", colorName, hex)
	}
	return b.String(), nil
}

func splitDiffLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
