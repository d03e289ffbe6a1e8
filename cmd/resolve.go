package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/WhatDothLife/emacs-doom-themes/internal/capability"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
	"github.com/WhatDothLife/emacs-doom-themes/internal/tracing"
	"github.com/WhatDothLife/emacs-doom-themes/internal/ui/styles"
)

var (
	resolveTheme string
	resolveAll   bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [color]",
	Short: "Resolve palette colors at a display tier",
	Long: `Resolve a palette color name to its concrete value at a display tier.

Without a color argument, the whole palette is printed. Colors that the
theme does not define for the tier are reported as absent. The tier defaults
to the terminal's detected capability; override it with --tier.

Examples:
  doomtheme resolve highlight
  doomtheme resolve highlight --tier 16
  doomtheme resolve --theme doom-nord --tier mono
  doomtheme resolve bg --all-tiers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTheme, "theme", "", "preset to resolve against (default: configured preset)")
	resolveCmd.Flags().BoolVar(&resolveAll, "all-tiers", false, "show the color at every tier")
	rootCmd.AddCommand(resolveCmd)
}

// resolveRegistry activates the preset named by --theme, or the configured
// theme including its color overrides when the flag is unset.
func resolveRegistry(ctx context.Context, provider *tracing.Provider) (*theme.Registry, error) {
	if resolveTheme == "" {
		return activateConfigured(ctx, provider)
	}
	preset, ok := theme.Presets[resolveTheme]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (run 'doomtheme themes' to list presets)", resolveTheme)
	}
	registry := theme.NewRegistry()
	if err := registry.Activate(preset); err != nil {
		return nil, err
	}
	return registry, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	tier, err := displayTier()
	if err != nil {
		return err
	}

	provider, err := tracing.NewProvider(tracingConfig())
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(cmd.Context()) }()

	registry, err := resolveRegistry(cmd.Context(), provider)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range registry.Names() {
			printResolved(cmd, registry, name, tier)
		}
		return nil
	}

	name := args[0]
	_, span := provider.Tracer().Start(cmd.Context(), tracing.SpanResolve)
	span.SetAttributes(
		attribute.String(tracing.AttrTheme, registry.ThemeName()),
		attribute.String(tracing.AttrColorName, name),
		attribute.Int(tracing.AttrTier, tier),
	)
	defer span.End()

	if resolveAll {
		for _, t := range []int{capability.TierTrueColor, capability.Tier256, capability.Tier16, capability.TierMono} {
			printResolved(cmd, registry, name, t)
		}
		return nil
	}

	printResolved(cmd, registry, name, tier)
	return nil
}

func printResolved(cmd *cobra.Command, registry *theme.Registry, name string, tier int) {
	label := fmt.Sprintf("%-24s %-10s", name, tierName(tier))
	hex, ok := registry.Resolve(name, tier)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (absent)\n", label)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", label, hex, styles.Swatch(hex))
}

func tierName(tier int) string {
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
