package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/WhatDothLife/emacs-doom-themes/internal/capability"
	"github.com/WhatDothLife/emacs-doom-themes/internal/config"
	"github.com/WhatDothLife/emacs-doom-themes/internal/faces"
	"github.com/WhatDothLife/emacs-doom-themes/internal/flags"
	"github.com/WhatDothLife/emacs-doom-themes/internal/log"
	"github.com/WhatDothLife/emacs-doom-themes/internal/pubsub"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
	"github.com/WhatDothLife/emacs-doom-themes/internal/tracing"
	"github.com/WhatDothLife/emacs-doom-themes/internal/ui/preview"
	"github.com/WhatDothLife/emacs-doom-themes/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	tierFlag  string
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "doomtheme",
	Short:   "A terminal preview and resolver for doom color themes",
	Long: `Activate, preview, and inspect doom color themes in the terminal.

Running without a subcommand opens an interactive preview of the configured
theme: palette swatches, face samples, and live switching between presets.
The preview re-applies the theme when the config file changes.`,
	Version: version,
	RunE:    runPreview,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/doomtheme/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&tierFlag, "tier", "t", "",
		"display tier: auto, truecolor, 256, 16, mono (default: config, then auto)")
}

func defaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "doomtheme", "config.yaml")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.show_face_samples", defaults.UI.ShowFaceSamples)
	viper.SetDefault("ui.tier", defaults.UI.Tier)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .doomtheme.yaml (current directory)
		// 2. ~/.config/doomtheme/config.yaml (user config)
		if _, err := os.Stat(".doomtheme.yaml"); err == nil {
			viper.SetConfigFile(".doomtheme.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "doomtheme"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine, the defaults stand on their own.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// displayTier resolves the effective tier from flag, then config.
func displayTier() (int, error) {
	if tierFlag != "" {
		return capability.Parse(tierFlag)
	}
	return capability.Parse(cfg.UI.Tier)
}

// activateConfigured builds a registry and activates the configured theme,
// recording the activation as a span.
func activateConfigured(ctx context.Context, provider *tracing.Provider) (*theme.Registry, error) {
	thm, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}

	_, span := provider.Tracer().Start(ctx, tracing.SpanActivate)
	defer span.End()
	span.SetAttributes(
		attribute.String(tracing.AttrTheme, thm.Name),
		attribute.Int(tracing.AttrColorCount, len(thm.Colors)),
	)

	registry := theme.NewRegistry()
	if err := registry.Activate(thm); err != nil {
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		return nil, err
	}
	span.SetAttributes(attribute.String(tracing.AttrActivationID, registry.ActivationID()))
	return registry, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	if debugFlag || os.Getenv("DOOMTHEME_DEBUG") != "" {
		logPath := os.Getenv("DOOMTHEME_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "doomtheme")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "doomtheme starting", "configFile", viper.ConfigFileUsed())
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tier, err := displayTier()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	provider, err := tracing.NewProvider(tracingConfig())
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()
	if provider.Enabled() {
		log.Debug(log.CatTrace, "Tracing initialized", "exporter", cfg.Tracing.Exporter)
	}

	registry, err := activateConfigured(ctx, provider)
	if err != nil {
		return fmt.Errorf("activating theme: %w", err)
	}

	featureFlags := flags.New(cfg.Flags)
	mapper := faces.NewMapper(registry, faces.DefaultSpecs())
	if featureFlags.Enabled(flags.FlagFaceCacheBypass) {
		mapper = faces.NewUncachedMapper(registry, faces.DefaultSpecs())
	}

	broker := pubsub.NewBroker[pubsub.ThemeChange]()
	defer broker.Close()

	var w *watcher.Watcher
	if cfg.AutoReload && viper.ConfigFileUsed() != "" {
		w, err = watcher.New(watcher.DefaultConfig(viper.ConfigFileUsed()))
		if err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("watching config: %w", err)
		}
		go reloadLoop(ctx, provider, registry, broker, changes)
	}

	model := preview.New(registry, mapper, preview.Options{
		Tier:      tier,
		ShowFaces: cfg.UI.ShowFaceSamples,
		Changes:   pubsub.NewContinuousListener(ctx, broker),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && runErr == nil {
			runErr = stopErr
		}
	}
	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// reloadLoop re-reads the config and re-activates the theme whenever the
// watcher reports a change. Activation failures keep the old theme.
func reloadLoop(
	ctx context.Context,
	provider *tracing.Provider,
	registry *theme.Registry,
	broker *pubsub.Broker[pubsub.ThemeChange],
	changes <-chan struct{},
) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
		}

		_, span := provider.Tracer().Start(ctx, tracing.SpanConfigReload)
		span.AddEvent(tracing.EventReloadTriggered)

		if err := viper.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Reload: re-reading config failed", err)
			span.End()
			continue
		}
		var fresh config.Config
		if err := viper.Unmarshal(&fresh); err != nil {
			log.ErrorErr(log.CatConfig, "Reload: config unmarshal failed", err)
			span.End()
			continue
		}
		thm, err := fresh.Theme.Resolve()
		if err != nil {
			log.ErrorErr(log.CatConfig, "Reload: theme no longer resolves", err)
			span.End()
			continue
		}
		if err := registry.Activate(thm); err != nil {
			log.ErrorErr(log.CatTheme, "Reload: activation failed, keeping previous theme", err)
			span.End()
			continue
		}
		cfg = fresh

		span.SetAttributes(
			attribute.String(tracing.AttrTheme, thm.Name),
			attribute.String(tracing.AttrActivationID, registry.ActivationID()),
		)
		span.End()

		log.Info(log.CatTheme, "Theme re-applied after config change", "theme", thm.Name)
		broker.Publish(pubsub.ReloadedEvent, pubsub.ThemeChange{
			Theme:        thm.Name,
			ActivationID: registry.ActivationID(),
		})
	}
}

func tracingConfig() tracing.Config {
	filePath := cfg.Tracing.FilePath
	if filePath == "" {
		filePath = config.DefaultTracesFilePath()
	}
	return tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     filePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
