// Package cmd provides the CLI commands for the tock application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/palvaren/tock-cli/internal/adapters/notification"
	"github.com/palvaren/tock-cli/internal/adapters/storage"
	"github.com/palvaren/tock-cli/internal/adapters/tui"
	"github.com/palvaren/tock-cli/internal/config"
	"github.com/palvaren/tock-cli/internal/domain"
	"github.com/palvaren/tock-cli/internal/ports"
	"github.com/palvaren/tock-cli/internal/render"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	styleFlag   string
	fontFlag    string
	glyphsFlag  bool
	verboseFlag bool

	// Global dependencies
	appConfig      *config.Config
	storageAdapter ports.Storage
	notifier       *notification.Notifier
	logger         *log.Logger
)

// rootCmd represents the base command. Run bare, it shows a live clock.
var rootCmd = &cobra.Command{
	Use:   "tock",
	Short: "tock - A terminal clock and countdown timer",
	Long: `tock renders a live clock or countdown timer in your terminal,
in large block digits, as an ASCII analog face, or as plain text.

Run "tock" with no arguments for a clock; "tock timer 25m" for a countdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runClock,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(setupSignalHandler()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&styleFlag, "style", "s", "", "Display style: digital, analog, text")
	rootCmd.PersistentFlags().StringVarP(&fontFlag, "font", "f", "", "Block-digit font: block, slim, dot")
	rootCmd.PersistentFlags().BoolVarP(&glyphsFlag, "glyphs", "g", false, "Use the extended glyph set for the analog face")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("tock\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices loads the config and opens the supporting adapters.
func initializeServices() error {
	level := log.WarnLevel
	if verboseFlag {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	var err error
	appConfig, err = config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		appConfig = config.DefaultConfig()
	}

	notifier = notification.New(&appConfig.Notifications)

	dbPath := config.GetDBPath(appConfig)
	if err := os.MkdirAll(appConfig.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	storageAdapter, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Debug("storage opened", "path", dbPath)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}

// displaySettings resolves the effective style, font and glyph set from
// flags, falling back to the config file.
func displaySettings(cmd *cobra.Command) (domain.Style, render.Font, domain.GlyphSet, error) {
	styleName := appConfig.Style
	if styleFlag != "" {
		styleName = styleFlag
	}
	style, err := domain.ValidateStyle(styleName)
	if err != nil {
		return "", "", 0, err
	}

	fontName := appConfig.Font
	if fontFlag != "" {
		fontName = fontFlag
	}
	font, err := render.ValidateFont(fontName)
	if err != nil {
		return "", "", 0, err
	}

	glyphs := domain.GlyphsStandard
	if appConfig.ExtendedGlyphs {
		glyphs = domain.GlyphsExtended
	}
	if cmd.Flags().Changed("glyphs") {
		glyphs = domain.GlyphsStandard
		if glyphsFlag {
			glyphs = domain.GlyphsExtended
		}
	}

	return style, font, glyphs, nil
}

// runFirstRunSetup shows the one-shot style picker and persists the choice.
func runFirstRunSetup() {
	items := []tui.PickerItem{
		{Label: "Digital", Desc: "Large block digits"},
		{Label: "Analog", Desc: "ASCII clock face"},
		{Label: "Text", Desc: "Plain HH:MM:SS"},
	}
	result := tui.RunPicker("How should tock display the time?", items)
	if !result.Aborted {
		appConfig.Style = []string{"digital", "analog", "text"}[result.Index]
	}
	appConfig.FirstRun = false
	if err := config.Save(appConfig); err != nil {
		logger.Warn("failed to save config", "err", err)
	}
}

// runClock shows the live clock until quit.
func runClock(cmd *cobra.Command, args []string) error {
	if appConfig.FirstRun {
		runFirstRunSetup()
	}

	style, font, glyphs, err := displaySettings(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Style:  style,
		Font:   font,
		Glyphs: glyphs,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	persistSettings(final)
	return nil
}

// persistSettings writes runtime style/font/glyph changes back to the config
// file so they stick for the next launch.
func persistSettings(final tea.Model) {
	fm, ok := final.(tui.Model)
	if !ok {
		return
	}
	changed := false
	if s := string(fm.Style()); s != appConfig.Style {
		appConfig.Style = s
		changed = true
	}
	if f := string(fm.Font()); f != appConfig.Font {
		appConfig.Font = f
		changed = true
	}
	if ext := fm.Glyphs() == domain.GlyphsExtended; ext != appConfig.ExtendedGlyphs {
		appConfig.ExtendedGlyphs = ext
		changed = true
	}
	if changed {
		if err := config.Save(appConfig); err != nil {
			logger.Warn("failed to save config", "err", err)
		}
	}
}
