package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/palvaren/tock-cli/internal/adapters/tui"
	"github.com/palvaren/tock-cli/internal/domain"
)

var timerCmd = &cobra.Command{
	Use:   "timer <duration> [label]",
	Short: "Count a duration down to zero",
	Long: `Start a countdown timer. Duration formats: 30s, 5m, 30m, 1h, 1h30m.

Run without arguments to be prompted for a duration.

Examples:
  tock timer 25m
  tock timer 1h30m "deep work"
  tock timer 10m --style analog`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTimer,
}

func runTimer(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		result := tui.RunTextPrompt("Duration:", "e.g. 25m or 1h30m")
		if result.Aborted || result.Value == "" {
			return nil
		}
		args = []string{result.Value}
	}

	duration, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	if duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}

	var label string
	if len(args) > 1 {
		label = args[1]
	}

	style, font, glyphs, err := displaySettings(cmd)
	if err != nil {
		return err
	}

	countdown := domain.NewCountdown(duration, label)

	m := tui.NewModel(tui.Options{
		Style:     style,
		Font:      font,
		Glyphs:    glyphs,
		Label:     label,
		Countdown: countdown,
		OnComplete: func(c *domain.Countdown) {
			recordCompletion(cmd.Context(), c)
		},
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	persistSettings(final)

	if fm, ok := final.(tui.Model); ok && fm.Completed() {
		if label != "" {
			fmt.Printf("tock: %s complete (%s)\n", formatMinutes(duration), label)
		} else {
			fmt.Printf("tock: %s complete\n", formatMinutes(duration))
		}
	}
	return nil
}

// recordCompletion fires the desktop notification and appends the finished
// countdown to history.
func recordCompletion(ctx context.Context, c *domain.Countdown) {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := notifier.NotifyTimerComplete(c.Label, formatMinutes(c.Duration)); err != nil {
		logger.Warn("notification failed", "err", err)
	}

	record := domain.NewTimerRecord(c)
	if err := storageAdapter.History().Save(ctx, record); err != nil {
		logger.Warn("failed to record timer", "err", err)
	}
}

// formatMinutes formats a duration as a human-friendly string like "25m" or "1h30m".
func formatMinutes(d time.Duration) string {
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
