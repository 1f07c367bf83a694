// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/palvaren/tock-cli/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyTimerComplete displays a notification when a countdown finishes.
func (n *Notifier) NotifyTimerComplete(label, duration string) error {
	title := "⏰ Time's up!"
	message := fmt.Sprintf("Your %s timer is done.", duration)
	if label != "" {
		message = fmt.Sprintf("%s — %s finished.", label, duration)
	}
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
