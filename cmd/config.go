package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palvaren/tock-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  `Print the config file location and the effective settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		glyphStatus := "standard"
		if appConfig.ExtendedGlyphs {
			glyphStatus = "extended"
		}
		notifStatus := "off"
		if appConfig.Notifications.Enabled {
			notifStatus = "on"
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    Style:          %s\n", appConfig.Style)
		fmt.Printf("    Font:           %s\n", appConfig.Font)
		fmt.Printf("    Glyph set:      %s\n", glyphStatus)
		fmt.Printf("    Notifications:  %s\n", notifStatus)
		fmt.Printf("    Data dir:       %s\n", appConfig.Storage.DataDir)
		fmt.Println()
		fmt.Printf("  Edit %s to customize.\n", configPath)
		fmt.Println()

		return nil
	},
}
