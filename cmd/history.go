package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed timers",
	Long:  `List the most recently completed countdown timers, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		records, err := storageAdapter.History().FindRecent(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if historyJSON {
			var items []map[string]interface{}
			for _, r := range records {
				items = append(items, map[string]interface{}{
					"id":           r.ID,
					"label":        r.Label,
					"duration":     r.Duration.String(),
					"started_at":   r.StartedAt.Format("2006-01-02T15:04:05"),
					"completed_at": r.CompletedAt.Format("2006-01-02T15:04:05"),
				})
			}
			data := map[string]interface{}{
				"timers": items,
				"count":  len(items),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal history: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(records) == 0 {
			fmt.Println("No completed timers yet.")
			return nil
		}

		fmt.Printf("⏱  Completed timers (%d):\n\n", len(records))
		for _, r := range records {
			label := r.Label
			if label == "" {
				label = "(no label)"
			}
			fmt.Printf("%s  %-8s %s\n", r.CompletedAt.Format("2006-01-02 15:04"), formatMinutes(r.Duration), label)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of timers to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output results in JSON format")
}
