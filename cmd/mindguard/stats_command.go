package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.Stats()
		if err != nil {
			return fmt.Errorf("failed to collect stats: %w", err)
		}

		rows := [][]string{
			{"Users", fmt.Sprintf("%d", stats.Users)},
			{"Observations", fmt.Sprintf("%d", stats.Observations)},
			{"Insights", fmt.Sprintf("%d", stats.Insights)},
			{"Quarantined records", fmt.Sprintf("%d", stats.Quarantined)},
		}
		fmt.Println(renderTable([]string{"Metric", "Value"}, rows, 1))
		return nil
	},
}
