package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindguard-ai/moodtrack/internal/chart"
)

var chartOutFlag string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the weekly report as a PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, s, cfg, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		rep := tr.GenerateWeeklyReport(userFlag)
		if len(rep.Days) == 0 {
			fmt.Println(rep.Summary)
			return nil
		}

		if err := chart.RenderWeekly(rep, chartOutFlag, cfg.Chart.Width, cfg.Chart.Height); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", chartOutFlag)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutFlag, "out", "o", "weekly_mood.png", "output file path")
}
