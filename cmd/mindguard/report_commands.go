package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate mood reports",
}

var dailyReportCmd = &cobra.Command{
	Use:   "daily",
	Short: "Generate today's mood report",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		rep, err := tr.GenerateDailyReport(userFlag)
		if err != nil {
			return err
		}

		fmt.Printf("Daily report for %s\n", rep.Date)
		fmt.Println(rep.Summary)
		if rep.EntryCount > 0 {
			fmt.Printf("Entries: %d  Dominant mood: %s  Average valence: %+.2f\n",
				rep.EntryCount, rep.DominantMood, rep.AvgValence)
		}
		fmt.Println("Recommendations:")
		for _, rec := range rep.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		return nil
	},
}

var weeklyReportCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the last-7-days mood report",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		rep := tr.GenerateWeeklyReport(userFlag)

		fmt.Printf("Weekly report (%s)\n", rep.Period)
		fmt.Println(rep.Summary)

		if len(rep.Days) > 0 {
			rows := make([][]string, 0, len(rep.Days))
			for i, day := range rep.Days {
				rows = append(rows, []string{
					day,
					fmt.Sprintf("%+.2f", rep.Valences[i]),
					fmt.Sprintf("%.2f", rep.Intensities[i]),
				})
			}
			fmt.Println(renderTable([]string{"Day", "Valence", "Intensity"}, rows, 1, 2))
		}

		if len(rep.TopMoods) > 0 {
			rows := make([][]string, 0, len(rep.TopMoods))
			for _, mc := range rep.TopMoods {
				rows = append(rows, []string{mc.Mood, fmt.Sprintf("%d", mc.Count)})
			}
			fmt.Println(renderTable([]string{"Top Mood", "Count"}, rows, 1))
		}

		fmt.Println("Recommendations:")
		for _, rec := range rep.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		return nil
	},
}

func init() {
	reportCmd.AddCommand(dailyReportCmd)
	reportCmd.AddCommand(weeklyReportCmd)
}
