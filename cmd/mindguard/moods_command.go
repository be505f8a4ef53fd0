package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var daysFlag int

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List recent mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		recent := tr.RecentMoods(userFlag, daysFlag)
		if len(recent) == 0 {
			fmt.Printf("No mood entries in the last %d days.\n", daysFlag)
			return nil
		}

		rows := make([][]string, 0, len(recent))
		for _, obs := range recent {
			rows = append(rows, []string{
				obs.Date(),
				obs.ClockTime(),
				obs.Mood,
				fmt.Sprintf("%+.2f", obs.Valence),
				fmt.Sprintf("%.2f", obs.Intensity),
				strings.Join(obs.Triggers, ", "),
			})
		}
		fmt.Println(renderTable(
			[]string{"Date", "Time", "Mood", "Valence", "Intensity", "Triggers"},
			rows, 3, 4))
		return nil
	},
}

func init() {
	moodsCmd.Flags().IntVarP(&daysFlag, "days", "d", 7, "number of days to look back")
}
