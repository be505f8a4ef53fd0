package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countFlag int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show the latest generated insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		latest := tr.LatestInsights(userFlag, countFlag)
		if len(latest) == 0 {
			fmt.Println("No insights yet. Insights appear as mood entries accumulate.")
			return nil
		}

		for _, insight := range latest {
			fmt.Printf("[%s] %s\n", insight.Kind, insight.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("  %s\n", insight.Description)
			fmt.Printf("  Recommendation: %s\n", insight.Recommendation)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().IntVarP(&countFlag, "count", "n", 3, "number of insights to show")
}
