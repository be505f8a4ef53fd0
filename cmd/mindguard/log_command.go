package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	moodFlag      string
	valenceFlag   float64
	intensityFlag float64
	contextFlag   string
	triggersFlag  []string
	textFlag      string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a mood entry",
	Long: `Record a mood entry, either directly with --mood/--valence/--intensity
or from free text with --text (classified by the built-in analyzer).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if textFlag == "" && moodFlag == "" {
			return errors.New("either --text or --mood is required")
		}
		if textFlag != "" && moodFlag != "" {
			return errors.New("--text and --mood are mutually exclusive")
		}

		tr, s, _, err := openTracker()
		if err != nil {
			return err
		}
		defer s.Close()

		if textFlag != "" {
			obs, result, err := tr.AddTextEntry(userFlag, textFlag, contextFlag, triggersFlag)
			if err != nil {
				return fmt.Errorf("failed to record entry: %w", err)
			}
			fmt.Printf("Recorded %s (valence %+.2f, intensity %.2f, confidence %.2f) at %s\n",
				obs.Mood, result.Valence, result.Intensity, result.Confidence, obs.ClockTime())
			return nil
		}

		obs, err := tr.AddMoodEntry(userFlag, moodFlag, valenceFlag, intensityFlag, contextFlag, triggersFlag)
		if err != nil {
			return fmt.Errorf("failed to record entry: %w", err)
		}
		fmt.Printf("Recorded %s (valence %+.2f, intensity %.2f) at %s\n",
			obs.Mood, obs.Valence, obs.Intensity, obs.ClockTime())
		if len(obs.Triggers) > 0 {
			fmt.Printf("Triggers: %s\n", strings.Join(obs.Triggers, ", "))
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&moodFlag, "mood", "m", "", "mood label (joy, sadness, anxiety, ...)")
	logCmd.Flags().Float64VarP(&valenceFlag, "valence", "v", 0, "pleasantness from -1.0 to 1.0")
	logCmd.Flags().Float64VarP(&intensityFlag, "intensity", "i", 0.5, "strength from 0.0 to 1.0")
	logCmd.Flags().StringVarP(&contextFlag, "context", "c", "", "optional context for the entry")
	logCmd.Flags().StringSliceVarP(&triggersFlag, "trigger", "t", nil, "trigger label (repeatable)")
	logCmd.Flags().StringVar(&textFlag, "text", "", "free text to classify instead of an explicit mood")
}
