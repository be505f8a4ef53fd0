// Package main is the command line interface to the mood tracker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindguard-ai/moodtrack/internal/config"
	"github.com/mindguard-ai/moodtrack/internal/store"
	"github.com/mindguard-ai/moodtrack/internal/tracker"
)

var (
	userFlag    string
	storageFlag string
)

var rootCmd = &cobra.Command{
	Use:   "mindguard",
	Short: "Track moods, surface insights, and generate progress reports.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "default", "user identity the record belongs to")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "override the data directory")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(moodsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statsCmd)
}

// openTracker loads config and opens the store. Callers must Close the
// returned store.
func openTracker() (*tracker.Tracker, *store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if storageFlag != "" {
		cfg.StoragePath = storageFlag
	}

	s, err := store.Open(cfg.StoragePath, store.Options{QuarantineCorrupt: cfg.QuarantineCorrupt})
	if err != nil {
		return nil, nil, nil, err
	}

	tr := tracker.New(s, tracker.WithAdviceTable(cfg.AdviceTable()))
	return tr, s, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
