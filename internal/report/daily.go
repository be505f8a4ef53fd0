// Package report computes daily and weekly aggregate views of mood history.
package report

import (
	"fmt"
	"time"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

// Valence thresholds for the extra daily recommendation line.
const (
	dailyLowValence  = -0.5
	dailyHighValence = 0.5
)

// DailyReport summarizes one calendar day of observations.
type DailyReport struct {
	Date            string   `json:"date"`
	EntryCount      int      `json:"entry_count"`
	DominantMood    string   `json:"dominant_mood,omitempty"`
	AvgValence      float64  `json:"avg_valence"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Daily builds the report for the calendar day of now. It is a pure
// computation; the caller records LastReportDate and persists.
func Daily(record *mood.UserRecord, now time.Time, advice mood.AdviceTable) *DailyReport {
	today := now.Format("2006-01-02")

	var todays []mood.Observation
	for _, obs := range record.Observations {
		if obs.Date() == today {
			todays = append(todays, obs)
		}
	}

	if len(todays) == 0 {
		return &DailyReport{
			Date:            today,
			Summary:         "No mood data recorded today.",
			Recommendations: []string{"Consider logging your mood to build insights."},
		}
	}

	avgValence := mood.MeanValence(todays)
	dominant, _ := mood.ModeMood(todays)

	recommendations := []string{advice.Lookup(dominant)}
	switch {
	case avgValence < dailyLowValence:
		recommendations = append(recommendations, "Today has been challenging. Consider reaching out to someone for support.")
	case avgValence < 0:
		recommendations = append(recommendations, "Try a brief self-care activity to boost your mood.")
	case avgValence > dailyHighValence:
		recommendations = append(recommendations, "You're having a good day! Take note of what's contributing to your positive mood.")
	}

	return &DailyReport{
		Date:            today,
		EntryCount:      len(todays),
		DominantMood:    dominant,
		AvgValence:      avgValence,
		Summary:         fmt.Sprintf("Today you've mostly felt %s.", dominant),
		Recommendations: recommendations,
	}
}
