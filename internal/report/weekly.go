package report

import (
	"fmt"
	"time"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

const (
	weeklyDays      = 7
	weeklyTopMoods  = 3
	trendHalfDays   = 3
	trendChangeBand = 0.2
)

// WeeklyReport summarizes the last seven calendar days. Days, Valences, and
// Intensities always have seven elements, oldest first; days without
// observations carry zeros. The arrays feed the chart renderer directly.
type WeeklyReport struct {
	Period          string           `json:"period"`
	Days            []string         `json:"days,omitempty"`
	Valences        []float64        `json:"valences,omitempty"`
	Intensities     []float64        `json:"intensities,omitempty"`
	TopMoods        []mood.MoodCount `json:"top_moods,omitempty"`
	Trend           string           `json:"trend,omitempty"`
	Summary         string           `json:"summary"`
	Recommendations []string         `json:"recommendations"`
}

// Weekly builds the report for the seven calendar days ending at now,
// inclusive. A window with no observations at all short-circuits to a
// no-data summary.
func Weekly(record *mood.UserRecord, now time.Time, advice mood.AdviceTable) *WeeklyReport {
	byDay := make(map[string][]mood.Observation)
	days := make([]string, 0, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		date := now.AddDate(0, 0, -(weeklyDays - 1 - i)).Format("2006-01-02")
		days = append(days, date)
		byDay[date] = nil
	}

	var windowed []mood.Observation
	for _, obs := range record.Observations {
		date := obs.Date()
		if _, inWindow := byDay[date]; inWindow {
			byDay[date] = append(byDay[date], obs)
			windowed = append(windowed, obs)
		}
	}

	if len(windowed) == 0 {
		return &WeeklyReport{
			Period:          "last 7 days",
			Summary:         "No mood data recorded in the last week.",
			Recommendations: []string{"Regular mood logging helps build meaningful insights."},
		}
	}

	// Day-level series, zero-filled for empty days. The zeros are kept in
	// every downstream computation.
	valences := make([]float64, weeklyDays)
	intensities := make([]float64, weeklyDays)
	for i, date := range days {
		valences[i] = mood.MeanValence(byDay[date])
		intensities[i] = mood.MeanIntensity(byDay[date])
	}

	tally := mood.TallyMoods(windowed)
	if len(tally) > weeklyTopMoods {
		tally = tally[:weeklyTopMoods]
	}

	trend := classifyTrend(valences)

	var recommendations []string
	switch trend {
	case "improving":
		recommendations = append(recommendations, "Your mood is improving. Keep up what you're doing!")
	case "declining":
		recommendations = append(recommendations, "Your mood has been declining. Consider what factors might be contributing.")
	}
	if len(tally) > 0 {
		recommendations = append(recommendations, advice.Lookup(tally[0].Mood))
	}

	return &WeeklyReport{
		Period:          "last 7 days",
		Days:            days,
		Valences:        valences,
		Intensities:     intensities,
		TopMoods:        tally,
		Trend:           trend,
		Summary:         fmt.Sprintf("Your mood has been %s over the past week.", trend),
		Recommendations: recommendations,
	}
}

// classifyTrend compares the mean of the first three day-level valences
// against the mean of the last three.
func classifyTrend(valences []float64) string {
	var first, last float64
	for i := 0; i < trendHalfDays; i++ {
		first += valences[i]
		last += valences[len(valences)-trendHalfDays+i]
	}
	first /= trendHalfDays
	last /= trendHalfDays

	switch {
	case last-first > trendChangeBand:
		return "improving"
	case first-last > trendChangeBand:
		return "declining"
	}
	return "stable"
}
