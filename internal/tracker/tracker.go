// Package tracker ties the mood store, insight engine, and report
// generators together behind the interface the chat orchestrator consumes.
package tracker

import (
	"fmt"
	"log"
	"time"

	"github.com/mindguard-ai/moodtrack/internal/emotion"
	"github.com/mindguard-ai/moodtrack/internal/insights"
	"github.com/mindguard-ai/moodtrack/internal/mood"
	"github.com/mindguard-ai/moodtrack/internal/report"
	"github.com/mindguard-ai/moodtrack/internal/store"
)

// Insight generation fires on every fifth appended observation.
const insightInterval = 5

// Tracker is the mood-tracking service. One instance serves all users;
// mutations for a given user are serialized through the store's per-user
// lock while different users proceed in parallel.
type Tracker struct {
	store    *store.Store
	engine   *insights.Engine
	advice   mood.AdviceTable
	analyzer emotion.Analyzer
	now      func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the time source. Reports and insight timestamps follow
// the injected clock, which keeps tests deterministic.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithAnalyzer injects the emotion classifier used by AddTextEntry.
func WithAnalyzer(a emotion.Analyzer) Option {
	return func(t *Tracker) { t.analyzer = a }
}

// WithAdviceTable replaces the recommendation table.
func WithAdviceTable(table mood.AdviceTable) Option {
	return func(t *Tracker) {
		t.advice = table
		t.engine = insights.NewEngine(table)
	}
}

// New creates a tracker over the given store.
func New(s *store.Store, opts ...Option) *Tracker {
	advice := mood.DefaultAdviceTable()
	t := &Tracker{
		store:    s,
		engine:   insights.NewEngine(advice),
		advice:   advice,
		analyzer: emotion.NewLexiconAnalyzer(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddMoodEntry appends an observation stamped with the current instant and
// persists the record. Every fifth observation also runs the insight engine;
// any insights it produces are appended before the single persist. The
// created observation is returned even when persisting fails: the append is
// not rolled back, the failure is reported.
func (t *Tracker) AddMoodEntry(userID, moodLabel string, valence, intensity float64, context string, triggers []string) (mood.Observation, error) {
	// Validate before taking the user lock so bad input is rejected cheaply.
	if _, err := mood.NewObservation(time.Time{}, moodLabel, valence, intensity, context, triggers); err != nil {
		return mood.Observation{}, err
	}

	// The clock is read inside the critical section: observations must land
	// in the record in timestamp order, so the stamp and the append have to
	// be one atomic step per user.
	var obs mood.Observation
	err := t.store.WithUser(userID, func() error {
		now := t.now()
		var err error
		obs, err = mood.NewObservation(now, moodLabel, valence, intensity, context, triggers)
		if err != nil {
			return err
		}

		record := t.store.Load(userID)
		record.Observations = append(record.Observations, obs)

		if len(record.Observations)%insightInterval == 0 {
			generated := t.engine.Generate(record, now)
			if len(generated) > 0 {
				record.Insights = append(record.Insights, generated...)
				log.Printf("[tracker] Generated %d insights for %s", len(generated), userID)
			}
		}

		if saveErr := t.store.Save(record); saveErr != nil {
			log.Printf("[tracker] Failed to persist record for %s: %v", userID, saveErr)
			return saveErr
		}
		return nil
	})
	return obs, err
}

// AddTextEntry classifies free text with the injected analyzer and records
// the resulting mood.
func (t *Tracker) AddTextEntry(userID, text, context string, triggers []string) (mood.Observation, emotion.Result, error) {
	result, err := t.analyzer.Analyze(text)
	if err != nil {
		return mood.Observation{}, emotion.Result{}, fmt.Errorf("failed to classify text: %w", err)
	}

	obs, err := t.AddMoodEntry(userID, result.Mood, result.Valence, result.Intensity, context, triggers)
	return obs, result, err
}

// RecentMoods returns observations from the last days calendar days,
// newest first.
func (t *Tracker) RecentMoods(userID string, days int) []mood.Observation {
	cutoff := t.now().AddDate(0, 0, -days).Format("2006-01-02")
	record := t.store.Load(userID)

	recent := make([]mood.Observation, 0, len(record.Observations))
	for i := len(record.Observations) - 1; i >= 0; i-- {
		if obs := record.Observations[i]; obs.Date() >= cutoff {
			recent = append(recent, obs)
		}
	}
	return recent
}

// LatestInsights returns the last count insights in chronological order.
func (t *Tracker) LatestInsights(userID string, count int) []mood.Insight {
	return insights.Latest(t.store.Load(userID), count)
}

// GenerateDailyReport builds today's report and records the report date on
// the user record. The report is returned even when persisting the report
// date fails.
func (t *Tracker) GenerateDailyReport(userID string) (*report.DailyReport, error) {
	now := t.now()

	var rep *report.DailyReport
	err := t.store.WithUser(userID, func() error {
		record := t.store.Load(userID)
		rep = report.Daily(record, now, t.advice)
		if rep.EntryCount == 0 {
			// Nothing was recorded today; the report date stays untouched.
			return nil
		}

		record.LastReportDate = now.Format("2006-01-02")
		if saveErr := t.store.Save(record); saveErr != nil {
			log.Printf("[tracker] Failed to persist report date for %s: %v", userID, saveErr)
			return saveErr
		}
		return nil
	})
	return rep, err
}

// GenerateWeeklyReport builds the seven-day report. Pure read, no side
// effects.
func (t *Tracker) GenerateWeeklyReport(userID string) *report.WeeklyReport {
	return report.Weekly(t.store.Load(userID), t.now(), t.advice)
}
