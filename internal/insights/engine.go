// Package insights derives human-readable insights from mood history.
package insights

import (
	"time"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

// Minimum history before any rule runs.
const minObservations = 3

// Engine runs the insight rules over a user's history. Rules run in
// registration order so the insights of one pass always land as pattern
// first, trend second.
type Engine struct {
	rules  []Rule
	advice mood.AdviceTable
}

// NewEngine creates an engine with the built-in pattern and trend rules.
func NewEngine(advice mood.AdviceTable) *Engine {
	return &Engine{
		rules: []Rule{
			NewPatternRule(),
			NewTrendRule(),
		},
		advice: advice,
	}
}

// Generate evaluates every rule against the record's observations and
// returns the insights produced, in rule order. Records with fewer than
// three observations produce nothing. Generate never mutates the record;
// the caller appends and persists.
func (e *Engine) Generate(record *mood.UserRecord, now time.Time) []mood.Insight {
	if len(record.Observations) < minObservations {
		return nil
	}

	ctx := &RuleContext{
		Observations: record.Observations,
		Now:          now,
		Advice:       e.advice,
	}

	var generated []mood.Insight
	for _, rule := range e.rules {
		if insight := rule.Evaluate(ctx); insight != nil {
			generated = append(generated, *insight)
		}
	}
	return generated
}

// Latest returns the last count insights in storage (chronological) order.
// If fewer exist, all are returned; if none exist, the result is empty.
func Latest(record *mood.UserRecord, count int) []mood.Insight {
	if count <= 0 || len(record.Insights) == 0 {
		return []mood.Insight{}
	}
	if count > len(record.Insights) {
		count = len(record.Insights)
	}
	return append([]mood.Insight{}, record.Insights[len(record.Insights)-count:]...)
}
