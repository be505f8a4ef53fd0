package insights

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

// Thresholds for the built-in rules.
const (
	patternWindow   = 10
	patternMinCount = 3
	trendWindow     = 5
	trendThreshold  = 0.2
)

// Rule evaluates recent observations and produces an insight.
type Rule interface {
	Name() string
	Evaluate(ctx *RuleContext) *mood.Insight
}

// RuleContext provides data for rule evaluation.
type RuleContext struct {
	Observations []mood.Observation
	Now          time.Time
	Advice       mood.AdviceTable
}

// PatternRule detects a dominant mood in the recent window.
type PatternRule struct{}

func NewPatternRule() *PatternRule {
	return &PatternRule{}
}

func (r *PatternRule) Name() string {
	return "pattern"
}

func (r *PatternRule) Evaluate(ctx *RuleContext) *mood.Insight {
	window := ctx.Observations
	if len(window) > patternWindow {
		window = window[len(window)-patternWindow:]
	}

	label, count := mood.ModeMood(window)
	if label == "" || count < patternMinCount {
		return nil
	}

	return &mood.Insight{
		ID:             uuid.New(),
		Kind:           mood.InsightKindPattern,
		CreatedAt:      ctx.Now,
		Description:    fmt.Sprintf("You've experienced '%s' frequently in recent interactions.", label),
		Recommendation: ctx.Advice.Lookup(label),
	}
}

// TrendRule detects a sustained valence shift over the last five
// observations. The 0.2 bands are strict: a mean of exactly ±0.2 produces
// no insight.
type TrendRule struct{}

func NewTrendRule() *TrendRule {
	return &TrendRule{}
}

func (r *TrendRule) Name() string {
	return "trend"
}

func (r *TrendRule) Evaluate(ctx *RuleContext) *mood.Insight {
	if len(ctx.Observations) < trendWindow {
		return nil
	}

	recent := ctx.Observations[len(ctx.Observations)-trendWindow:]
	avg := mood.MeanValence(recent)

	switch {
	case avg > trendThreshold:
		return &mood.Insight{
			ID:             uuid.New(),
			Kind:           mood.InsightKindTrend,
			CreatedAt:      ctx.Now,
			Description:    "Your mood has been generally positive recently.",
			Recommendation: "Keep up the good work! Continue the activities that bring you joy.",
		}
	case avg < -trendThreshold:
		return &mood.Insight{
			ID:             uuid.New(),
			Kind:           mood.InsightKindTrend,
			CreatedAt:      ctx.Now,
			Description:    "Your mood has been trending downward recently.",
			Recommendation: "Consider trying some new self-care activities or reaching out for support.",
		}
	}
	return nil
}
