// Package mood defines the mood-tracking data model.
package mood

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsightKind categorizes insights
type InsightKind string

const (
	InsightKindPattern InsightKind = "pattern"
	InsightKindTrend   InsightKind = "trend"
)

// Observation is one recorded mood data point. Immutable once created.
type Observation struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
	Valence   float64   `json:"valence"`
	Intensity float64   `json:"intensity"`
	Context   string    `json:"context,omitempty"`
	Triggers  []string  `json:"triggers"`
}

// Date returns the calendar-day key of the observation.
func (o Observation) Date() string {
	return o.Timestamp.Format("2006-01-02")
}

// ClockTime returns the hour-minute component of the observation.
func (o Observation) ClockTime() string {
	return o.Timestamp.Format("15:04")
}

// Insight is a derived observation about recent mood patterns or trends.
// Insights are append-only and never edited after creation.
type Insight struct {
	ID             uuid.UUID   `json:"id"`
	Kind           InsightKind `json:"kind"`
	CreatedAt      time.Time   `json:"created_at"`
	Description    string      `json:"description"`
	Recommendation string      `json:"recommendation"`
}

// UserRecord is the persisted mood document for one user.
//
// Observations are stored in append order, which the tracker guarantees is
// also chronological order. Insights are append-only derived data.
type UserRecord struct {
	UserID         string        `json:"user_id"`
	Observations   []Observation `json:"observations"`
	Insights       []Insight     `json:"insights"`
	LastReportDate string        `json:"last_report_date,omitempty"`
}

// NewUserRecord returns an empty record for a user.
func NewUserRecord(userID string) *UserRecord {
	return &UserRecord{
		UserID:       userID,
		Observations: []Observation{},
		Insights:     []Insight{},
	}
}

// ErrInvalidObservation reports valence or intensity outside the documented
// domain. Downstream averages assume the bounds, so out-of-range values are
// rejected instead of silently accepted.
var ErrInvalidObservation = errors.New("invalid observation")

// NewObservation validates the inputs and constructs an observation stamped
// with the supplied instant.
func NewObservation(at time.Time, moodLabel string, valence, intensity float64, context string, triggers []string) (Observation, error) {
	if moodLabel == "" {
		return Observation{}, fmt.Errorf("%w: mood is required", ErrInvalidObservation)
	}
	if valence < -1.0 || valence > 1.0 {
		return Observation{}, fmt.Errorf("%w: valence %.3f outside [-1.0, 1.0]", ErrInvalidObservation, valence)
	}
	if intensity < 0.0 || intensity > 1.0 {
		return Observation{}, fmt.Errorf("%w: intensity %.3f outside [0.0, 1.0]", ErrInvalidObservation, intensity)
	}
	if triggers == nil {
		triggers = []string{}
	}
	return Observation{
		ID:        uuid.New(),
		Timestamp: at,
		Mood:      moodLabel,
		Valence:   valence,
		Intensity: intensity,
		Context:   context,
		Triggers:  triggers,
	}, nil
}
