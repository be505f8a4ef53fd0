package store

import (
	"sync"
	"testing"
	"time"

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), Options{QuarantineCorrupt: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testObservation(t *testing.T, label string, valence float64) mood.Observation {
	t.Helper()
	obs, err := mood.NewObservation(time.Now(), label, valence, 0.5, "", nil)
	if err != nil {
		t.Fatalf("NewObservation failed: %v", err)
	}
	return obs
}

func TestLoadUnknownUserReturnsEmptyRecord(t *testing.T) {
	s := setupTestStore(t)

	record := s.Load("nobody")
	if record.UserID != "nobody" {
		t.Errorf("expected user_id nobody, got %s", record.UserID)
	}
	if len(record.Observations) != 0 || len(record.Insights) != 0 {
		t.Errorf("expected empty record, got %d observations, %d insights",
			len(record.Observations), len(record.Insights))
	}
	if record.LastReportDate != "" {
		t.Errorf("expected unset last_report_date, got %q", record.LastReportDate)
	}

	// The empty record must be usable immediately.
	record.Observations = append(record.Observations, testObservation(t, "joy", 0.8))
	if err := s.Save(record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	record := mood.NewUserRecord("alice")
	record.Observations = append(record.Observations,
		testObservation(t, "joy", 0.8),
		testObservation(t, "anxiety", -0.6),
	)
	record.Insights = append(record.Insights, mood.Insight{
		Kind:           mood.InsightKindPattern,
		CreatedAt:      time.Now(),
		Description:    "You've experienced 'joy' frequently in recent interactions.",
		Recommendation: "keep going",
	})
	record.LastReportDate = "2026-03-14"

	if err := s.Save(record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := s.Load("alice")
	if len(loaded.Observations) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(loaded.Observations))
	}
	if loaded.Observations[0].Mood != "joy" || loaded.Observations[1].Mood != "anxiety" {
		t.Errorf("observation order not preserved: %+v", loaded.Observations)
	}
	if len(loaded.Insights) != 1 || loaded.Insights[0].Kind != mood.InsightKindPattern {
		t.Errorf("insights did not round-trip: %+v", loaded.Insights)
	}
	if loaded.LastReportDate != "2026-03-14" {
		t.Errorf("last_report_date did not round-trip: %q", loaded.LastReportDate)
	}
}

func TestSaveOverwritesPriorState(t *testing.T) {
	s := setupTestStore(t)

	record := mood.NewUserRecord("bob")
	record.Observations = append(record.Observations, testObservation(t, "joy", 0.8))
	if err := s.Save(record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	record.Observations = append(record.Observations, testObservation(t, "fear", -0.7))
	if err := s.Save(record); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded := s.Load("bob")
	if len(loaded.Observations) != 2 {
		t.Errorf("expected 2 observations after overwrite, got %d", len(loaded.Observations))
	}
}

func TestLoadCorruptRecordReinitializes(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.db.Exec(`INSERT INTO mood_records (user_id, record) VALUES (?, ?)`,
		"carol", "{not valid json")
	if err != nil {
		t.Fatalf("failed to plant corrupt record: %v", err)
	}

	record := s.Load("carol")
	if record.UserID != "carol" || len(record.Observations) != 0 {
		t.Errorf("expected fresh record after corruption, got %+v", record)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Quarantined != 1 {
		t.Errorf("expected 1 quarantined record, got %d", stats.Quarantined)
	}
}

func TestLoadCorruptRecordWithoutQuarantine(t *testing.T) {
	s, err := Open(t.TempDir(), Options{QuarantineCorrupt: false})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec(`INSERT INTO mood_records (user_id, record) VALUES (?, ?)`,
		"dave", "garbage"); err != nil {
		t.Fatalf("failed to plant corrupt record: %v", err)
	}

	record := s.Load("dave")
	if len(record.Observations) != 0 {
		t.Errorf("expected fresh record, got %+v", record)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Quarantined != 0 {
		t.Errorf("expected no quarantined records, got %d", stats.Quarantined)
	}
}

func TestStats(t *testing.T) {
	s := setupTestStore(t)

	for _, userID := range []string{"u1", "u2"} {
		record := mood.NewUserRecord(userID)
		record.Observations = append(record.Observations,
			testObservation(t, "joy", 0.5),
			testObservation(t, "sadness", -0.5),
		)
		record.Insights = append(record.Insights, mood.Insight{Kind: mood.InsightKindTrend})
		if err := s.Save(record); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Users != 2 || stats.Observations != 4 || stats.Insights != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestWithUserSerializesAppends(t *testing.T) {
	s := setupTestStore(t)

	const workers = 8
	observations := make([]mood.Observation, workers)
	for i := range observations {
		observations[i] = testObservation(t, "joy", 0.5)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(obs mood.Observation) {
			defer wg.Done()
			err := s.WithUser("erin", func() error {
				record := s.Load("erin")
				record.Observations = append(record.Observations, obs)
				return s.Save(record)
			})
			if err != nil {
				t.Errorf("WithUser failed: %v", err)
			}
		}(observations[i])
	}
	wg.Wait()

	record := s.Load("erin")
	if len(record.Observations) != workers {
		t.Errorf("expected %d observations, got %d (lost writes)", workers, len(record.Observations))
	}
}
