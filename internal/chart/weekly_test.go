package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mindguard-ai/moodtrack/internal/mood"
	"github.com/mindguard-ai/moodtrack/internal/report"
)

func weeklyFixture() *report.WeeklyReport {
	return &report.WeeklyReport{
		Period:      "last 7 days",
		Days:        []string{"2026-03-08", "2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13", "2026-03-14"},
		Valences:    []float64{-0.6, 0, 0, 0.2, 0, 0.5, 0.9},
		Intensities: []float64{0.8, 0, 0, 0.3, 0, 0.4, 0.7},
		TopMoods:    []mood.MoodCount{{Mood: "joy", Count: 3}},
		Trend:       "improving",
	}
}

func TestRenderWeekly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly.png")

	if err := RenderWeekly(weeklyFixture(), path, 640, 400); err != nil {
		t.Fatalf("RenderWeekly failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 400 {
		t.Errorf("expected 640x400 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderWeeklyRejectsNoData(t *testing.T) {
	rep := &report.WeeklyReport{Period: "last 7 days", Summary: "No mood data recorded in the last week."}
	if err := RenderWeekly(rep, filepath.Join(t.TempDir(), "empty.png"), 640, 400); err == nil {
		t.Error("expected error for no-data report")
	}
}

func TestRenderWeeklyRejectsSinglePointSeries(t *testing.T) {
	rep := &report.WeeklyReport{
		Period:      "last 7 days",
		Days:        []string{"2026-03-14"},
		Valences:    []float64{0.5},
		Intensities: []float64{0.4},
	}
	if err := RenderWeekly(rep, filepath.Join(t.TempDir(), "single.png"), 640, 400); err == nil {
		t.Error("expected error for single-day series")
	}
}

func TestRenderWeeklyRejectsBadDimensions(t *testing.T) {
	if err := RenderWeekly(weeklyFixture(), filepath.Join(t.TempDir(), "bad.png"), 0, 400); err == nil {
		t.Error("expected error for zero width")
	}
}
