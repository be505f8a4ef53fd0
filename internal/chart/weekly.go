// Package chart renders weekly mood reports as PNG line charts.
package chart

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/mindguard-ai/moodtrack/internal/report"
)

const (
	marginLeft   = 50.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 50.0
)

// RenderWeekly draws the weekly valence line with the intensity area behind
// it and writes a PNG to path. The report must carry the full 7-day series;
// a no-data report is rejected.
func RenderWeekly(rep *report.WeeklyReport, path string, width, height int) error {
	if len(rep.Days) == 0 {
		return fmt.Errorf("weekly report has no data series to render")
	}
	if len(rep.Days) < 2 {
		return fmt.Errorf("weekly report needs at least two days to render")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid chart dimensions %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	// Valence domain is [-1, 1]; intensity [0, 1] shares the upper half
	// scale so both series read against the same axis.
	xAt := func(i int) float64 {
		return marginLeft + plotW*float64(i)/float64(len(rep.Days)-1)
	}
	yAt := func(v float64) float64 {
		return marginTop + plotH*(1.0-v)/2.0
	}

	// Frame and zero line.
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	dc.DrawRectangle(marginLeft, marginTop, plotW, plotH)
	dc.Stroke()
	dc.SetDash(4, 4)
	dc.DrawLine(marginLeft, yAt(0), marginLeft+plotW, yAt(0))
	dc.Stroke()
	dc.SetDash()

	// Intensity area.
	dc.SetRGBA(1.0, 0.65, 0.0, 0.2)
	dc.MoveTo(xAt(0), yAt(0))
	for i, intensity := range rep.Intensities {
		dc.LineTo(xAt(i), yAt(intensity))
	}
	dc.LineTo(xAt(len(rep.Intensities)-1), yAt(0))
	dc.ClosePath()
	dc.Fill()

	// Valence line with markers.
	dc.SetRGB(0.12, 0.47, 0.71)
	dc.SetLineWidth(2)
	for i := 1; i < len(rep.Valences); i++ {
		dc.DrawLine(xAt(i-1), yAt(rep.Valences[i-1]), xAt(i), yAt(rep.Valences[i]))
		dc.Stroke()
	}
	for i, v := range rep.Valences {
		dc.DrawCircle(xAt(i), yAt(v), 3)
		dc.Fill()
	}

	// Labels.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored("Weekly Mood Tracking", float64(width)/2, marginTop/2, 0.5, 0.5)
	for _, tick := range []float64{-1, 0, 1} {
		dc.DrawStringAnchored(fmt.Sprintf("%+.0f", tick), marginLeft-8, yAt(tick), 1, 0.5)
	}
	for i, day := range rep.Days {
		// Month-day only; full dates collide at small widths.
		label := day
		if len(label) >= 10 {
			label = label[5:10]
		}
		dc.DrawStringAnchored(label, xAt(i), marginTop+plotH+14, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
