package mood

// AdviceTable maps mood labels to recommendation text. It is pure data so
// callers can swap in their own table for localization or testing.
type AdviceTable struct {
	Moods    map[string]string
	Fallback string
}

// DefaultAdviceTable returns the built-in mood to advice mapping.
func DefaultAdviceTable() AdviceTable {
	return AdviceTable{
		Moods: map[string]string{
			"joy":          "Notice what activities bring you joy and try to incorporate them regularly.",
			"sadness":      "Be gentle with yourself. Consider journaling or talking with someone you trust.",
			"anxiety":      "Practice deep breathing exercises and try to identify specific worries.",
			"anger":        "Physical activity can help release tension. Try a brief walk or stretching.",
			"fear":         "Grounding exercises can help. Try the 5-4-3-2-1 technique with your senses.",
			"surprise":     "Take a moment to process unexpected events before reacting.",
			"neutral":      "This is a good time for reflection. Consider what you want to focus on.",
			"hopelessness": "Remember that feelings are temporary. Please reach out for professional support.",
		},
		Fallback: "Pay attention to activities that improve your mood.",
	}
}

// Lookup returns the advice for a mood, or the fallback for unmapped moods.
func (t AdviceTable) Lookup(moodLabel string) string {
	if advice, ok := t.Moods[moodLabel]; ok {
		return advice
	}
	return t.Fallback
}
