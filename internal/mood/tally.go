package mood

import "sort"

// MoodCount pairs a mood label with its occurrence count in a window.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// TallyMoods counts mood labels in the given observations, scanning
// oldest to newest. The result is ordered by descending count; ties are
// broken by first occurrence in the scan. Every consumer of "most common
// mood" shares this rule so mode selection is deterministic.
func TallyMoods(observations []Observation) []MoodCount {
	counts := make(map[string]int, len(observations))
	firstSeen := make(map[string]int, len(observations))

	for i, obs := range observations {
		if _, ok := counts[obs.Mood]; !ok {
			firstSeen[obs.Mood] = i
		}
		counts[obs.Mood]++
	}

	tally := make([]MoodCount, 0, len(counts))
	for label, count := range counts {
		tally = append(tally, MoodCount{Mood: label, Count: count})
	}
	sort.SliceStable(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return firstSeen[tally[i].Mood] < firstSeen[tally[j].Mood]
	})
	return tally
}

// ModeMood returns the most common mood in the observations and its count.
// The empty string is returned for an empty window.
func ModeMood(observations []Observation) (string, int) {
	tally := TallyMoods(observations)
	if len(tally) == 0 {
		return "", 0
	}
	return tally[0].Mood, tally[0].Count
}

// MeanValence returns the arithmetic mean valence of the observations, or 0
// for an empty window.
func MeanValence(observations []Observation) float64 {
	if len(observations) == 0 {
		return 0
	}
	var sum float64
	for _, obs := range observations {
		sum += obs.Valence
	}
	return sum / float64(len(observations))
}

// MeanIntensity returns the arithmetic mean intensity of the observations,
// or 0 for an empty window.
func MeanIntensity(observations []Observation) float64 {
	if len(observations) == 0 {
		return 0
	}
	var sum float64
	for _, obs := range observations {
		sum += obs.Intensity
	}
	return sum / float64(len(observations))
}
