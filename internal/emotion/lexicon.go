package emotion

import "strings"

// LexiconAnalyzer is a deterministic keyword classifier. It exists so the
// CLI works without a model server and so tests have a stable stub; anything
// serious should inject a real classifier instead.
type LexiconAnalyzer struct {
	valences map[string]float64
}

// NewLexiconAnalyzer builds the analyzer with the built-in emotion lexicon.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{
		valences: map[string]float64{
			"joy":          0.8,
			"contentment":  0.7,
			"excitement":   0.8,
			"pride":        0.7,
			"gratitude":    0.8,
			"love":         0.9,
			"hope":         0.7,
			"surprise":     0.0,
			"confusion":    -0.1,
			"sadness":      -0.7,
			"fear":         -0.7,
			"anger":        -0.7,
			"disgust":      -0.6,
			"anxiety":      -0.7,
			"frustration":  -0.6,
			"guilt":        -0.6,
			"hopelessness": -0.9,
			"loneliness":   -0.7,
			"grief":        -0.8,
			"dread":        -0.7,
		},
	}
}

// markers maps surface words to the emotion they signal.
var markers = map[string]string{
	"happy":       "joy",
	"glad":        "joy",
	"great":       "joy",
	"joy":         "joy",
	"excited":     "excitement",
	"grateful":    "gratitude",
	"thankful":    "gratitude",
	"love":        "love",
	"hopeful":     "hope",
	"sad":         "sadness",
	"down":        "sadness",
	"unhappy":     "sadness",
	"depressed":   "sadness",
	"lonely":      "loneliness",
	"alone":       "loneliness",
	"afraid":      "fear",
	"scared":      "fear",
	"terrified":   "fear",
	"anxious":     "anxiety",
	"worried":     "anxiety",
	"nervous":     "anxiety",
	"stressed":    "anxiety",
	"angry":       "anger",
	"furious":     "anger",
	"mad":         "anger",
	"frustrated":  "frustration",
	"hopeless":    "hopelessness",
	"guilty":      "guilt",
	"confused":    "confusion",
	"surprised":   "surprise",
	"disgusted":   "disgust",
	"grieving":    "grief",
	"devastated":  "grief",
	"overwhelmed": "dread",
}

// Analyze scans the text for emotion markers and returns the strongest hit.
// Texts with no markers, or too short to carry signal, come back neutral
// with low intensity.
func (a *LexiconAnalyzer) Analyze(text string) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return Result{Mood: "neutral", Valence: 0.0, Intensity: 0.1, Confidence: 0.7}, nil
	}

	hits := make(map[string]int)
	var order []string
	for _, word := range strings.FieldsFunc(strings.ToLower(trimmed), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if label, ok := markers[word]; ok {
			if _, seen := hits[label]; !seen {
				order = append(order, label)
			}
			hits[label]++
		}
	}

	if len(hits) == 0 {
		return Result{Mood: "neutral", Valence: 0.0, Intensity: 0.1, Confidence: 0.5}, nil
	}

	// Scan labels in order of first occurrence so equal count and equal
	// strength resolve to the emotion mentioned first.
	best := ""
	bestCount := 0
	bestStrength := 0.0
	for _, label := range order {
		count := hits[label]
		strength := abs(a.valences[label])
		if count > bestCount || (count == bestCount && strength > bestStrength) {
			best = label
			bestCount = count
			bestStrength = strength
		}
	}

	valence := a.valences[best]
	confidence := 0.6 + 0.1*float64(bestCount)
	if confidence > 0.9 {
		confidence = 0.9
	}
	return Result{
		Mood:       best,
		Valence:    valence,
		Intensity:  abs(valence) * confidence,
		Confidence: confidence,
	}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
