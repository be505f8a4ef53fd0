// Package emotion defines the classifier capability the tracker consumes.
//
// The tracker never depends on a concrete model. Production deployments
// inject an adapter over whatever classifier they run; tests inject a stub.
package emotion

// Result is one classification of a piece of text.
type Result struct {
	Mood       string  `json:"mood"`
	Valence    float64 `json:"valence"`
	Intensity  float64 `json:"intensity"`
	Confidence float64 `json:"confidence"`
}

// Analyzer classifies free text into a mood with valence and intensity.
type Analyzer interface {
	Analyze(text string) (Result, error)
}
