package mood

import (
	"context"
	"errors"
	"strings"
)

// Analysis is the outcome of one mood-analysis request.
type Analysis struct {
	Mood        string   `json:"mood"`
	Intensity   int      `json:"intensity"`
	Suggestions []string `json:"suggestions"`
	Explanation string   `json:"explanation"`
}

// Valid reports whether the analysis satisfies the contract consumed by the
// rest of the application.
func (a Analysis) Valid() bool {
	return strings.TrimSpace(a.Mood) != "" &&
		a.Intensity >= 1 && a.Intensity <= 10 &&
		len(a.Suggestions) > 0 &&
		strings.TrimSpace(a.Explanation) != ""
}

// Analyzer classifies free-form text (or emoji) into a mood analysis.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
	Close() error
}

// ErrEmptyInput indicates there was nothing to analyze.
var ErrEmptyInput = errors.New("mood input is empty")
