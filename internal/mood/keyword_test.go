package mood

import (
	"context"
	"errors"
	"testing"
)

func TestKeywordAnalyze_ClassifiesByKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMood string
	}{
		{name: "happy words", text: "I feel great and grateful today", wantMood: "Happy"},
		{name: "sad words", text: "feeling really lonely and down", wantMood: "Sad"},
		{name: "anxious words", text: "so stressed about the exam deadline", wantMood: "Anxious"},
		{name: "angry words", text: "I am furious and annoyed at everything", wantMood: "Angry"},
		{name: "tired words", text: "completely exhausted and sleepy", wantMood: "Tired"},
		{name: "emoji only", text: "😭", wantMood: "Sad"},
		{name: "no signal", text: "went to the library this afternoon", wantMood: "Neutral"},
	}

	analyzer := NewKeywordAnalyzer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(context.Background(), tc.text)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if analysis.Mood != tc.wantMood {
				t.Errorf("expected mood %q, got %q", tc.wantMood, analysis.Mood)
			}
			if !analysis.Valid() {
				t.Errorf("analysis must satisfy the contract, got %+v", analysis)
			}
		})
	}
}

func TestKeywordAnalyze_IntensityScalesWithMatchesAndCaps(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	single, err := analyzer.Analyze(context.Background(), "I am worried")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if single.Intensity != 6 {
		t.Errorf("expected intensity 6 for one match, got %d", single.Intensity)
	}

	heavy, err := analyzer.Analyze(context.Background(), "anxious nervous worried stressed overwhelmed panic afraid scared")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if heavy.Intensity != 9 {
		t.Errorf("expected intensity capped at 9, got %d", heavy.Intensity)
	}
}

func TestKeywordAnalyze_EmptyInput(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	_, err := analyzer.Analyze(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
