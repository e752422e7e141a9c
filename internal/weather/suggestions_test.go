package weather

import (
	"strings"
	"testing"
)

func TestSuggestions_TemperatureRule(t *testing.T) {
	tests := []struct {
		name         string
		temperature  int
		wantActivity string
	}{
		{name: "cold", temperature: 5, wantActivity: "Indoor Exercise"},
		{name: "hot", temperature: 30, wantActivity: "Stay Hydrated"},
		{name: "mild low edge", temperature: 10, wantActivity: "Outdoor Walk"},
		{name: "mild high edge", temperature: 25, wantActivity: "Outdoor Walk"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tips := Suggestions(Conditions{Temperature: tc.temperature, Condition: "Clear"})
			if len(tips) != 2 {
				t.Fatalf("expected 2 tips, got %d", len(tips))
			}
			if tips[0].Activity != tc.wantActivity {
				t.Errorf("expected %q, got %q", tc.wantActivity, tips[0].Activity)
			}
		})
	}
}

func TestSuggestions_ConditionRule(t *testing.T) {
	tests := []struct {
		name         string
		condition    string
		wantActivity string
	}{
		{name: "clear", condition: "Clear", wantActivity: "Outdoor Meditation"},
		{name: "rain", condition: "Rain", wantActivity: "Reading Session"},
		{name: "drizzle", condition: "Drizzle", wantActivity: "Reading Session"},
		{name: "thunderstorm", condition: "Thunderstorm", wantActivity: "Reading Session"},
		{name: "clouds", condition: "Clouds", wantActivity: "Light Exercise"},
		{name: "unmatched", condition: "Haze", wantActivity: "Mindfulness Break"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tips := Suggestions(Conditions{Temperature: 18, Condition: tc.condition})
			if len(tips) != 2 {
				t.Fatalf("expected 2 tips, got %d", len(tips))
			}
			if tips[1].Activity != tc.wantActivity {
				t.Errorf("expected %q, got %q", tc.wantActivity, tips[1].Activity)
			}
		})
	}
}

func TestSuggestions_UnmatchedConditionNamesIt(t *testing.T) {
	tips := Suggestions(Conditions{Temperature: 18, Condition: "HAZE"})

	if !strings.Contains(tips[1].Description, "Haze") {
		t.Errorf("expected the condition name in the description, got %q", tips[1].Description)
	}
}
