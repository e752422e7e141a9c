package weather

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suggestion is one weather-linked wellness tip.
type Suggestion struct {
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Indoor      bool   `json:"indoor"`
}

var titleCaser = cases.Title(language.English)

// Suggestions derives wellness tips from the current conditions. The rules
// are fixed: one temperature-based tip followed by one condition-based tip.
func Suggestions(conditions Conditions) []Suggestion {
	tips := make([]Suggestion, 0, 2)

	switch {
	case conditions.Temperature < 10:
		tips = append(tips, Suggestion{
			Activity:    "Indoor Exercise",
			Description: "Stay warm with indoor yoga or stretching.",
			Indoor:      true,
		})
	case conditions.Temperature > 25:
		tips = append(tips, Suggestion{
			Activity:    "Stay Hydrated",
			Description: "Remember to drink plenty of water and stay in shade.",
			Indoor:      true,
		})
	default:
		tips = append(tips, Suggestion{
			Activity:    "Outdoor Walk",
			Description: "Perfect temperature for a refreshing walk.",
			Indoor:      false,
		})
	}

	switch strings.ToLower(conditions.Condition) {
	case "clear":
		tips = append(tips, Suggestion{
			Activity:    "Outdoor Meditation",
			Description: "Take advantage of the clear weather with outdoor mindfulness.",
			Indoor:      false,
		})
	case "rain", "drizzle", "thunderstorm":
		tips = append(tips, Suggestion{
			Activity:    "Reading Session",
			Description: "Perfect weather to cozy up with a good book.",
			Indoor:      true,
		})
	case "clouds":
		tips = append(tips, Suggestion{
			Activity:    "Light Exercise",
			Description: "Good conditions for light outdoor exercise.",
			Indoor:      false,
		})
	default:
		tips = append(tips, Suggestion{
			Activity:    "Mindfulness Break",
			Description: "Take a moment for mindfulness and deep breathing. Current conditions: " + titleCaser.String(strings.ToLower(conditions.Condition)) + ".",
			Indoor:      true,
		})
	}

	return tips
}
