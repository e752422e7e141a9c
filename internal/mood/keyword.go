package mood

import (
	"context"
	"strings"
)

// KeywordAnalyzer is a deterministic fallback used when no model is configured
// or a model call fails. It scores simple sentiment keywords against mood
// buckets and always yields a valid analysis.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer returns the keyword-based analyzer.
func NewKeywordAnalyzer() Analyzer {
	return &KeywordAnalyzer{}
}

var moodKeywords = map[string][]string{
	"Happy":   {"happy", "joy", "glad", "great", "wonderful", "love", "grateful", "proud", "excited", "😀", "😄", "😊", "🥳"},
	"Sad":     {"sad", "down", "unhappy", "miserable", "cry", "grief", "lonely", "disappointed", "😢", "😭", "💔"},
	"Anxious": {"anxious", "nervous", "worried", "stress", "stressed", "overwhelmed", "panic", "afraid", "scared", "exam", "deadline", "😰", "😨"},
	"Angry":   {"angry", "mad", "furious", "annoyed", "irritated", "frustrated", "hate", "😡", "🤬"},
	"Tired":   {"tired", "exhausted", "sleepy", "drained", "burnt", "burned out", "😴", "🥱"},
}

var moodSuggestions = map[string][]string{
	"Happy": {
		"Share your good mood with a friend",
		"Take a short gratitude break and write down what went well",
		"Channel the energy into a task you have been putting off",
	},
	"Sad": {
		"Take a gentle walk outside and get some fresh air",
		"Reach out to someone you trust and talk it through",
		"Put on a comfort playlist and let yourself rest",
	},
	"Anxious": {
		"Try a 4-7-8 breathing exercise for two minutes",
		"Write your worries down and pick the one thing you can act on",
		"Step away from screens for a ten minute break",
	},
	"Angry": {
		"Step away from the situation for a few minutes",
		"Do a quick burst of physical activity to burn it off",
		"Write down what happened before responding to anyone",
	},
	"Tired": {
		"Take a 20 minute power nap if you can",
		"Drink a glass of water and stretch",
		"Plan an earlier night tonight",
	},
	"Neutral": {
		"Take a short mindfulness break",
		"Step outside for a change of scenery",
		"Check in with yourself again later today",
	},
}

var moodExplanations = map[string]string{
	"Happy":   "Your words carry a clearly positive tone. Enjoy it, and notice what is fueling it.",
	"Sad":     "Your message suggests you are feeling low right now. That is okay, and it will pass.",
	"Anxious": "There are signs of worry or pressure in what you wrote. Slowing down can help.",
	"Angry":   "Your message reads as frustrated or upset. Giving it some space usually helps.",
	"Tired":   "You sound worn down. Rest is productive too.",
	"Neutral": "Your message does not lean strongly in any direction, which can be a steady place to be.",
}

// Analyze scores the text against the keyword buckets. An unmatched input
// resolves to a Neutral mood at moderate intensity.
func (k *KeywordAnalyzer) Analyze(_ context.Context, text string) (Analysis, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Analysis{}, ErrEmptyInput
	}

	lower := strings.ToLower(trimmed)

	bestMood := "Neutral"
	bestScore := 0
	for mood, keywords := range moodKeywords {
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && mood < bestMood) {
			bestMood = mood
			bestScore = score
		}
	}

	// Keyword density drives intensity; a single weak match stays mid-scale.
	intensity := 5
	if bestScore > 0 {
		intensity = 5 + bestScore
		if intensity > 9 {
			intensity = 9
		}
	}

	return Analysis{
		Mood:        bestMood,
		Intensity:   intensity,
		Suggestions: moodSuggestions[bestMood],
		Explanation: moodExplanations[bestMood],
	}, nil
}

// Close is a no-op for the keyword analyzer.
func (k *KeywordAnalyzer) Close() error { return nil }
