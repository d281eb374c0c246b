package prompt

import "strings"

// searchTriggerPhrases force web grounding for queries about recent or
// newly enacted law, where the model's training data cannot be trusted.
var searchTriggerPhrases = []string{
	"new criminal laws",
	"latest criminal laws",
	"bharatiya nyaya sanhita",
	"bharatiya nagarik suraksha sanhita",
	"bharatiya sakshya adhiniyam",
	"new law",
	"recent amendment",
	"latest amendment",
	"recent judgment",
	"latest judgment",
	"recently enacted",
	"latest notification",
}

// ForceSearch reports whether the query contains any of the fixed
// case-insensitive trigger phrases for recent/new-law intents.
func ForceSearch(query string) bool {
	lower := strings.ToLower(query)
	for _, phrase := range searchTriggerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// EffectiveSearchEnabled combines the UI toggle with the trigger override.
// The override is a one-way upgrade: it never downgrades an explicit true.
func EffectiveSearchEnabled(query string, uiToggle bool) bool {
	return uiToggle || ForceSearch(query)
}
