package entities

import "strings"

// DefaultCategory is returned when a goal category cannot be matched.
const DefaultCategory = "personal_growth"

// CategoryProfile holds the static characteristics of a goal category.
// The keyword list is prompt context only; classification is an exact
// (case-insensitive) lookup on the category name.
type CategoryProfile struct {
	Name             string
	Keywords         []string
	CommonChallenges []string
	SuccessFactors   []string
}

// goalCategories is the fixed set of supported goal categories.
// Loaded once at init, never mutated at runtime.
var goalCategories = map[string]CategoryProfile{
	"career": {
		Name:             "career",
		Keywords:         []string{"job", "career", "business", "work", "professional", "promotion", "startup"},
		CommonChallenges: []string{"imposter syndrome", "work-life balance", "skill gaps", "networking"},
		SuccessFactors:   []string{"clear planning", "skill development", "networking", "persistence"},
	},
	"health": {
		Name:             "health",
		Keywords:         []string{"health", "fitness", "weight", "exercise", "diet", "wellness", "medical"},
		CommonChallenges: []string{"motivation", "time management", "consistency", "plateaus"},
		SuccessFactors:   []string{"habit formation", "realistic goals", "support system", "tracking"},
	},
	"relationships": {
		Name:             "relationships",
		Keywords:         []string{"relationship", "love", "marriage", "family", "friendship", "dating"},
		CommonChallenges: []string{"communication", "trust issues", "time investment", "expectations"},
		SuccessFactors:   []string{"open communication", "patience", "understanding", "quality time"},
	},
	"personal_growth": {
		Name:             "personal_growth",
		Keywords:         []string{"growth", "development", "learning", "self-improvement", "confidence", "mindset"},
		CommonChallenges: []string{"self-doubt", "fear of failure", "comfort zone", "comparison"},
		SuccessFactors:   []string{"self-awareness", "continuous learning", "resilience", "authenticity"},
	},
	"financial": {
		Name:             "financial",
		Keywords:         []string{"money", "finance", "wealth", "investment", "savings", "debt", "income"},
		CommonChallenges: []string{"financial literacy", "discipline", "market volatility", "debt"},
		SuccessFactors:   []string{"education", "discipline", "diversification", "long-term thinking"},
	},
	"creative": {
		Name:             "creative",
		Keywords:         []string{"creative", "art", "music", "writing", "design", "innovation", "expression"},
		CommonChallenges: []string{"creative blocks", "perfectionism", "criticism", "consistency"},
		SuccessFactors:   []string{"regular practice", "experimentation", "feedback", "authenticity"},
	},
}

// CategoryFor resolves a free-text category name to its profile.
// Unknown names resolve to the personal_growth profile, so the result
// is always one of the six fixed categories.
func CategoryFor(category string) CategoryProfile {
	if profile, ok := goalCategories[strings.ToLower(category)]; ok {
		return profile
	}
	return goalCategories[DefaultCategory]
}

// CategoryNames returns the names of all supported categories.
func CategoryNames() []string {
	names := make([]string, 0, len(goalCategories))
	for name := range goalCategories {
		names = append(names, name)
	}
	return names
}
