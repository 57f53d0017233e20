package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	career := CategoryFor("career")
	assert.Equal(t, "career", career.Name)
	assert.Contains(t, career.CommonChallenges, "imposter syndrome")

	// Lookup is case-insensitive.
	assert.Equal(t, "health", CategoryFor("Health").Name)
	assert.Equal(t, "financial", CategoryFor("FINANCIAL").Name)
}

func TestCategoryForUnknown(t *testing.T) {
	assert.Equal(t, DefaultCategory, CategoryFor("quantum-gardening").Name)
	assert.Equal(t, DefaultCategory, CategoryFor("").Name)
}

func TestCategoryProfilesComplete(t *testing.T) {
	names := CategoryNames()
	assert.Len(t, names, 6)

	for _, name := range names {
		profile := CategoryFor(name)
		assert.NotEmpty(t, profile.Keywords, name)
		assert.NotEmpty(t, profile.CommonChallenges, name)
		assert.GreaterOrEqual(t, len(profile.SuccessFactors), 2, name)
	}
}
