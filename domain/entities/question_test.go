package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuestion(t *testing.T) {
	q := NewQuestion("What brings you here?", QuestionTypeText, 0)
	assert.Equal(t, "q1", q.ID)
	assert.False(t, q.IsLast)
	assert.Equal(t, 5, q.TotalQuestions)

	last := NewQuestion("Are you ready?", QuestionTypeSingle, 4)
	assert.Equal(t, "q5", last.ID)
	assert.True(t, last.IsLast)

	beyond := NewQuestion("Extra", QuestionTypeText, 7)
	assert.Equal(t, "q8", beyond.ID)
	assert.True(t, beyond.IsLast)
}

func TestMeditationTyperClassify(t *testing.T) {
	typer := MeditationTyper()

	tests := []struct {
		question string
		want     QuestionType
	}{
		{"How long have you been feeling anxious?", QuestionTypeNumber},
		{"How many hours do you sleep?", QuestionTypeNumber},
		{"Where do you feel tension in your body?", QuestionTypeText},
		{"Is there a quiet place you can go to?", QuestionTypeText},
		{"Are you comfortable right now?", QuestionTypeSingle},
		{"Do you practice meditation regularly?", QuestionTypeSingle},
		{"What would help?", QuestionTypeText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typer.Classify(tt.question), tt.question)
	}
}

func TestMeditationTyperPrecedence(t *testing.T) {
	typer := MeditationTyper()

	// "how long" outranks "where" and "do you" when several triggers match.
	got := typer.Classify("How long do you stay in the place where you meditate?")
	assert.Equal(t, QuestionTypeNumber, got)
}

func TestMeditationTyperLongQuestion(t *testing.T) {
	typer := MeditationTyper()

	long := strings.Repeat("please elaborate on that feeling ", 5)
	assert.Greater(t, len(long), 100)
	assert.Equal(t, QuestionTypeTextarea, typer.Classify(long))
}

func TestVisualizationTyperClassify(t *testing.T) {
	typer := VisualizationTyper()

	tests := []struct {
		question string
		want     QuestionType
	}{
		{"On a scale of 1-10, how committed are you?", QuestionTypeScale},
		{"How much time can you dedicate weekly?", QuestionTypeScale},
		{"Describe your ideal outcome.", QuestionTypeTextarea},
		{"Tell me about your support system.", QuestionTypeTextarea},
		{"Are you ready to commit?", QuestionTypeSingle},
		{"What matters most?", QuestionTypeText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typer.Classify(tt.question), tt.question)
	}

	// No long-question rule for visualization.
	long := strings.Repeat("what matters in this moment to you and why ", 4)
	assert.Greater(t, len(long), 100)
	assert.Equal(t, QuestionTypeText, typer.Classify(long))
}

func TestFallbackMeditationQuestion(t *testing.T) {
	q := FallbackMeditationQuestion(0, "anxious")
	assert.Equal(t, "How long have you been feeling anxious?", q.Text)
	assert.Equal(t, QuestionTypeText, q.Type)
	assert.Equal(t, "q1", q.ID)
	assert.False(t, q.IsLast)

	last := FallbackMeditationQuestion(4, "anxious")
	assert.Equal(t, "Are you in a quiet place?", last.Text)
	assert.Equal(t, QuestionTypeSingle, last.Type)
	assert.True(t, last.IsLast)
}

func TestFallbackQuestionClamping(t *testing.T) {
	// Out-of-range indices clamp instead of panicking.
	high := FallbackMeditationQuestion(99, "calm")
	assert.Equal(t, "q5", high.ID)
	assert.True(t, high.IsLast)

	low := FallbackVisualizationQuestion(-1, "run a marathon")
	assert.Equal(t, "q1", low.ID)
	assert.Contains(t, low.Text, "run a marathon")
}

func TestFallbackVisualizationQuestion(t *testing.T) {
	q := FallbackVisualizationQuestion(0, "start a business")
	assert.Contains(t, q.Text, "start a business")
	assert.Equal(t, QuestionTypeTextarea, q.Type)

	// Questions without a placeholder ignore the goal.
	q2 := FallbackVisualizationQuestion(1, "start a business")
	assert.Equal(t, "What's the biggest challenge you think you'll face?", q2.Text)
}
