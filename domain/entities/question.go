package entities

import (
	"fmt"
	"strings"
)

// QuestionType tags the input widget an intake question expects.
type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeTextarea QuestionType = "textarea"
	QuestionTypeSingle   QuestionType = "single"
	QuestionTypeScale    QuestionType = "scale"
	QuestionTypeNumber   QuestionType = "number"
)

// TotalIntakeQuestions is the fixed length of every intake flow.
const TotalIntakeQuestions = 5

// Question is a single intake question, generated or canned.
type Question struct {
	Text           string
	Type           QuestionType
	IsLast         bool
	TotalQuestions int
	ID             string
}

// NewQuestion builds a Question for the given zero-based index,
// applying the uniform termination rule: the intake is always five
// questions and the last one is index four.
func NewQuestion(text string, qtype QuestionType, index int) Question {
	return Question{
		Text:           text,
		Type:           qtype,
		IsLast:         index >= TotalIntakeQuestions-1,
		TotalQuestions: TotalIntakeQuestions,
		ID:             fmt.Sprintf("q%d", index+1),
	}
}

// typerRule is one priority level of the heuristic question typer.
// Rules are evaluated in order; the first match wins.
type typerRule struct {
	triggers []string
	qtype    QuestionType
}

// QuestionTyper classifies question text into a QuestionType by an
// ordered case-insensitive substring scan. It is a priority classifier,
// not a scoring one.
type QuestionTyper struct {
	rules        []typerRule
	longTextarea bool
}

// MeditationTyper returns the typer used for meditation intake questions.
func MeditationTyper() QuestionTyper {
	return QuestionTyper{
		rules: []typerRule{
			{triggers: []string{"how long", "how much", "how many"}, qtype: QuestionTypeNumber},
			{triggers: []string{"where", "location", "place"}, qtype: QuestionTypeText},
			{triggers: []string{"yes", "no", "are you", "do you"}, qtype: QuestionTypeSingle},
		},
		longTextarea: true,
	}
}

// VisualizationTyper returns the typer used for visualization questions.
func VisualizationTyper() QuestionTyper {
	return QuestionTyper{
		rules: []typerRule{
			{triggers: []string{"how long", "how much", "how many", "rate", "scale"}, qtype: QuestionTypeScale},
			{triggers: []string{"describe", "explain", "tell me about"}, qtype: QuestionTypeTextarea},
			{triggers: []string{"yes", "no", "are you", "do you"}, qtype: QuestionTypeSingle},
		},
	}
}

// Classify returns the input type for a question string.
func (qt QuestionTyper) Classify(question string) QuestionType {
	lowered := strings.ToLower(question)
	for _, rule := range qt.rules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return rule.qtype
			}
		}
	}
	if qt.longTextarea && len(question) > 100 {
		return QuestionTypeTextarea
	}
	return QuestionTypeText
}

// fallbackQuestion is a canned intake question used when generation fails.
type fallbackQuestion struct {
	text  string
	qtype QuestionType
}

var meditationFallbackQuestions = []fallbackQuestion{
	{"How long have you been feeling %s?", QuestionTypeText},
	{"What is your main stressor today?", QuestionTypeTextarea},
	{"Where do you feel tension in your body?", QuestionTypeText},
	{"What would you like to feel after this meditation?", QuestionTypeText},
	{"Are you in a quiet place?", QuestionTypeSingle},
}

var visualizationFallbackQuestions = []fallbackQuestion{
	{"What does achieving %s look like in vivid detail?", QuestionTypeTextarea},
	{"What's the biggest challenge you think you'll face?", QuestionTypeTextarea},
	{"How will you feel when you accomplish this goal?", QuestionTypeText},
	{"What resources or support do you need?", QuestionTypeText},
	{"What's your first step toward this goal?", QuestionTypeText},
}

// FallbackMeditationQuestion returns the canned meditation question for
// an index, interpolating the mood. Out-of-range indices clamp to the
// last entry rather than failing.
func FallbackMeditationQuestion(index int, mood string) Question {
	clamped := clampIndex(index, len(meditationFallbackQuestions))
	fq := meditationFallbackQuestions[clamped]
	text := fq.text
	if strings.Contains(text, "%s") {
		text = fmt.Sprintf(text, mood)
	}
	return NewQuestion(text, fq.qtype, clamped)
}

// FallbackVisualizationQuestion returns the canned visualization question
// for an index, interpolating the goal.
func FallbackVisualizationQuestion(index int, goal string) Question {
	clamped := clampIndex(index, len(visualizationFallbackQuestions))
	fq := visualizationFallbackQuestions[clamped]
	text := fq.text
	if strings.Contains(text, "%s") {
		text = fmt.Sprintf(text, goal)
	}
	return NewQuestion(text, fq.qtype, clamped)
}

func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
