package api

// Field names mirror the original client contract and must not change.

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MeditationQuestionRequest asks for the next intake question.
type MeditationQuestionRequest struct {
	Mood                 string         `json:"mood"`
	PreviousAnswers      map[string]any `json:"previousAnswers"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
}

// DynamicQuestionResponse carries a generated or canned intake question.
type DynamicQuestionResponse struct {
	NextQuestion   string `json:"nextQuestion"`
	QuestionType   string `json:"questionType"`
	IsLastQuestion bool   `json:"isLastQuestion"`
	TotalQuestions int    `json:"totalQuestions"`
	QuestionID     string `json:"questionId"`
	Context        string `json:"context,omitempty"`
}

// MeditationStartRequest starts a meditation session.
type MeditationStartRequest struct {
	Mood       string         `json:"mood"`
	VoiceID    string         `json:"voiceId"`
	Duration   int            `json:"duration"`
	AllAnswers map[string]any `json:"allAnswers"`
}

// MeditationResponse is the started meditation session.
type MeditationResponse struct {
	SessionID       string `json:"sessionId"`
	AudioURL        string `json:"audioUrl"`
	Script          string `json:"script"`
	Duration        int    `json:"duration"`
	BackgroundMusic string `json:"backgroundMusic"`
	Mood            string `json:"mood"`
	CreatedAt       string `json:"createdAt"`
	VoiceID         string `json:"voiceId"`
}

// SessionCompleteRequest carries optional post-session feedback.
type SessionCompleteRequest struct {
	Rating          *int    `json:"rating"`
	Notes           *string `json:"notes"`
	ClarityScore    *int    `json:"clarityScore"`
	ConfidenceScore *int    `json:"confidenceScore"`
}

// SessionCompleteResponse acknowledges a completed session.
type SessionCompleteResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// GoalAnalysisRequest asks for an analysis of a visualization goal.
type GoalAnalysisRequest struct {
	Goal                  string `json:"goal"`
	Category              string `json:"category"`
	Timeline              string `json:"timeline"`
	CurrentEmotionalState string `json:"currentEmotionalState"`
	DesiredEmotionalState string `json:"desiredEmotionalState"`
}

// GoalAnalysisResponse is the structured goal analysis.
type GoalAnalysisResponse struct {
	GoalComplexity      string   `json:"goalComplexity"`
	PotentialChallenges []string `json:"potentialChallenges"`
	RecommendedApproach string   `json:"recommendedApproach"`
	SuccessFactors      []string `json:"successFactors"`
	EstimatedTimeline   string   `json:"estimatedTimeline"`
}

// VisualizationQuestionRequest asks for the next coaching question.
type VisualizationQuestionRequest struct {
	Goal                 string         `json:"goal"`
	GoalCategory         string         `json:"goalCategory"`
	GoalComplexity       string         `json:"goalComplexity"`
	PreviousAnswers      map[string]any `json:"previousAnswers"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	UserExperienceLevel  string         `json:"userExperienceLevel"`
}

// ChallengeIdentificationRequest asks for challenges and solutions.
type ChallengeIdentificationRequest struct {
	Goal         string         `json:"goal"`
	GoalCategory string         `json:"goalCategory"`
	AllAnswers   map[string]any `json:"allAnswers"`
	UserProfile  map[string]any `json:"userProfile"`
}

// ChallengeResponse lists identified challenges and their remedies.
type ChallengeResponse struct {
	PrimaryChallenges   []string            `json:"primaryChallenges"`
	SecondaryChallenges []string            `json:"secondaryChallenges"`
	Solutions           []map[string]string `json:"solutions"`
	Resources           []map[string]string `json:"resources"`
	MindsetShifts       []string            `json:"mindsetShifts"`
}

// VisualizationStartRequest starts a visualization session.
type VisualizationStartRequest struct {
	Goal                 string         `json:"goal"`
	GoalCategory         string         `json:"goalCategory"`
	GoalComplexity       string         `json:"goalComplexity"`
	VoiceID              string         `json:"voiceId"`
	AllAnswers           map[string]any `json:"allAnswers"`
	IdentifiedChallenges []string       `json:"identifiedChallenges"`
	UserExperienceLevel  string         `json:"userExperienceLevel"`
	SessionType          string         `json:"sessionType"`
}

// VisualizationResponse is the started visualization session.
// AudioURL is null when no audio could be produced.
type VisualizationResponse struct {
	SessionID    string              `json:"sessionId"`
	Script       string              `json:"script"`
	AudioURL     *string             `json:"audioUrl"`
	Goal         string              `json:"goal"`
	GoalCategory string              `json:"goalCategory"`
	Challenges   []string            `json:"challenges"`
	Solutions    []map[string]string `json:"solutions"`
	ActionPlan   []string            `json:"actionPlan"`
	CreatedAt    string              `json:"createdAt"`
	VoiceID      string              `json:"voiceId"`
	SessionType  string              `json:"sessionType"`
}

// OneTapRequest starts or steps through a fixed one-tap session.
type OneTapRequest struct {
	SessionType string `json:"sessionType"`
	VoiceID     string `json:"voiceId"`
}

// OneTapResponse is the started one-tap session.
type OneTapResponse struct {
	AudioURL string   `json:"audioUrl"`
	Script   string   `json:"script"`
	Steps    []string `json:"steps"`
}

// OneTapStepAudioResponse is the synthesized audio for a single step.
type OneTapStepAudioResponse struct {
	AudioURL   string `json:"audioUrl"`
	ScriptStep string `json:"scriptStep"`
}

// StepTimingResponse carries the estimated timing of a single step.
type StepTimingResponse struct {
	StepIndex       int     `json:"stepIndex"`
	StartsAtSeconds float64 `json:"startsAtSeconds"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// AudioGenerationRequest synthesizes arbitrary text.
type AudioGenerationRequest struct {
	Text        string `json:"text"`
	VoiceID     string `json:"voiceId"`
	SessionType string `json:"sessionType"`
	Mood        string `json:"mood,omitempty"`
	Goal        string `json:"goal,omitempty"`
}

// AudioGenerationResponse is the synthesized artifact.
type AudioGenerationResponse struct {
	AudioURL  string  `json:"audioUrl"`
	Duration  float64 `json:"duration"`
	VoiceID   string  `json:"voiceId"`
	SessionID string  `json:"sessionId"`
}

// VoiceOption is a synthesis voice offered to clients.
type VoiceOption struct {
	VoiceID     string `json:"voice_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
