package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/entities"
	"github.com/serenoapp/server/domain/repositories"
)

// GoalAnalysisInput describes a goal to analyze.
type GoalAnalysisInput struct {
	Goal                  string
	Category              string
	Timeline              string
	CurrentEmotionalState string
	DesiredEmotionalState string
}

// GoalAnalysis is the structured result of goal analysis.
type GoalAnalysis struct {
	GoalComplexity      string
	PotentialChallenges []string
	RecommendedApproach string
	SuccessFactors      []string
	EstimatedTimeline   string
}

// VisualizationQuestionInput carries coaching state for the next question.
type VisualizationQuestionInput struct {
	Goal                 string
	GoalCategory         string
	GoalComplexity       string
	PreviousAnswers      map[string]any
	CurrentQuestionIndex int
	UserExperienceLevel  string
}

// VisualizationQuestion pairs an intake question with coaching context.
type VisualizationQuestion struct {
	Question entities.Question
	Context  string
}

// ChallengeInput describes a goal whose obstacles should be identified.
type ChallengeInput struct {
	Goal         string
	GoalCategory string
	AllAnswers   map[string]any
	UserProfile  map[string]any
}

// ChallengeReport lists challenges, solutions, resources and mindset
// shifts for a goal.
type ChallengeReport struct {
	PrimaryChallenges   []string
	SecondaryChallenges []string
	Solutions           []map[string]string
	Resources           []map[string]string
	MindsetShifts       []string
}

// VisualizationStartInput carries the completed coaching intake.
type VisualizationStartInput struct {
	Goal                 string
	GoalCategory         string
	GoalComplexity       string
	VoiceID              string
	AllAnswers           map[string]any
	IdentifiedChallenges []string
	UserExperienceLevel  string
	SessionType          string
}

// VisualizationSession is the result of starting a visualization session.
// AudioURL is empty when no audio could be produced; the script is still
// delivered.
type VisualizationSession struct {
	SessionID    string
	Script       string
	AudioURL     string
	Goal         string
	GoalCategory string
	Challenges   []string
	Solutions    []map[string]string
	ActionPlan   []string
	CreatedAt    time.Time
	VoiceID      string
	SessionType  string
}

// VisualizationService runs the visualization coaching flows. As with
// meditation, generation failures degrade to static content and never
// fail the request.
type VisualizationService struct {
	generator repositories.TextGenerator
	synthesis *SynthesisService
	voices    *VoiceCatalog
	logger    *zap.Logger
}

// NewVisualizationService creates a new visualization service.
func NewVisualizationService(
	generator repositories.TextGenerator,
	synthesis *SynthesisService,
	voices *VoiceCatalog,
	logger *zap.Logger,
) *VisualizationService {
	return &VisualizationService{
		generator: generator,
		synthesis: synthesis,
		voices:    voices,
		logger:    logger,
	}
}

// AnalyzeGoal classifies the goal's category profile and returns the
// structured analysis. The generative call provides color for logs only;
// the structured fields come from the category profile until response
// parsing lands, so provider failures are indistinguishable to callers.
func (s *VisualizationService) AnalyzeGoal(ctx context.Context, in GoalAnalysisInput) GoalAnalysis {
	analysisText, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      goalAnalysisSystem,
		Prompt:      goalAnalysisPrompt(in.Goal, in.Category, in.Timeline, in.CurrentEmotionalState, in.DesiredEmotionalState),
		MaxTokens:   goalAnalysisMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		s.logger.Warn("Goal analysis generation failed, using category profile", zap.Error(err))
	} else {
		s.logger.Debug("Goal analysis generated", zap.Int("length", len(analysisText)))
	}

	profile := entities.CategoryFor(in.Category)
	return GoalAnalysis{
		GoalComplexity:      "Moderate",
		PotentialChallenges: truncate(profile.CommonChallenges, 3),
		RecommendedApproach: fmt.Sprintf("Focus on %s and %s", profile.SuccessFactors[0], profile.SuccessFactors[1]),
		SuccessFactors:      profile.SuccessFactors,
		EstimatedTimeline:   in.Timeline,
	}
}

// NextQuestion generates the next coaching question, falling back to the
// canned list when generation fails.
func (s *VisualizationService) NextQuestion(ctx context.Context, in VisualizationQuestionInput) VisualizationQuestion {
	text, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      visualizationQuestionSystem,
		Prompt:      visualizationQuestionPrompt(in.Goal, in.GoalCategory, in.GoalComplexity, in.UserExperienceLevel, in.PreviousAnswers, in.CurrentQuestionIndex),
		MaxTokens:   questionMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		s.logger.Warn("Question generation failed, using canned question",
			zap.Int("questionIndex", in.CurrentQuestionIndex), zap.Error(err))
		return VisualizationQuestion{
			Question: entities.FallbackVisualizationQuestion(in.CurrentQuestionIndex, in.Goal),
			Context:  "Reflect on your goal and answer honestly.",
		}
	}

	qtype := entities.VisualizationTyper().Classify(text)
	return VisualizationQuestion{
		Question: entities.NewQuestion(text, qtype, in.CurrentQuestionIndex),
		Context:  "Take your time to reflect deeply on this question.",
	}
}

// IdentifyChallenges returns challenges and solutions for a goal, built
// from the category profile plus the fixed solution/resource/mindset
// lists. The generative analysis is attempted and logged.
func (s *VisualizationService) IdentifyChallenges(ctx context.Context, in ChallengeInput) ChallengeReport {
	analysisText, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      challengesSystem,
		Prompt:      challengesPrompt(in.Goal, in.GoalCategory, in.AllAnswers),
		MaxTokens:   challengesMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		s.logger.Warn("Challenge analysis generation failed, using category profile", zap.Error(err))
	} else {
		s.logger.Debug("Challenge analysis generated", zap.Int("length", len(analysisText)))
	}

	profile := entities.CategoryFor(in.GoalCategory)
	return ChallengeReport{
		PrimaryChallenges:   truncate(profile.CommonChallenges, 3),
		SecondaryChallenges: []string{"Time management", "Consistency"},
		Solutions: []map[string]string{
			{"challenge": "Motivation", "solution": "Create a clear vision and break goals into smaller steps"},
			{"challenge": "Time management", "solution": "Schedule dedicated time blocks and eliminate distractions"},
			{"challenge": "Consistency", "solution": "Build habits and track progress regularly"},
		},
		Resources: []map[string]string{
			{"type": "Book", "resource": "Atomic Habits by James Clear"},
			{"type": "Tool", "resource": "Goal tracking app"},
			{"type": "Support", "resource": "Accountability partner or coach"},
		},
		MindsetShifts: []string{
			"Focus on progress over perfection",
			"Embrace challenges as growth opportunities",
			"Trust the process and stay patient",
		},
	}
}

// Start generates a personalized visualization script and its audio.
// Generation failure yields the fixed template with the goal
// interpolated; synthesis failure degrades to a random cached file or an
// absent audio URL. The session is always returned.
func (s *VisualizationService) Start(ctx context.Context, in VisualizationStartInput) VisualizationSession {
	script, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      visualizationScriptSystem,
		Prompt:      visualizationScriptPrompt(in.Goal, in.GoalComplexity, in.SessionType, in.UserExperienceLevel, in.AllAnswers, in.IdentifiedChallenges),
		MaxTokens:   vizScriptMaxTokens,
		Temperature: generationTemperature,
	})

	var audioURL string
	actionPlan := []string{
		"Review your visualization daily",
		"Identify one small action you can take today",
		"Track your progress weekly",
		"Celebrate small wins along the way",
	}

	if err != nil {
		s.logger.Warn("Script generation failed, using fallback script",
			zap.String("goal", in.Goal), zap.Error(err))
		script = fallbackVisualizationScript(in.Goal)
		actionPlan = []string{"Review your visualization daily", "Take one small action today"}
	} else {
		url, ok := s.synthesis.AdHoc(ctx, script, in.VoiceID)
		if !ok {
			// Degraded substitute; the script alone is still a valid session.
			url, _ = s.synthesis.RandomCachedURL()
		}
		audioURL = url
	}

	return VisualizationSession{
		SessionID:    uuid.New().String(),
		Script:       script,
		AudioURL:     audioURL,
		Goal:         in.Goal,
		GoalCategory: in.GoalCategory,
		Challenges:   in.IdentifiedChallenges,
		Solutions:    []map[string]string{},
		ActionPlan:   actionPlan,
		CreatedAt:    time.Now().UTC(),
		VoiceID:      in.VoiceID,
		SessionType:  in.SessionType,
	}
}

// Voices lists voices suitable for visualization guidance.
func (s *VisualizationService) Voices(ctx context.Context) []repositories.Voice {
	return s.voices.Visualization(ctx)
}

// Complete acknowledges a finished visualization session.
func (s *VisualizationService) Complete(sessionID string, rating *int, notes *string, clarity *int, confidence *int) Completion {
	completion := Completion{
		SessionID:       sessionID,
		CompletedAt:     time.Now().UTC(),
		Rating:          rating,
		Notes:           notes,
		ClarityScore:    clarity,
		ConfidenceScore: confidence,
		Status:          "completed",
	}
	s.logger.Info("Visualization session completed",
		zap.String("sessionID", sessionID),
		zap.Any("rating", rating))
	return completion
}

func truncate(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
