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

// Max response tokens per generation kind. Temperature is 0.7 everywhere.
const (
	questionMaxTokens         = 100
	goalAnalysisMaxTokens     = 400
	challengesMaxTokens       = 600
	vizScriptMaxTokens        = 800
	meditationScriptMaxTokens = 1200

	generationTemperature = 0.7
)

// MeditationQuestionInput carries intake state for the next question.
type MeditationQuestionInput struct {
	Mood                 string
	PreviousAnswers      map[string]any
	CurrentQuestionIndex int
}

// MeditationStartInput carries the completed intake for session start.
type MeditationStartInput struct {
	Mood       string
	VoiceID    string
	Duration   int // seconds
	AllAnswers map[string]any
}

// MeditationSession is the result of starting a meditation session.
type MeditationSession struct {
	SessionID string
	AudioURL  string
	Script    string
	Duration  int
	Mood      string
	VoiceID   string
	CreatedAt time.Time
}

// Completion acknowledges a finished session. Nothing is persisted; the
// record is logged and echoed back.
type Completion struct {
	SessionID       string
	CompletedAt     time.Time
	Rating          *int
	Notes           *string
	ClarityScore    *int
	ConfidenceScore *int
	Status          string
}

// MeditationService runs the meditation intake and session flows.
// Every generation call degrades to static content on failure; a
// meditation request never fails because a provider did.
type MeditationService struct {
	generator repositories.TextGenerator
	synthesis *SynthesisService
	voices    *VoiceCatalog
	logger    *zap.Logger
}

// NewMeditationService creates a new meditation service.
func NewMeditationService(
	generator repositories.TextGenerator,
	synthesis *SynthesisService,
	voices *VoiceCatalog,
	logger *zap.Logger,
) *MeditationService {
	return &MeditationService{
		generator: generator,
		synthesis: synthesis,
		voices:    voices,
		logger:    logger,
	}
}

// NextQuestion generates the next personalized intake question, falling
// back to the canned list when generation fails. Total function: it
// always returns a usable question.
func (s *MeditationService) NextQuestion(ctx context.Context, in MeditationQuestionInput) entities.Question {
	text, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      meditationQuestionSystem,
		Prompt:      meditationQuestionPrompt(in.Mood, in.PreviousAnswers, in.CurrentQuestionIndex),
		MaxTokens:   questionMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		s.logger.Warn("Question generation failed, using canned question",
			zap.Int("questionIndex", in.CurrentQuestionIndex), zap.Error(err))
		return entities.FallbackMeditationQuestion(in.CurrentQuestionIndex, in.Mood)
	}

	qtype := entities.MeditationTyper().Classify(text)
	return entities.NewQuestion(text, qtype, in.CurrentQuestionIndex)
}

// Start generates a personalized meditation script and its audio.
// Generation failure yields the fixed template with the mood
// interpolated; synthesis failure yields a fallback_ audio URL. The
// session is always returned.
func (s *MeditationService) Start(ctx context.Context, in MeditationStartInput) MeditationSession {
	minutes := in.Duration / 60

	script, err := s.generator.Generate(ctx, repositories.GenerationRequest{
		System:      meditationScriptSystem,
		Prompt:      meditationScriptPrompt(in.Mood, minutes, in.AllAnswers),
		MaxTokens:   meditationScriptMaxTokens,
		Temperature: generationTemperature,
	})

	var audioURL string
	if err != nil {
		s.logger.Warn("Script generation failed, using fallback script",
			zap.String("mood", in.Mood), zap.Error(err))
		script = fallbackMeditationScript(in.Mood, minutes)
		audioURL = fallbackAudioURL()
	} else {
		url, ok := s.synthesis.AdHoc(ctx, script, in.VoiceID)
		if !ok {
			url = fallbackAudioURL()
		}
		audioURL = url
	}

	return MeditationSession{
		SessionID: uuid.New().String(),
		AudioURL:  audioURL,
		Script:    script,
		Duration:  in.Duration,
		Mood:      in.Mood,
		VoiceID:   in.VoiceID,
		CreatedAt: time.Now().UTC(),
	}
}

// Voices lists voices suitable for meditation guidance.
func (s *MeditationService) Voices(ctx context.Context) []repositories.Voice {
	return s.voices.Meditation(ctx)
}

// Complete acknowledges a finished meditation session.
func (s *MeditationService) Complete(sessionID string, rating *int, notes *string) Completion {
	completion := Completion{
		SessionID:   sessionID,
		CompletedAt: time.Now().UTC(),
		Rating:      rating,
		Notes:       notes,
		Status:      "completed",
	}
	s.logger.Info("Meditation session completed",
		zap.String("sessionID", sessionID),
		zap.Any("rating", rating))
	return completion
}

// fallbackAudioURL mints the sentinel URL returned when no audio could be
// produced for a meditation session. The file does not exist; clients
// treat the fallback_ prefix as audio-unavailable.
func fallbackAudioURL() string {
	return fmt.Sprintf("/uploads/fallback_%s.mp3", uuid.New().String())
}
