package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/entities"
)

// OneTapSession is the result of starting a one-tap session.
type OneTapSession struct {
	AudioURL string
	Script   string
	Steps    []string
}

// OneTapStepAudio is the result of synthesizing a single script step.
type OneTapStepAudio struct {
	AudioURL   string
	ScriptStep string
}

// OneTapService serves the fixed-script one-tap sessions. Scripts are
// never generated; audio is cached deterministically per
// (sessionType, step, voice) tuple.
type OneTapService struct {
	synthesis *SynthesisService
	logger    *zap.Logger
}

// NewOneTapService creates a new one-tap service.
func NewOneTapService(synthesis *SynthesisService, logger *zap.Logger) *OneTapService {
	return &OneTapService{synthesis: synthesis, logger: logger}
}

// Start returns the full session script with cached whole-script audio.
// Unknown session types are rejected; synthesis failure with an empty
// cache surfaces ErrNoFallbackAudio.
func (s *OneTapService) Start(ctx context.Context, sessionType string, voiceID string) (*OneTapSession, error) {
	steps, ok := entities.OneTapSteps(sessionType)
	if !ok {
		return nil, ErrUnknownSessionType
	}

	fullScript, _ := entities.OneTapFullScript(sessionType)
	filename := CacheKey(sessionType, "full", voiceID)

	audioURL, err := s.synthesis.Cached(ctx, filename, fullScript, voiceID)
	if err != nil {
		return nil, err
	}

	return &OneTapSession{
		AudioURL: audioURL,
		Script:   fullScript,
		Steps:    steps,
	}, nil
}

// StepAudio returns cached audio for a single script step.
func (s *OneTapService) StepAudio(ctx context.Context, sessionType string, stepIndex int, voiceID string) (*OneTapStepAudio, error) {
	steps, ok := entities.OneTapSteps(sessionType)
	if !ok {
		return nil, ErrUnknownSessionType
	}
	if stepIndex < 0 || stepIndex >= len(steps) {
		return nil, ErrInvalidStepIndex
	}

	stepText := steps[stepIndex]
	filename := CacheKey(sessionType, strconv.Itoa(stepIndex), voiceID)

	audioURL, err := s.synthesis.Cached(ctx, filename, stepText, voiceID)
	if err != nil {
		return nil, err
	}

	return &OneTapStepAudio{
		AudioURL:   audioURL,
		ScriptStep: stepText,
	}, nil
}

// StepTiming returns the estimated timing for a single step.
func (s *OneTapService) StepTiming(sessionType string, stepIndex int) (*entities.StepTiming, error) {
	timings, ok := entities.EstimateStepTimings(sessionType)
	if !ok {
		return nil, ErrUnknownSessionType
	}
	if stepIndex < 0 || stepIndex >= len(timings) {
		return nil, ErrInvalidStepIndex
	}

	timing := timings[stepIndex]
	return &timing, nil
}
