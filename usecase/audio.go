package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

// GeneratedAudio is the result of the generic audio generation endpoint.
type GeneratedAudio struct {
	AudioURL  string
	Duration  float64
	VoiceID   string
	SessionID string
}

// catalogVoices is the fixed catalog served by the generic voices
// endpoint, preview URLs included.
var catalogVoices = []CatalogVoice{
	{
		ID:          "21m00Tcm4TlvDq8ikWAM",
		Name:        "Sarah (Calm)",
		Category:    "meditation",
		Description: "Soothing and peaceful voice",
		PreviewURL:  "https://cdn.elevenlabs.io/preview1.mp3",
	},
	{
		ID:          "AZnzlk1XvdvUeBnXmlld",
		Name:        "Michael (Guided)",
		Category:    "visualization",
		Description: "Clear and motivational voice",
		PreviewURL:  "https://cdn.elevenlabs.io/preview2.mp3",
	},
}

// CatalogVoice is a fixed catalog entry with a preview clip.
type CatalogVoice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PreviewURL  string `json:"previewUrl"`
}

// AudioService is the generic, uncached synthesis surface. Unlike the
// session flows it fails hard on provider errors.
type AudioService struct {
	synthesizer repositories.SpeechSynthesizer
	store       repositories.AudioStore
	logger      *zap.Logger
}

// NewAudioService creates a new audio service.
func NewAudioService(
	synthesizer repositories.SpeechSynthesizer,
	store repositories.AudioStore,
	logger *zap.Logger,
) *AudioService {
	return &AudioService{synthesizer: synthesizer, store: store, logger: logger}
}

// Generate synthesizes arbitrary text under a fresh session id.
func (s *AudioService) Generate(ctx context.Context, text string, voiceID string) (*GeneratedAudio, error) {
	audio, err := s.synthesizer.Synthesize(ctx, text, voiceID)
	if err != nil {
		s.logger.Error("Audio generation failed", zap.Error(err))
		return nil, ErrSynthesisFailed
	}

	sessionID := uuid.New().String()
	filename := fmt.Sprintf("%s.mp3", sessionID)
	if err := s.store.Save(filename, audio); err != nil {
		s.logger.Error("Failed to persist generated audio", zap.Error(err))
		return nil, ErrSynthesisFailed
	}

	return &GeneratedAudio{
		AudioURL:  s.store.URL(filename),
		Duration:  120.0,
		VoiceID:   voiceID,
		SessionID: sessionID,
	}, nil
}

// Voices returns the fixed voice catalog.
func (s *AudioService) Voices() []CatalogVoice {
	return catalogVoices
}
