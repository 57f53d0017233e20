package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

// SynthesisService orchestrates speech synthesis against the audio cache:
// deterministic cache keys for one-tap content, at-most-one synthesis per
// key, random-cached degradation, and uncached ad-hoc synthesis for
// generated scripts.
type SynthesisService struct {
	synthesizer repositories.SpeechSynthesizer
	store       repositories.AudioStore
	logger      *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSynthesisService creates a new synthesis service.
func NewSynthesisService(
	synthesizer repositories.SpeechSynthesizer,
	store repositories.AudioStore,
	logger *zap.Logger,
) *SynthesisService {
	return &SynthesisService{
		synthesizer: synthesizer,
		store:       store,
		logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}
}

// CacheKey derives the deterministic cache filename for one-tap content.
// step is the zero-based step index as a string, or "full" for the whole
// script. Path separators in the voice id are sanitized.
func CacheKey(sessionType string, step string, voiceID string) string {
	safeVoice := strings.ReplaceAll(voiceID, "/", "_")
	return fmt.Sprintf("%s_%s_%s.mp3", sessionType, step, safeVoice)
}

// lockKey acquires the per-filename mutex so concurrent requests for the
// same cache key cannot both call the provider.
func (s *SynthesisService) lockKey(filename string) func() {
	s.mu.Lock()
	lock, ok := s.locks[filename]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[filename] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Cached returns the URL for a deterministically keyed artifact,
// synthesizing it at most once per key. On provider failure it degrades
// to a random previously cached file, or ErrNoFallbackAudio when the
// store is empty.
func (s *SynthesisService) Cached(ctx context.Context, filename string, text string, voiceID string) (string, error) {
	unlock := s.lockKey(filename)
	defer unlock()

	if s.store.Exists(filename) {
		s.logger.Debug("Audio cache hit", zap.String("filename", filename))
		return s.store.URL(filename), nil
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, voiceID)
	if err != nil {
		s.logger.Warn("Speech synthesis failed, trying cached fallback",
			zap.String("filename", filename), zap.Error(err))
	} else if saveErr := s.store.Save(filename, audio); saveErr != nil {
		s.logger.Error("Failed to persist synthesized audio",
			zap.String("filename", filename), zap.Error(saveErr))
	} else {
		return s.store.URL(filename), nil
	}

	fallback, ok := s.store.RandomExisting()
	if !ok {
		return "", ErrNoFallbackAudio
	}
	s.logger.Info("Serving random cached audio as fallback",
		zap.String("requested", filename), zap.String("fallback", fallback))
	return s.store.URL(fallback), nil
}

// AdHoc synthesizes a generated script under a fresh random filename.
// No cache check is performed; identical scripts always resynthesize.
// The second return is false when synthesis or persistence failed.
func (s *SynthesisService) AdHoc(ctx context.Context, text string, voiceID string) (string, bool) {
	filename := fmt.Sprintf("%s.mp3", uuid.New().String())

	audio, err := s.synthesizer.Synthesize(ctx, text, voiceID)
	if err != nil {
		s.logger.Warn("Ad-hoc speech synthesis failed", zap.Error(err))
		return "", false
	}

	if err := s.store.Save(filename, audio); err != nil {
		s.logger.Error("Failed to persist ad-hoc audio",
			zap.String("filename", filename), zap.Error(err))
		return "", false
	}

	return s.store.URL(filename), true
}

// RandomCachedURL exposes the degraded-substitute lookup for callers that
// handle generation and synthesis separately.
func (s *SynthesisService) RandomCachedURL() (string, bool) {
	filename, ok := s.store.RandomExisting()
	if !ok {
		return "", false
	}
	return s.store.URL(filename), true
}
