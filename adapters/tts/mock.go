package tts

import (
	"context"
	"fmt"
	"sync"

	"github.com/serenoapp/server/domain/repositories"
)

// MockSynthesizer is a deterministic SpeechSynthesizer for testing.
// It records every Synthesize call so tests can assert call counts.
type MockSynthesizer struct {
	mu sync.Mutex

	// Audio is returned by Synthesize on success.
	Audio []byte
	// Fail makes every Synthesize call return an error.
	Fail bool
	// Voices is returned by ListVoices.
	Voices []repositories.Voice
	// VoicesErr makes ListVoices return an error.
	VoicesErr error

	synthesizeCalls int
}

var _ repositories.SpeechSynthesizer = (*MockSynthesizer)(nil)

// NewMockSynthesizer creates a mock that returns the given audio payload.
func NewMockSynthesizer(audio []byte) *MockSynthesizer {
	return &MockSynthesizer{Audio: audio}
}

func (m *MockSynthesizer) Synthesize(_ context.Context, text string, voiceID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.synthesizeCalls++

	if m.Fail {
		return nil, fmt.Errorf("mock synthesis failure")
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return []byte(fmt.Sprintf("audio(%s,%s)", voiceID, text)), nil
}

func (m *MockSynthesizer) ListVoices(_ context.Context) ([]repositories.Voice, error) {
	if m.VoicesErr != nil {
		return nil, m.VoicesErr
	}
	return m.Voices, nil
}

// SynthesizeCalls returns the number of Synthesize calls made.
func (m *MockSynthesizer) SynthesizeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synthesizeCalls
}
