package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/serenoapp/server/adapters/storage"
	"github.com/serenoapp/server/adapters/tts"
)

func TestAudioGenerate(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer([]byte("mpeg-data"))
	store := storage.NewMemoryStore()
	service := NewAudioService(synthesizer, store, zaptest.NewLogger(t))

	generated, err := service.Generate(context.Background(), "Relax and breathe.", "voice1")
	require.NoError(t, err)

	assert.NotEmpty(t, generated.SessionID)
	assert.Equal(t, "/uploads/"+generated.SessionID+".mp3", generated.AudioURL)
	assert.Equal(t, "voice1", generated.VoiceID)
	assert.Equal(t, 120.0, generated.Duration)
	assert.Equal(t, 1, store.Len())
}

func TestAudioGenerateFailure(t *testing.T) {
	// Unlike the session flows, the generic endpoint has no fallback.
	synthesizer := tts.NewMockSynthesizer(nil)
	synthesizer.Fail = true
	service := NewAudioService(synthesizer, storage.NewMemoryStore(), zaptest.NewLogger(t))

	_, err := service.Generate(context.Background(), "text", "voice1")
	assert.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestAudioVoicesCatalog(t *testing.T) {
	service := NewAudioService(tts.NewMockSynthesizer(nil), storage.NewMemoryStore(), zaptest.NewLogger(t))

	voices := service.Voices()
	require.Len(t, voices, 2)
	assert.Equal(t, "21m00Tcm4TlvDq8ikWAM", voices[0].ID)
	assert.True(t, strings.HasPrefix(voices[0].PreviewURL, "https://"))
}
