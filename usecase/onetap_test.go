package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/serenoapp/server/adapters/storage"
	"github.com/serenoapp/server/adapters/tts"
	"github.com/serenoapp/server/domain/entities"
)

func newOneTapService(t *testing.T, synthesizer *tts.MockSynthesizer, store *storage.MemoryStore) *OneTapService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	synthesis := NewSynthesisService(synthesizer, store, logger)
	return NewOneTapService(synthesis, logger)
}

func TestOneTapStart(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer([]byte("mpeg-data"))
	store := storage.NewMemoryStore()
	service := newOneTapService(t, synthesizer, store)

	session, err := service.Start(context.Background(), entities.OneTapQuickRelief, "voice1")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/quick-relief_full_voice1.mp3", session.AudioURL)
	assert.Len(t, session.Steps, 6)
	assert.Contains(t, session.Script, "you're safe now")

	// Second start of the same session reuses the cached audio.
	_, err = service.Start(context.Background(), entities.OneTapQuickRelief, "voice1")
	require.NoError(t, err)
	assert.Equal(t, 1, synthesizer.SynthesizeCalls())
}

func TestOneTapStartUnknownType(t *testing.T) {
	service := newOneTapService(t, tts.NewMockSynthesizer(nil), storage.NewMemoryStore())

	_, err := service.Start(context.Background(), "power-nap", "voice1")
	assert.ErrorIs(t, err, ErrUnknownSessionType)
}

func TestOneTapStartNoFallback(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer(nil)
	synthesizer.Fail = true
	service := newOneTapService(t, synthesizer, storage.NewMemoryStore())

	_, err := service.Start(context.Background(), entities.OneTapDeepDive, "voice1")
	assert.ErrorIs(t, err, ErrNoFallbackAudio)
}

func TestOneTapStepAudio(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer([]byte("mpeg-data"))
	store := storage.NewMemoryStore()
	service := newOneTapService(t, synthesizer, store)

	step, err := service.StepAudio(context.Background(), entities.OneTapDailyPractice, 2, "voice1")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/daily-practice_2_voice1.mp3", step.AudioURL)
	steps, _ := entities.OneTapSteps(entities.OneTapDailyPractice)
	assert.Equal(t, steps[2], step.ScriptStep)

	// Same step again hits the cache.
	_, err = service.StepAudio(context.Background(), entities.OneTapDailyPractice, 2, "voice1")
	require.NoError(t, err)
	assert.Equal(t, 1, synthesizer.SynthesizeCalls())
}

func TestOneTapStepAudioInvalidIndex(t *testing.T) {
	service := newOneTapService(t, tts.NewMockSynthesizer(nil), storage.NewMemoryStore())

	_, err := service.StepAudio(context.Background(), entities.OneTapQuickRelief, 6, "voice1")
	assert.ErrorIs(t, err, ErrInvalidStepIndex)

	_, err = service.StepAudio(context.Background(), entities.OneTapQuickRelief, -1, "voice1")
	assert.ErrorIs(t, err, ErrInvalidStepIndex)
}

func TestOneTapStepTiming(t *testing.T) {
	service := newOneTapService(t, tts.NewMockSynthesizer(nil), storage.NewMemoryStore())

	first, err := service.StepTiming(entities.OneTapQuickRelief, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, first.StepIndex)
	assert.Equal(t, time.Duration(0), first.StartsAt)
	assert.GreaterOrEqual(t, first.Duration, 2*time.Second)

	second, err := service.StepTiming(entities.OneTapQuickRelief, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Duration, second.StartsAt)

	_, err = service.StepTiming("power-nap", 0)
	assert.ErrorIs(t, err, ErrUnknownSessionType)

	_, err = service.StepTiming(entities.OneTapQuickRelief, 99)
	assert.ErrorIs(t, err, ErrInvalidStepIndex)
}
