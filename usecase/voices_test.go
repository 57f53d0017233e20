package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/serenoapp/server/adapters/tts"
	"github.com/serenoapp/server/domain/repositories"
)

func TestVoiceCatalogDefaults(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer(nil)
	synthesizer.VoicesErr = fmt.Errorf("provider down")
	catalog := NewVoiceCatalog(synthesizer, zaptest.NewLogger(t))

	meditation := catalog.Meditation(context.Background())
	require.Len(t, meditation, 3)
	assert.Equal(t, "Rachel", meditation[0].Name)
	assert.Equal(t, "meditation", meditation[0].Category)

	visualization := catalog.Visualization(context.Background())
	require.Len(t, visualization, 2)
	assert.Equal(t, "visualization", visualization[0].Category)
}

func TestVoiceCatalogPrefersKeywordMatches(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer(nil)
	synthesizer.Voices = []repositories.Voice{
		{ID: "v1", Name: "Brian", Description: "deep narrator"},
		{ID: "v2", Name: "Aria", Description: "calm and soothing"},
		{ID: "v3", Name: "Josh", Description: "energetic announcer"},
	}
	catalog := NewVoiceCatalog(synthesizer, zaptest.NewLogger(t))

	voices := catalog.Meditation(context.Background())
	require.Len(t, voices, 3)
	// Keyword matches come first, then the rest in catalog order.
	assert.Equal(t, "v2", voices[0].ID)
	assert.Equal(t, "v1", voices[1].ID)
	assert.Equal(t, "v3", voices[2].ID)

	for _, v := range voices {
		assert.Equal(t, "meditation", v.Category)
		assert.NotEmpty(t, v.Description)
	}
}

func TestVoiceCatalogLimit(t *testing.T) {
	synthesizer := tts.NewMockSynthesizer(nil)
	for i := 0; i < 12; i++ {
		synthesizer.Voices = append(synthesizer.Voices, repositories.Voice{
			ID:   fmt.Sprintf("v%d", i),
			Name: fmt.Sprintf("Voice %d", i),
		})
	}
	catalog := NewVoiceCatalog(synthesizer, zaptest.NewLogger(t))

	assert.Len(t, catalog.Meditation(context.Background()), 8)
	assert.Len(t, catalog.Visualization(context.Background()), 6)
}
