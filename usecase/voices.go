package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

const (
	maxMeditationVoices    = 8
	maxVisualizationVoices = 6
)

var meditationVoiceKeywords = []string{
	"calm", "soothing", "gentle", "peaceful", "meditation", "relaxing", "soft",
}

var visualizationVoiceKeywords = []string{
	"calm", "soothing", "gentle", "peaceful", "visualization", "motivational", "inspiring",
}

// Static defaults served when the voice provider is unavailable.
var defaultMeditationVoices = []repositories.Voice{
	{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Description: "Calm and soothing meditation guide", Category: "meditation"},
	{ID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi", Description: "Warm and gentle meditation guide", Category: "meditation"},
	{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella", Description: "Peaceful and serene meditation guide", Category: "meditation"},
}

var defaultVisualizationVoices = []repositories.Voice{
	{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Description: "Calm and soothing visualization guide", Category: "visualization"},
	{ID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi", Description: "Warm and gentle visualization guide", Category: "visualization"},
}

// VoiceCatalog filters the provider's voice list per session kind and
// serves static defaults when the provider is unreachable.
type VoiceCatalog struct {
	synthesizer repositories.SpeechSynthesizer
	logger      *zap.Logger
}

// NewVoiceCatalog creates a new voice catalog.
func NewVoiceCatalog(synthesizer repositories.SpeechSynthesizer, logger *zap.Logger) *VoiceCatalog {
	return &VoiceCatalog{synthesizer: synthesizer, logger: logger}
}

// Meditation returns up to eight voices suitable for meditation guidance.
func (c *VoiceCatalog) Meditation(ctx context.Context) []repositories.Voice {
	return c.filtered(ctx, meditationVoiceKeywords, maxMeditationVoices, "meditation", defaultMeditationVoices)
}

// Visualization returns up to six voices suitable for visualization
// guidance.
func (c *VoiceCatalog) Visualization(ctx context.Context) []repositories.Voice {
	return c.filtered(ctx, visualizationVoiceKeywords, maxVisualizationVoices, "visualization", defaultVisualizationVoices)
}

func (c *VoiceCatalog) filtered(ctx context.Context, keywords []string, limit int, category string, defaults []repositories.Voice) []repositories.Voice {
	voices, err := c.synthesizer.ListVoices(ctx)
	if err != nil {
		c.logger.Warn("Failed to list provider voices, serving defaults", zap.Error(err))
		return defaults
	}

	// Keyword matches first, then fill remaining slots in catalog order.
	selected := make([]repositories.Voice, 0, limit)
	for _, voice := range voices {
		if len(selected) >= limit {
			break
		}
		if matchesKeywords(voice, keywords) {
			selected = append(selected, normalizeVoice(voice, category))
		}
	}
	for _, voice := range voices {
		if len(selected) >= limit {
			break
		}
		if !matchesKeywords(voice, keywords) {
			selected = append(selected, normalizeVoice(voice, category))
		}
	}

	if len(selected) == 0 {
		return defaults
	}
	return selected
}

func normalizeVoice(voice repositories.Voice, category string) repositories.Voice {
	voice.Category = category
	if voice.Description == "" {
		voice.Description = category + " guide voice"
	}
	return voice
}

func matchesKeywords(voice repositories.Voice, keywords []string) bool {
	name := strings.ToLower(voice.Name)
	description := strings.ToLower(voice.Description)
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) || strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}
