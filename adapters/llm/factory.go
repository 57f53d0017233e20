package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

// Config selects and configures the text-generation provider.
type Config struct {
	// Provider selects the implementation. Values: "openai", "gemini".
	Provider string

	OpenAI OpenAIConfig
	Gemini GeminiConfig
}

// NewTextGenerator creates a TextGenerator from configuration.
func NewTextGenerator(ctx context.Context, cfg Config, logger *zap.Logger) (repositories.TextGenerator, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIGenerator(cfg.OpenAI, logger)
	case "gemini":
		return NewGeminiGenerator(ctx, cfg.Gemini, logger)
	default:
		return nil, fmt.Errorf("unknown text provider: %q", cfg.Provider)
	}
}
