package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

const (
	defaultOpenAIModel = "gpt-4"
	generateTimeout    = 30 * time.Second
)

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// OpenAIGenerator implements TextGenerator using the OpenAI chat
// completions API. It is the default provider.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.TextGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a new OpenAI text generator.
func NewOpenAIGenerator(cfg OpenAIConfig, logger *zap.Logger) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends a system+user chat completion request and returns the
// trimmed response text.
func (g *OpenAIGenerator) Generate(ctx context.Context, req repositories.GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		g.logger.Warn("OpenAI chat completion failed", zap.Error(err))
		return "", &ErrProviderUnavailable{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ErrEmptyResponse{}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &ErrEmptyResponse{}
	}

	g.logger.Debug("OpenAI chat completion succeeded",
		zap.String("model", resp.Model),
		zap.Int("completionTokens", resp.Usage.CompletionTokens))

	return text, nil
}
