package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/serenoapp/server/domain/repositories"
)

func testRequest(prompt string) repositories.GenerationRequest {
	return repositories.GenerationRequest{
		System:      "system",
		Prompt:      prompt,
		MaxTokens:   100,
		Temperature: 0.7,
	}
}

func TestNewTextGeneratorDefaultsToOpenAI(t *testing.T) {
	generator, err := NewTextGenerator(context.Background(), Config{
		OpenAI: OpenAIConfig{APIKey: "key"},
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &OpenAIGenerator{}, generator)
}

func TestNewTextGeneratorUnknownProvider(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), Config{Provider: "markov-chain"}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	_, err := NewOpenAIGenerator(OpenAIConfig{}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestMockGenerator(t *testing.T) {
	mock := NewMockGenerator(
		MockResponse{Text: "first"},
		MockResponse{Err: &ErrEmptyResponse{}},
	)

	text, err := mock.Generate(context.Background(), testRequest("p1"))
	require.NoError(t, err)
	assert.Equal(t, "first", text)

	_, err = mock.Generate(context.Background(), testRequest("p2"))
	assert.Error(t, err)

	// Queue exhausted: the provider is unavailable.
	_, err = mock.Generate(context.Background(), testRequest("p3"))
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "p1", mock.Calls[0].Prompt)
}
