package repositories

import "context"

// GenerationRequest describes a single text-generation call.
type GenerationRequest struct {
	// System sets the model's role and constraints.
	System string
	// Prompt is the user instruction built by the prompt builders.
	Prompt string
	// MaxTokens caps the response length. Fixed per call site.
	MaxTokens int
	// Temperature controls randomness. Every call site uses 0.7.
	Temperature float64
}

// TextGenerator abstracts the chat-completion text provider.
// Any returned error means the caller must substitute static fallback
// content; generation failures never surface to the end user.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
