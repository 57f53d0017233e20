package repositories

import "context"

// Voice describes a synthesis voice offered to clients.
type Voice struct {
	ID          string `json:"voice_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// SpeechSynthesizer abstracts the text-to-speech provider.
type SpeechSynthesizer interface {
	// Synthesize converts text to an MPEG audio payload using the given
	// voice. A non-nil error covers transport failures and non-200
	// provider responses alike.
	Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error)

	// ListVoices returns the provider's available voices.
	ListVoices(ctx context.Context) ([]Voice, error)
}
