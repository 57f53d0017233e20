package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, populated from the environment.
// A .env file is loaded first when present.
type Config struct {
	Port           string `env:"PORT" envDefault:"8000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	TextProvider string `env:"TEXTGEN_PROVIDER" envDefault:"openai"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`

	ElevenLabsAPIKey    string  `env:"ELEVEN_LABS_API_KEY"`
	ElevenLabsBaseURL   string  `env:"ELEVEN_LABS_BASE_URL"`
	ElevenLabsModelID   string  `env:"ELEVEN_LABS_MODEL_ID"`
	ElevenLabsStability float64 `env:"ELEVEN_LABS_STABILITY"`
	ElevenLabsClarity   float64 `env:"ELEVEN_LABS_CLARITY"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
